// Package main implements a CLI tool that bumps a plain text version file
// and reports the old and new versions as pipeline step outputs.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	bumpversion "github.com/bcomnes/bumpversion/pkg"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		versionFile      string
		bumpType         string
		prereleaseSuffix string
		bumpFiles        []string
		outputPath       string
		dryRun           bool
		debug            bool
	)
	addFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&versionFile, "version-file", "", "Path to the file containing the version (default $INPUT_VERSIONFILE)")
		cmd.Flags().StringVar(&bumpType, "bump-type", "", "One of: major, minor, patch (default $INPUT_BUMPTYPE)")
		cmd.Flags().StringVar(&prereleaseSuffix, "prerelease-suffix", "", "Suffix appended to the new version after a \".\" (default $INPUT_PRERELEASESUFFIX)")
		cmd.Flags().StringArrayVar(&bumpFiles, "bump-file", nil, "Additional file to scan for the first version and bump it. May be repeated.")
		cmd.Flags().StringVar(&outputPath, "output", "", "File to append step outputs to (default $GITHUB_OUTPUT, stdout commands when unset)")
		cmd.Flags().BoolVar(&dryRun, "dry", false, "Report the outputs without modifying any files")
		cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debugging information")
	}

	cmd := &cobra.Command{
		Use:   "bumpversion [flags] [major|minor|patch]",
		Short: "Bump a version file and report step outputs",
		Long: `Bumps the version in a plain text file, writes it back without a trailing newline,
and reports previous_version, previous_version_tag, version and version_tag.

Inputs are read from INPUT_VERSIONFILE, INPUT_BUMPTYPE, INPUT_PRERELEASESUFFIX and
INPUT_BUMPFILES. Flags and the positional bump type override them. Outputs are appended
to $GITHUB_OUTPUT when set and written as ::set-output commands on stdout otherwise.`,
		Example: `  INPUT_VERSIONFILE=VERSION INPUT_BUMPTYPE=minor bumpversion
  bumpversion --version-file VERSION --prerelease-suffix rc1 patch
  bumpversion --version-file VERSION --bump-file README.md --dry major`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			overrides := map[string]string{}
			if cmd.Flags().Changed("version-file") {
				overrides[bumpversion.InputEnvName(bumpversion.InputVersionFile)] = versionFile
			}
			if cmd.Flags().Changed("bump-type") {
				overrides[bumpversion.InputEnvName(bumpversion.InputBumpType)] = bumpType
			}
			if len(args) == 1 {
				overrides[bumpversion.InputEnvName(bumpversion.InputBumpType)] = args[0]
			}
			if cmd.Flags().Changed("prerelease-suffix") {
				overrides[bumpversion.InputEnvName(bumpversion.InputPrereleaseSuffix)] = prereleaseSuffix
			}
			if cmd.Flags().Changed("bump-file") {
				overrides[bumpversion.InputEnvName(bumpversion.InputBumpFiles)] = strings.Join(bumpFiles, "\n")
			}
			if cmd.Flags().Changed("output") {
				overrides[bumpversion.OutputEnv] = outputPath
			}
			getenv := func(key string) string {
				if v, ok := overrides[key]; ok {
					return v
				}
				return os.Getenv(key)
			}

			cfg, err := bumpversion.LoadConfig(getenv)
			if err != nil {
				return err
			}
			cfg.DryRun = dryRun
			logger.Debug("loaded config", "versionFile", cfg.VersionFile, "bumpType", cfg.BumpType, "output", cfg.OutputPath, "dry", cfg.DryRun)

			meta, err := bumpversion.Run(cfg, bumpversion.NewSink(cfg, cmd.OutOrStdout()), logger)
			if err != nil {
				return err
			}

			// Summary goes to stderr; stdout may carry set-output commands.
			w := cmd.ErrOrStderr()
			if cfg.DryRun {
				fmt.Fprintln(w, "Dry run complete: no files were modified.")
			} else {
				fmt.Fprintln(w, "Version bump successful!")
			}
			fmt.Fprintf(w, "Old Version: %s\n", meta.OldVersion)
			fmt.Fprintf(w, "New Version: %s\n", meta.NewVersion)
			fmt.Fprintf(w, "Bump Type:   %s\n", meta.BumpType)
			if len(meta.UpdatedFiles) > 0 {
				if cfg.DryRun {
					fmt.Fprintln(w, "Files that would be updated:")
				} else {
					fmt.Fprintln(w, "Files updated:")
				}
				for _, f := range meta.UpdatedFiles {
					fmt.Fprintf(w, "  %s\n", f)
				}
			}
			return nil
		},
	}
	addFlags(cmd)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "display the bumpversion CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "bumpversion CLI version", Version)
			return nil
		},
	}
}
