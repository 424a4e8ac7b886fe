package bumpversion

import (
	"fmt"
	"strings"
)

// Names of the action inputs.
const (
	InputVersionFile      = "versionFile"
	InputBumpType         = "bumpType"
	InputPrereleaseSuffix = "prereleaseSuffix"
	InputBumpFiles        = "bumpFiles"
)

// OutputEnv names the environment variable holding the output file path.
const OutputEnv = "GITHUB_OUTPUT"

// Config is everything a bump needs, resolved once at startup.
type Config struct {
	VersionFile      string
	BumpType         BumpKind
	PrereleaseSuffix string
	BumpFiles        []string // additional files whose first version string is replaced
	OutputPath       string   // empty selects the legacy stdout command
	DryRun           bool
}

// InputOptions controls how an input is read.
type InputOptions struct {
	Required       bool
	TrimWhitespace *bool // nil means trim
}

// InputEnvName returns the environment variable the runner uses for an input.
func InputEnvName(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// Input reads a single action input through getenv.
func Input(getenv func(string) string, name string, opts InputOptions) (string, error) {
	val := getenv(InputEnvName(name))
	if opts.Required && val == "" {
		return "", fmt.Errorf("%w: input required and not supplied: %s", ErrInvalidArgument, name)
	}
	if opts.TrimWhitespace != nil && !*opts.TrimWhitespace {
		return val, nil
	}
	return strings.TrimSpace(val), nil
}

// MultilineInput reads an input holding one value per line. Blank lines
// are dropped.
func MultilineInput(getenv func(string) string, name string, opts InputOptions) ([]string, error) {
	raw, err := Input(getenv, name, opts)
	if err != nil {
		return nil, err
	}
	var vals []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			vals = append(vals, line)
		}
	}
	return vals, nil
}

// LoadConfig builds a Config from the runner environment. The bump type
// is not validated here; Bump reports an unknown kind.
func LoadConfig(getenv func(string) string) (Config, error) {
	var cfg Config
	var err error

	if cfg.VersionFile, err = Input(getenv, InputVersionFile, InputOptions{Required: true}); err != nil {
		return cfg, err
	}
	bumpType, err := Input(getenv, InputBumpType, InputOptions{Required: true})
	if err != nil {
		return cfg, err
	}
	cfg.BumpType = BumpKind(bumpType)
	if cfg.PrereleaseSuffix, err = Input(getenv, InputPrereleaseSuffix, InputOptions{}); err != nil {
		return cfg, err
	}
	if cfg.BumpFiles, err = MultilineInput(getenv, InputBumpFiles, InputOptions{}); err != nil {
		return cfg, err
	}
	cfg.OutputPath = getenv(OutputEnv)
	return cfg, nil
}
