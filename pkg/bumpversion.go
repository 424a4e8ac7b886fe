package bumpversion

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// Output names reported after a bump, in the order they are emitted.
const (
	OutputPreviousVersion    = "previous_version"
	OutputPreviousVersionTag = "previous_version_tag"
	OutputVersion            = "version"
	OutputVersionTag         = "version_tag"
)

// VersionMeta holds metadata about the version bump operation.
type VersionMeta struct {
	OldVersion   string   // The version read from the version file.
	NewVersion   string   // The version after bumping, including any prerelease suffix.
	BumpType     BumpKind // Which component was bumped.
	UpdatedFiles []string // Files written (or that would be written on a dry run).
}

// Outputs returns the records reported to the pipeline, in emission order.
func (m VersionMeta) Outputs() [][2]string {
	return [][2]string{
		{OutputPreviousVersion, m.OldVersion},
		{OutputPreviousVersionTag, Tag(m.OldVersion)},
		{OutputVersion, m.NewVersion},
		{OutputVersionTag, Tag(m.NewVersion)},
	}
}

// Run reads the version file named by cfg, bumps it, writes the new
// version back and reports the previous and new versions to sink.
// Nothing is written or reported when the bump itself fails.
func Run(cfg Config, sink Sink, logger *slog.Logger) (VersionMeta, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var meta VersionMeta

	// 1. Read the current version
	cur, err := readCurrentVersion(cfg.VersionFile)
	if err != nil {
		return meta, err
	}
	meta.OldVersion = cur
	if !semver.IsValid(Tag(cur)) {
		logger.Warn("current version is not valid semver", "file", cfg.VersionFile, "version", cur)
	}

	// 2. Determine new version
	next, err := Bump(cur, cfg.BumpType, cfg.PrereleaseSuffix)
	if err != nil {
		return meta, err
	}
	meta.NewVersion = next
	meta.BumpType = cfg.BumpType
	logger.Debug("computed version", "old", meta.OldVersion, "new", meta.NewVersion, "bump", meta.BumpType)

	// 3. Make sure the outputs can be delivered before touching any file
	if err := sink.Check(); err != nil {
		return meta, fmt.Errorf("checking output sink: %w", err)
	}

	// 4. Write version file and any extra bump files
	if !cfg.DryRun {
		if err := writeVersionFile(cfg.VersionFile, meta.NewVersion); err != nil {
			return meta, err
		}
	}
	meta.UpdatedFiles = append(meta.UpdatedFiles, cfg.VersionFile)
	for _, bf := range cfg.BumpFiles {
		if err := findAndReplaceVersion(bf, meta.NewVersion, cfg.DryRun); err != nil {
			// Log warning but don't fail
			logger.Warn("failed to bump version", "file", bf, "err", err)
			continue
		}
		meta.UpdatedFiles = append(meta.UpdatedFiles, bf)
	}

	// 5. Report outputs
	if err := Report(sink, meta); err != nil {
		return meta, err
	}
	return meta, nil
}

// DryRun computes and reports the bump like Run but leaves every file
// untouched. UpdatedFiles lists the files Run would write.
func DryRun(cfg Config, sink Sink, logger *slog.Logger) (VersionMeta, error) {
	cfg.DryRun = true
	return Run(cfg, sink, logger)
}

// Report sends the four version outputs to sink, stopping at the first error.
func Report(sink Sink, meta VersionMeta) error {
	for _, out := range meta.Outputs() {
		if err := sink.SetOutput(out[0], out[1]); err != nil {
			return fmt.Errorf("setting output %s: %w", out[0], err)
		}
	}
	return nil
}

// readCurrentVersion returns the trimmed contents of the version file.
func readCurrentVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read version file: %w", err)
	}
	v := strings.TrimSpace(string(data))
	if v == "" {
		return "", fmt.Errorf("%w: version file %s is empty", ErrInvalidArgument, path)
	}
	return v, nil
}

// writeVersionFile replaces the contents of path with version. No trailing
// newline is added.
func writeVersionFile(path, version string) error {
	if err := os.WriteFile(path, []byte(version), 0644); err != nil {
		return fmt.Errorf("failed to write version file: %w", err)
	}
	return nil
}

// versionPattern matches a dotted version with an optional prerelease tail.
var versionPattern = regexp.MustCompile(`(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:[.-][0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?`)

// replaceFirstVersion returns content with the first version string that is
// not prefixed by 'v' or 'V' replaced by newVersion.
func replaceFirstVersion(content []byte, newVersion string) ([]byte, bool) {
	var match []int
	for _, m := range versionPattern.FindAllIndex(content, -1) {
		if start := m[0]; start > 0 && (content[start-1] == 'v' || content[start-1] == 'V') {
			continue
		}
		match = m
		break
	}
	if match == nil {
		return content, false
	}

	var buf bytes.Buffer
	buf.Write(content[:match[0]])
	buf.WriteString(newVersion)
	buf.Write(content[match[1]:])
	return buf.Bytes(), true
}

// findAndReplaceVersion bumps the first version string in a file. With dryRun
// set the file is only checked for a replaceable version.
func findAndReplaceVersion(path, newVersion string, dryRun bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	updated, ok := replaceFirstVersion(content, newVersion)
	if !ok {
		return fmt.Errorf("no version found in %s", path)
	}
	if dryRun {
		return nil
	}
	if err := os.WriteFile(path, updated, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
