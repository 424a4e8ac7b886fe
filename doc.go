// Package main implements the bumpversion CLI tool.
//
// The bumpversion tool is a CI helper that reads a version string from a plain text file,
// bumps it according to a bump type (major, minor or patch), optionally appends a prerelease
// suffix joined with ".", writes the new version back to the same file (no trailing newline),
// and reports four step outputs to the invoking pipeline:
//
//	previous_version      the version read from the file
//	previous_version_tag  "v" + previous_version
//	version               the new version
//	version_tag           "v" + version
//
// Inputs follow the GitHub Actions convention and are read once at startup:
//
//	INPUT_VERSIONFILE       path to the version file (required)
//	INPUT_BUMPTYPE          major, minor or patch (required)
//	INPUT_PRERELEASESUFFIX  optional prerelease suffix
//	INPUT_BUMPFILES         optional newline separated list of extra files to bump
//
// When GITHUB_OUTPUT names a file the outputs are appended to it as heredoc blocks;
// otherwise they are written to stdout as legacy "::set-output" commands.
//
// Command Usage:
//
//	bumpversion [flags] [major|minor|patch]
//
// Flags:
//
//	--version-file:      Path to the version file. Overrides INPUT_VERSIONFILE.
//	--bump-type:         Bump type. Overrides INPUT_BUMPTYPE; the positional argument wins over both.
//	--prerelease-suffix: Prerelease suffix. Overrides INPUT_PRERELEASESUFFIX.
//	--bump-file:         Additional file to scan for the first version and replace it.
//	                     May be repeated. Overrides INPUT_BUMPFILES.
//	--output:            Output file. Overrides GITHUB_OUTPUT.
//	--dry:               Report the outputs without modifying any files.
//	--debug:             Log debugging information to stderr.
//	--version:           Displays the version of the bumpversion CLI tool and exits.
//
// Examples:
//
//	# Bump the patch version (e.g. 1.2.3 → 1.2.4)
//	bumpversion --version-file VERSION patch
//
//	# Bump the minor version (e.g. 1.2.3 → 1.3.0)
//	bumpversion --version-file VERSION minor
//
//	# Bump the major version with a prerelease suffix (e.g. 1.2.3 → 2.0.0.rc1)
//	bumpversion --version-file VERSION --prerelease-suffix rc1 major
//
//	# Run as an action step, reading inputs from the environment
//	INPUT_VERSIONFILE=pinecone/__version__ INPUT_BUMPTYPE=patch bumpversion
//
// For more detailed API documentation, please see the documentation in the "pkg" package.
package main
