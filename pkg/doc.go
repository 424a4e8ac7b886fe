// Package bumpversion provides a library for bumping a plain text version file
// from a CI pipeline and reporting the result as step outputs.
//
// It provides functionalities for:
//   - Reading action inputs (INPUT_* environment variables) into a Config once at startup.
//   - Bumping a "major.minor.patch" version by major, minor or patch, optionally appending
//     a prerelease suffix joined with "." (1.2.3 → 1.2.4.rc1).
//   - Writing the new version back to the version file and to any extra bump files.
//   - Reporting previous_version, previous_version_tag, version and version_tag through a Sink:
//     heredoc blocks appended to the GITHUB_OUTPUT file, or legacy "::set-output" commands on stdout.
//
// Usage Example:
//
//	import (
//	    "log"
//	    "os"
//
//	    bumpversion "github.com/bcomnes/bumpversion/pkg"
//	)
//
//	func main() {
//	    cfg, err := bumpversion.LoadConfig(os.Getenv)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if _, err := bumpversion.Run(cfg, bumpversion.NewSink(cfg, os.Stdout), nil); err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	}
package bumpversion
