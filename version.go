// Package calcpad carries the release version shared by the calcpad
// packages and the calcpad command.
package calcpad

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version without a leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 string.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// UserAgent is how calcpad names itself in logs, e.g. "calcpad/0.1.0".
func UserAgent() string {
	return "calcpad/" + Version()
}
