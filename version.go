// Package retrotype holds the release metadata of the retrotype module.
// The typewriter itself lives in the typewriter package and its building
// blocks in ledger, reconcile, carriage, sticker and inspire.
package retrotype

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version is the release embedded from the VERSION file, without a `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version as a git tag, e.g. "v0.1.0". The CLI reports it
// for --version.
func VersionTag() string {
	return "v" + Version()
}
