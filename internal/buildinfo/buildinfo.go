// Package buildinfo exposes build metadata injected via ldflags.
package buildinfo

import (
	"cmp"
	"fmt"
	"io"
)

// Set at build time:
//
//	go build -ldflags "-X .../internal/buildinfo.Version=v1.0.0 -X .../internal/buildinfo.Date=2026-08-29"
var (
	Version string
	Date    string
)

// PrintBuildData writes the build version and date to w, substituting "N/A"
// for values that were not set.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", cmp.Or(Version, "N/A"))
	fmt.Fprintf(w, "Build date: %s\n", cmp.Or(Date, "N/A"))
}
