// Package backforge holds shared metadata for the backforge CLI.
package backforge

// Version is the current backforge release.
var Version = "0.3.0"
