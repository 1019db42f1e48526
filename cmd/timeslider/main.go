// Timeslider — an interactive month timeline slider for the terminal.
//
// Usage:
//
//	timeslider [command] [flags]
//
// Commands:
//
//	(none)    Run the interactive slider
//	buckets   Print the tick and bucket table
//	preview   Run the preview sweep headless and print period changes
//	version   Print version information
//
// Flags:
//
//	--config      Config file (default: $HOME/.timeslider.yaml)
//	--log-level   debug, info, warn or error (default: info)
//	--log-file    Write logs to this file
package main

import (
	"os"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
