// flags.go - Command-line flag definitions
package main

import "flag"

var (
	// Input options
	scenarioFile = flag.String("s", "", "Scenario file (YAML/JSON/TOML) with negative/positive board lists")
	centralFEN   = flag.String("fen", "", "Single central-line board, used when no scenario file is given")

	// Branch replay
	branchSpec = flag.String("branch", "", "Comma-separated line:turn branch points to apply in order, e.g. 0:1,-1:2")

	// Output options
	noSummary = flag.Bool("q", false, "Don't print the present/side-to-move summary line")

	// Miscellaneous
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show usage")
)
