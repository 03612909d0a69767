// 5dview is a debugging viewer for multiverse positions: it sets up a
// position from a scenario file or a single board, optionally replays a
// list of branch points, and prints the rendered multiverse.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JKTKops/5Head/internal/multiverse"
	"github.com/JKTKops/5Head/internal/render"
	"github.com/JKTKops/5Head/internal/scenario"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("5dview version %s\n", programVersion)
		os.Exit(0)
	}

	pos := setupPosition()
	applyBranches(pos)

	fmt.Print(render.Position(pos))

	if !*noSummary {
		fmt.Printf("present turn %d, %s to move, active -%d/+%d\n",
			pos.PresentTurn(), pos.SideToMove(),
			pos.ActiveNegativeCount(), pos.ActivePositiveCount())
	}
}

// setupPosition builds the starting position from the flags.
func setupPosition() *multiverse.Position {
	if *scenarioFile != "" {
		sc, err := scenario.Load(*scenarioFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scenario %s: %v\n", *scenarioFile, err)
			os.Exit(1)
		}
		pos, err := sc.Position()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error setting up scenario %s: %v\n", *scenarioFile, err)
			os.Exit(1)
		}
		return pos
	}

	if *centralFEN == "" {
		fmt.Fprintf(os.Stderr, "Either -s or -fen is required\n\n")
		usage()
		os.Exit(1)
	}

	pos, err := multiverse.NewPosition(nil, []string{*centralFEN})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing board %q: %v\n", *centralFEN, err)
		os.Exit(1)
	}
	return pos
}

// applyBranches replays the -branch list against the position.
func applyBranches(pos *multiverse.Position) {
	if *branchSpec == "" {
		return
	}

	for _, spec := range strings.Split(*branchSpec, ",") {
		line, turn, err := parseBranch(spec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in branch spec %q: %v\n", spec, err)
			os.Exit(1)
		}
		if _, err := pos.NewTimeline(line, turn); err != nil {
			fmt.Fprintf(os.Stderr, "Error branching at %q: %v\n", spec, err)
			os.Exit(1)
		}
	}
}

// parseBranch splits a "line:turn" pair.
func parseBranch(spec string) (line, turn int, err error) {
	lineStr, turnStr, ok := strings.Cut(strings.TrimSpace(spec), ":")
	if !ok {
		return 0, 0, fmt.Errorf("expected line:turn")
	}
	if line, err = strconv.Atoi(lineStr); err != nil {
		return 0, 0, fmt.Errorf("bad line %q", lineStr)
	}
	if turn, err = strconv.Atoi(turnStr); err != nil {
		return 0, 0, fmt.Errorf("bad turn %q", turnStr)
	}
	return line, turn, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: 5dview [options]\n\n")
	fmt.Fprintf(os.Stderr, "A viewer for multiverse chess positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScenario files list serialized boards per side:\n")
	fmt.Fprintf(os.Stderr, "  negative:  boards below the central line, farthest first\n")
	fmt.Fprintf(os.Stderr, "  positive:  boards above it; the first entry is the central line\n")
}
