package render

import (
	"strings"
	"testing"

	"github.com/JKTKops/5Head/internal/chess"
	"github.com/JKTKops/5Head/internal/multiverse"
	"github.com/JKTKops/5Head/internal/notation"
	"github.com/JKTKops/5Head/internal/testutil"
)

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	b, err := notation.ParseBoard(fen)
	if err != nil {
		t.Fatalf("ParseBoard(%q): %v", fen, err)
	}
	return b
}

// Trailing spaces are significant in the layout, so the goldens are built
// line by line instead of from raw string literals.
func golden(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestBoard(t *testing.T) {
	want := golden(
		"+W--+---+---+---+  ",
		"|   |   |   | k | 4",
		"+---+---+---+---+  ",
		"|   |   |   |   | 3",
		"+---+---+---+---+  ",
		"|   |   |   |   | 2",
		"+---+---+---+---+  ",
		"| K | N |   |   | 1",
		"+---+---+---+---+  ",
		"  a   b   c   d    ",
	)
	got := Board(mustBoard(t, "3k/4/4/KN2 w"))
	testutil.AssertEqual(t, got, want, "width-4 board")
}

func TestBoardSideToMoveMarker(t *testing.T) {
	want := golden(
		"+B--+  ",
		"| k | 1",
		"+---+  ",
		"  a    ",
	)
	got := Board(mustBoard(t, "k b"))
	testutil.AssertEqual(t, got, want, "width-1 board, black to move")
}

func TestBoardLineGeometry(t *testing.T) {
	// Every board renders to 2w+2 lines of exactly 4w+3 characters; the
	// timeline layout glues boards together line by line and breaks if any
	// line is ragged.
	for width := 1; width <= 8; width++ {
		b, err := chess.NewBoard(width)
		if err != nil {
			t.Fatalf("NewBoard(%d): %v", width, err)
		}
		lines := strings.Split(strings.TrimSuffix(Board(b), "\n"), "\n")
		if len(lines) != 2*width+2 {
			t.Errorf("width %d: got %d lines, want %d", width, len(lines), 2*width+2)
		}
		for i, line := range lines {
			if len(line) != 4*width+3 {
				t.Errorf("width %d line %d: got %d chars, want %d",
					width, i, len(line), 4*width+3)
			}
		}
	}
}

func TestTimeline(t *testing.T) {
	tl := multiverse.NewTimeline(1, chess.White)
	b1 := mustBoard(t, "1k/K1 w")
	if err := tl.AppendBoard(b1); err != nil {
		t.Fatalf("AppendBoard: %v", err)
	}
	b2 := b1.Copy()
	b2.PassTurn()
	if err := tl.AppendBoard(b2); err != nil {
		t.Fatalf("AppendBoard: %v", err)
	}

	want := golden(
		"+W--+---+       +B--+---+  ",
		"|   | k | 2     |   | k | 2",
		"+---+---+  ---> +---+---+  ",
		"| K |   | 1     | K |   | 1",
		"+---+---+       +---+---+  ",
		"  a   b           a   b    ",
	)
	testutil.AssertEqual(t, Timeline(tl), want, "two boards joined by an arrow")
}

func TestTimelineIndent(t *testing.T) {
	// A timeline starting at (2, black) is three plies into the game, so
	// its first board is indented by three board slots.
	tl := multiverse.NewTimeline(2, chess.Black)
	if err := tl.AppendBoard(mustBoard(t, "1k/K1 b")); err != nil {
		t.Fatalf("AppendBoard: %v", err)
	}

	got := Timeline(tl)
	indent := strings.Repeat(" ", (11+hSep)*3)
	for i, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		if !strings.HasPrefix(line, indent) {
			t.Errorf("line %d not indented by %d: %q", i, len(indent), line)
		}
	}
	testutil.AssertContains(t, got, indent+"+B--+", "marker after the indent")
}

func TestTimelineEmpty(t *testing.T) {
	tl := multiverse.NewTimeline(1, chess.White)
	testutil.AssertEqual(t, Timeline(tl), "", "empty timeline renders to nothing")
}

func TestPosition(t *testing.T) {
	p, err := multiverse.NewPosition([]string{"k b"}, []string{"K w"})
	if err != nil {
		t.Fatalf("NewPosition: %v", err)
	}

	want := golden(
		"            +B--+  ",
		"            | k | 1",
		"            +---+  ",
		"              a    ",
		"",
		"+W--+  ",
		"| K | 1",
		"+---+  ",
		"  a    ",
		"",
	)
	testutil.AssertEqual(t, Position(p), want, "negative line first, blank line gaps")
}

func TestPositionWithBranch(t *testing.T) {
	p, err := multiverse.NewPosition(nil, []string{"3k/4/4/KN2 w"})
	if err != nil {
		t.Fatalf("NewPosition: %v", err)
	}
	if _, err := p.NewTimeline(0, 1); err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}

	got := Position(p)
	testutil.AssertContains(t, got, "+W--+", "central line marker")
	testutil.AssertContains(t, got, "+B--+", "branched line marker")

	// The branch starts one ply after its source, so its board sits one
	// slot to the right of the central line's board.
	lines := strings.Split(got, "\n")
	var markers []int
	for _, line := range lines {
		if i := strings.IndexAny(line, "WB"); i >= 0 && strings.HasPrefix(line, strings.Repeat(" ", i-1)+"+") {
			markers = append(markers, i)
		}
	}
	if len(markers) != 2 {
		t.Fatalf("found %d side-to-move markers, want 2", len(markers))
	}
	slot := 4*4 + 3 + hSep
	if markers[1]-markers[0] != slot {
		t.Errorf("branch offset = %d, want %d", markers[1]-markers[0], slot)
	}
}
