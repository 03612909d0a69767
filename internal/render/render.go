// Package render lays out boards, timelines, and whole positions as ASCII
// text. It exists for debugging and golden tests: the layout is
// deterministic but is not a compatibility surface.
package render

import (
	"strings"

	"github.com/JKTKops/5Head/internal/chess"
	"github.com/JKTKops/5Head/internal/multiverse"
	"github.com/JKTKops/5Head/internal/notation"
)

// hSep is the number of spaces between adjacent boards of a timeline.
const hSep = 5

// rowSeparator builds the "+---+---+..." line for a board of the given
// width.
func rowSeparator(width int) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for i := 0; i < width; i++ {
		sb.WriteString("---+")
	}
	return sb.String()
}

// lineWidth is the character width of every rendered line of a board.
func lineWidth(width int) int {
	return 4*width + 3
}

// Board renders a single board as a grid, ranks top to bottom, rank
// numbers on the right and file letters below. The side to move is
// flagged inside the top separator. Every board of width w renders to
// exactly 2w+2 lines of equal width, which the timeline layout relies on.
func Board(b *chess.Board) string {
	var sb strings.Builder
	width := b.Width()
	rowSep := rowSeparator(width)

	firstRowSep := []byte(rowSep)
	if b.SideToMove() == chess.White {
		firstRowSep[1] = 'W'
	} else {
		firstRowSep[1] = 'B'
	}
	sb.Write(firstRowSep)
	sb.WriteString("  \n")

	for rank := chess.Rank(width - 1); rank >= chess.Rank1; rank-- {
		for file := chess.FileA; int(file) < width; file++ {
			sb.WriteString("| ")
			sb.WriteByte(notation.PieceChar(b.PieceOn(chess.MakeSquare(file, rank))))
			sb.WriteByte(' ')
		}
		sb.WriteString("| ")
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte('\n')
		sb.WriteString(rowSep)
		sb.WriteString("  \n")
	}

	sb.WriteString("  a   b   c   d   e   f   g   h   "[:2+4*width])
	sb.WriteString(" \n")
	return sb.String()
}

// Timeline renders a timeline's boards side by side, oldest first. The
// first board is indented by the timeline's starting ply so that boards
// of parallel timelines line up by ply, and successive boards are joined
// by an arrow on the middle row.
func Timeline(t *multiverse.Timeline) string {
	boards := t.Boards()
	if len(boards) == 0 {
		return ""
	}

	width := boards[0].Width()
	middleLine := width

	startingPly := 2*(t.StartTurn()-1) + int(t.StartColor())
	indent := strings.Repeat(" ", (lineWidth(width)+hSep)*startingPly)

	lines := strings.Split(strings.TrimSuffix(Board(boards[0]), "\n"), "\n")
	for i := range lines {
		lines[i] = indent + lines[i]
	}

	for _, b := range boards[1:] {
		boardLines := strings.Split(strings.TrimSuffix(Board(b), "\n"), "\n")
		for i := range lines {
			if i == middleLine {
				lines[i] += "---> "
			} else {
				lines[i] += strings.Repeat(" ", hSep)
			}
			lines[i] += boardLines[i]
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

// Position renders every timeline of a position, most negative first,
// separated by blank lines.
func Position(p *multiverse.Position) string {
	var sb strings.Builder
	for l := -p.NegativeCount(); l <= p.PositiveCount(); l++ {
		tl, err := p.Timeline(l)
		if err != nil {
			continue
		}
		sb.WriteString(Timeline(tl))
		sb.WriteByte('\n')
	}
	return sb.String()
}
