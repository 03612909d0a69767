// Package notation serializes boards to and from the variant's reduced FEN
// form: a rank-major, slash-separated placement (ranks top to bottom, files
// left to right, digits as empty runs, PNBRQK/pnbrqk for white/black),
// a space, and a single active-colour token ("w" or "b").
//
// The form is reduced deliberately: boards may be narrower than 8 files,
// and no castling or en-passant state is carried. The board width is
// inferred from the first rank segment.
package notation

import (
	"fmt"
	"strings"

	"github.com/JKTKops/5Head/internal/chess"
	"github.com/JKTKops/5Head/internal/errors"
)

// pieceChars maps piece values to their letters; index is the piece value.
const pieceChars = " PNBRQK  pnbrqk"

// PieceFromChar converts a placement letter to a piece value, or NoPiece
// if the letter names no piece.
func PieceFromChar(c byte) chess.Piece {
	if idx := strings.IndexByte(pieceChars, c); idx > 0 && pieceChars[idx] != ' ' {
		return chess.Piece(idx)
	}
	return chess.NoPiece
}

// PieceChar returns the placement letter for a piece.
func PieceChar(pc chess.Piece) byte {
	if int(pc) < len(pieceChars) {
		return pieceChars[pc]
	}
	return '?'
}

// ParseBoard parses a serialized board, returning a fresh Board holding
// its placement and side to move. It fails with a descriptive error, never
// a corrupt board, on malformed input: an implied width outside 1..8, an
// unknown placement letter, a placement overflowing the board or a piece
// kind's capacity, or a missing colour token.
func ParseBoard(s string) (*chess.Board, error) {
	width, err := inferWidth(s)
	if err != nil {
		return nil, err
	}

	board, err := chess.NewBoard(width)
	if err != nil {
		return nil, &errors.ParseError{Err: err, Input: s}
	}

	rest, err := parsePlacement(board, s)
	if err != nil {
		return nil, err
	}

	return board, parseSideToMove(board, s, rest)
}

// inferWidth derives the board width from the first rank segment.
func inferWidth(s string) (int, error) {
	width := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '/' || c == ' ' {
			break
		}
		if c >= '1' && c <= '8' {
			width += int(c - '0')
		} else {
			width++
		}
	}
	if width < 1 || width > chess.MaxWidth {
		return 0, &errors.ParseError{
			Err:   errors.ErrBadWidth,
			Input: s,
			Got:   fmt.Sprintf("first rank of width %d", width),
		}
	}
	return width, nil
}

// parsePlacement fills the board from the placement field and returns the
// offset just past it.
func parsePlacement(board *chess.Board, s string) (int, error) {
	width := board.Width()
	ranksSeen := 1
	file := chess.FileA
	rank := chess.Rank(width - 1)

	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			if ranksSeen != width || int(file) != width {
				return 0, &errors.ParseError{
					Err:    errors.ErrInvalidFEN,
					Input:  s,
					Offset: i,
					Got:    fmt.Sprintf("placement not %dx%d", width, width),
				}
			}
			return i + 1, nil
		case c == '/':
			if int(file) != width || rank == chess.Rank1 {
				return 0, &errors.ParseError{
					Err:    errors.ErrInvalidFEN,
					Input:  s,
					Offset: i,
					Got:    "rank separator",
				}
			}
			ranksSeen++
			file = chess.FileA
			rank--
		case c >= '1' && c <= '8':
			file += chess.File(c - '0')
			if int(file) > width {
				return 0, &errors.ParseError{
					Err:    errors.ErrInvalidFEN,
					Input:  s,
					Offset: i,
					Got:    fmt.Sprintf("empty run past file %d", width),
				}
			}
		default:
			pc := PieceFromChar(c)
			if pc == chess.NoPiece {
				return 0, &errors.ParseError{
					Err:    errors.ErrInvalidFEN,
					Input:  s,
					Offset: i,
					Got:    fmt.Sprintf("character %q", c),
				}
			}
			if int(file) >= width {
				return 0, &errors.ParseError{
					Err:    errors.ErrInvalidFEN,
					Input:  s,
					Offset: i,
					Got:    fmt.Sprintf("piece past file %d", width),
				}
			}
			if err := board.PutPiece(pc, chess.MakeSquare(file, rank)); err != nil {
				return 0, &errors.ParseError{Err: err, Input: s, Offset: i}
			}
			file++
		}
	}
	return 0, &errors.ParseError{
		Err:   errors.ErrInvalidFEN,
		Input: s,
		Got:   "end of input before colour token",
	}
}

// parseSideToMove reads the active-colour token at offset i.
func parseSideToMove(board *chess.Board, s string, i int) error {
	tok := strings.TrimSpace(s[i:])
	switch tok {
	case "w":
		board.SetSideToMove(chess.White)
	case "b":
		board.SetSideToMove(chess.Black)
	default:
		return &errors.ParseError{
			Err:    errors.ErrInvalidFEN,
			Input:  s,
			Offset: i,
			Got:    fmt.Sprintf("colour token %q", tok),
		}
	}
	return nil
}

// BoardFEN serializes a board to the reduced FEN form. Castling and
// en-passant state do not exist on these boards and are not emitted; this
// is a documented limitation of the format, not an omission to fix.
func BoardFEN(board *chess.Board) string {
	var sb strings.Builder
	width := board.Width()

	for rank := chess.Rank(width - 1); ; rank-- {
		emptyCount := 0
		for file := chess.FileA; int(file) < width; file++ {
			pc := board.PieceOn(chess.MakeSquare(file, rank))
			if pc == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceChar(pc))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank == chess.Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	sb.WriteByte(' ')
	if board.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}
