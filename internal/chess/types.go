// Package chess provides the core piece, square, and board types for the
// multiverse variant. Boards are square grids of width 1 to 8; squares are
// always addressed on the full 8x8 coordinate grid and smaller boards are
// cut off at their width.
package chess

// Color represents the colour of a piece or player.
type Color int8

const (
	White Color = iota
	Black
	ColorCount = 2
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Other returns the opposite colour.
func (c Color) Other() Color {
	return 1 - c
}

// PieceType represents an uncoloured piece kind. The zero value doubles as
// the per-colour "all pieces" slot in the board's piece index.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeCount = 8
)

// AllPieces aliases the unused zero kind for per-colour piece totals.
const AllPieces = NoPieceType

// String returns the string representation of a piece kind.
func (pt PieceType) String() string {
	names := []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if int(pt) < len(names) {
		return names[pt]
	}
	return "unknown"
}

// Piece is a coloured piece, encoded as color<<3 | kind so that a piece
// value indexes the board's piece lists directly.
type Piece int8

// NoPiece is the empty-square sentinel.
const NoPiece Piece = 0

const (
	WPawn Piece = iota + 1
	WKnight
	WBishop
	WRook
	WQueen
	WKing
)

const (
	BPawn Piece = iota + 9
	BKnight
	BBishop
	BRook
	BQueen
	BKing
)

// PieceCount is the size of piece-indexed tables.
const PieceCount = 16

// MakePiece combines a colour and a kind into a piece value.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int8(c)<<3 | int8(pt))
}

// Color returns the colour of a piece.
func (p Piece) Color() Color {
	return Color(p >> 3)
}

// Type returns the kind of a piece.
func (p Piece) Type() PieceType {
	return PieceType(p & 7)
}

// String returns the string representation of a piece.
func (p Piece) String() string {
	if p == NoPiece {
		return "none"
	}
	return p.Color().String() + " " + p.Type().String()
}

// File is a zero-based board file, file A at 0.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is a zero-based board rank, rank 1 at 0.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Square is a coordinate on the 8x8 grid, encoded as rank*8 + file.
type Square int8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
)

// SquareCount is the size of the full coordinate grid.
const SquareCount = 64

// SquareNone is the sentinel for "no square", used to blank freed piece
// index slots.
const SquareNone Square = SquareCount

// MakeSquare combines a file and a rank into a square.
func MakeSquare(f File, r Rank) Square {
	return Square(int8(r)<<3 | int8(f))
}

// File returns the file of a square.
func (s Square) File() File {
	return File(s & 7)
}

// Rank returns the rank of a square.
func (s Square) Rank() Rank {
	return Rank(s >> 3)
}

// IsValid reports whether s lies on the 8x8 grid.
func (s Square) IsValid() bool {
	return s >= SqA1 && s < SquareCount
}

// String returns the coordinate in algebraic form, e.g. "d4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// Direction is a 2D step on the square grid. Directions add to squares and
// scale by integers; they do not extend to the timeline dimensions, whose
// steps are handled by Timeline and Position directly.
type Direction int8

const (
	North Direction = 8
	East  Direction = 1
	South           = -North
	West            = -East

	NorthEast = North + East
	SouthEast = South + East
	SouthWest = South + West
	NorthWest = North + West
)

// Mul scales a direction by n steps.
func (d Direction) Mul(n int) Direction {
	return Direction(int(d) * n)
}

// Add moves a square one step in direction d. The caller is responsible
// for staying on the board.
func (s Square) Add(d Direction) Square {
	return Square(int8(s) + int8(d))
}

// PawnPush returns the forward direction for the given colour.
func PawnPush(c Color) Direction {
	if c == White {
		return North
	}
	return South
}
