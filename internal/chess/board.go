package chess

import (
	"fmt"

	"github.com/JKTKops/5Head/internal/errors"
)

const (
	// MaxWidth is the largest supported board side length.
	MaxWidth = 8

	// maxPieceSquares is the capacity of each per-piece square list.
	// A real chess board never holds more than 16 of one piece.
	maxPieceSquares = 16
)

// Board is the piece placement for one turn of one timeline. Alongside the
// placement it maintains, per piece value, a dense list of the occupied
// squares and a reverse mapping from square to list slot, so that "all
// squares holding piece X" is an O(1) lookup and placements and removals
// are O(1) updates.
//
// A Board knows nothing about timelines or turn numbers. It is logically
// immutable once appended to a timeline; the mutating methods exist so a
// caller can edit a fresh copy before publishing it.
type Board struct {
	width      int
	placement  [SquareCount]Piece
	pieceCount [PieceCount]int
	pieceList  [PieceCount][maxPieceSquares]Square
	index      [SquareCount]int
	sideToMove Color
}

// NewBoard returns an empty board of the given side length, White to move.
func NewBoard(width int) (*Board, error) {
	if width < 1 || width > MaxWidth {
		return nil, fmt.Errorf("width %d: %w", width, errors.ErrBadWidth)
	}
	b := &Board{width: width}
	for pc := range b.pieceList {
		for i := range b.pieceList[pc] {
			b.pieceList[pc][i] = SquareNone
		}
	}
	return b, nil
}

// Width returns the board's side length. It is fixed for the board's
// lifetime.
func (b *Board) Width() int {
	return b.width
}

// SideToMove returns whose turn starts at this board.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// SetSideToMove sets whose turn starts at this board.
func (b *Board) SetSideToMove(c Color) {
	b.sideToMove = c
}

// PassTurn flips the side to move without touching the placement. It is
// used when deriving a fresh board for branching, to represent the board
// as seen by the side about to move next.
func (b *Board) PassTurn() {
	b.sideToMove = b.sideToMove.Other()
}

// PieceOn returns the piece on the given square, NoPiece if empty.
func (b *Board) PieceOn(s Square) Piece {
	return b.placement[s]
}

// Empty reports whether the given square holds no piece.
func (b *Board) Empty(s Square) bool {
	return b.placement[s] == NoPiece
}

// SquaresOf returns the squares currently holding the given piece, densely
// packed with no holes. The returned slice is a read-only view into the
// board's index; callers must not modify or retain it across mutations.
func (b *Board) SquaresOf(c Color, pt PieceType) []Square {
	pc := MakePiece(c, pt)
	return b.pieceList[pc][:b.pieceCount[pc]]
}

// Count returns the number of pieces of the given colour on the board.
func (b *Board) Count(c Color) int {
	return b.pieceCount[MakePiece(c, AllPieces)]
}

// PutPiece places pc on square s, which must be empty. The piece is
// appended to its index list and the reverse mapping recorded.
func (b *Board) PutPiece(pc Piece, s Square) error {
	if pc == NoPiece || pc.Type() == NoPieceType {
		return fmt.Errorf("put on %s: %w", s, errors.ErrNoPiece)
	}
	if !s.IsValid() {
		return fmt.Errorf("put %s: %w", pc, errors.ErrBadSquare)
	}
	if !b.Empty(s) {
		return fmt.Errorf("put %s on %s: %w", pc, s, errors.ErrSquareOccupied)
	}
	if b.pieceCount[pc] == maxPieceSquares {
		return fmt.Errorf("put %s on %s: %w", pc, s, errors.ErrPieceCapacity)
	}

	b.placement[s] = pc
	b.index[s] = b.pieceCount[pc]
	b.pieceList[pc][b.index[s]] = s
	b.pieceCount[pc]++
	b.pieceCount[MakePiece(pc.Color(), AllPieces)]++
	return nil
}

// RemovePiece removes the piece on square s, which must be occupied. The
// freed slot in the piece's index list is filled by swapping in the list's
// last element, keeping the list dense. The resulting board represents the
// same position, but its index slots may differ from a board built by
// other put/remove sequences.
func (b *Board) RemovePiece(s Square) error {
	if !s.IsValid() {
		return fmt.Errorf("remove: %w", errors.ErrBadSquare)
	}
	// Read the piece before clearing the tile; the index update needs it.
	pc := b.placement[s]
	if pc == NoPiece {
		return fmt.Errorf("remove from %s: %w", s, errors.ErrSquareEmpty)
	}

	b.placement[s] = NoPiece
	b.pieceCount[pc]--
	last := b.pieceList[pc][b.pieceCount[pc]]
	b.index[last] = b.index[s]
	b.pieceList[pc][b.index[last]] = last
	b.pieceList[pc][b.pieceCount[pc]] = SquareNone
	b.pieceCount[MakePiece(pc.Color(), AllPieces)]--
	return nil
}

// Copy creates a deep copy of the board. The copy shares no state with the
// original.
func (b *Board) Copy() *Board {
	nb := &Board{}
	*nb = *b
	return nb
}
