// Package multiverse implements the branching-history container of the
// variant: timelines of board snapshots and the position that owns them.
package multiverse

import (
	"github.com/JKTKops/5Head/internal/chess"
	"github.com/JKTKops/5Head/internal/errors"
)

// Timeline is one branch of game history: an append-only sequence of board
// snapshots, one per half-move, starting at a fixed turn number and side
// to move. History is immutable once written; boards are only appended.
//
// A timeline exclusively owns its boards. Its activation flag is mutated
// only by the owning Position, and only ever from dormant to active.
type Timeline struct {
	startTurn  int
	startColor chess.Color
	active     bool
	boards     []*chess.Board
}

// NewTimeline creates an empty, dormant timeline whose first board will
// belong to the given absolute turn and side to move. Both are fixed for
// the timeline's lifetime.
func NewTimeline(startTurn int, startColor chess.Color) *Timeline {
	return &Timeline{startTurn: startTurn, startColor: startColor}
}

// StartTurn returns the absolute turn number of the timeline's first board.
func (t *Timeline) StartTurn() int {
	return t.startTurn
}

// StartColor returns the side to move of the timeline's first board.
func (t *Timeline) StartColor() chess.Color {
	return t.startColor
}

// IsActive reports whether a move is currently expected on this timeline.
func (t *Timeline) IsActive() bool {
	return t.active
}

// Activate marks the timeline as awaiting moves. Idempotent; there is no
// deactivation.
func (t *Timeline) Activate() {
	t.active = true
}

// Length returns the number of half-moves recorded on this timeline.
func (t *Timeline) Length() int {
	return len(t.boards)
}

// FirstBoard returns the board the timeline began with, nil while empty.
func (t *Timeline) FirstBoard() *chess.Board {
	if len(t.boards) == 0 {
		return nil
	}
	return t.boards[0]
}

// LastBoard returns the most recently appended board, nil while empty.
func (t *Timeline) LastBoard() *chess.Board {
	if len(t.boards) == 0 {
		return nil
	}
	return t.boards[len(t.boards)-1]
}

// Boards returns the timeline's board history, oldest first. The returned
// slice is a read-only view; history is append-only and already-written
// boards never change.
func (t *Timeline) Boards() []*chess.Board {
	return t.boards
}

// plyIndex maps a (turn, color) coordinate to a board index. Negative
// results mean the ply predates the timeline's start.
func (t *Timeline) plyIndex(turn int, c chess.Color) int {
	return 2*(turn-t.startTurn) + int(c) - int(t.startColor)
}

// HasBoardOnTurn reports whether the timeline holds a board for the given
// turn and side to move.
func (t *Timeline) HasBoardOnTurn(turn int, c chess.Color) bool {
	idx := t.plyIndex(turn, c)
	return idx >= 0 && idx < len(t.boards)
}

// BoardOnTurn returns the board at the given turn and side to move. Plies
// before the timeline's start or beyond its last board are caller errors
// reported as ErrUnknownPly.
func (t *Timeline) BoardOnTurn(turn int, c chess.Color) (*chess.Board, error) {
	idx := t.plyIndex(turn, c)
	if idx < 0 || idx >= len(t.boards) {
		return nil, &errors.ContractError{
			Err:  errors.ErrUnknownPly,
			Op:   "board on turn",
			Turn: turn,
			Side: c.String(),
		}
	}
	return t.boards[idx], nil
}

// AppendBoard appends a board as the timeline's newest half-move, taking
// ownership of it. The board's side to move must continue the timeline's
// alternation; appending a board out of turn order is a caller error.
func (t *Timeline) AppendBoard(b *chess.Board) error {
	expected := t.startColor
	if len(t.boards)%2 == 1 {
		expected = expected.Other()
	}
	if b.SideToMove() != expected {
		return &errors.ContractError{
			Err:  errors.ErrWrongSideToMove,
			Op:   "append board",
			Turn: t.startTurn + (len(t.boards)+int(t.startColor))/2,
			Side: b.SideToMove().String(),
		}
	}
	t.boards = append(t.boards, b)
	return nil
}
