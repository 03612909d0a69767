package multiverse

import (
	"github.com/JKTKops/5Head/internal/chess"
	"github.com/JKTKops/5Head/internal/errors"
	"github.com/JKTKops/5Head/internal/notation"
)

// Position is the multiverse: every timeline of one game, the activation
// bookkeeping that couples the two players' timeline counts, and the
// shared present turn.
//
// Timelines are addressed by a signed coordinate: 0 is the central line,
// positive coordinates run one way, negative the other, magnitude is the
// distance from the central line. Internally the negative side is stored
// nearest-the-center first, so negativeLines[0] is coordinate -1; the
// positive side stores the central line at index 0, so positiveLines[l]
// is coordinate l.
//
// A Position exclusively owns its timelines, which exclusively own their
// boards; no board is ever reachable through two timelines.
type Position struct {
	negativeLines []*Timeline
	positiveLines []*Timeline

	// Active-line counts per side, excluding the always-active central
	// line.
	activePositive int
	activeNegative int

	presentTurn int
	sideToMove  chess.Color
}

// NewPosition sets up a multiverse from serialized boards, one per
// starting timeline. The negative side is given farthest-first; the
// positive side's first element is the central line and must be present.
// Every supplied timeline starts at turn 1, is active, and owns a single
// board; the global side to move is taken from the central line.
func NewPosition(negativeFENs, positiveFENs []string) (*Position, error) {
	if len(positiveFENs) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidScenario, "no central line")
	}

	p := &Position{presentTurn: 1}

	// Input order is farthest-first; storage is nearest-first.
	for i := len(negativeFENs) - 1; i >= 0; i-- {
		tl, err := startingTimeline(negativeFENs[i])
		if err != nil {
			return nil, errors.Wrapf(err, "negative line -%d", i+1)
		}
		p.negativeLines = append(p.negativeLines, tl)
	}
	for i, fen := range positiveFENs {
		tl, err := startingTimeline(fen)
		if err != nil {
			return nil, errors.Wrapf(err, "positive line %d", i)
		}
		p.positiveLines = append(p.positiveLines, tl)
	}

	p.activePositive = len(positiveFENs) - 1
	p.activeNegative = len(negativeFENs)
	p.sideToMove = p.positiveLines[0].FirstBoard().SideToMove()
	return p, nil
}

// startingTimeline builds a one-board active timeline at turn 1.
func startingTimeline(fen string) (*Timeline, error) {
	board, err := notation.ParseBoard(fen)
	if err != nil {
		return nil, err
	}
	tl := NewTimeline(1, board.SideToMove())
	if err := tl.AppendBoard(board); err != nil {
		return nil, err
	}
	tl.Activate()
	return tl, nil
}

// NegativeCount returns the number of timelines on the negative side.
func (p *Position) NegativeCount() int {
	return len(p.negativeLines)
}

// PositiveCount returns the number of timelines on the positive side,
// not counting the central line.
func (p *Position) PositiveCount() int {
	return len(p.positiveLines) - 1
}

// ActiveNegativeCount returns the number of active negative timelines.
func (p *Position) ActiveNegativeCount() int {
	return p.activeNegative
}

// ActivePositiveCount returns the number of active positive timelines,
// not counting the central line.
func (p *Position) ActivePositiveCount() int {
	return p.activePositive
}

// SideToMove returns whose turn it globally is.
func (p *Position) SideToMove() chess.Color {
	return p.sideToMove
}

// PresentTurn returns the smallest turn number at which some active
// timeline still awaits a move. It never increases over a position's
// lifetime.
func (p *Position) PresentTurn() int {
	return p.presentTurn
}

// Timeline returns the timeline at the given signed coordinate.
func (p *Position) Timeline(l int) (*Timeline, error) {
	if l >= 0 {
		if l < len(p.positiveLines) {
			return p.positiveLines[l], nil
		}
	} else if n := -l - 1; n < len(p.negativeLines) {
		return p.negativeLines[n], nil
	}
	return nil, &errors.ContractError{
		Err:  errors.ErrUnknownTimeline,
		Op:   "timeline",
		Line: l,
	}
}

// NewTimeline branches a new timeline off the board that the current
// mover sees at (sourceLine, sourceTurn). The branch point's board is
// deep-copied, never shared, and the copy's side to move is flipped: the
// branch begins just after the branch point, from the perspective of the
// player who had not yet moved there. A white-originated branch starts on
// the same turn number; a black-originated branch starts one turn later,
// since black's turn n falls after white's chronologically.
//
// Whether the new timeline starts active depends on the global mover and
// the active-line counts of the two sides; see decideActivation. The new
// board is returned for the caller to finish editing before the branch
// counts as a played move.
func (p *Position) NewTimeline(sourceLine, sourceTurn int) (*chess.Board, error) {
	src, err := p.Timeline(sourceLine)
	if err != nil {
		return nil, err
	}
	srcBoard, err := src.BoardOnTurn(sourceTurn, p.sideToMove)
	if err != nil {
		return nil, &errors.ContractError{
			Err:  errors.ErrUnknownPly,
			Op:   "new timeline",
			Line: sourceLine,
			Turn: sourceTurn,
			Side: p.sideToMove.String(),
		}
	}

	board := srcBoard.Copy()
	board.PassTurn()

	startTurn := sourceTurn
	if p.sideToMove == chess.Black {
		startTurn++
	}
	tl := NewTimeline(startTurn, board.SideToMove())
	if err := tl.AppendBoard(board); err != nil {
		return nil, err
	}

	// Activation must be decided before the new timeline is stored: the
	// coupled-activation index is computed against current storage.
	p.decideActivation(tl)

	if p.sideToMove == chess.White {
		p.positiveLines = append(p.positiveLines, tl)
	} else {
		p.negativeLines = append(p.negativeLines, tl)
	}
	return board, nil
}

// decideActivation applies the variant's activation rule to a freshly
// created timeline. The rule couples the two sides' active counts: the
// imbalance between them may never exceed one because of a branch.
//
// With the mover's own active count M and the opponent's O:
//   - M == O or M == O-1: the new timeline becomes active immediately.
//   - M < O-1: the opponent is more than one ahead, so activating the new
//     timeline is not enough; the mover's branch also pulls the opponent's
//     dormant timeline at distance M+2 into play.
//   - otherwise the mover is already strictly ahead and the new timeline
//     stays dormant.
//
// Whenever a timeline activates, the present is pulled back to its start
// turn if that is earlier; the present never moves forward.
func (p *Position) decideActivation(tl *Timeline) {
	if p.sideToMove == chess.White {
		mine, theirs := p.activePositive, p.activeNegative
		switch {
		case mine == theirs || mine == theirs-1:
			p.activateNew(tl, &p.activePositive)
		case mine < theirs-1:
			p.activateNew(tl, &p.activePositive)
			// negativeLines is nearest-first, so index mine+1 is the
			// opponent's line at distance mine+2.
			p.activateCoupled(p.negativeLines, mine+1, &p.activeNegative)
		}
	} else {
		mine, theirs := p.activeNegative, p.activePositive
		switch {
		case mine == theirs || mine == theirs-1:
			p.activateNew(tl, &p.activeNegative)
		case mine < theirs-1:
			p.activateNew(tl, &p.activeNegative)
			// positiveLines holds the central line at index 0, so the
			// line at distance mine+2 lives at index mine+2.
			p.activateCoupled(p.positiveLines, mine+2, &p.activePositive)
		}
	}
}

// activateNew activates a freshly created timeline and lowers the present.
func (p *Position) activateNew(tl *Timeline, count *int) {
	tl.Activate()
	*count++
	p.presentTurn = min(p.presentTurn, tl.StartTurn())
}

// activateCoupled activates the dormant timeline at idx in lines, if any.
// Already-active lines are left untouched so the counters stay honest.
func (p *Position) activateCoupled(lines []*Timeline, idx int, count *int) {
	if idx < 0 || idx >= len(lines) || lines[idx].IsActive() {
		return
	}
	lines[idx].Activate()
	*count++
	p.presentTurn = min(p.presentTurn, lines[idx].StartTurn())
}
