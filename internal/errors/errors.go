// Package errors provides sentinel errors and error types for the multiverse
// state core. It defines the two error classes the core distinguishes:
// malformed external input (bad serialized boards, bad scenario files) and
// caller-contract violations, both inspectable with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed serialized board string.
	ErrInvalidFEN = errors.New("invalid board string")

	// ErrBadWidth indicates a board width outside 1..8.
	ErrBadWidth = errors.New("board width out of range")

	// ErrBadSquare indicates a square outside the 8x8 coordinate grid.
	ErrBadSquare = errors.New("square out of range")

	// ErrSquareOccupied indicates a piece placement onto an occupied square.
	ErrSquareOccupied = errors.New("square already occupied")

	// ErrSquareEmpty indicates a piece removal from an empty square.
	ErrSquareEmpty = errors.New("square is empty")

	// ErrNoPiece indicates a placement of the no-piece sentinel.
	ErrNoPiece = errors.New("no piece given")

	// ErrPieceCapacity indicates the per-piece index list is full.
	ErrPieceCapacity = errors.New("piece capacity exceeded")

	// ErrWrongSideToMove indicates an appended board breaks the
	// side-to-move alternation of its timeline.
	ErrWrongSideToMove = errors.New("wrong side to move")

	// ErrUnknownPly indicates a (turn, color) coordinate with no board.
	ErrUnknownPly = errors.New("no board at ply")

	// ErrUnknownTimeline indicates a timeline coordinate with no timeline.
	ErrUnknownTimeline = errors.New("no such timeline")

	// ErrInvalidScenario indicates an unusable scenario file.
	ErrInvalidScenario = errors.New("invalid scenario")
)

// ContractError wraps a caller-contract violation with the multiverse
// coordinates at which it occurred. The offending operation aborts before
// mutating any shared state. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type ContractError struct {
	Err  error  // The underlying sentinel error
	Op   string // The operation whose contract was violated
	Line int    // Signed timeline coordinate (0 = central)
	Turn int    // Absolute turn number (0 if not applicable)
	Side string // The mover, if relevant ("white" or "black")
}

// Error returns a formatted message including all available context.
func (e *ContractError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}

	loc := fmt.Sprintf("line %d", e.Line)
	if e.Turn != 0 {
		loc += fmt.Sprintf(", turn %d", e.Turn)
	}
	if e.Side != "" {
		loc += fmt.Sprintf(" (%s)", e.Side)
	}
	parts = append(parts, loc)

	context := strings.Join(parts, ": ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ContractError wrapper.
func (e *ContractError) Unwrap() error {
	return e.Err
}

// ParseError represents a board-string parsing error with offset context.
type ParseError struct {
	Err    error  // The underlying error
	Input  string // The input being parsed
	Offset int    // Byte offset of the failure (0-based)
	Got    string // What was found (for unexpected-token errors)
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("parsing %q", e.Input))
	}
	if e.Offset > 0 {
		parts = append(parts, fmt.Sprintf("offset %d", e.Offset))
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
