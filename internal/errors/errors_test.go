package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestContractErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ContractError
		want string
	}{
		{
			name: "full context",
			err: &ContractError{
				Err:  ErrUnknownPly,
				Op:   "new timeline",
				Line: -2,
				Turn: 4,
				Side: "black",
			},
			want: "new timeline: line -2, turn 4 (black): no board at ply",
		},
		{
			name: "no operation",
			err:  &ContractError{Err: ErrUnknownTimeline, Line: 3},
			want: "line 3: no such timeline",
		},
		{
			name: "no underlying error",
			err:  &ContractError{Op: "append board", Line: 0, Turn: 2},
			want: "append board: line 0, turn 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContractErrorUnwrap(t *testing.T) {
	err := error(&ContractError{
		Err:  ErrWrongSideToMove,
		Op:   "append board",
		Line: 1,
		Turn: 2,
	})

	if !errors.Is(err, ErrWrongSideToMove) {
		t.Errorf("errors.Is(err, ErrWrongSideToMove) = false, want true")
	}
	if errors.Is(err, ErrUnknownPly) {
		t.Errorf("errors.Is(err, ErrUnknownPly) = true, want false")
	}

	var ce *ContractError
	if !errors.As(err, &ce) {
		t.Fatalf("errors.As failed to recover *ContractError")
	}
	if ce.Turn != 2 {
		t.Errorf("recovered Turn = %d, want 2", ce.Turn)
	}
}

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "full context",
			err: &ParseError{
				Err:    ErrInvalidFEN,
				Input:  "3k/4/4/KN2 x",
				Offset: 11,
				Got:    `colour token "x"`,
			},
			want: `parsing "3k/4/4/KN2 x": offset 11: unexpected colour token "x": invalid board string`,
		},
		{
			name: "bare underlying error",
			err:  &ParseError{Err: ErrBadWidth},
			want: "board width out of range",
		},
		{
			name: "empty",
			err:  &ParseError{},
			want: "parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	err := error(&ParseError{Err: ErrInvalidFEN, Input: "zz"})
	if !errors.Is(err, ErrInvalidFEN) {
		t.Errorf("errors.Is(err, ErrInvalidFEN) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Errorf("Wrap(nil) should return nil")
	}

	err := Wrap(ErrInvalidScenario, "loading setup")
	if !errors.Is(err, ErrInvalidScenario) {
		t.Errorf("wrapped error lost its sentinel")
	}
	if !strings.HasPrefix(err.Error(), "loading setup: ") {
		t.Errorf("Error() = %q, want %q prefix", err.Error(), "loading setup: ")
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "line %d", 2) != nil {
		t.Errorf("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrUnknownTimeline, "line %d", -3)
	if !errors.Is(err, ErrUnknownTimeline) {
		t.Errorf("wrapped error lost its sentinel")
	}
	want := "line -3: no such timeline"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
