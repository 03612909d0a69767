package chess

import (
	"testing"
)

func TestColorOther(t *testing.T) {
	if White.Other() != Black {
		t.Errorf("White.Other() = %v; want Black", White.Other())
	}
	if Black.Other() != White {
		t.Errorf("Black.Other() = %v; want White", Black.Other())
	}
}

func TestMakePiece(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		kind  PieceType
		want  Piece
	}{
		{"white pawn", White, Pawn, WPawn},
		{"white king", White, King, WKing},
		{"black pawn", Black, Pawn, BPawn},
		{"black knight", Black, Knight, BKnight},
		{"black king", Black, King, BKing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakePiece(tt.color, tt.kind)
			if got != tt.want {
				t.Errorf("MakePiece(%v, %v) = %v; want %v", tt.color, tt.kind, got, tt.want)
			}
			if got.Color() != tt.color {
				t.Errorf("Color() = %v; want %v", got.Color(), tt.color)
			}
			if got.Type() != tt.kind {
				t.Errorf("Type() = %v; want %v", got.Type(), tt.kind)
			}
		})
	}
}

func TestMakeSquare(t *testing.T) {
	tests := []struct {
		name string
		file File
		rank Rank
		want Square
		str  string
	}{
		{"a1", FileA, Rank1, SqA1, "a1"},
		{"b1", FileB, Rank1, SqB1, "b1"},
		{"h1", FileH, Rank1, SqH1, "h1"},
		{"a2", FileA, Rank2, Square(8), "a2"},
		{"d4", FileD, Rank4, Square(27), "d4"},
		{"h8", FileH, Rank8, Square(63), "h8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeSquare(tt.file, tt.rank)
			if got != tt.want {
				t.Errorf("MakeSquare(%v, %v) = %d; want %d", tt.file, tt.rank, got, tt.want)
			}
			if got.File() != tt.file {
				t.Errorf("File() = %v; want %v", got.File(), tt.file)
			}
			if got.Rank() != tt.rank {
				t.Errorf("Rank() = %v; want %v", got.Rank(), tt.rank)
			}
			if got.String() != tt.str {
				t.Errorf("String() = %q; want %q", got.String(), tt.str)
			}
		})
	}

	t.Run("sentinel", func(t *testing.T) {
		if SquareNone.IsValid() {
			t.Error("SquareNone.IsValid() = true; want false")
		}
		if SquareNone.String() != "-" {
			t.Errorf("SquareNone.String() = %q; want -", SquareNone.String())
		}
	})
}

func TestDirectionArithmetic(t *testing.T) {
	tests := []struct {
		name string
		from Square
		dir  Direction
		want Square
	}{
		{"north from d4", MakeSquare(FileD, Rank4), North, MakeSquare(FileD, Rank5)},
		{"south from d4", MakeSquare(FileD, Rank4), South, MakeSquare(FileD, Rank3)},
		{"east from d4", MakeSquare(FileD, Rank4), East, MakeSquare(FileE, Rank4)},
		{"west from d4", MakeSquare(FileD, Rank4), West, MakeSquare(FileC, Rank4)},
		{"north-east from a1", SqA1, NorthEast, MakeSquare(FileB, Rank2)},
		{"three east from a1", SqA1, East.Mul(3), SqD1},
		{"two north from b1", SqB1, North.Mul(2), MakeSquare(FileB, Rank3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Add(tt.dir); got != tt.want {
				t.Errorf("%v.Add(%d) = %v; want %v", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestPawnPush(t *testing.T) {
	if PawnPush(White) != North {
		t.Errorf("PawnPush(White) = %d; want North", PawnPush(White))
	}
	if PawnPush(Black) != South {
		t.Errorf("PawnPush(Black) = %d; want South", PawnPush(Black))
	}
}
