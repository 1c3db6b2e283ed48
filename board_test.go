package main

import "testing"

func TestSetRejectsOccupiedCell(t *testing.T) {
	board := NewBoard(15)
	if !board.Set(3, 3, CellBlack) {
		t.Fatalf("expected placing on empty cell to succeed")
	}
	if board.Set(3, 3, CellWhite) {
		t.Fatalf("expected placing on occupied cell to fail")
	}
	if got := board.At(3, 3); got != CellBlack {
		t.Fatalf("expected occupied cell to keep its stone, got %s", got)
	}
}

func TestSetRejectsOutOfBounds(t *testing.T) {
	board := NewBoard(15)
	cases := [][2]int{{-1, 0}, {0, -1}, {15, 0}, {0, 15}}
	for _, c := range cases {
		if board.Set(c[0], c[1], CellBlack) {
			t.Fatalf("expected Set(%d,%d) to fail out of bounds", c[0], c[1])
		}
	}
	if board.CountEmpty() != 15*15 {
		t.Fatalf("expected board untouched after rejected writes")
	}
}

func TestClearAlwaysSucceedsOnPlacedStone(t *testing.T) {
	board := NewBoard(15)
	before := board.CountEmpty()
	board.Set(7, 7, CellWhite)
	if !board.Set(7, 7, CellEmpty) {
		t.Fatalf("expected clearing an occupied cell to succeed")
	}
	if board.At(7, 7) != CellEmpty {
		t.Fatalf("expected cleared cell to be empty")
	}
	if board.CountEmpty() != before {
		t.Fatalf("expected place then clear to restore the board exactly")
	}
	// Clearing an already empty cell stays fine.
	if !board.Set(7, 7, CellEmpty) {
		t.Fatalf("expected clearing an empty cell to succeed")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	board := NewBoard(9)
	board.Set(4, 4, CellBlack)
	clone := board.Clone()
	clone.Set(5, 5, CellWhite)
	if board.At(5, 5) != CellEmpty {
		t.Fatalf("expected mutation of clone to leave original untouched")
	}
	if clone.At(4, 4) != CellBlack {
		t.Fatalf("expected clone to carry over existing stones")
	}
}

func TestInBoundsAndIsEmpty(t *testing.T) {
	board := NewBoard(5)
	if board.InBounds(5, 0) || board.InBounds(0, 5) || board.InBounds(-1, 2) {
		t.Fatalf("expected coordinates off the board to be out of bounds")
	}
	if !board.IsEmpty(2, 2) {
		t.Fatalf("expected fresh cell to be empty")
	}
	board.Set(2, 2, CellBlack)
	if board.IsEmpty(2, 2) {
		t.Fatalf("expected occupied cell to not be empty")
	}
	if board.IsEmpty(-1, 0) {
		t.Fatalf("expected out of bounds to not count as empty")
	}
}
