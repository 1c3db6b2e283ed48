package main

import "testing"

func testRules(boardSize int) Rules {
	settings := DefaultGameSettings()
	settings.BoardSize = boardSize
	return NewRules(settings)
}

func TestWinDetectedInAllDirections(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy int
	}{
		{"horizontal", 1, 0},
		{"vertical", 0, 1},
		{"diagonal", 1, 1},
		{"anti-diagonal", 1, -1},
	}
	for _, c := range cases {
		rules := testRules(15)
		board := NewBoard(15)
		last := Move{}
		for i := 0; i < 5; i++ {
			last = Move{X: 7 + i*c.dx, Y: 7 + i*c.dy}
			board.Set(last.X, last.Y, CellBlack)
		}
		if !rules.IsWin(board, last) {
			t.Fatalf("%s: expected five in a row to win", c.name)
		}
	}
}

func TestHorizontalRunWins(t *testing.T) {
	rules := testRules(15)
	board := NewBoard(15)
	for x := 5; x <= 9; x++ {
		board.Set(x, 5, CellBlack)
	}
	if !rules.IsWin(board, Move{X: 9, Y: 5}) {
		t.Fatalf("expected run at row 5 cols 5..9 to win")
	}
	// The alignment is also found from a stone in the middle of it.
	if !rules.IsWin(board, Move{X: 7, Y: 5}) {
		t.Fatalf("expected win to be detected from the middle of the run")
	}
}

func TestFourWithBlockerDoesNotWin(t *testing.T) {
	rules := testRules(15)
	board := NewBoard(15)
	for x := 8; x <= 11; x++ {
		board.Set(x, 8, CellBlack)
	}
	board.Set(12, 8, CellWhite)
	if rules.IsWin(board, Move{X: 11, Y: 8}) {
		t.Fatalf("expected four stones to not win")
	}
}

func TestWinOnEmptyCellIsFalse(t *testing.T) {
	rules := testRules(15)
	board := NewBoard(15)
	if rules.IsWin(board, Move{X: 7, Y: 7}) {
		t.Fatalf("expected empty cell to never be a win")
	}
	if rules.IsWin(board, Move{X: -1, Y: 3}) {
		t.Fatalf("expected out of bounds cell to never be a win")
	}
}

func TestOverlineStillWins(t *testing.T) {
	rules := testRules(15)
	board := NewBoard(15)
	for x := 4; x <= 9; x++ {
		board.Set(x, 7, CellWhite)
	}
	if !rules.IsWin(board, Move{X: 6, Y: 7}) {
		t.Fatalf("expected six in a row to win")
	}
}

func TestIsLegal(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := DefaultGameState(settings)
	if ok, _ := rules.IsLegalDefault(state, Move{X: 7, Y: 7}); !ok {
		t.Fatalf("expected move on empty cell to be legal")
	}
	state.Board.Set(7, 7, CellBlack)
	if ok, reason := rules.IsLegalDefault(state, Move{X: 7, Y: 7}); ok || reason != "occupied" {
		t.Fatalf("expected occupied cell to be illegal, got ok=%t reason=%q", ok, reason)
	}
	if ok, reason := rules.IsLegalDefault(state, Move{X: 15, Y: 0}); ok || reason != "out of bounds" {
		t.Fatalf("expected out of bounds move to be illegal, got ok=%t reason=%q", ok, reason)
	}
}

func TestIsDraw(t *testing.T) {
	rules := testRules(5)
	board := NewBoard(5)
	if rules.IsDraw(board) {
		t.Fatalf("expected board with empty cells to not be a draw")
	}
	cell := CellBlack
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			board.Set(x, y, cell)
			if cell == CellBlack {
				cell = CellWhite
			} else {
				cell = CellBlack
			}
		}
	}
	if !rules.IsDraw(board) {
		t.Fatalf("expected full board to be a draw")
	}
}

func TestFindAlignmentLine(t *testing.T) {
	rules := testRules(15)
	board := NewBoard(15)
	for i := 0; i < 5; i++ {
		board.Set(3+i, 3+i, CellBlack)
	}
	line, ok := rules.FindAlignmentLine(board, Move{X: 5, Y: 5})
	if !ok {
		t.Fatalf("expected alignment line to be found")
	}
	if len(line) != 5 {
		t.Fatalf("expected line of 5 stones, got %d", len(line))
	}
	if !line[0].Equals(Move{X: 3, Y: 3}) || !line[4].Equals(Move{X: 7, Y: 7}) {
		t.Fatalf("expected line to span (3,3)..(7,7), got %v", line)
	}

	if _, ok := rules.FindAlignmentLine(board, Move{X: 0, Y: 0}); ok {
		t.Fatalf("expected no line through an empty cell")
	}
}
