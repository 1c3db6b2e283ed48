package main

import "fmt"

var lineDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

func (r Rules) IsLegal(state GameState, move Move, player PlayerColor) (bool, string) {
	if !move.IsValid(r.settings.BoardSize) {
		return false, "out of bounds"
	}
	if !state.Board.IsEmpty(move.X, move.Y) {
		return false, "occupied"
	}
	return true, ""
}

func (r Rules) IsLegalDefault(state GameState, move Move) (bool, string) {
	return r.IsLegal(state, move, state.ToMove)
}

// IsWin reports whether the stone at lastMove completes an alignment.
// Only the four lines through lastMove are inspected, so callers must
// check after every move rather than scanning the whole board.
func (r Rules) IsWin(board Board, lastMove Move) bool {
	if !lastMove.IsValid(r.settings.BoardSize) {
		return false
	}
	if board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return false
	}
	for i := 0; i < 4; i++ {
		dx := lineDirections[i][0]
		dy := lineDirections[i][1]
		count := 1
		count += r.countDirection(board, lastMove, dx, dy, r.settings.WinLength-count)
		if count >= r.settings.WinLength {
			return true
		}
		count += r.countDirection(board, lastMove, -dx, -dy, r.settings.WinLength-count)
		if count >= r.settings.WinLength {
			return true
		}
	}
	return false
}

func (r Rules) IsDraw(board Board) bool {
	return board.CountEmpty() == 0
}

// FindAlignmentLine returns the full winning line through lastMove, for
// highlighting on the client. Second return is false when no line exists.
func (r Rules) FindAlignmentLine(board Board, lastMove Move) ([]Move, bool) {
	line := []Move{}
	if !lastMove.IsValid(r.settings.BoardSize) {
		return line, false
	}
	if board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return line, false
	}
	for i := 0; i < 4; i++ {
		dx := lineDirections[i][0]
		dy := lineDirections[i][1]
		line = r.collectLine(board, lastMove, dx, dy)
		if len(line) >= r.settings.WinLength {
			return line, true
		}
	}
	return []Move{}, false
}

func (r Rules) WinLength() int {
	return r.settings.WinLength
}

func (r Rules) countDirection(board Board, start Move, dx, dy, limit int) int {
	if limit <= 0 {
		return 0
	}
	target := board.At(start.X, start.Y)
	x := start.X + dx
	y := start.Y + dy
	count := 0
	for count < limit && board.InBounds(x, y) && board.At(x, y) == target {
		count++
		x += dx
		y += dy
	}
	return count
}

func (r Rules) collectLine(board Board, start Move, dx, dy int) []Move {
	line := []Move{}
	target := board.At(start.X, start.Y)
	x := start.X
	y := start.Y
	for board.InBounds(x-dx, y-dy) && board.At(x-dx, y-dy) == target {
		x -= dx
		y -= dy
	}
	for board.InBounds(x, y) && board.At(x, y) == target {
		line = append(line, Move{X: x, Y: y})
		x += dx
		y += dy
	}
	return line
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{win=%d}", r.settings.WinLength)
}
