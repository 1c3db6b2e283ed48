package main

type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// Board is a square grid of cells. Set is the only way to mutate it.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(boardSize int) Board {
	b := Board{}
	b.Reset(boardSize)
	return b
}

func (b *Board) Reset(boardSize int) {
	b.size = boardSize
	b.cells = make([]Cell, boardSize*boardSize)
}

func (b Board) At(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

// Set writes value at (x, y) and reports whether the write happened.
// Placing a stone fails out of bounds or on an occupied cell. Clearing
// with CellEmpty never fails in bounds, so search can always retract a
// move it just placed.
func (b *Board) Set(x, y int, value Cell) bool {
	if !b.InBounds(x, y) {
		return false
	}
	idx := b.index(x, y)
	if value != CellEmpty && b.cells[idx] != CellEmpty {
		return false
	}
	b.cells[idx] = value
	return true
}

func (b *Board) Remove(x, y int) {
	b.Set(x, y, CellEmpty)
}

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

func (b Board) IsEmpty(x, y int) bool {
	return b.InBounds(x, y) && b.At(x, y) == CellEmpty
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) CountStones() int {
	return len(b.cells) - b.CountEmpty()
}

func (b Board) Size() int {
	return b.size
}

func (b Board) Clone() Board {
	clone := Board{size: b.size}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func (b Board) index(x, y int) int {
	return y*b.size + x
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	default:
		return "Empty"
	}
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}
