package main

import "sync"

// Precomputed cell-index lines per board size. Rows, columns and both
// diagonal families, each cell covered exactly once per orientation.
type lineCache struct {
	mu    sync.Mutex
	lines map[int][][]int
}

var cachedLines = &lineCache{lines: make(map[int][][]int)}

func getLinesForSize(size int) [][]int {
	cachedLines.mu.Lock()
	defer cachedLines.mu.Unlock()
	if lines, ok := cachedLines.lines[size]; ok {
		return lines
	}
	lines := buildLines(size)
	cachedLines.lines[size] = lines
	return lines
}

func buildLines(size int) [][]int {
	lines := [][]int{}
	if size <= 0 {
		return lines
	}
	// Rows.
	for y := 0; y < size; y++ {
		line := make([]int, 0, size)
		for x := 0; x < size; x++ {
			line = append(line, y*size+x)
		}
		lines = append(lines, line)
	}
	// Cols.
	for x := 0; x < size; x++ {
		line := make([]int, 0, size)
		for y := 0; y < size; y++ {
			line = append(line, y*size+x)
		}
		lines = append(lines, line)
	}
	// Diagonals (\)
	for x := 0; x < size; x++ {
		lines = append(lines, collectDiag(size, x, 0, 1, 1))
	}
	for y := 1; y < size; y++ {
		lines = append(lines, collectDiag(size, 0, y, 1, 1))
	}
	// Anti-diagonals (/)
	for x := 0; x < size; x++ {
		lines = append(lines, collectDiag(size, x, 0, -1, 1))
	}
	for y := 1; y < size; y++ {
		lines = append(lines, collectDiag(size, size-1, y, -1, 1))
	}
	return lines
}

func collectDiag(size, startX, startY, dx, dy int) []int {
	line := []int{}
	x := startX
	y := startY
	for x >= 0 && y >= 0 && x < size && y < size {
		line = append(line, y*size+x)
		x += dx
		y += dy
	}
	return line
}

// EvaluateBoard scores the position from player's point of view by
// sliding a winLength window along every line and netting the window
// scores of the two sides. A window holding stones of both colors can
// no longer be completed by either and counts for nothing. Windows are
// keyed by stone count alone; whether the ends are open is ignored, so
// a blocked four and an open four weigh the same here and the search
// is what tells them apart.
func EvaluateBoard(board Board, player PlayerColor, winLength int, config Config) float64 {
	weights := resolveHeuristics(config)
	lines := getLinesForSize(board.Size())
	myCell := CellFromPlayer(player)
	oppCell := CellFromPlayer(otherPlayer(player))

	score := 0.0
	for _, line := range lines {
		if len(line) < winLength {
			continue
		}
		mine := 0
		theirs := 0
		for i := 0; i < winLength; i++ {
			switch board.cells[line[i]] {
			case myCell:
				mine++
			case oppCell:
				theirs++
			}
		}
		score += windowScore(mine, theirs, winLength, weights)
		for i := winLength; i < len(line); i++ {
			switch board.cells[line[i-winLength]] {
			case myCell:
				mine--
			case oppCell:
				theirs--
			}
			switch board.cells[line[i]] {
			case myCell:
				mine++
			case oppCell:
				theirs++
			}
			score += windowScore(mine, theirs, winLength, weights)
		}
	}
	return score
}

func windowScore(mine, theirs, winLength int, weights HeuristicConfig) float64 {
	if mine > 0 && theirs > 0 {
		return 0
	}
	return windowWeight(mine, winLength, weights) - windowWeight(theirs, winLength, weights)
}

func windowWeight(count, winLength int, weights HeuristicConfig) float64 {
	switch count {
	case winLength:
		return weights.Five
	case winLength - 1:
		return weights.Four
	case winLength - 2:
		return weights.Three
	case winLength - 3:
		return weights.Two
	default:
		return 0
	}
}

func resolveHeuristics(config Config) HeuristicConfig {
	if config.Heuristics == (HeuristicConfig{}) {
		return DefaultConfig().Heuristics
	}
	return config.Heuristics
}
