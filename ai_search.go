package main

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const winScore = 1000000.0

const defaultMoveRadius = 2

type AISearchSettings struct {
	Depth     int
	BoardSize int
	Player    PlayerColor
	Config    Config
	Stats     *SearchStats
}

type SearchStats struct {
	Nodes          int64
	Cutoffs        int64
	CandidateCount int64
	RootCandidates int64
	Start          time.Time
}

type searchContext struct {
	rules    Rules
	settings AISearchSettings
	radius   int
}

func newSearchContext(rules Rules, settings AISearchSettings) searchContext {
	radius := settings.Config.AiMoveRadius
	if radius <= 0 {
		radius = defaultMoveRadius
	}
	return searchContext{rules: rules, settings: settings, radius: radius}
}

func chebDist(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dy > dx {
		return dy
	}
	return dx
}

// collectCandidateMoves returns the empty cells within radius of any
// stone, each cell once. Searching the whole board is pointless; moves
// far from every stone never improve a gomoku position at these depths.
// On an empty board the center is the only candidate.
func collectCandidateMoves(board Board, boardSize, radius int) []Move {
	if boardSize <= 0 || boardSize > board.Size() {
		boardSize = board.Size()
	}
	if board.CountStones() == 0 {
		center := boardSize / 2
		return []Move{{X: center, Y: center}}
	}
	seen := make([]bool, boardSize*boardSize)
	moves := []Move{}
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			if board.At(x, y) == CellEmpty {
				continue
			}
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					ny := y + dy
					if !board.InBounds(nx, ny) || board.At(nx, ny) != CellEmpty {
						continue
					}
					idx := ny*boardSize + nx
					if !seen[idx] {
						seen[idx] = true
						moves = append(moves, Move{X: nx, Y: ny})
					}
				}
			}
		}
	}
	return moves
}

// orderCandidates sorts moves by a one-ply look: place, evaluate from
// the searching player's point of view, retract. Best-first ordering is
// what makes the alpha-beta cutoffs bite.
func orderCandidates(board *Board, ctx searchContext, currentPlayer PlayerColor, maximizing bool, moves []Move) []Move {
	type scoredMove struct {
		score float64
		move  Move
	}
	cell := CellFromPlayer(currentPlayer)
	scored := make([]scoredMove, 0, len(moves))
	for _, move := range moves {
		if !board.Set(move.X, move.Y, cell) {
			continue
		}
		score := EvaluateBoard(*board, ctx.settings.Player, ctx.rules.WinLength(), ctx.settings.Config)
		board.Remove(move.X, move.Y)
		scored = append(scored, scoredMove{score: score, move: move})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if maximizing {
			return scored[i].score > scored[j].score
		}
		return scored[i].score < scored[j].score
	})
	ordered := make([]Move, 0, len(scored))
	for _, entry := range scored {
		ordered = append(ordered, entry.move)
	}
	return ordered
}

// minimax scores the position for ctx.settings.Player after lastMove
// was just played by the other side. The board is shared across the
// whole search; every move placed here is retracted before returning.
func minimax(board *Board, ctx searchContext, depth int, currentPlayer PlayerColor, alpha, beta float64, lastMove Move) float64 {
	if ctx.settings.Stats != nil {
		ctx.settings.Stats.Nodes++
	}
	if ctx.rules.IsWin(*board, lastMove) {
		// The winner is whoever played lastMove. Scaling by remaining
		// depth makes the search prefer the quickest win and the most
		// delayed loss.
		if otherPlayer(currentPlayer) == ctx.settings.Player {
			return winScore * float64(depth+1)
		}
		return -winScore * float64(depth+1)
	}
	if depth <= 0 {
		return EvaluateBoard(*board, ctx.settings.Player, ctx.rules.WinLength(), ctx.settings.Config)
	}
	candidates := collectCandidateMoves(*board, ctx.settings.BoardSize, ctx.radius)
	if len(candidates) == 0 {
		return EvaluateBoard(*board, ctx.settings.Player, ctx.rules.WinLength(), ctx.settings.Config)
	}
	if ctx.settings.Stats != nil {
		ctx.settings.Stats.CandidateCount += int64(len(candidates))
	}
	maximizing := currentPlayer == ctx.settings.Player
	ordered := orderCandidates(board, ctx, currentPlayer, maximizing, candidates)
	cell := CellFromPlayer(currentPlayer)

	if maximizing {
		best := math.Inf(-1)
		for _, move := range ordered {
			board.Set(move.X, move.Y, cell)
			score := minimax(board, ctx, depth-1, otherPlayer(currentPlayer), alpha, beta, move)
			board.Remove(move.X, move.Y)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				if ctx.settings.Stats != nil {
					ctx.settings.Stats.Cutoffs++
				}
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, move := range ordered {
		board.Set(move.X, move.Y, cell)
		score := minimax(board, ctx, depth-1, otherPlayer(currentPlayer), alpha, beta, move)
		board.Remove(move.X, move.Y)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			if ctx.settings.Stats != nil {
				ctx.settings.Stats.Cutoffs++
			}
			break
		}
	}
	return best
}

// FindBestMove runs the full search for settings.Player and always
// returns a playable move while any empty cell remains. Ties between
// equal scores go to the move examined first.
func FindBestMove(board *Board, rules Rules, settings AISearchSettings) Move {
	ctx := newSearchContext(rules, settings)
	candidates := collectCandidateMoves(*board, settings.BoardSize, ctx.radius)
	if len(candidates) == 0 {
		return firstEmptyCell(*board, settings.BoardSize)
	}
	if settings.Stats != nil {
		settings.Stats.RootCandidates = int64(len(candidates))
	}
	cell := CellFromPlayer(settings.Player)

	// A move that wins on the spot needs no search.
	for _, move := range candidates {
		if !board.Set(move.X, move.Y, cell) {
			continue
		}
		won := rules.IsWin(*board, move)
		board.Remove(move.X, move.Y)
		if won {
			return move
		}
	}

	ordered := orderCandidates(board, ctx, settings.Player, true, candidates)
	if len(ordered) == 0 {
		return candidates[0]
	}
	if settings.Depth <= 0 {
		return ordered[0]
	}

	bestScore := math.Inf(-1)
	bestMove := ordered[0]
	for _, move := range ordered {
		board.Set(move.X, move.Y, cell)
		score := minimax(board, ctx, settings.Depth-1, otherPlayer(settings.Player), math.Inf(-1), math.Inf(1), move)
		board.Remove(move.X, move.Y)
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}
	return bestMove
}

func firstEmptyCell(board Board, boardSize int) Move {
	if boardSize <= 0 || boardSize > board.Size() {
		boardSize = board.Size()
	}
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			if board.At(x, y) == CellEmpty {
				return Move{X: x, Y: y}
			}
		}
	}
	return Move{X: -1, Y: -1}
}

func logSearchStats(tag string, stats *SearchStats, settings AISearchSettings) {
	if stats == nil {
		return
	}
	elapsed := time.Since(stats.Start)
	nps := 0.0
	if elapsed > 0 {
		nps = float64(stats.Nodes) / elapsed.Seconds()
	}
	avgBranch := 0.0
	if stats.Nodes > 0 {
		avgBranch = float64(stats.CandidateCount) / float64(stats.Nodes)
	}
	fmt.Printf("[ai:%s] t=%dms depth=%d nodes=%d nps=%.0f cutoffs=%d root_cands=%d avg_branch=%.2f\n",
		tag,
		elapsed.Milliseconds(),
		settings.Depth,
		stats.Nodes,
		nps,
		stats.Cutoffs,
		stats.RootCandidates,
		avgBranch,
	)
}
