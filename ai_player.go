package main

import (
	"sync"
	"sync/atomic"
	"time"
)

// AIPlayer computes moves on a background goroutine so the game tick
// never blocks on the search. One search runs at a time; the result is
// parked until the controller collects it with TakeMove.
type AIPlayer struct {
	moveMutex  sync.Mutex
	workerDone chan struct{}
	thinking   atomic.Bool
	moveReady  atomic.Bool
	readyMove  Move
}

func NewAIPlayer() *AIPlayer {
	return &AIPlayer{}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

// ChooseMove runs the search synchronously on the caller's goroutine.
func (a *AIPlayer) ChooseMove(state GameState, rules Rules) Move {
	config := GetConfig()
	stats := &SearchStats{Start: time.Now()}
	settings := AISearchSettings{
		Depth:     config.AiDepth,
		BoardSize: state.Board.Size(),
		Player:    state.ToMove,
		Config:    config,
		Stats:     stats,
	}
	board := state.Board.Clone()
	move := FindBestMove(&board, rules, settings)
	if config.AiLogSearchStats {
		logSearchStats("choose", stats, settings)
	}
	move.Depth = settings.Depth
	return move
}

func (a *AIPlayer) StartThinking(state GameState, rules Rules) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.moveReady.Store(false)

	stateCopy := state.Clone()
	rulesCopy := rules
	done := make(chan struct{})
	a.workerDone = done
	go func() {
		defer close(done)
		move := a.ChooseMove(stateCopy, rulesCopy)
		a.moveMutex.Lock()
		a.readyMove = move
		a.moveMutex.Unlock()
		a.moveReady.Store(true)
		a.thinking.Store(false)
	}()
}

func (a *AIPlayer) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIPlayer) HasMoveReady() bool {
	return a.moveReady.Load()
}

func (a *AIPlayer) TakeMove() Move {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	a.moveReady.Store(false)
	return a.readyMove
}
