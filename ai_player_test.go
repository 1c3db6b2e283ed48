package main

import (
	"testing"
	"time"
)

func TestChooseMoveReturnsLegalMoveWithDepth(t *testing.T) {
	prevCfg := GetConfig()
	cfg := prevCfg
	cfg.AiDepth = 1
	configStore.Update(cfg)
	defer configStore.Update(prevCfg)

	settings := DefaultGameSettings()
	settings.BoardSize = 9
	state := DefaultGameState(settings)
	state.Status = StatusRunning
	rules := NewRules(settings)

	player := NewAIPlayer()
	move := player.ChooseMove(state, rules)
	if !state.Board.IsEmpty(move.X, move.Y) {
		t.Fatalf("expected a legal move, got (%d,%d)", move.X, move.Y)
	}
	if move.Depth != 1 {
		t.Fatalf("expected search depth tagged on move, got %d", move.Depth)
	}
}

func TestStartThinkingDeliversMoveOnce(t *testing.T) {
	prevCfg := GetConfig()
	cfg := prevCfg
	cfg.AiDepth = 1
	configStore.Update(cfg)
	defer configStore.Update(prevCfg)

	settings := DefaultGameSettings()
	settings.BoardSize = 9
	state := DefaultGameState(settings)
	state.Status = StatusRunning
	rules := NewRules(settings)

	player := NewAIPlayer()
	player.StartThinking(state, rules)

	deadline := time.Now().Add(5 * time.Second)
	for !player.HasMoveReady() {
		if time.Now().After(deadline) {
			t.Fatalf("worker never produced a move")
		}
		time.Sleep(5 * time.Millisecond)
	}
	move := player.TakeMove()
	if !state.Board.IsEmpty(move.X, move.Y) {
		t.Fatalf("expected a legal move, got (%d,%d)", move.X, move.Y)
	}
	if player.HasMoveReady() {
		t.Fatalf("expected TakeMove to consume the pending move")
	}
}
