package main

import (
	"testing"
	"time"
)

func humanVsHumanSettings(boardSize int) GameSettings {
	settings := DefaultGameSettings()
	settings.BoardSize = boardSize
	settings.BlackType = PlayerHuman
	settings.WhiteType = PlayerHuman
	return settings
}

func TestTryApplyMoveRejectsBeforeStart(t *testing.T) {
	game := NewGame(humanVsHumanSettings(15))
	if applied, reason := game.TryApplyMove(Move{X: 7, Y: 7}); applied || reason != "game not running" {
		t.Fatalf("expected move before start to be rejected, got applied=%t reason=%q", applied, reason)
	}
}

func TestTryApplyMoveAlternatesPlayers(t *testing.T) {
	game := NewGame(humanVsHumanSettings(15))
	game.Start()
	if applied, _ := game.TryApplyMove(Move{X: 7, Y: 7}); !applied {
		t.Fatalf("expected first move to apply")
	}
	state := game.State()
	if state.ToMove != PlayerWhite {
		t.Fatalf("expected white to move after black, got %s", state.ToMove)
	}
	if state.Board.At(7, 7) != CellBlack {
		t.Fatalf("expected black stone at (7,7)")
	}
	if applied, reason := game.TryApplyMove(Move{X: 7, Y: 7}); applied || reason == "" {
		t.Fatalf("expected occupied cell to be rejected")
	}
}

func TestWinEndsGame(t *testing.T) {
	game := NewGame(humanVsHumanSettings(15))
	game.Start()
	for i := 0; i < 4; i++ {
		if applied, reason := game.TryApplyMove(Move{X: 5 + i, Y: 5}); !applied {
			t.Fatalf("black move %d rejected: %s", i, reason)
		}
		if applied, reason := game.TryApplyMove(Move{X: 5 + i, Y: 10}); !applied {
			t.Fatalf("white move %d rejected: %s", i, reason)
		}
	}
	if applied, reason := game.TryApplyMove(Move{X: 9, Y: 5}); !applied {
		t.Fatalf("winning move rejected: %s", reason)
	}
	state := game.State()
	if state.Status != StatusBlackWon {
		t.Fatalf("expected black to win, got status %d", state.Status)
	}
	if len(state.WinningLine) != 5 {
		t.Fatalf("expected winning line of 5 stones, got %d", len(state.WinningLine))
	}
	if applied, _ := game.TryApplyMove(Move{X: 0, Y: 0}); applied {
		t.Fatalf("expected no moves after the game ended")
	}
}

func TestHistoryRecordsMoves(t *testing.T) {
	game := NewGame(humanVsHumanSettings(15))
	game.Start()
	game.TryApplyMove(Move{X: 7, Y: 7})
	game.TryApplyMove(Move{X: 8, Y: 7})
	history := game.History()
	if history.Size() != 2 {
		t.Fatalf("expected 2 history entries, got %d", history.Size())
	}
	entries := history.All()
	if entries[0].Player != PlayerBlack || entries[1].Player != PlayerWhite {
		t.Fatalf("expected alternating players in history")
	}
	if entries[0].IsAi {
		t.Fatalf("expected human move to not be flagged as AI")
	}
}

func TestControllerTickAppliesPendingHumanMove(t *testing.T) {
	settings := humanVsHumanSettings(15)
	controller := NewGameController(settings)
	controller.StartGame(settings)
	if !controller.SubmitHumanMove(Move{X: 7, Y: 7}) {
		t.Fatalf("expected pending move to be accepted")
	}
	if !controller.Tick() {
		t.Fatalf("expected tick to apply the pending move")
	}
	if controller.History().Size() != 1 {
		t.Fatalf("expected 1 move in history, got %d", controller.History().Size())
	}
}

func TestControllerAiVsAiMakesMove(t *testing.T) {
	prevCfg := GetConfig()
	cfg := prevCfg
	cfg.AiDepth = 1
	configStore.Update(cfg)
	defer configStore.Update(prevCfg)

	settings := DefaultGameSettings()
	settings.BoardSize = 9
	settings.BlackType = PlayerAI
	settings.WhiteType = PlayerAI
	controller := NewGameController(settings)
	controller.StartGame(settings)

	moved := false
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if controller.Tick() {
			moved = true
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !moved {
		t.Fatalf("expected AI to make a move")
	}
	entry, ok := controller.LatestHistoryEntry()
	if !ok || !entry.IsAi {
		t.Fatalf("expected an AI history entry")
	}
	if controller.State().Board.At(4, 4) != CellBlack {
		t.Fatalf("expected AI opening at center of 9x9 board")
	}
}

func TestUpdateSettingsKeepsBoard(t *testing.T) {
	settings := humanVsHumanSettings(15)
	controller := NewGameController(settings)
	controller.StartGame(settings)
	controller.ApplyHumanMove(Move{X: 7, Y: 7})
	controller.ApplyHumanMove(Move{X: 8, Y: 7})

	updated := controller.Settings()
	updated.BlackType = PlayerAI
	updated.WhiteType = PlayerAI
	controller.UpdateSettings(updated, false)

	state := controller.State()
	if state.Board.At(7, 7) != CellBlack || state.Board.At(8, 7) != CellWhite {
		t.Fatalf("expected stones to survive a player type switch")
	}
	if controller.History().Size() != 2 {
		t.Fatalf("expected history to survive a player type switch")
	}
}

func TestStartGameRotatesGameID(t *testing.T) {
	settings := humanVsHumanSettings(15)
	controller := NewGameController(settings)
	first := controller.GameID()
	second := controller.StartGame(settings)
	if first == "" || second == "" || first == second {
		t.Fatalf("expected a fresh game id per game, got %q then %q", first, second)
	}
}
