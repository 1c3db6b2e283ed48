package main

type IPlayer interface {
	IsHuman() bool
	ChooseMove(state GameState, rules Rules) Move
}

// HumanPlayer is a mailbox for moves arriving over the HTTP API. The
// game tick consumes the pending move on the player's turn.
type HumanPlayer struct {
	pending     bool
	pendingMove Move
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

func (h *HumanPlayer) ChooseMove(GameState, Rules) Move {
	return Move{}
}

func (h *HumanPlayer) SetPendingMove(move Move) {
	h.pendingMove = move
	h.pending = true
}

func (h *HumanPlayer) HasPendingMove() bool {
	return h.pending
}

func (h *HumanPlayer) TakePendingMove() Move {
	h.pending = false
	return h.pendingMove
}
