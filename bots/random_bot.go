package bots

import (
	"math/rand"

	"chessboard/board"
)

type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(seed int64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) BestMove(pos *board.Board) (board.Move, bool) {
	moves := board.LegalMoves(pos)
	if len(moves) > 0 {
		return moves[b.rng.Intn(len(moves))], true
	}
	return board.Move{}, false
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
