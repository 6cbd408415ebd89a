package bots

import "chessboard/board"

// NewbornBot plays the first legal move it finds.
type NewbornBot struct{}

func NewNewbornBot() *NewbornBot {
	return &NewbornBot{}
}

func (b *NewbornBot) BestMove(pos *board.Board) (board.Move, bool) {
	moves := board.LegalMoves(pos)
	if len(moves) > 0 {
		return moves[0], true
	}
	return board.Move{}, false
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}
