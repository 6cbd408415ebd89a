// bot.go
package bots

import "chessboard/board"

// ChessBot picks a move for the side to move on b.
type ChessBot interface {
	BestMove(b *board.Board) (board.Move, bool)
	Name() string
}

// PositionEvaluator scores a position from White's point of view.
type PositionEvaluator interface {
	Evaluate(b *board.Board) float64
}

// ByName returns the bot registered under name.
func ByName(name string, seed int64) (ChessBot, bool) {
	switch name {
	case "newborn":
		return NewNewbornBot(), true
	case "random":
		return NewRandomBot(seed), true
	case "minimax":
		return NewMinimaxBot(2, 0), true
	}
	return nil, false
}
