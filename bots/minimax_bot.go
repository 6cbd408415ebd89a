package bots

import (
	"fmt"
	"math"
	"time"

	"chessboard/board"
)

// MinimaxBot searches a fixed number of plies with alpha-beta pruning. A zero
// TimeLimit means no limit.
type MinimaxBot struct {
	Depth     int
	TimeLimit time.Duration
	Evaluator PositionEvaluator
	startTime time.Time
}

// NewMinimaxBot searches at least one ply.
func NewMinimaxBot(depth int, timeLimit time.Duration) *MinimaxBot {
	if depth < 1 {
		depth = 1
	}
	return &MinimaxBot{
		Depth:     depth,
		TimeLimit: timeLimit,
		Evaluator: DefaultEvaluator{},
	}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

func (b *MinimaxBot) BestMove(pos *board.Board) (board.Move, bool) {
	if pos == nil || len(board.LegalMoves(pos)) == 0 {
		return board.Move{}, false
	}

	b.startTime = time.Now()
	maximizing := pos.SideToMove() == board.White
	result := b.minimax(pos.Clone(), b.Depth, -math.MaxFloat64, math.MaxFloat64, maximizing)
	return result.move, result.found
}

type scoredMove struct {
	move  board.Move
	found bool
	score float64
}

func (b *MinimaxBot) outOfTime() bool {
	return b.TimeLimit > 0 && time.Since(b.startTime) > b.TimeLimit
}

func (b *MinimaxBot) minimax(pos *board.Board, depth int, alpha, beta float64, maximizing bool) scoredMove {
	if depth == 0 || b.outOfTime() || !hasBothKings(pos) {
		return scoredMove{score: b.Evaluator.Evaluate(pos)}
	}

	validMoves := board.LegalMoves(pos)
	if len(validMoves) == 0 {
		return scoredMove{score: b.Evaluator.Evaluate(pos)}
	}

	var best scoredMove
	if maximizing {
		best.score = -math.MaxFloat64
		for _, move := range validMoves {
			next := pos.Clone()
			next.ApplyMove(move.From, move.To)
			current := b.minimax(next, depth-1, alpha, beta, false)
			if !best.found || current.score > best.score {
				best = scoredMove{move: move, found: true, score: current.score}
			}
			alpha = math.Max(alpha, best.score)
			if beta <= alpha {
				break
			}
		}
	} else {
		best.score = math.MaxFloat64
		for _, move := range validMoves {
			next := pos.Clone()
			next.ApplyMove(move.From, move.To)
			current := b.minimax(next, depth-1, alpha, beta, true)
			if !best.found || current.score < best.score {
				best = scoredMove{move: move, found: true, score: current.score}
			}
			beta = math.Min(beta, best.score)
			if beta <= alpha {
				break
			}
		}
	}

	return best
}

func hasBothKings(pos *board.Board) bool {
	var white, black bool
	for _, sq := range board.Squares() {
		occ, ok := pos.OccupantAt(sq)
		if !ok || occ.Kind != board.King {
			continue
		}
		if occ.Side == board.White {
			white = true
		} else {
			black = true
		}
	}
	return white && black
}
