package bots

import "chessboard/board"

type DefaultEvaluator struct{}

const (
	MaterialWeight      = 100
	MobilityWeight      = 1
	PawnStructWeight    = 30
	CenterWeight        = 20
	PieceActivityWeight = 15
)

// Losing the king outweighs any other score.
var pieceValues = map[board.Kind]float64{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  9,
	board.King:   1000,
}

func (e DefaultEvaluator) Evaluate(b *board.Board) float64 {
	return e.materialScore(b)*MaterialWeight +
		e.mobilityScore(b)*MobilityWeight +
		e.pawnStructure(b)*PawnStructWeight +
		e.centerControl(b)*CenterWeight +
		e.pieceActivity(b)*PieceActivityWeight
}

func (e DefaultEvaluator) pieceValue(k board.Kind) float64 {
	return pieceValues[k]
}

func (e DefaultEvaluator) materialScore(b *board.Board) float64 {
	var score float64
	for _, sq := range board.Squares() {
		occ, ok := b.OccupantAt(sq)
		if !ok {
			continue
		}
		if occ.Side == board.White {
			score += e.pieceValue(occ.Kind)
		} else {
			score -= e.pieceValue(occ.Kind)
		}
	}
	return score
}

// mobilityScore compares the moves of the side to move with the opponent's
// moves after the first legal reply.
func (e DefaultEvaluator) mobilityScore(b *board.Board) float64 {
	moves := board.LegalMoves(b)
	if len(moves) == 0 {
		return 0
	}
	currentMoves := len(moves)

	tmp := b.Clone()
	tmp.ApplyMove(moves[0].From, moves[0].To)
	opponentMoves := len(board.LegalMoves(tmp))

	if b.SideToMove() == board.White {
		return float64(currentMoves - opponentMoves)
	}
	return float64(opponentMoves - currentMoves)
}

// pawnStructure penalises doubled and isolated pawns.
func (e DefaultEvaluator) pawnStructure(b *board.Board) float64 {
	var whitePawns, blackPawns [board.Size]int
	for _, sq := range board.Squares() {
		occ, ok := b.OccupantAt(sq)
		if !ok || occ.Kind != board.Pawn {
			continue
		}
		if occ.Side == board.White {
			whitePawns[sq.File]++
		} else {
			blackPawns[sq.File]++
		}
	}
	return filePenalty(blackPawns) - filePenalty(whitePawns)
}

func filePenalty(pawns [board.Size]int) float64 {
	var penalty float64
	for file, count := range pawns {
		if count == 0 {
			continue
		}
		if count > 1 {
			penalty += 0.3 * float64(count-1)
		}
		prev := file == 0 || pawns[file-1] == 0
		next := file == board.Size-1 || pawns[file+1] == 0
		if prev && next {
			penalty += 0.5
		}
	}
	return penalty
}

// pieceActivity rewards pieces in the opponent's half and in the central
// 4x4 block.
func (e DefaultEvaluator) pieceActivity(b *board.Board) float64 {
	var score float64
	for _, sq := range board.Squares() {
		occ, ok := b.OccupantAt(sq)
		if !ok || occ.Kind == board.King {
			continue
		}
		var v float64
		if (occ.Side == board.White && sq.Rank <= 3) || (occ.Side == board.Black && sq.Rank >= 4) {
			v += 0.1
		}
		if sq.File >= 2 && sq.File <= 5 && sq.Rank >= 2 && sq.Rank <= 5 {
			v += 0.15
		}
		if occ.Side == board.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

var centerSquares = []board.Square{{File: 3, Rank: 3}, {File: 4, Rank: 3}, {File: 3, Rank: 4}, {File: 4, Rank: 4}}

func (e DefaultEvaluator) centerControl(b *board.Board) float64 {
	var score float64
	for _, sq := range centerSquares {
		occ, ok := b.OccupantAt(sq)
		if !ok {
			continue
		}
		if occ.Side == board.White {
			score += 0.5
		} else {
			score -= 0.5
		}
	}
	return score
}
