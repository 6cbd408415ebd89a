package board

import "errors"

// ErrIllegalMove is returned by TryMove when the move is rejected.
var ErrIllegalMove = errors.New("illegal move")

// Move is a proposed relocation from one square to another.
type Move struct {
	From Square
	To   Square
}

// IsLegal reports whether the side to move may move the piece on from to to.
// It never mutates b.
func IsLegal(b *Board, from, to Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	piece, ok := b.OccupantAt(from)
	if !ok || piece.Side != b.SideToMove() {
		return false
	}
	target, capture := b.OccupantAt(to)
	if capture && target.Side == piece.Side {
		return false
	}

	dx := to.File - from.File
	dy := to.Rank - from.Rank
	absDx, absDy := abs(dx), abs(dy)
	pathClear := IsPathClear(b, from, to)

	switch piece.Kind {
	case Pawn:
		dir, startRank := pawnDirection(piece.Side)
		if sign(dy) != dir {
			return false
		}
		if capture {
			return absDx == 1 && absDy == 1
		}
		maxStep := 1
		if from.Rank == startRank {
			maxStep = 2
		}
		return absDx == 0 && absDy <= maxStep && pathClear
	case Knight:
		return (absDx == 2 && absDy == 1) || (absDx == 1 && absDy == 2)
	case Bishop:
		return pathClear && absDx == absDy
	case Rook:
		return pathClear && (absDx == 0 || absDy == 0)
	case Queen:
		return pathClear && (absDx == absDy || absDx == 0 || absDy == 0)
	case King:
		return absDx <= 1 && absDy <= 1
	}
	return false
}

// pawnDirection returns the rank delta of a forward step and the rank the
// side's pawns start on.
func pawnDirection(s Side) (dir, startRank int) {
	if s == White {
		return -1, 6
	}
	return 1, 1
}

// IsPathClear reports whether every square strictly between from and to,
// stepping one unit along each axis, is empty. The walk stops at the board
// edge.
func IsPathClear(b *Board, from, to Square) bool {
	stepX := sign(to.File - from.File)
	stepY := sign(to.Rank - from.Rank)
	if stepX == 0 && stepY == 0 {
		return true
	}
	sq := Square{File: from.File + stepX, Rank: from.Rank + stepY}
	for sq != to && sq.Valid() {
		if _, ok := b.OccupantAt(sq); ok {
			return false
		}
		sq.File += stepX
		sq.Rank += stepY
	}
	return true
}

// Destinations lists every square the piece on from may legally move to.
func Destinations(b *Board, from Square) []Square {
	var out []Square
	for _, to := range Squares() {
		if IsLegal(b, from, to) {
			out = append(out, to)
		}
	}
	return out
}

// LegalMoves enumerates every legal move for the side to move.
func LegalMoves(b *Board) []Move {
	var moves []Move
	for _, from := range Squares() {
		occ, ok := b.OccupantAt(from)
		if !ok || occ.Side != b.SideToMove() {
			continue
		}
		for _, to := range Destinations(b, from) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// TryMove applies the move if it is legal. A rejected move leaves the board
// untouched and returns ErrIllegalMove.
func TryMove(b *Board, from, to Square) (captured Occupant, didCapture bool, err error) {
	if !IsLegal(b, from, to) {
		return Occupant{}, false, ErrIllegalMove
	}
	captured, didCapture = b.ApplyMove(from, to)
	return captured, didCapture, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
