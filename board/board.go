// Package board holds the chess board state and the move legality rules.
package board

import "fmt"

// Size is the number of files and ranks on the board.
const Size = 8

type Side int

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

type Kind int

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (k Kind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Occupant is a piece standing on a square.
type Occupant struct {
	Kind Kind
	Side Side
}

func (o Occupant) String() string {
	return o.Side.String() + " " + o.Kind.String()
}

// Square addresses a cell by file and rank. Rank 0 is Black's back rank.
type Square struct {
	File int
	Rank int
}

func (sq Square) Valid() bool {
	return sq.File >= 0 && sq.File < Size && sq.Rank >= 0 && sq.Rank < Size
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d,%d)", sq.File, sq.Rank)
}

// Squares returns all 64 squares, file-major.
func Squares() []Square {
	out := make([]Square, 0, Size*Size)
	for f := 0; f < Size; f++ {
		for r := 0; r < Size; r++ {
			out = append(out, Square{File: f, Rank: r})
		}
	}
	return out
}

// cell is either empty or holds exactly one complete occupant.
type cell struct {
	occ Occupant
	ok  bool
}

// Board is the 8x8 grid plus the side to move. The zero value is an empty
// board with White to move; use New for the starting position.
type Board struct {
	cells  [Size][Size]cell
	toMove Side
}

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// New returns a board set up in the standard starting position.
func New() *Board {
	b := &Board{toMove: White}
	for f := 0; f < Size; f++ {
		b.cells[f][0] = cell{occ: Occupant{Kind: backRank[f], Side: Black}, ok: true}
		b.cells[f][1] = cell{occ: Occupant{Kind: Pawn, Side: Black}, ok: true}
		b.cells[f][6] = cell{occ: Occupant{Kind: Pawn, Side: White}, ok: true}
		b.cells[f][7] = cell{occ: Occupant{Kind: backRank[f], Side: White}, ok: true}
	}
	return b
}

// OccupantAt reports the occupant of sq. Out-of-range squares are empty.
func (b *Board) OccupantAt(sq Square) (Occupant, bool) {
	if !sq.Valid() {
		return Occupant{}, false
	}
	c := b.cells[sq.File][sq.Rank]
	return c.occ, c.ok
}

func (b *Board) SideToMove() Side {
	return b.toMove
}

// ApplyMove relocates the occupant of from to to, capturing whatever stood
// there, and passes the turn. It does not check legality; callers must have
// confirmed the move with IsLegal first.
func (b *Board) ApplyMove(from, to Square) (captured Occupant, ok bool) {
	src := b.cells[from.File][from.Rank]
	dst := b.cells[to.File][to.Rank]
	b.cells[to.File][to.Rank] = src
	b.cells[from.File][from.Rank] = cell{}
	b.toMove = b.toMove.Opponent()
	return dst.occ, dst.ok
}

// PieceCount returns the number of occupied squares.
func (b *Board) PieceCount() int {
	n := 0
	for f := 0; f < Size; f++ {
		for r := 0; r < Size; r++ {
			if b.cells[f][r].ok {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}
