// Package notation converts board squares, moves and positions to and from
// the text forms used by chess tooling: algebraic squares ("e2"), coordinate
// moves ("e2e4") and FEN.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"chessboard/board"

	"github.com/notnil/chess"
)

var (
	ErrBadSquare = errors.New("bad square")
	ErrBadMove   = errors.New("bad move")
)

var kinds = map[board.Kind]chess.PieceType{
	board.King:   chess.King,
	board.Queen:  chess.Queen,
	board.Rook:   chess.Rook,
	board.Bishop: chess.Bishop,
	board.Knight: chess.Knight,
	board.Pawn:   chess.Pawn,
}

// ToSquare maps a board square to its chess.Square. Board rank 0 is the
// eighth rank.
func ToSquare(sq board.Square) chess.Square {
	return chess.Square(sq.File + (board.Size-1-sq.Rank)*8)
}

func FromSquare(sq chess.Square) board.Square {
	return board.Square{File: int(sq.File()), Rank: board.Size - 1 - int(sq.Rank())}
}

// SquareName returns the algebraic name of sq, e.g. "e2".
func SquareName(sq board.Square) string {
	return ToSquare(sq).String()
}

// ParseSquare reads an algebraic square name.
func ParseSquare(s string) (board.Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := 0; i < board.Size*board.Size; i++ {
		if chess.Square(i).String() == s {
			return FromSquare(chess.Square(i)), nil
		}
	}
	return board.Square{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
}

// MoveText renders m in coordinate notation, e.g. "e2e4".
func MoveText(m board.Move) string {
	return SquareName(m.From) + SquareName(m.To)
}

// ParseMove reads a coordinate move such as "e2e4" or "e2-e4".
func ParseMove(s string) (board.Move, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	if len(s) != 4 {
		return board.Move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %v", ErrBadMove, err)
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %v", ErrBadMove, err)
	}
	return board.Move{From: from, To: to}, nil
}

// Piece returns the chess.Piece matching occ.
func Piece(occ board.Occupant) chess.Piece {
	c := chess.White
	if occ.Side == board.Black {
		c = chess.Black
	}
	return chess.NewPiece(kinds[occ.Kind], c)
}

// Glyph returns the unicode chess symbol for occ.
func Glyph(occ board.Occupant) string {
	return Piece(occ).String()
}

// FEN describes b in Forsyth-Edwards Notation. Castling and en passant are
// not tracked, so those fields are always "-".
func FEN(b *board.Board) string {
	m := make(map[chess.Square]chess.Piece)
	for _, sq := range board.Squares() {
		if occ, ok := b.OccupantAt(sq); ok {
			m[ToSquare(sq)] = Piece(occ)
		}
	}
	turn := "w"
	if b.SideToMove() == board.Black {
		turn = "b"
	}
	return fmt.Sprintf("%s %s - - 0 1", chess.NewBoard(m).String(), turn)
}
