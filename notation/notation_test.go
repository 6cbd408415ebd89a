package notation

import (
	"errors"
	"testing"

	"chessboard/board"

	"github.com/notnil/chess"
)

func TestSquareNames(t *testing.T) {
	tests := []struct {
		sq   board.Square
		name string
	}{
		{board.Square{File: 0, Rank: 7}, "a1"},
		{board.Square{File: 7, Rank: 0}, "h8"},
		{board.Square{File: 4, Rank: 6}, "e2"},
		{board.Square{File: 3, Rank: 0}, "d8"},
	}
	for _, tt := range tests {
		if got := SquareName(tt.sq); got != tt.name {
			t.Errorf("SquareName(%v) = %q, want %q", tt.sq, got, tt.name)
		}
		got, err := ParseSquare(tt.name)
		if err != nil || got != tt.sq {
			t.Errorf("ParseSquare(%q) = %v, %v; want %v", tt.name, got, err, tt.sq)
		}
	}
}

func TestSquareMappingCoversBoard(t *testing.T) {
	for _, sq := range board.Squares() {
		if back := FromSquare(ToSquare(sq)); back != sq {
			t.Fatalf("FromSquare(ToSquare(%v)) = %v", sq, back)
		}
	}
}

func TestParseSquareErrors(t *testing.T) {
	for _, s := range []string{"", "i1", "a9", "a0", "e22"} {
		if _, err := ParseSquare(s); !errors.Is(err, ErrBadSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrBadSquare", s, err)
		}
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove(" E2-e4 ")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	want := board.Move{From: board.Square{File: 4, Rank: 6}, To: board.Square{File: 4, Rank: 4}}
	if m != want {
		t.Fatalf("ParseMove = %v, want %v", m, want)
	}
	if got := MoveText(m); got != "e2e4" {
		t.Fatalf("MoveText = %q, want e2e4", got)
	}

	for _, s := range []string{"e2", "e2e9", "zz11", "e2e4e5"} {
		if _, err := ParseMove(s); !errors.Is(err, ErrBadMove) {
			t.Errorf("ParseMove(%q) error = %v, want ErrBadMove", s, err)
		}
	}
}

func TestFENStartingPosition(t *testing.T) {
	const want = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
	if got := FEN(board.New()); got != want {
		t.Fatalf("FEN(New()) = %q, want %q", got, want)
	}
}

func TestFENAfterMove(t *testing.T) {
	b := board.New()
	b.ApplyMove(board.Square{File: 4, Rank: 6}, board.Square{File: 4, Rank: 4})
	const want = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"
	if got := FEN(b); got != want {
		t.Fatalf("FEN = %q, want %q", got, want)
	}
	if _, err := chess.FEN(want); err != nil {
		t.Fatalf("chess.FEN rejected %q: %v", want, err)
	}
}

func TestGlyph(t *testing.T) {
	if got := Glyph(board.Occupant{Kind: board.King, Side: board.White}); got != "♔" {
		t.Errorf("white king glyph = %q", got)
	}
	if got := Glyph(board.Occupant{Kind: board.Pawn, Side: board.Black}); got != "♟" {
		t.Errorf("black pawn glyph = %q", got)
	}
}

// The opening move set agrees with a full rules implementation, since no
// opening move involves check, castling or en passant.
func TestOpeningMovesMatchChessLibrary(t *testing.T) {
	game := chess.NewGame()
	want := make(map[string]bool)
	for _, m := range game.ValidMoves() {
		want[m.S1().String()+m.S2().String()] = true
	}

	got := make(map[string]bool)
	for _, m := range board.LegalMoves(board.New()) {
		got[MoveText(m)] = true
	}
	if len(got) != len(want) {
		t.Fatalf("got %d moves, chess library has %d", len(got), len(want))
	}
	for m := range want {
		if !got[m] {
			t.Errorf("missing move %s", m)
		}
	}
}
