package session

import (
	"io"
	"log"
	"os"
	"testing"

	"chessboard/board"
	"chessboard/bots"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func sq(file, rank int) board.Square {
	return board.Square{File: file, Rank: rank}
}

func TestClickSelectThenMove(t *testing.T) {
	s := New()
	if got := s.Click(sq(4, 6)); got.Result != Selected {
		t.Fatalf("first click = %v, want selected", got.Result)
	}
	if from, ok := s.Pending(); !ok || from != sq(4, 6) {
		t.Fatalf("Pending() = %v, %v", from, ok)
	}

	got := s.Click(sq(4, 4))
	if got.Result != Moved {
		t.Fatalf("second click = %v, want moved", got.Result)
	}
	if _, ok := s.Pending(); ok {
		t.Fatalf("selection survived a move")
	}
	if s.Board().SideToMove() != board.Black {
		t.Fatalf("turn did not pass")
	}
	if m, ok := s.LastMove(); !ok || m.To != sq(4, 4) {
		t.Fatalf("LastMove() = %v, %v", m, ok)
	}
}

func TestClickIgnoresEmptyAndOpponent(t *testing.T) {
	s := New()
	for _, target := range []board.Square{sq(4, 4), sq(4, 1)} {
		if got := s.Click(target); got.Result != Ignored {
			t.Errorf("Click(%v) = %v, want ignored", target, got.Result)
		}
		if _, ok := s.Pending(); ok {
			t.Errorf("Click(%v) left a selection", target)
		}
	}
}

func TestRejectedMoveDiscardsSelection(t *testing.T) {
	s := New()
	s.Click(sq(0, 7))
	got := s.Click(sq(0, 5))
	if got.Result != Rejected {
		t.Fatalf("blocked rook move = %v, want rejected", got.Result)
	}
	if _, ok := s.Pending(); ok {
		t.Fatalf("selection survived a rejection")
	}
	if s.Board().SideToMove() != board.White {
		t.Fatalf("rejected move passed the turn")
	}
	if _, ok := s.LastMove(); ok {
		t.Fatalf("rejected move recorded as last move")
	}
}

func TestProposeCapture(t *testing.T) {
	s := New()
	for _, m := range []board.Move{
		{From: sq(4, 6), To: sq(4, 4)},
		{From: sq(3, 1), To: sq(3, 3)},
	} {
		if got := s.Propose(m); got.Result != Moved {
			t.Fatalf("Propose(%v) = %v", m, got.Result)
		}
	}
	got := s.Propose(board.Move{From: sq(4, 4), To: sq(3, 3)})
	if got.Result != Moved || !got.Capture {
		t.Fatalf("capture = %+v", got)
	}
	if got.Captured != (board.Occupant{Kind: board.Pawn, Side: board.Black}) {
		t.Fatalf("captured %v", got.Captured)
	}
	if n := s.Board().PieceCount(); n != 31 {
		t.Fatalf("PieceCount() = %d, want 31", n)
	}
}

func TestBotSeat(t *testing.T) {
	s := New()
	s.Seat(board.Black, bots.NewNewbornBot())

	if _, ok := s.PlayBot(); ok {
		t.Fatalf("bot played on white's turn")
	}
	s.Propose(board.Move{From: sq(4, 6), To: sq(4, 4)})

	if !s.BotToMove() {
		t.Fatalf("BotToMove() = false on black's turn")
	}
	if got := s.Click(sq(0, 1)); got.Result != Ignored {
		t.Fatalf("human click on the bot's turn = %v", got.Result)
	}
	got, ok := s.PlayBot()
	if !ok || got.Result != Moved {
		t.Fatalf("PlayBot() = %+v, %v", got, ok)
	}
	if s.Board().SideToMove() != board.White {
		t.Fatalf("turn did not return to white")
	}

	s.Seat(board.Black, nil)
	s.Propose(board.Move{From: sq(3, 6), To: sq(3, 4)})
	if s.BotToMove() {
		t.Fatalf("unseated bot still to move")
	}
}
