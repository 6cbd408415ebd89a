// Package session drives a game between two players sharing one board: it
// owns the board, tracks the pending origin of the two-click selection and
// plays the seats that are assigned to a bot.
package session

import (
	"log"

	"chessboard/board"
	"chessboard/bots"
	"chessboard/notation"
)

type Result int

const (
	// Ignored means the click did nothing: an empty square or an opponent
	// piece was clicked with no origin pending.
	Ignored Result = iota
	Selected
	Moved
	Rejected
)

func (r Result) String() string {
	switch r {
	case Ignored:
		return "ignored"
	case Selected:
		return "selected"
	case Moved:
		return "moved"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Outcome describes what a click or proposed move did.
type Outcome struct {
	Result   Result
	Move     board.Move
	Captured board.Occupant
	Capture  bool
}

type Session struct {
	board   *board.Board
	pending *board.Square
	last    *board.Move
	seats   map[board.Side]bots.ChessBot
}

func New() *Session {
	return &Session{
		board: board.New(),
		seats: make(map[board.Side]bots.ChessBot),
	}
}

// Board returns the live board. Callers must only read from it.
func (s *Session) Board() *board.Board {
	return s.board
}

// Pending returns the selected origin square, if any.
func (s *Session) Pending() (board.Square, bool) {
	if s.pending == nil {
		return board.Square{}, false
	}
	return *s.pending, true
}

// LastMove returns the most recently applied move.
func (s *Session) LastMove() (board.Move, bool) {
	if s.last == nil {
		return board.Move{}, false
	}
	return *s.last, true
}

// Seat assigns a bot to side. A nil bot hands the side back to a human.
func (s *Session) Seat(side board.Side, bot bots.ChessBot) {
	if bot == nil {
		delete(s.seats, side)
		return
	}
	s.seats[side] = bot
}

// BotToMove reports whether the side to move is played by a bot.
func (s *Session) BotToMove() bool {
	_, ok := s.seats[s.board.SideToMove()]
	return ok
}

// Click handles one click on sq. The first click picks an origin holding a
// piece of the side to move; the second proposes the destination. Either
// way a second click clears the selection.
func (s *Session) Click(sq board.Square) Outcome {
	if s.BotToMove() {
		return Outcome{Result: Ignored}
	}
	if s.pending == nil {
		occ, ok := s.board.OccupantAt(sq)
		if !ok || occ.Side != s.board.SideToMove() {
			return Outcome{Result: Ignored}
		}
		s.pending = &sq
		return Outcome{Result: Selected, Move: board.Move{From: sq, To: sq}}
	}

	from := *s.pending
	s.pending = nil
	return s.Propose(board.Move{From: from, To: sq})
}

// Propose applies m if it is legal and reports what happened.
func (s *Session) Propose(m board.Move) Outcome {
	s.pending = nil
	side := s.board.SideToMove()
	captured, capture, err := board.TryMove(s.board, m.From, m.To)
	if err != nil {
		log.Printf("rejected %s (%s)", notation.MoveText(m), side)
		return Outcome{Result: Rejected, Move: m}
	}
	s.last = &m
	if capture {
		log.Printf("move %s (%s) takes %s", notation.MoveText(m), side, captured)
	} else {
		log.Printf("move %s (%s)", notation.MoveText(m), side)
	}
	return Outcome{Result: Moved, Move: m, Captured: captured, Capture: capture}
}

// PlayBot lets the bot seated for the side to move make its move. It returns
// false when no bot is seated there or the bot has nothing to play.
func (s *Session) PlayBot() (Outcome, bool) {
	bot, ok := s.seats[s.board.SideToMove()]
	if !ok {
		return Outcome{}, false
	}
	m, ok := bot.BestMove(s.board.Clone())
	if !ok {
		log.Printf("%s has no move", bot.Name())
		return Outcome{}, false
	}
	return s.Propose(m), true
}
