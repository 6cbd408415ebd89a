package termui

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"chessboard/board"
	"chessboard/notation"
	"chessboard/session"

	"github.com/fatih/color"
)

const help = `commands:
  e2e4     move a piece
  moves    list legal moves for the side to move
  fen      print the position as FEN
  board    print the board
  quit     leave`

var (
	warn = color.New(color.FgRed)
	info = color.New(color.FgCyan)
)

// Console reads commands from in and writes the board to out.
type Console struct {
	session *session.Session
	in      *bufio.Scanner
	out     io.Writer
}

func NewConsole(s *session.Session, in io.Reader, out io.Writer) *Console {
	return &Console{
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run processes commands until quit or end of input.
func (c *Console) Run() error {
	c.playBots()
	Render(c.out, c.session.Board(), nil)
	c.prompt()
	for c.in.Scan() {
		line := strings.ToLower(strings.TrimSpace(c.in.Text()))
		switch line {
		case "":
		case "quit", "exit":
			return nil
		case "help", "?":
			fmt.Fprintln(c.out, help)
		case "board":
			Render(c.out, c.session.Board(), nil)
		case "fen":
			fmt.Fprintln(c.out, notation.FEN(c.session.Board()))
		case "moves":
			fmt.Fprintln(c.out, strings.Join(c.legalMoves(), " "))
		default:
			c.move(line)
		}
		c.prompt()
	}
	return c.in.Err()
}

func (c *Console) prompt() {
	info.Fprintf(c.out, "%s> ", c.session.Board().SideToMove())
}

func (c *Console) move(text string) {
	m, err := notation.ParseMove(text)
	if err != nil {
		warn.Fprintf(c.out, "%v (type help)\n", err)
		return
	}
	out := c.session.Propose(m)
	if out.Result != session.Moved {
		warn.Fprintf(c.out, "%s is not legal\n", notation.MoveText(m))
		return
	}
	c.announce(out)
	c.playBots()
	last, _ := c.session.LastMove()
	Render(c.out, c.session.Board(), marks(last))
}

func (c *Console) announce(out session.Outcome) {
	if out.Capture {
		fmt.Fprintf(c.out, "%s takes %s\n", notation.MoveText(out.Move), out.Captured)
		return
	}
	fmt.Fprintf(c.out, "%s\n", notation.MoveText(out.Move))
}

func (c *Console) playBots() {
	for i := 0; i < 2 && c.session.BotToMove(); i++ {
		out, ok := c.session.PlayBot()
		if !ok {
			return
		}
		c.announce(out)
	}
}

func (c *Console) legalMoves() []string {
	var out []string
	for _, m := range board.LegalMoves(c.session.Board()) {
		out = append(out, notation.MoveText(m))
	}
	sort.Strings(out)
	return out
}

func marks(m board.Move) map[board.Square]bool {
	return map[board.Square]bool{m.From: true, m.To: true}
}
