// Package termui plays the board in a terminal: moves are typed in
// coordinate notation and the board is printed after each one.
package termui

import (
	"fmt"
	"io"

	"chessboard/board"
	"chessboard/notation"

	"github.com/fatih/color"
)

var (
	lightTile = color.New(color.BgHiYellow, color.FgBlack)
	darkTile  = color.New(color.BgYellow, color.FgBlack)
	markTile  = color.New(color.BgGreen, color.FgBlack)
	label     = color.New(color.FgHiBlack)
)

// Render prints b with rank and file labels. Squares in marks are
// highlighted.
func Render(w io.Writer, b *board.Board, marks map[board.Square]bool) {
	for rank := 0; rank < board.Size; rank++ {
		label.Fprintf(w, "%d ", board.Size-rank)
		for file := 0; file < board.Size; file++ {
			sq := board.Square{File: file, Rank: rank}
			cell := " "
			if occ, ok := b.OccupantAt(sq); ok {
				cell = notation.Glyph(occ)
			}
			paint := lightTile
			switch {
			case marks[sq]:
				paint = markTile
			case (file+rank)%2 == 1:
				paint = darkTile
			}
			paint.Fprintf(w, " %s ", cell)
		}
		fmt.Fprintln(w)
	}
	label.Fprint(w, "  ")
	for file := 0; file < board.Size; file++ {
		label.Fprintf(w, " %c ", 'a'+file)
	}
	fmt.Fprintln(w)
}
