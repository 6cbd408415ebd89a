package game

import (
	"image"

	"chessboard/board"
)

// statusHeight is the strip under the board used for the status line.
const statusHeight = 48

// screenSize returns the logical screen size for a tile edge of tile pixels.
func screenSize(tile int) (int, int) {
	return tile * board.Size, tile*board.Size + statusHeight
}

// squareAt maps a cursor position to the square under it.
func squareAt(x, y, tile int) (board.Square, bool) {
	if x < 0 || y < 0 || tile <= 0 {
		return board.Square{}, false
	}
	sq := board.Square{File: x / tile, Rank: y / tile}
	return sq, sq.Valid()
}

// tileRect returns the pixel rectangle covered by sq.
func tileRect(sq board.Square, tile int) image.Rectangle {
	x, y := sq.File*tile, sq.Rank*tile
	return image.Rect(x, y, x+tile, y+tile)
}

// isDark reports whether sq is painted with the dark tile colour. The corner
// squares (0,0) and (7,7) are light.
func isDark(sq board.Square) bool {
	return (sq.File+sq.Rank)%2 == 1
}

// spriteRect returns the cell of the sprite sheet holding occ.
func spriteRect(occ board.Occupant, size int) image.Rectangle {
	col := 0
	switch occ.Kind {
	case board.King:
		col = 0
	case board.Queen:
		col = 1
	case board.Bishop:
		col = 2
	case board.Knight:
		col = 3
	case board.Rook:
		col = 4
	case board.Pawn:
		col = 5
	}
	row := 0
	if occ.Side == board.Black {
		row = 1
	}
	return image.Rect(col*size, row*size, (col+1)*size, (row+1)*size)
}
