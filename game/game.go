// Package game runs the board in an ebiten window: it turns mouse clicks into
// moves and paints the board once per frame.
package game

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"chessboard/board"
	"chessboard/notation"
	"chessboard/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	lightTile  = color.RGBA{240, 217, 181, 255}
	darkTile   = color.RGBA{181, 136, 99, 255}
	selectTile = color.RGBA{246, 246, 105, 255}
	targetDot  = color.RGBA{40, 40, 40, 110}
	whiteMan   = color.RGBA{250, 250, 250, 255}
	blackMan   = color.RGBA{30, 30, 30, 255}
)

var letters = map[board.Kind]string{
	board.King:   "K",
	board.Queen:  "Q",
	board.Rook:   "R",
	board.Bishop: "B",
	board.Knight: "N",
	board.Pawn:   "P",
}

// Game implements ebiten.Game on top of a session.
type Game struct {
	cfg     Config
	session *session.Session
	pieces  map[board.Occupant]*ebiten.Image
	status  string
}

func NewGame(cfg Config, s *session.Session) *Game {
	g := &Game{
		cfg:     cfg,
		session: s,
		pieces:  make(map[board.Occupant]*ebiten.Image),
	}
	return g
}

// LoadSprites cuts the configured sprite sheet into one image per piece. With
// no sheet configured the pieces are drawn as lettered discs.
func (g *Game) LoadSprites() error {
	if g.cfg.SpriteSheet == "" {
		return nil
	}
	f, err := os.Open(g.cfg.SpriteSheet)
	if err != nil {
		return fmt.Errorf("open sprite sheet: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode sprite sheet %s: %w", g.cfg.SpriteSheet, err)
	}
	sheet := ebiten.NewImageFromImage(img)

	for _, side := range []board.Side{board.White, board.Black} {
		for kind := range letters {
			occ := board.Occupant{Kind: kind, Side: side}
			sprite := sheet.SubImage(spriteRect(occ, g.cfg.SpriteSize)).(*ebiten.Image)

			scaled := ebiten.NewImage(g.cfg.TileSize, g.cfg.TileSize)
			op := &ebiten.DrawImageOptions{}
			scale := float64(g.cfg.TileSize) / float64(g.cfg.SpriteSize)
			op.GeoM.Scale(scale, scale)
			scaled.DrawImage(sprite, op)
			g.pieces[occ] = scaled
		}
	}
	return nil
}

func (g *Game) Update() error {
	if g.session.BotToMove() {
		if out, ok := g.session.PlayBot(); ok {
			g.report(out)
		}
		return nil
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	x, y := ebiten.CursorPosition()
	sq, ok := squareAt(x, y, g.cfg.TileSize)
	if !ok {
		return nil
	}
	g.report(g.session.Click(sq))
	return nil
}

func (g *Game) report(out session.Outcome) {
	switch out.Result {
	case session.Moved:
		g.status = notation.MoveText(out.Move)
		if out.Capture {
			g.status += " x " + out.Captured.Kind.String()
		}
	case session.Rejected:
		g.status = notation.MoveText(out.Move) + " is not legal"
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	b := g.session.Board()
	tile := float32(g.cfg.TileSize)
	pending, hasPending := g.session.Pending()

	for _, sq := range board.Squares() {
		r := tileRect(sq, g.cfg.TileSize)
		clr := lightTile
		if isDark(sq) {
			clr = darkTile
		}
		if hasPending && sq == pending {
			clr = selectTile
		}
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), tile, tile, clr, false)
	}

	for _, sq := range board.Squares() {
		occ, ok := b.OccupantAt(sq)
		if !ok {
			continue
		}
		g.drawPiece(screen, sq, occ)
	}

	if hasPending {
		for _, to := range board.Destinations(b, pending) {
			r := tileRect(to, g.cfg.TileSize)
			vector.DrawFilledCircle(screen, float32(r.Min.X)+tile/2, float32(r.Min.Y)+tile/2, tile/8, targetDot, true)
		}
	}

	_, top := screenSize(g.cfg.TileSize)
	top -= statusHeight
	turn := fmt.Sprintf("%s to move", b.SideToMove())
	if g.status != "" {
		turn += "   last: " + g.status
	}
	ebitenutil.DebugPrintAt(screen, turn, 8, top+6)
	ebitenutil.DebugPrintAt(screen, notation.FEN(b), 8, top+26)
}

func (g *Game) drawPiece(screen *ebiten.Image, sq board.Square, occ board.Occupant) {
	r := tileRect(sq, g.cfg.TileSize)
	if img, ok := g.pieces[occ]; ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		screen.DrawImage(img, op)
		return
	}

	tile := float32(g.cfg.TileSize)
	body, rim := whiteMan, blackMan
	if occ.Side == board.Black {
		body, rim = blackMan, whiteMan
	}
	cx, cy := float32(r.Min.X)+tile/2, float32(r.Min.Y)+tile/2
	vector.DrawFilledCircle(screen, cx, cy, tile*0.36, rim, true)
	vector.DrawFilledCircle(screen, cx, cy, tile*0.33, body, true)

	// DebugPrint always draws white text, so black pieces get it directly
	// and white pieces get it on a dark label.
	label := letters[occ.Kind]
	if occ.Side == board.White {
		vector.DrawFilledRect(screen, cx-6, cy-9, 12, 18, blackMan, false)
	}
	ebitenutil.DebugPrintAt(screen, label, int(cx)-3, int(cy)-8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize(g.cfg.TileSize)
}
