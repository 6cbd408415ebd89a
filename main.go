package main

import (
	"flag"
	"log"
	"os"

	"chessboard/board"
	"chessboard/bots"
	"chessboard/game"
	"chessboard/session"
	"chessboard/termui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.TileSize, "tile", cfg.TileSize, "size of one square in pixels")
	flag.StringVar(&cfg.SpriteSheet, "sprites", "", "PNG sprite sheet with the pieces (6 columns x 2 rows)")
	flag.IntVar(&cfg.SpriteSize, "sprite-size", cfg.SpriteSize, "size of one sprite cell in pixels")
	botSide := flag.String("bot", "", "let a bot play this side: white or black")
	botKind := flag.String("botkind", "random", "bot to use: newborn, random or minimax")
	seed := flag.Int64("seed", 1, "seed for the random bot")
	tty := flag.Bool("tty", false, "play in the terminal instead of a window")
	logPath := flag.String("log", "", "write the log to this file")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("bad flags: %v", err)
	}

	if *logPath != "" {
		initLog(*logPath, "CHESS: ")
	}

	s := session.New()
	if *botSide != "" {
		side, ok := parseSide(*botSide)
		if !ok {
			log.Fatalf("unknown side %q", *botSide)
		}
		bot, ok := bots.ByName(*botKind, *seed)
		if !ok {
			log.Fatalf("unknown bot %q", *botKind)
		}
		s.Seat(side, bot)
		log.Printf("%s plays %s", bot.Name(), side)
	}

	if *tty {
		if err := termui.NewConsole(s, os.Stdin, os.Stdout).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	g := game.NewGame(cfg, s)
	if err := g.LoadSprites(); err != nil {
		log.Printf("Warning: %v, drawing plain pieces", err)
	}
	ebiten.SetWindowSize(g.Layout(0, 0))
	ebiten.SetWindowTitle("Chess")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func parseSide(s string) (board.Side, bool) {
	switch s {
	case "white":
		return board.White, true
	case "black":
		return board.Black, true
	}
	return board.White, false
}

func initLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}
