package game

import (
	"errors"
	"fmt"
)

var ErrBadConfig = errors.New("bad config")

// Config controls the window and how pieces are drawn.
type Config struct {
	// TileSize is the edge length of one square in pixels.
	TileSize int
	// SpriteSheet is an optional PNG holding the piece sprites: six columns
	// (king, queen, bishop, knight, rook, pawn) by two rows (white, black).
	SpriteSheet string
	// SpriteSize is the edge length of one sprite cell in the sheet.
	SpriteSize int
}

func DefaultConfig() Config {
	return Config{
		TileSize:   100,
		SpriteSize: 64,
	}
}

// Validate rejects sizes that would give an empty window or an unusable
// sprite scale.
func (c Config) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d", ErrBadConfig, c.TileSize)
	}
	if c.SpriteSize <= 0 {
		return fmt.Errorf("%w: sprite size %d", ErrBadConfig, c.SpriteSize)
	}
	return nil
}
