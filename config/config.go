// Package config holds the static board setup: dimensions, piece positions,
// inactive cells and presentation settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/JONAHTHEKING/Buncha-chessboard/engine"
)

// Pair is a [row, col] coordinate as written in config files.
type Pair [2]int

// UnmarshalJSON accepts exactly two integers.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("coordinate %s: %w: %w", data, engine.ErrInvalidConfig, err)
	}
	if len(v) != 2 {
		return fmt.Errorf("coordinate %s: want [row, col]: %w", data, engine.ErrInvalidConfig)
	}

	*p = Pair{v[0], v[1]}
	return nil
}

func (p Pair) Coord() engine.Coord {
	return engine.Coord{Row: p[0], Col: p[1]}
}

type Config struct {
	Rows          int    `json:"rows"`
	Cols          int    `json:"cols"`
	BishopPos     Pair   `json:"bishopPos"`
	HorsePos      Pair   `json:"horsePos"`
	InactiveCells []Pair `json:"inactiveCells"`

	// CellSize is the side of one cell, in dp for the window and pixels for
	// PNG export.
	CellSize int `json:"cellSize"`

	// AssetDir overrides the embedded piece sprites when set.
	AssetDir string `json:"assetDir"`
}

// Default returns the stock 8x8 setup.
func Default() *Config {
	return &Config{
		Rows:      8,
		Cols:      8,
		BishopPos: Pair{3, 2},
		HorsePos:  Pair{6, 6},
		InactiveCells: []Pair{
			{0, 3},
			{2, 0},
			{4, 3},
			{2, 6},
			{0, 7},
			{6, 7},
			{7, 1},
		},
		CellSize: 50,
	}
}

// Load reads a JSON file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w: %w", path, engine.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects setups that would otherwise render as garbage.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size %d: %w", c.CellSize, engine.ErrInvalidConfig)
	}

	_, err := c.State()
	return err
}

func (c *Config) Board() *engine.Board {
	blocked := make([]engine.Coord, len(c.InactiveCells))
	for i, p := range c.InactiveCells {
		blocked[i] = p.Coord()
	}

	return engine.NewBoard(c.Rows, c.Cols, blocked)
}

// State builds the render state. Errors wrap engine.ErrInvalidConfig.
func (c *Config) State() (engine.State, error) {
	return engine.NewState(c.Board(), c.BishopPos.Coord(), c.HorsePos.Coord())
}
