package controller

import (
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/JONAHTHEKING/Buncha-chessboard/assets"
	"github.com/JONAHTHEKING/Buncha-chessboard/config"
	"github.com/JONAHTHEKING/Buncha-chessboard/engine"
	"github.com/JONAHTHEKING/Buncha-chessboard/raster"
	"github.com/JONAHTHEKING/Buncha-chessboard/term"
	"github.com/JONAHTHEKING/Buncha-chessboard/textview"
	"github.com/JONAHTHEKING/Buncha-chessboard/ui"
	"github.com/JONAHTHEKING/Buncha-chessboard/ui/window"
)

type Mode string

const (
	Window Mode = "window"
	Term   Mode = "term"
	Text   Mode = "text"
	PNG    Mode = "png"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Window, Term, Text, PNG:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (want window, term, text or png)", s)
}

// Controller ties a validated config to one of the views.
type Controller struct {
	cfg   *config.Config
	state engine.State
	fsys  fs.FS
	names map[engine.Piece]string
}

func New(cfg *config.Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	state, err := cfg.State()
	if err != nil {
		return nil, err
	}

	return &Controller{
		cfg:   cfg,
		state: state,
		fsys:  assets.FS(cfg.AssetDir),
		names: assets.Names,
	}, nil
}

func (c *Controller) State() engine.State {
	return c.state
}

// LogSummary reports the setup and what each piece can reach.
func (c *Controller) LogSummary() {
	s := c.state
	log.Printf("board %dx%d, %d blocked cells", s.Board.Rows, s.Board.Cols, len(s.Board.Blocked()))
	for _, p := range engine.Pieces {
		log.Printf("%s at %v reaches %d cells: %v", p, s.Position(p), len(s.Reachable(p)), s.Reachable(p))
	}
	bishop := s.Position(engine.Bishop)
	for _, dir := range engine.Diagonals {
		log.Printf("bishop %s: %d cells", dir, len(s.Board.DiagonalRay(bishop.Row, bishop.Col, dir)))
	}
	log.Printf("meeting point %v", s.MeetingPoint)
}

// Run shows the board in the given mode. out receives text output and out
// path is the PNG destination.
func (c *Controller) Run(mode Mode, out io.Writer, pngPath string) error {
	switch mode {
	case Window:
		window.RunUI(c.state, c.cfg.CellSize, c.fsys, c.names)
		return nil
	case PNG:
		return c.ExportPNG(pngPath)
	case Term:
		return term.Show(c.cellGrid())
	case Text:
		return textview.Print(out, c.cellGrid())
	}
	return fmt.Errorf("unknown mode %q", mode)
}

func (c *Controller) sprites() ui.Sprites {
	return ui.LoadSprites(c.fsys, c.names)
}

func (c *Controller) cellGrid() *ui.CellGrid {
	return ui.RenderCellGrid(c.state, c.sprites())
}

// ExportPNG renders the board once and writes it to path.
func (c *Controller) ExportPNG(path string) error {
	if path == "" {
		return fmt.Errorf("png mode needs an output path")
	}

	canvas := raster.Render(c.state, c.sprites(), c.cfg.CellSize)
	if err := canvas.WriteFile(path); err != nil {
		return err
	}

	log.Printf("wrote %s (%dx%d)", path, canvas.Image.Bounds().Dx(), canvas.Image.Bounds().Dy())
	return nil
}
