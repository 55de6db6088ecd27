package ui

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/JONAHTHEKING/Buncha-chessboard/engine"
)

// ErrAssetLoad is wrapped by every sprite load failure.
var ErrAssetLoad = errors.New("asset load failed")

// SpriteLoaded is the completion of one sprite load.
type SpriteLoaded struct {
	Piece engine.Piece
	Image image.Image
	Err   error
}

// LoadSprite decodes one image from fsys.
func LoadSprite(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrAssetLoad, name, err)
	}

	return img, nil
}

// LoadSpritesAsync starts one load per piece and returns immediately. done
// is called once per piece, from the loading goroutine, in no particular
// order.
func LoadSpritesAsync(fsys fs.FS, names map[engine.Piece]string, done func(SpriteLoaded)) {
	for piece, name := range names {
		go func() {
			img, err := LoadSprite(fsys, name)
			done(SpriteLoaded{Piece: piece, Image: img, Err: err})
		}()
	}
}

// LoadSprites loads every sprite before returning. Failures are logged and
// leave the piece without an image.
func LoadSprites(fsys fs.FS, names map[engine.Piece]string) Sprites {
	var sprites Sprites

	for _, piece := range engine.Pieces {
		name, ok := names[piece]
		if !ok {
			continue
		}
		img, err := LoadSprite(fsys, name)
		sprites.Apply(SpriteLoaded{Piece: piece, Image: img, Err: err})
	}

	return sprites
}

// Apply stores a finished load, or logs its failure and leaves the piece
// without an image.
func (s *Sprites) Apply(r SpriteLoaded) {
	if r.Err != nil {
		log.Printf("%s sprite: %v", r.Piece, r.Err)
		return
	}
	log.Printf("%s sprite loaded (%dx%d)", r.Piece, r.Image.Bounds().Dx(), r.Image.Bounds().Dy())
	s.Set(r.Piece, r.Image)
}
