// Package assets embeds the piece sprites.
package assets

import (
	"embed"
	"io/fs"
	"os"

	"github.com/JONAHTHEKING/Buncha-chessboard/engine"
)

//go:embed *.png
var embedded embed.FS

// Names maps each piece to its sprite file.
var Names = map[engine.Piece]string{
	engine.Bishop: "bishop.png",
	engine.Horse:  "horse.png",
}

// FS returns the sprite files: dir when set, the embedded copies otherwise.
func FS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return embedded
}
