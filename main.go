package main

import (
	"flag"
	"log"
	"os"

	"github.com/JONAHTHEKING/Buncha-chessboard/config"
	"github.com/JONAHTHEKING/Buncha-chessboard/controller"
)

func main() {
	configPath := flag.String("config", "", "JSON board setup (defaults to the built-in 8x8 board)")
	modeName := flag.String("mode", "window", "view: window, term, text or png")
	out := flag.String("out", "board.png", "output file for -mode png")
	assetDir := flag.String("assets", "", "directory with bishop.png and horse.png (defaults to embedded sprites)")
	cellSize := flag.Int("cell", 0, "cell size override, in dp (window) or px (png)")
	flag.Parse()

	log.SetPrefix("chessboard: ")
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)

	mode, err := controller.ParseMode(*modeName)
	if err != nil {
		log.Fatal(err)
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *assetDir != "" {
		cfg.AssetDir = *assetDir
	}
	if *cellSize != 0 {
		cfg.CellSize = *cellSize
	}

	c, err := controller.New(cfg)
	if err != nil {
		log.Fatalf("Invalid board: %v", err)
	}

	c.LogSummary()

	if err := c.Run(mode, os.Stdout, *out); err != nil {
		log.Fatal(err)
	}
}
