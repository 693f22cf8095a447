package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"

	"spaceinvader/game"
)

func main() {
	cfg, err := game.LoadConfig("config.yaml")
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
	}

	storage, err := gdata.Open(gdata.Config{AppName: "spaceinvader"})
	if err != nil {
		// Highscores degrade to in-memory; the game keeps running.
		log.Printf("storage: %v (highscores will not persist)", err)
		storage = nil
	}

	sound := game.NewSoundManager(audio.NewContext(48000))
	g := game.New(cfg, sound, storage)

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Space Invader")

	if err := ebiten.RunGame(g); err != nil && !game.IsQuit(err) {
		log.Fatal(err)
	}
}
