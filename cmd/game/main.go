package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"towerwars/internal/game"
)

func main() {
	sim := game.NewSim(time.Now().UnixNano())
	ebiten.SetWindowTitle("Tower Wars")
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	if err := ebiten.RunGame(game.NewView(sim)); err != nil {
		log.Fatal(err)
	}
}
