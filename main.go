package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelName := flag.String("level", "courtyard.yaml", "level file in levels/")
	scripted := flag.Bool("script", false, "run the level's choreography script instead of manual control")
	watch := flag.Bool("watch", false, "hot-reload profile files on disk edits")
	invertY := flag.Bool("invert-y", false, "invert vertical look input")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("followcam")

	game, err := NewGame(*levelName, *scripted, *watch, *invertY)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
