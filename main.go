package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stickman/common"
)

func main() {
	sceneName := flag.String("scene", common.DefaultScene, "scene file in prefabs/ (embedded copy used when missing on disk)")
	debug := flag.Bool("debug", false, "draw chipmunk pick handles")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(*sceneName, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	cfg := game.scene.World.Config()
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("stickman - " + game.scene.Name)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
