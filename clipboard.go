package main

import (
	"log"
	"sync"

	"github.com/milk9111/stickman/prefabs"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyParams puts the current params on the system clipboard as a YAML
// block ready to paste into a scene file.
func (g *Game) copyParams() {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		log.Printf("clipboard: unavailable: %v", clipboardErr)
		return
	}

	data, err := prefabs.EncodeParams(g.scene.Params)
	if err != nil {
		log.Printf("clipboard: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("clipboard: copied params for %s", g.scene.Name)
}
