// Command scenecheck loads a scene, runs it without a window and prints where
// everything ended up. Useful for checking a scene file after editing it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/stickman/common"
	"github.com/milk9111/stickman/prefabs"
	"github.com/milk9111/stickman/ragdoll"
	"github.com/milk9111/stickman/scene"
)

const tps = 60.0

func main() {
	sceneName := flag.String("scene", common.DefaultScene, "scene file in prefabs/")
	steps := flag.Int("steps", 600, "ticks to simulate")
	iterations := flag.Int("iterations", 0, "override solver iterations (0 keeps the scene value)")
	printParams := flag.Bool("params", false, "print the effective params as YAML")
	walk := flag.Bool("walk", true, "run the walk animator on ragdolls")
	flag.Parse()

	s, err := scene.Load(context.Background(), *sceneName)
	if err != nil {
		log.Fatal(err)
	}
	if *iterations != 0 {
		s.Params.Iterations = *iterations
	}

	animator := ragdoll.NewAnimator()
	animator.Enabled = *walk
	if err := run(s, animator, *steps); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("scene %s: %d points, %d sticks, %d ragdolls\n", s.Name, s.World.Len(), s.World.StickLen(), len(s.Ragdolls))
	if minX, minY, maxX, maxY, ok := s.World.Bounds(); ok {
		fmt.Printf("after %d steps: bounds (%.1f, %.1f) - (%.1f, %.1f), floor at %.1f\n", *steps, minX, minY, maxX, maxY, s.World.Config().Floor())
	}

	if *printParams {
		out, err := prefabs.EncodeParams(s.Params)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(out)
	}
}

func run(s *scene.Scene, animator *ragdoll.Animator, steps int) error {
	for i := 0; i < steps; i++ {
		animator.Update(s.World, s.Ragdolls, float64(i)/tps)
		if err := s.Step(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}
