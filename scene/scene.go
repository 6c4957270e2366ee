// Package scene turns a SceneSpec into a populated verlet world.
package scene

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/milk9111/stickman/prefabs"
	"github.com/milk9111/stickman/ragdoll"
	"github.com/milk9111/stickman/script"
	"github.com/milk9111/stickman/verlet"
)

// scriptTimeout bounds a single structure script.
const scriptTimeout = 2 * time.Second

// Scene owns the world and everything spawned into it.
type Scene struct {
	Name     string
	World    *verlet.World
	Params   verlet.Params
	Theme    prefabs.Theme
	Ragdolls []*ragdoll.Ragdoll
}

// Load reads a scene file and builds it.
func Load(ctx context.Context, name string) (*Scene, error) {
	spec, err := prefabs.LoadScene(name)
	if err != nil {
		return nil, err
	}
	return Build(ctx, spec)
}

// Build creates a fresh world from spec. On error nothing is returned, so
// callers can keep running the previous scene.
func Build(ctx context.Context, spec *prefabs.SceneSpec) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("scene: spec is nil")
	}
	w, err := verlet.NewWorld(spec.WorldConfig())
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", spec.Name, err)
	}

	s := &Scene{
		Name:   spec.Name,
		World:  w,
		Params: spec.StepParams(),
		Theme:  spec.Theme.Resolve(),
	}

	for i, rs := range spec.Ragdolls {
		r, err := ragdoll.BuildSpec(w, rs)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: ragdoll %d: %w", spec.Name, i, err)
		}
		s.Ragdolls = append(s.Ragdolls, r)
	}

	for i, st := range spec.Structures {
		sctx, cancel := context.WithTimeout(ctx, scriptTimeout)
		res, err := script.RunFile(sctx, w, st.Script, st.Args)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("scene: %s: structure %d: %w", spec.Name, i, err)
		}
		log.Printf("scene: %s: %s added %d points, %d sticks", spec.Name, st.Script, len(res.Points), len(res.Sticks))
	}

	return s, nil
}

// Step advances the world by one tick with the scene's params.
func (s *Scene) Step() error {
	return s.Params.Step(s.World)
}
