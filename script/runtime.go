// Package script builds verlet structures from tengo scripts.
//
// A script sees two globals: args, the map given in the scene file, and
// engine, an immutable map of host functions:
//
//	engine.point(x, y[, pinned]) -> id
//	engine.stick(a, b) -> id
//	engine.pin(id, pinned)
//	engine.width, engine.height
package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/stickman/prefabs"
	"github.com/milk9111/stickman/verlet"
)

// Result lists what a script added to the world, in creation order.
type Result struct {
	Points []verlet.PointID
	Sticks []verlet.StickID
}

// RunFile loads a script from prefabs/scripts and runs it against w.
func RunFile(ctx context.Context, w *verlet.World, name string, args map[string]any) (Result, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return Result{}, fmt.Errorf("script: load %s: %w", name, err)
	}
	res, err := Run(ctx, w, src, args)
	if err != nil {
		return res, fmt.Errorf("script: %s: %w", name, err)
	}
	return res, nil
}

// Run compiles and executes src against w.
func Run(ctx context.Context, w *verlet.World, src []byte, args map[string]any) (Result, error) {
	var res Result
	if w == nil {
		return res, fmt.Errorf("script: world is nil")
	}
	if args == nil {
		args = map[string]any{}
	}

	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := s.Add("engine", buildEngine(w, &res)); err != nil {
		return res, err
	}
	if err := s.Add("args", args); err != nil {
		return res, fmt.Errorf("script: args: %w", err)
	}

	compiled, err := s.Compile()
	if err != nil {
		return res, err
	}
	if err := compiled.RunContext(ctx); err != nil {
		return res, err
	}
	return res, nil
}

func buildEngine(w *verlet.World, res *Result) *tengo.ImmutableMap {
	cfg := w.Config()
	values := map[string]tengo.Object{
		"width":  &tengo.Float{Value: cfg.Width},
		"height": &tengo.Float{Value: cfg.Height},
		"floor":  &tengo.Float{Value: cfg.Floor()},
	}

	values["point"] = &tengo.UserFunction{Name: "point", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 || len(args) > 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, err := floatArg("x", args[0])
		if err != nil {
			return nil, err
		}
		y, err := floatArg("y", args[1])
		if err != nil {
			return nil, err
		}
		pinned := len(args) == 3 && !args[2].IsFalsy()

		id := w.AddPoint(x, y, pinned)
		res.Points = append(res.Points, id)
		return &tengo.Int{Value: int64(id)}, nil
	}}

	values["stick"] = &tengo.UserFunction{Name: "stick", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		a, err := idArg("a", args[0])
		if err != nil {
			return nil, err
		}
		b, err := idArg("b", args[1])
		if err != nil {
			return nil, err
		}

		id, err := w.AddStick(a, b)
		if err != nil {
			return nil, err
		}
		res.Sticks = append(res.Sticks, id)
		return &tengo.Int{Value: int64(id)}, nil
	}}

	values["pin"] = &tengo.UserFunction{Name: "pin", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		id, err := idArg("id", args[0])
		if err != nil {
			return nil, err
		}
		if err := w.SetPinned(id, !args[1].IsFalsy()); err != nil {
			return nil, err
		}
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func floatArg(name string, obj tengo.Object) (float64, error) {
	v, ok := tengo.ToFloat64(obj)
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: name, Expected: "float", Found: obj.TypeName()}
	}
	return v, nil
}

func idArg(name string, obj tengo.Object) (verlet.PointID, error) {
	v, ok := obj.(*tengo.Int)
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: name, Expected: "int", Found: obj.TypeName()}
	}
	return verlet.PointID(v.Value), nil
}

// Names lists the embedded structure scripts.
func Names() []string {
	entries, err := prefabs.ScriptsFS.ReadDir("scripts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, strings.TrimSuffix(e.Name(), ".tengo"))
		}
	}
	return names
}
