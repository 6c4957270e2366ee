package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/stickman/common"
	"github.com/milk9111/stickman/ragdoll"
	"github.com/milk9111/stickman/verlet"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec describes everything placed in the world at startup.
type SceneSpec struct {
	Name       string          `yaml:"name"`
	World      WorldSpec       `yaml:"world"`
	Params     ParamsSpec      `yaml:"params"`
	Theme      ThemeSpec       `yaml:"theme"`
	Ragdolls   []ragdoll.Spec  `yaml:"ragdolls"`
	Structures []StructureSpec `yaml:"structures"`
}

// ParamsSpec is the params block. Omitted fields fall back to
// verlet.DefaultParams; explicit zeros are kept.
type ParamsSpec struct {
	Gravity    *float64 `yaml:"gravity"`
	Damping    *float64 `yaml:"damping"`
	Iterations *int     `yaml:"iterations"`
}

func (p ParamsSpec) Resolve() verlet.Params {
	out := verlet.DefaultParams()
	if p.Gravity != nil {
		out.Gravity = *p.Gravity
	}
	if p.Damping != nil {
		out.Damping = *p.Damping
	}
	if p.Iterations != nil {
		out.Iterations = *p.Iterations
	}
	return out
}

type WorldSpec struct {
	Width       float64  `yaml:"width"`
	Height      float64  `yaml:"height"`
	FloorOffset *float64 `yaml:"floor_offset"`
	Bounce      *float64 `yaml:"bounce"`
	FloorDrag   *float64 `yaml:"floor_drag"`
	Stiffness   *float64 `yaml:"stiffness"`
}

// StructureSpec runs a tengo script from prefabs/scripts with the given args.
type StructureSpec struct {
	Script string         `yaml:"script"`
	Args   map[string]any `yaml:"args"`
}

type ThemeSpec struct {
	Background *YAMLColor `yaml:"background"`
	Stick      *YAMLColor `yaml:"stick"`
	Point      *YAMLColor `yaml:"point"`
	Pinned     *YAMLColor `yaml:"pinned"`
	Floor      *YAMLColor `yaml:"floor"`
}

// Theme is a ThemeSpec with every color resolved.
type Theme struct {
	Background color.Color
	Stick      color.Color
	Point      color.Color
	Pinned     color.Color
	Floor      color.Color
}

func DefaultTheme() Theme {
	return Theme{
		Background: color.NRGBA{R: 0x10, G: 0x14, B: 0x18, A: 0xff},
		Stick:      color.White,
		Point:      color.NRGBA{R: 0xff, A: 0xff},
		Pinned:     color.NRGBA{R: 0x30, G: 0xa0, B: 0xff, A: 0xff},
		Floor:      color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
	}
}

// Resolve fills unset colors from DefaultTheme.
func (t ThemeSpec) Resolve() Theme {
	out := DefaultTheme()
	pick := func(c *YAMLColor, dst *color.Color) {
		if c != nil && c.Color != nil {
			*dst = c.Color
		}
	}
	pick(t.Background, &out.Background)
	pick(t.Stick, &out.Stick)
	pick(t.Point, &out.Point)
	pick(t.Pinned, &out.Pinned)
	pick(t.Floor, &out.Floor)
	return out
}

// WorldConfig converts the world block into a verlet config, using defaults
// for anything left out.
func (s *SceneSpec) WorldConfig() verlet.Config {
	cfg := verlet.DefaultConfig(s.World.Width, s.World.Height)
	if cfg.Width == 0 {
		cfg.Width = common.BaseWidth
	}
	if cfg.Height == 0 {
		cfg.Height = common.BaseHeight
	}
	if s.World.FloorOffset != nil {
		cfg.FloorOffset = *s.World.FloorOffset
	}
	if s.World.Bounce != nil {
		cfg.Bounce = *s.World.Bounce
	}
	if s.World.FloorDrag != nil {
		cfg.FloorDrag = *s.World.FloorDrag
	}
	if s.World.Stiffness != nil {
		cfg.Stiffness = *s.World.Stiffness
	}
	return cfg
}

// StepParams returns the scene's step params with defaults applied.
func (s *SceneSpec) StepParams() verlet.Params {
	return s.Params.Resolve()
}

func (s *SceneSpec) Validate() error {
	if err := s.WorldConfig().Validate(); err != nil {
		return fmt.Errorf("prefabs: scene %q world: %w", s.Name, err)
	}
	if err := s.StepParams().Validate(); err != nil {
		return fmt.Errorf("prefabs: scene %q params: %w", s.Name, err)
	}
	for i, st := range s.Structures {
		if strings.TrimSpace(st.Script) == "" {
			return fmt.Errorf("prefabs: scene %q structure %d has no script", s.Name, i)
		}
	}
	return nil
}

// LoadScene loads, defaults and validates a scene file.
func LoadScene(name string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// EncodeParams renders params as a YAML params block that can be pasted into a scene.
func EncodeParams(p verlet.Params) ([]byte, error) {
	out, err := yaml.Marshal(struct {
		Params verlet.Params `yaml:"params"`
	}{p})
	if err != nil {
		return nil, fmt.Errorf("prefabs: encode params: %w", err)
	}
	return out, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
