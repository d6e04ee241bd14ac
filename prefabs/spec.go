package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/foxtrot/anim"
	"gopkg.in/yaml.v3"
)

var ErrUnknownIntent = errors.New("prefabs: unknown intent")

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

// AnimationConfigSpec is the on-disk form of an animation engine config:
// the initial intent, the intent thresholds and one transition per intent.
type AnimationConfigSpec struct {
	Initial     string                    `yaml:"initial"`
	Thresholds  *ThresholdsSpec           `yaml:"thresholds"`
	Transitions map[string]TransitionSpec `yaml:"transitions"`
}

type ThresholdsSpec struct {
	MoveEpsilon   float64 `yaml:"move_epsilon"`
	RiseEpsilon   float64 `yaml:"rise_epsilon"`
	LandingWindow int     `yaml:"landing_window"`
}

type TransitionSpec struct {
	Clip    string  `yaml:"clip"`
	BlendMS float64 `yaml:"blend_ms"`
	Loop    bool    `yaml:"loop"`
}

// Config converts the decoded yaml. Unknown intent names are errors; missing ones
// are left for anim.NewEngine to report.
func (s AnimationConfigSpec) Config() (anim.Config, error) {
	cfg := anim.Config{
		Initial:     anim.Idle,
		Thresholds:  anim.DefaultThresholds(),
		Transitions: make(anim.Table, len(s.Transitions)),
	}

	if s.Initial != "" {
		k, err := anim.ParseKind(s.Initial)
		if err != nil {
			return anim.Config{}, fmt.Errorf("%w: initial %q", ErrUnknownIntent, s.Initial)
		}
		cfg.Initial = k
	}

	if s.Thresholds != nil {
		cfg.Thresholds = anim.Thresholds{
			MoveEpsilon:   s.Thresholds.MoveEpsilon,
			RiseEpsilon:   s.Thresholds.RiseEpsilon,
			LandingWindow: s.Thresholds.LandingWindow,
		}
	}

	for name, tr := range s.Transitions {
		k, err := anim.ParseKind(name)
		if err != nil {
			return anim.Config{}, fmt.Errorf("%w: %q", ErrUnknownIntent, name)
		}
		loop := anim.PlayOnce
		if tr.Loop {
			loop = anim.Repeat
		}
		cfg.Transitions[k] = anim.Transition{
			Clip:  tr.Clip,
			Blend: time.Duration(tr.BlendMS * float64(time.Millisecond)),
			Loop:  loop,
		}
	}

	return cfg, nil
}

func LoadAnimationConfig(filename string) (anim.Config, error) {
	spec, err := LoadSpec[AnimationConfigSpec](filename)
	if err != nil {
		return anim.Config{}, err
	}
	cfg, err := spec.Config()
	if err != nil {
		return anim.Config{}, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return cfg, nil
}

// LoadAnimationEngine loads and validates an animation config. A table that
// does not cover every intent is an error here, before anything ticks.
func LoadAnimationEngine(filename string) (*anim.Engine, error) {
	cfg, err := LoadAnimationConfig(filename)
	if err != nil {
		return nil, err
	}
	engine, err := anim.NewEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", filename, err)
	}
	return engine, nil
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

// Or returns the color, or fallback when unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
