package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	LookSpeed           float64 `yaml:"look_speed"`
	InteractionDistance float64 `yaml:"interaction_distance"`
	ThrowSpeed          float64 `yaml:"throw_speed"`
}

type ControllerComponentSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Gravity   float64 `yaml:"gravity"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

// SpriteComponentSpec describes a flat placeholder sprite. Shape is "rect"
// or "circle".
type SpriteComponentSpec struct {
	Shape              string     `yaml:"shape"`
	Width              int        `yaml:"width"`
	Height             int        `yaml:"height"`
	Color              *YAMLColor `yaml:"color"`
	OriginX            float64    `yaml:"origin_x"`
	OriginY            float64    `yaml:"origin_y"`
	CenterOriginIfZero bool       `yaml:"center_origin_if_zero"`
	Hidden             bool       `yaml:"hidden"`
}

type AnimationDefComponentSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
}

// AnimationComponentSpec lists the clips of a generated sprite sheet. Every
// frame is FrameW by FrameH.
type AnimationComponentSpec struct {
	FrameW int                                  `yaml:"frame_w"`
	FrameH int                                  `yaml:"frame_h"`
	Color  *YAMLColor                           `yaml:"color"`
	Defs   map[string]AnimationDefComponentSpec `yaml:"defs"`
}

// AnimationStateComponentSpec names the animation config (intent thresholds
// and transition table) that drives the entity.
type AnimationStateComponentSpec struct {
	Config string `yaml:"config"`
}

type PhysicsBodyComponentSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Radius   float64 `yaml:"radius"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
	Static   bool    `yaml:"static"`
	// Category is one of solid, character or prop.
	Category string `yaml:"category"`
}

type PropComponentSpec struct {
	Kind           string     `yaml:"kind"`
	Extinguishable bool       `yaml:"extinguishable"`
	Lit            bool       `yaml:"lit"`
	UnlitColor     *YAMLColor `yaml:"unlit_color"`
}

type NPCComponentSpec struct {
	Name              string  `yaml:"name"`
	Prompt            string  `yaml:"prompt"`
	Script            string  `yaml:"script"`
	InteractionRadius float64 `yaml:"interaction_radius"`
}

type CrosshairComponentSpec struct {
	Size        int        `yaml:"size"`
	DotColor    *YAMLColor `yaml:"dot_color"`
	SquareColor *YAMLColor `yaml:"square_color"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}
