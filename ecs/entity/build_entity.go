package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/foxtrot/anim"
	"github.com/milk9111/foxtrot/assets"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
	"github.com/milk9111/foxtrot/ecs/system"
	"github.com/milk9111/foxtrot/prefabs"
	"golang.org/x/image/colornames"
)

type buildContext struct {
	PrefabPath string
	Animations *anim.Library
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":      addPlayerTag,
	"npc_tag":         addNPCTag,
	"crosshair_tag":   addCrosshairTag,
	"screen_space":    addScreenSpace,
	"input":           addInput,
	"player":          addPlayer,
	"controller":      addController,
	"transform":       addTransform,
	"sprite":          addSprite,
	"render_layer":    addRenderLayer,
	"physics_body":    addPhysicsBody,
	"prop":            addProp,
	"npc":             addNPC,
	"crosshair":       addCrosshair,
	"animation":       addAnimation,
	"animation_state": addAnimationState,
}

// sprite before prop and crosshair, animation before animation_state
var componentBuildOrder = []string{
	"player_tag",
	"npc_tag",
	"crosshair_tag",
	"screen_space",
	"input",
	"player",
	"controller",
	"transform",
	"sprite",
	"render_layer",
	"physics_body",
	"prop",
	"npc",
	"crosshair",
	"animation",
	"animation_state",
}

// BuildEntity creates an entity from a prefab. Animated prefabs resolve their
// config through animations, loading and registering it on first use.
func BuildEntity(w *ecs.World, prefabPath string, animations *anim.Library) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Animations: animations}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(names, ", "))
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addNPCTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.NPCTagComponent.Kind(), &component.NPCTag{})
}

func addCrosshairTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CrosshairTagComponent.Kind(), &component.CrosshairTag{})
}

func addScreenSpace(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		LookSpeed:           spec.LookSpeed,
		InteractionDistance: spec.InteractionDistance,
		ThrowSpeed:          spec.ThrowSpeed,
	})
}

type controllerSpec = prefabs.ControllerComponentSpec

func addController(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[controllerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode controller spec: %w", err)
	}
	// characters spawn standing on the ground
	return ecs.Add(w, e, component.ControllerComponent.Kind(), &component.Controller{
		MoveSpeed: spec.MoveSpeed,
		JumpSpeed: spec.JumpSpeed,
		Gravity:   spec.Gravity,
		Grounded:  true,
	})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	if spec.Shape != "" {
		sprite.Image = assets.NewShape(assets.Shape(spec.Shape), spec.Width, spec.Height, spec.Color.Or(colornames.White))
	}
	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero {
		sprite.OriginX, sprite.OriginY = centerOf(spec.Width, spec.Height)
	}
	sprite.Hidden = spec.Hidden

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

func centerOf(w, h int) (float64, float64) {
	if h <= 0 {
		h = w
	}
	return float64(w) / 2, float64(h) / 2
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	category, err := parseCategory(spec.Category)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    spec.Width,
		Height:   spec.Height,
		Radius:   spec.Radius,
		Mass:     spec.Mass,
		Friction: spec.Friction,
		Static:   spec.Static,
		Category: category,
	})
}

func parseCategory(v string) (component.PhysicsCategory, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "solid":
		return component.CategorySolid, nil
	case "character":
		return component.CategoryCharacter, nil
	case "prop":
		return component.CategoryProp, nil
	default:
		return 0, fmt.Errorf("unknown physics category %q", v)
	}
}

type propSpec = prefabs.PropComponentSpec

func addProp(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[propSpec](raw)
	if err != nil {
		return fmt.Errorf("decode prop spec: %w", err)
	}
	prop := &component.Prop{
		Kind:           spec.Kind,
		Extinguishable: spec.Extinguishable,
		Lit:            spec.Lit,
	}
	if spec.Extinguishable && spec.UnlitColor != nil {
		// the unlit sprite keeps the lit sprite's size
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && sprite.Image != nil {
			b := sprite.Image.Bounds()
			prop.UnlitImage = assets.NewShape(assets.ShapeCircle, b.Dx(), b.Dy(), spec.UnlitColor.Or(colornames.Gray))
		}
	}
	return ecs.Add(w, e, component.PropComponent.Kind(), prop)
}

type npcSpec = prefabs.NPCComponentSpec

func addNPC(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[npcSpec](raw)
	if err != nil {
		return fmt.Errorf("decode npc spec: %w", err)
	}
	if spec.Name == "" {
		return fmt.Errorf("npc needs a name")
	}
	if spec.InteractionRadius <= 0 {
		spec.InteractionRadius = 64
	}
	return ecs.Add(w, e, component.NPCComponent.Kind(), &component.NPC{
		Name:              spec.Name,
		Prompt:            spec.Prompt,
		Script:            spec.Script,
		InteractionRadius: spec.InteractionRadius,
	})
}

type crosshairSpec = prefabs.CrosshairComponentSpec

func addCrosshair(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[crosshairSpec](raw)
	if err != nil {
		return fmt.Errorf("decode crosshair spec: %w", err)
	}
	textures := &component.CrosshairTextures{
		Dot:    assets.CrosshairDot(spec.Size, spec.DotColor.Or(colornames.White)),
		Square: assets.CrosshairSquare(spec.Size, spec.SquareColor.Or(colornames.White)),
	}
	crosshair := component.NewCrosshair()
	if err := ecs.Add(w, e, component.CrosshairComponent.Kind(), crosshair); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.CrosshairTexturesComponent.Kind(), textures); err != nil {
		return err
	}

	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.OriginX, sprite.OriginY = centerOf(max(spec.Size, 1), max(spec.Size, 1))
	}
	// nothing has claimed yet, so this shows the cascade default
	system.ApplyCrosshair(w, e, crosshair.Claims.Derive())
	return nil
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	if spec.FrameW <= 0 || spec.FrameH <= 0 {
		return fmt.Errorf("animation frame size must be positive, got %dx%d", spec.FrameW, spec.FrameH)
	}

	clips := make(map[string]component.AnimationClip, len(spec.Defs))
	sheetClips := make([]assets.SheetClip, 0, len(spec.Defs))
	for name, def := range spec.Defs {
		clips[name] = component.AnimationClip{
			Name:       name,
			Row:        def.Row,
			ColStart:   def.ColStart,
			FrameCount: def.FrameCount,
			FrameW:     spec.FrameW,
			FrameH:     spec.FrameH,
			FPS:        def.FPS,
		}
		sheetClips = append(sheetClips, assets.SheetClip{Name: name, Row: def.Row, ColStart: def.ColStart, FrameCount: def.FrameCount})
	}

	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && sprite.OriginX == 0 && sprite.OriginY == 0 {
		sprite.OriginX, sprite.OriginY = centerOf(spec.FrameW, spec.FrameH)
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Sheet: assets.NewSheet(spec.FrameW, spec.FrameH, spec.Color.Or(colornames.White), sheetClips),
		Clips: clips,
	})
}

type animationStateSpec = prefabs.AnimationStateComponentSpec

func addAnimationState(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationStateSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation state spec: %w", err)
	}
	if spec.Config == "" {
		return fmt.Errorf("animation state needs a config")
	}
	engine, err := resolveEngine(ctx.Animations, spec.Config)
	if err != nil {
		return err
	}

	an, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return fmt.Errorf("animation state %q requires an animation component", spec.Config)
	}
	if err := system.ValidateClips(engine, an.Clips); err != nil {
		return fmt.Errorf("%s: %w", spec.Config, err)
	}

	system.StartClip(an, engine.Transition(engine.Initial()))
	return ecs.Add(w, e, component.AnimationStateComponent.Kind(), &component.AnimationState{
		Config:  spec.Config,
		Machine: engine.NewState(),
	})
}

func resolveEngine(lib *anim.Library, name string) (*anim.Engine, error) {
	if engine, ok := lib.Get(name); ok {
		return engine, nil
	}
	engine, err := prefabs.LoadAnimationEngine(name)
	if err != nil {
		return nil, err
	}
	lib.Register(name, engine)
	return engine, nil
}
