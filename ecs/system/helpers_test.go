package system

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/foxtrot/anim"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

type fixture struct {
	w         *ecs.World
	session   ecs.Entity
	crosshair ecs.Entity
	player    ecs.Entity
	dot       *ebiten.Image
	square    *ebiten.Image
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// newFixture builds a world with the session singletons, a crosshair and a
// player standing at the origin facing +X.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{w: ecs.NewWorld(), dot: new(ebiten.Image), square: new(ebiten.Image)}

	f.session = ecs.CreateEntity(f.w)
	mustAdd(t, f.w, f.session, component.InteractionPromptComponent.Kind(), component.NewInteractionPrompt())
	mustAdd(t, f.w, f.session, component.DialogueStateComponent.Kind(), &component.DialogueState{Visits: map[string]int{}})
	mustAdd(t, f.w, f.session, component.CursorStateComponent.Kind(), &component.CursorState{Captured: true})
	mustAdd(t, f.w, f.session, component.PauseStateComponent.Kind(), &component.PauseState{})

	f.crosshair = ecs.CreateEntity(f.w)
	mustAdd(t, f.w, f.crosshair, component.CrosshairComponent.Kind(), component.NewCrosshair())
	mustAdd(t, f.w, f.crosshair, component.CrosshairTexturesComponent.Kind(), &component.CrosshairTextures{Dot: f.dot, Square: f.square})
	mustAdd(t, f.w, f.crosshair, component.SpriteComponent.Kind(), &component.Sprite{Image: f.dot})
	mustAdd(t, f.w, f.crosshair, component.TransformComponent.Kind(), &component.Transform{})

	f.player = ecs.CreateEntity(f.w)
	mustAdd(t, f.w, f.player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, f.w, f.player, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, f.w, f.player, component.PlayerComponent.Kind(), &component.Player{LookSpeed: 0.01, InteractionDistance: 96, ThrowSpeed: 300})
	mustAdd(t, f.w, f.player, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1})
	return f
}

func (f *fixture) input(t *testing.T) *component.Input {
	t.Helper()
	in, ok := ecs.Get(f.w, f.player, component.InputComponent.Kind())
	if !ok {
		t.Fatalf("player has no input")
	}
	return in
}

func (f *fixture) crosshairClaims(t *testing.T) *component.Crosshair {
	t.Helper()
	c, ok := ecs.Get(f.w, f.crosshair, component.CrosshairComponent.Kind())
	if !ok {
		t.Fatalf("missing crosshair")
	}
	return c
}

func (f *fixture) crosshairSprite(t *testing.T) *component.Sprite {
	t.Helper()
	s, ok := ecs.Get(f.w, f.crosshair, component.SpriteComponent.Kind())
	if !ok {
		t.Fatalf("missing crosshair sprite")
	}
	return s
}

// eventCounter is a consume-stage system that counts events by type.
type eventCounter struct {
	counts map[ecs.EventType]int
	last   map[ecs.EventType]ecs.Event
}

func newEventCounter() *eventCounter {
	return &eventCounter{counts: map[ecs.EventType]int{}, last: map[ecs.EventType]ecs.Event{}}
}

func (c *eventCounter) Update(w *ecs.World) {
	for _, t := range []ecs.EventType{
		EventCrosshairChanged, EventPromptChanged, EventAnimationAltered,
		EventDialogueStarted, EventDialogueLine, EventDialogueEnded,
	} {
		w.Events().Each(t, func(evt ecs.Event) {
			c.counts[t]++
			c.last[t] = evt
		})
	}
}

// funcSystem adapts a closure to ecs.System.
type funcSystem func(w *ecs.World)

func (f funcSystem) Update(w *ecs.World) { f(w) }

func testAnimationTable() anim.Table {
	return anim.Table{
		anim.Idle:    {Clip: "idle", Blend: 200 * time.Millisecond, Loop: anim.Repeat},
		anim.Moving:  {Clip: "walk", Blend: 150 * time.Millisecond, Loop: anim.Repeat},
		anim.Jumping: {Clip: "jump", Blend: 80 * time.Millisecond, Loop: anim.PlayOnce},
		anim.Falling: {Clip: "fall", Blend: 120 * time.Millisecond, Loop: anim.Repeat},
		anim.Landing: {Clip: "land", Blend: 60 * time.Millisecond, Loop: anim.PlayOnce},
	}
}
