package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/foxtrot/anim"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

func testLibrary(t *testing.T) (*anim.Library, *anim.Engine) {
	t.Helper()
	engine, err := anim.NewEngine(anim.Config{
		Initial:     anim.Idle,
		Thresholds:  anim.DefaultThresholds(),
		Transitions: testAnimationTable(),
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	lib := anim.NewLibrary()
	lib.Register("test", engine)
	return lib, engine
}

func testClips() map[string]component.AnimationClip {
	clips := map[string]component.AnimationClip{}
	for row, name := range []string{"idle", "walk", "jump", "fall", "land"} {
		clips[name] = component.AnimationClip{Name: name, Row: row, FrameCount: 4, FrameW: 24, FrameH: 24, FPS: 10}
	}
	return clips
}

// addAnimated spawns an animated character and applies its initial clip the
// way entity builders do.
func addAnimated(t *testing.T, w *ecs.World, e ecs.Entity, engine *anim.Engine, c *component.Controller) {
	t.Helper()
	an := &component.Animation{Sheet: new(ebiten.Image), Clips: testClips()}
	StartClip(an, engine.Transition(anim.Idle))
	mustAdd(t, w, e, component.ControllerComponent.Kind(), c)
	mustAdd(t, w, e, component.AnimationStateComponent.Kind(), &component.AnimationState{Config: "test", Machine: engine.NewState()})
	mustAdd(t, w, e, component.AnimationComponent.Kind(), an)
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{})
}

func TestStableIntentProducesNoFades(t *testing.T) {
	lib, engine := testLibrary(t)
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	addAnimated(t, w, e, engine, &component.Controller{Grounded: true})

	counter := newEventCounter()
	s := ecs.NewScheduler()
	s.MustAdd(ecs.StageProduce, NewAnimationIntentSystem(lib))
	s.MustAdd(ecs.StageConsume, NewAnimationPlaybackSystem(lib), counter)

	s.Update(w)
	s.Update(w)

	if got := counter.counts[EventAnimationAltered]; got != 0 {
		t.Fatalf("idle twice must not alter, got %d", got)
	}
	an, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if an.Fade.Started != 1 {
		t.Fatalf("expected only the spawn fade, got %d", an.Fade.Started)
	}
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !sprite.UseSource || sprite.Source != an.Clips["idle"].Rect(0) {
		t.Fatalf("sprite should show idle frame 0, got %v", sprite.Source)
	}
}

func TestIntentChangeStartsCrossFade(t *testing.T) {
	lib, engine := testLibrary(t)
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	c := &component.Controller{Grounded: true}
	addAnimated(t, w, e, engine, c)

	counter := newEventCounter()
	s := ecs.NewScheduler()
	s.MustAdd(ecs.StageProduce, NewAnimationIntentSystem(lib))
	s.MustAdd(ecs.StageConsume, NewAnimationPlaybackSystem(lib), counter)

	s.Update(w)
	c.MoveY = 1
	s.Update(w)

	if got := counter.counts[EventAnimationAltered]; got != 1 {
		t.Fatalf("expected one alter, got %d", got)
	}
	d := counter.last[EventAnimationAltered].Data.(anim.Directive)
	if d.Old.Kind != anim.Idle || d.New.Kind != anim.Moving {
		t.Fatalf("unexpected directive %s", d)
	}

	an, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if an.Fade.From != "idle" || an.Fade.To != "walk" || an.Fade.Started != 2 {
		t.Fatalf("unexpected fade %+v", an.Fade)
	}
	if !an.Fade.Blending() {
		t.Fatalf("walk fade should still be blending")
	}
	if _, ok := an.FromRect(); !ok {
		t.Fatalf("outgoing frame should be drawable while blending")
	}

	// more speed, same tag
	c.MoveY = 0.6
	s.Update(w)
	if got := counter.counts[EventAnimationAltered]; got != 1 {
		t.Fatalf("payload change must not alter, got %d", got)
	}

	st, _ := ecs.Get(w, e, component.AnimationStateComponent.Kind())
	if st.Alters != 1 {
		t.Fatalf("expected 1 alter recorded, got %d", st.Alters)
	}
}

func TestPlaybackHoldsLastFrameOfOneShot(t *testing.T) {
	an := &component.Animation{Clips: testClips()}
	StartClip(an, testAnimationTable()[anim.Landing])
	for i := 0; i < 100; i++ {
		advanceFrame(an)
	}
	if an.Frame != 3 || an.Playing {
		t.Fatalf("one-shot should stop on its last frame, frame=%d playing=%v", an.Frame, an.Playing)
	}

	StartClip(an, testAnimationTable()[anim.Idle])
	for i := 0; i < 4*6; i++ {
		advanceFrame(an)
	}
	if an.Frame != 0 || !an.Playing {
		t.Fatalf("looping clip should wrap, frame=%d playing=%v", an.Frame, an.Playing)
	}
}

func TestPlaybackFrozenWhilePaused(t *testing.T) {
	lib, engine := testLibrary(t)
	f := newFixture(t)
	addAnimated(t, f.w, f.player, engine, &component.Controller{Grounded: true})
	pause, _ := ecs.Get(f.w, f.session, component.PauseStateComponent.Kind())
	pause.Paused = true

	s := ecs.NewScheduler()
	s.MustAdd(ecs.StageConsume, NewAnimationPlaybackSystem(lib))
	for i := 0; i < 30; i++ {
		s.Update(f.w)
	}
	an, _ := ecs.Get(f.w, f.player, component.AnimationComponent.Kind())
	if an.Frame != 0 || an.Fade.Elapsed != 0 {
		t.Fatalf("paused playback advanced: frame=%d elapsed=%v", an.Frame, an.Fade.Elapsed)
	}
}
