package system

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/foxtrot/anim"
	"github.com/milk9111/foxtrot/dialogue"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
	"github.com/milk9111/foxtrot/prefabs"
	"github.com/stretchr/testify/require"
)

type fakeChanges struct {
	pending []prefabs.Change
}

func (f *fakeChanges) Poll() []prefabs.Change {
	out := f.pending
	f.pending = nil
	return out
}

func slowIdleEngine(t *testing.T) *anim.Engine {
	t.Helper()
	table := testAnimationTable()
	idle := table[anim.Idle]
	idle.Blend = 999 * time.Millisecond
	table[anim.Idle] = idle
	engine, err := anim.NewEngine(anim.Config{Initial: anim.Idle, Thresholds: anim.DefaultThresholds(), Transitions: table})
	require.NoError(t, err)
	return engine
}

func spawnWithConfig(t *testing.T, w *ecs.World, config string, clips map[string]component.AnimationClip) {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.AnimationStateComponent.Kind(), &component.AnimationState{Config: config})
	mustAdd(t, w, e, component.AnimationComponent.Kind(), &component.Animation{Clips: clips})
}

func TestReloadAppliesValidAnimationConfig(t *testing.T) {
	lib := anim.NewLibrary()
	lib.Register("animation.yaml", slowIdleEngine(t))
	w := ecs.NewWorld()
	spawnWithConfig(t, w, "animation.yaml", testClips())

	src := &fakeChanges{pending: []prefabs.Change{{Name: "animation.yaml", Kind: prefabs.ChangeSpec}}}
	NewReloadSystem(src, lib, dialogue.NewLibrary()).Update(w)

	engine, ok := lib.Get("animation.yaml")
	require.True(t, ok)
	require.Equal(t, 200*time.Millisecond, engine.Transition(anim.Idle).Blend)
}

func TestReloadKeepsEngineWhenClipsMissing(t *testing.T) {
	lib := anim.NewLibrary()
	previous := slowIdleEngine(t)
	lib.Register("animation.yaml", previous)
	w := ecs.NewWorld()
	clips := testClips()
	delete(clips, "land")
	spawnWithConfig(t, w, "animation.yaml", clips)

	src := &fakeChanges{pending: []prefabs.Change{{Name: "animation.yaml", Kind: prefabs.ChangeSpec}}}
	NewReloadSystem(src, lib, dialogue.NewLibrary()).Update(w)

	engine, _ := lib.Get("animation.yaml")
	require.Same(t, previous, engine)
}

func TestReloadIgnoresEntityPrefabs(t *testing.T) {
	lib := anim.NewLibrary()
	src := &fakeChanges{pending: []prefabs.Change{{Name: "player.yaml", Kind: prefabs.ChangeSpec}}}
	NewReloadSystem(src, lib, dialogue.NewLibrary()).Update(ecs.NewWorld())
	require.Empty(t, lib.Names())
}

func TestReloadDialogue(t *testing.T) {
	scripts := dialogue.NewLibrary()
	src := &fakeChanges{pending: []prefabs.Change{{Name: "dialogue/fox.tengo", Kind: prefabs.ChangeDialogue}}}
	NewReloadSystem(src, anim.NewLibrary(), scripts).Update(ecs.NewWorld())
	_, ok := scripts.Get("fox")
	require.True(t, ok)
}

func TestValidateClips(t *testing.T) {
	_, engine := testLibrary(t)
	require.NoError(t, ValidateClips(engine, testClips()))

	clips := testClips()
	clips["jump"] = component.AnimationClip{Name: "jump"}
	err := ValidateClips(engine, clips)
	require.True(t, errors.Is(err, ErrMissingClip))
	require.ErrorContains(t, err, "jumping")
}
