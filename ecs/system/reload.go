package system

import (
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/milk9111/foxtrot/anim"
	"github.com/milk9111/foxtrot/dialogue"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
	"github.com/milk9111/foxtrot/prefabs"
)

var ErrMissingClip = errors.New("animation config names a clip the sheet lacks")

// ValidateClips checks that every transition of engine plays a clip from
// clips.
func ValidateClips(engine *anim.Engine, clips map[string]component.AnimationClip) error {
	var missing []string
	for _, k := range anim.Kinds() {
		name := engine.Transition(k).Clip
		if clip, ok := clips[name]; !ok || clip.FrameCount <= 0 {
			missing = append(missing, fmt.Sprintf("%s->%q", k, name))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingClip, strings.Join(missing, ", "))
	}
	return nil
}

// ChangeSource reports edited prefab files. prefabs.Watcher implements it.
type ChangeSource interface {
	Poll() []prefabs.Change
}

// ReloadSystem applies prefab edits between ticks. An animation config that
// fails validation, or names clips an entity using it lacks, is logged and
// the previous engine stays. Dialogue scripts that fail to compile are
// handled the same way.
type ReloadSystem struct {
	source     ChangeSource
	animations *anim.Library
	scripts    *dialogue.Library
}

func NewReloadSystem(source ChangeSource, animations *anim.Library, scripts *dialogue.Library) *ReloadSystem {
	return &ReloadSystem{source: source, animations: animations, scripts: scripts}
}

func (r *ReloadSystem) Update(w *ecs.World) {
	if r == nil || r.source == nil || w == nil {
		return
	}
	for _, change := range r.source.Poll() {
		switch change.Kind {
		case prefabs.ChangeSpec:
			r.reloadAnimation(w, change.Name)
		case prefabs.ChangeDialogue:
			r.reloadDialogue(change.Name)
		}
	}
}

func (r *ReloadSystem) reloadAnimation(w *ecs.World, name string) {
	if _, ok := r.animations.Get(name); !ok {
		// entity prefabs only apply to new spawns
		slog.Debug("reload: ignoring prefab", "name", name)
		return
	}
	engine, err := prefabs.LoadAnimationEngine(name)
	if err != nil {
		slog.Warn("reload: animation config rejected, keeping previous", "name", name, "err", err)
		return
	}

	var clipErr error
	ecs.ForEach2(w, component.AnimationStateComponent.Kind(), component.AnimationComponent.Kind(), func(e ecs.Entity, st *component.AnimationState, an *component.Animation) {
		if clipErr != nil || st.Config != name {
			return
		}
		if err := ValidateClips(engine, an.Clips); err != nil {
			clipErr = fmt.Errorf("entity %v: %w", e, err)
		}
	})
	if clipErr != nil {
		slog.Warn("reload: animation config rejected, keeping previous", "name", name, "err", clipErr)
		return
	}

	r.animations.Register(name, engine)
	slog.Info("reload: animation config applied", "name", name)
}

func (r *ReloadSystem) reloadDialogue(name string) {
	src, err := prefabs.LoadDialogue(name)
	if err != nil {
		slog.Warn("reload: read dialogue", "name", name, "err", err)
		return
	}
	key := strings.TrimSuffix(path.Base(name), ".tengo")
	if err := r.scripts.Load(key, src); err != nil {
		slog.Warn("reload: dialogue rejected, keeping previous", "name", key, "err", err)
		return
	}
	slog.Info("reload: dialogue applied", "name", key)
}
