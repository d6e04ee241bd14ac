package system

import (
	"github.com/milk9111/foxtrot/anim"
	"github.com/milk9111/foxtrot/common"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

// AnimationPlaybackSystem consumes Alter events: it looks up the transition
// for the new intent and starts a cross-fade into its clip. Every tick it
// advances fades and frames and points the sprite at the current frame.
type AnimationPlaybackSystem struct {
	library *anim.Library
}

func NewAnimationPlaybackSystem(library *anim.Library) *AnimationPlaybackSystem {
	return &AnimationPlaybackSystem{library: library}
}

func (a *AnimationPlaybackSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}

	w.Events().Each(EventAnimationAltered, func(evt ecs.Event) {
		d, ok := evt.Data.(anim.Directive)
		if !ok || !d.Alter {
			return
		}
		st, ok := ecs.Get(w, evt.Entity, component.AnimationStateComponent.Kind())
		if !ok {
			return
		}
		engine, ok := a.library.Get(st.Config)
		if !ok {
			return
		}
		an, ok := ecs.Get(w, evt.Entity, component.AnimationComponent.Kind())
		if !ok {
			return
		}
		StartClip(an, engine.Transition(d.New.Kind))
	})

	if paused(w) {
		return
	}

	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, an *component.Animation, sprite *component.Sprite) {
		an.Fade.Advance(common.TickDuration)
		advanceFrame(an)

		clip, ok := an.Clips[an.Fade.To]
		if !ok || an.Sheet == nil {
			return
		}
		sprite.Image = an.Sheet
		sprite.Source = clip.Rect(an.Frame)
		sprite.UseSource = true
	})
}

// StartClip begins a cross-fade into tr. The outgoing clip holds the frame
// it was on. Entity builders call it for the initial intent.
func StartClip(an *component.Animation, tr anim.Transition) {
	if an == nil {
		return
	}
	an.FromFrame = an.Frame
	an.Fade.Start(tr)
	an.Frame = 0
	an.FrameTimer = 0
	an.Playing = true
}

func advanceFrame(an *component.Animation) {
	if !an.Playing {
		return
	}
	clip, ok := an.Clips[an.Fade.To]
	if !ok || clip.FrameCount <= 0 {
		return
	}

	ticksPerFrame := 1
	if clip.FPS > 0 {
		ticksPerFrame = max(1, int(common.TPS/clip.FPS))
	}

	an.FrameTimer++
	if an.FrameTimer < ticksPerFrame {
		return
	}
	an.FrameTimer = 0
	an.Frame++
	if an.Frame >= clip.FrameCount {
		if an.Fade.Looping() {
			an.Frame = 0
		} else {
			an.Frame = clip.FrameCount - 1
			an.Playing = false
		}
	}
}
