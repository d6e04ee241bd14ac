package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/foxtrot/anim"
)

// AnimationClip is one row of frames in a sprite sheet.
type AnimationClip struct {
	Name       string
	Row        int
	ColStart   int // start column (frame 0)
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
}

// Animation is the playback side: which clips exist, the active cross-fade
// and the frame cursor of both clips in the fade. Only the playback system
// writes it.
type Animation struct {
	Sheet      *ebiten.Image
	Clips      map[string]AnimationClip
	Fade       anim.CrossFade
	Frame      int
	FrameTimer int
	FromFrame  int
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()

// AnimationState retains the committed intent of an entity. Config names the
// engine in the animation library. Only the intent system writes it.
type AnimationState struct {
	Config  string
	Machine *anim.State
	Last    anim.Directive
	Alters  int
}

var AnimationStateComponent = NewComponent[AnimationState]()

// Rect returns the sheet rectangle of frame in clip.
func (c AnimationClip) Rect(frame int) image.Rectangle {
	x := c.ColStart*c.FrameW + frame*c.FrameW
	y := c.Row * c.FrameH
	return image.Rect(x, y, x+c.FrameW, y+c.FrameH)
}

// FromRect is the outgoing frame while a cross-fade is blending.
func (a *Animation) FromRect() (image.Rectangle, bool) {
	if a == nil || !a.Fade.Blending() {
		return image.Rectangle{}, false
	}
	clip, ok := a.Clips[a.Fade.From]
	if !ok {
		return image.Rectangle{}, false
	}
	return clip.Rect(a.FromFrame), true
}
