package system

import (
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

// CrosshairSystem applies crosshair change events to the sprite: glyph
// texture and visibility. Without an event it does nothing.
type CrosshairSystem struct{}

func NewCrosshairSystem() *CrosshairSystem {
	return &CrosshairSystem{}
}

func (c *CrosshairSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	w.Events().Each(EventCrosshairChanged, func(evt ecs.Event) {
		view, ok := evt.Data.(component.CrosshairView)
		if !ok {
			return
		}
		ApplyCrosshair(w, evt.Entity, view)
	})
}

// ApplyCrosshair sets the sprite of a crosshair entity to view. Entity
// builders call it once at spawn with the derived default.
func ApplyCrosshair(w *ecs.World, e ecs.Entity, view component.CrosshairView) {
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	if textures, ok := ecs.Get(w, e, component.CrosshairTexturesComponent.Kind()); ok {
		if img := textures.For(view.Glyph()); img != nil {
			sprite.Image = img
		}
	}
	sprite.Hidden = !view.Visible()
}
