package system

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/foxtrot/common"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
	"golang.org/x/image/colornames"
)

// heightScale grows airborne sprites so jumps read in the top-down view.
const heightScale = 1.0 / 120

// RenderSystem draws the ground plane from above, rotated so the player
// always faces up the screen. Screen-space sprites are drawn last, unrotated.
type RenderSystem struct {
	Debug bool
	// Space, when set, is outlined in debug mode.
	Space *cp.Space
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawItem struct {
	e      ecs.Entity
	layer  int
	screen bool
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Darkslategray)

	view := r.viewMatrix(w)

	var items []drawItem
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, s *component.Sprite) {
		if s.Image == nil || s.Hidden {
			return
		}
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, drawItem{e: e, layer: layer, screen: ecs.Has(w, e, component.ScreenSpaceComponent.Kind())})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].screen != items[j].screen {
			return !items[i].screen
		}
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		r.drawEntity(w, screen, it, view)
	}

	if r.Debug {
		DrawPhysicsDebug(r.Space, screen, view)
		r.drawProbe(w, screen)
		DrawStateDebug(w, screen)
	}
}

func (r *RenderSystem) viewMatrix(w *ecs.World) ebiten.GeoM {
	var view ebiten.GeoM
	player, ok := firstPlayer(w)
	if !ok {
		return view
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return view
	}
	view.Translate(-t.X, -t.Y)
	view.Rotate(-math.Pi/2 - t.Rotation)
	view.Translate(common.ViewAnchorX, common.ViewAnchorY)
	return view
}

func (r *RenderSystem) drawEntity(w *ecs.World, screen *ebiten.Image, it drawItem, view ebiten.GeoM) {
	t, ok := ecs.Get(w, it.e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	s, ok := ecs.Get(w, it.e, component.SpriteComponent.Kind())
	if !ok {
		return
	}

	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if c, ok := ecs.Get(w, it.e, component.ControllerComponent.Kind()); ok && c.Height > 0 {
		grow := 1 + c.Height*heightScale
		sx *= grow
		sy *= grow
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.OriginX, -s.OriginY)
	op.GeoM.Scale(sx, sy)
	if !it.screen {
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		op.GeoM.Concat(view)
	} else {
		op.GeoM.Translate(t.X, t.Y)
	}

	img := s.Image
	if s.UseSource {
		if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
			img = sub
		}
	}

	an, animated := ecs.Get(w, it.e, component.AnimationComponent.Kind())
	if !animated || an.Sheet == nil {
		screen.DrawImage(img, op)
		return
	}

	weight := an.Fade.Weight()
	if from, ok := an.FromRect(); ok {
		if sub, ok := an.Sheet.SubImage(from).(*ebiten.Image); ok {
			fromOp := *op
			fromOp.ColorScale.ScaleAlpha(float32(1 - weight))
			screen.DrawImage(sub, &fromOp)
		}
	}
	op.ColorScale.ScaleAlpha(float32(weight))
	screen.DrawImage(img, op)
}

func (r *RenderSystem) drawProbe(w *ecs.World, screen *ebiten.Image) {
	player, ok := firstPlayer(w)
	if !ok {
		return
	}
	pl, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	c := colornames.Orangered
	if target, ok := ecs.Get(w, player, component.PickupTargetComponent.Kind()); ok && target.Valid {
		c = colornames.Lime
	}
	x := float32(common.ViewAnchorX)
	y := float32(common.ViewAnchorY)
	vector.StrokeLine(screen, x, y, x, y-float32(pl.InteractionDistance), 1, c, false)
}
