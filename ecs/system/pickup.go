package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/foxtrot/claim"
	"github.com/milk9111/foxtrot/common"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

const defaultHoldDistance = 28.0

// SegmentProber finds the first entity of a category along a segment.
// PhysicsSystem implements it with a Chipmunk segment query.
type SegmentProber interface {
	FirstAlong(x0, y0, x1, y1 float64, category component.PhysicsCategory) (ecs.Entity, bool)
}

// PickupProbeSystem casts the view ray from the player. Looking at a prop
// within reach asserts the square crosshair; anything else retracts it.
type PickupProbeSystem struct {
	prober   SegmentProber
	claimant claim.Claimant
}

func NewPickupProbeSystem(prober SegmentProber) *PickupProbeSystem {
	return &PickupProbeSystem{prober: prober, claimant: claim.NewClaimant("pickup_probe")}
}

func (p *PickupProbeSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	crosshair, hasCrosshair := firstCrosshair(w)

	player, ok := firstPlayer(w)
	if !ok {
		if hasCrosshair {
			crosshair.Claims.RetractAll(p.claimant)
		}
		return
	}

	target := p.probe(w, player)
	if err := ecs.Add(w, player, component.PickupTargetComponent.Kind(), &target); err != nil {
		panic("pickup probe: update target: " + err.Error())
	}
	if hasCrosshair {
		crosshair.Claims.Set(component.CrosshairPreferSquare, p.claimant, target.Valid)
	}
}

func (p *PickupProbeSystem) probe(w *ecs.World, player ecs.Entity) component.PickupTarget {
	if p.prober == nil || paused(w) || inDialogue(w) {
		return component.PickupTarget{}
	}
	if _, holding := heldBy(w, player); holding {
		return component.PickupTarget{}
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return component.PickupTarget{}
	}
	reach := 0.0
	if pl, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		reach = pl.InteractionDistance
	}
	if reach <= 0 {
		return component.PickupTarget{}
	}

	fx, fy := common.Facing(t.Rotation)
	hit, ok := p.prober.FirstAlong(t.X, t.Y, t.X+fx*reach, t.Y+fy*reach, component.CategoryProp)
	if !ok || !ecs.Has(w, hit, component.PropComponent.Kind()) || ecs.Has(w, hit, component.HeldComponent.Kind()) {
		return component.PickupTarget{}
	}
	return component.PickupTarget{Entity: uint64(hit), Valid: true}
}

// HeldPropSystem picks up the probed prop, carries it in front of the player
// and drops or throws it. Carrying hides the crosshair.
type HeldPropSystem struct {
	claimant     claim.Claimant
	holdDistance float64
}

func NewHeldPropSystem() *HeldPropSystem {
	return &HeldPropSystem{claimant: claim.NewClaimant("held_prop"), holdDistance: defaultHoldDistance}
}

func (h *HeldPropSystem) Update(w *ecs.World) {
	if h == nil || w == nil {
		return
	}
	h.dropOrphans(w)
	crosshair, hasCrosshair := firstCrosshair(w)

	player, ok := firstPlayer(w)
	if !ok {
		if hasCrosshair {
			crosshair.Claims.RetractAll(h.claimant)
		}
		return
	}

	held, holding := heldBy(w, player)
	in, _ := ecs.Get(w, player, component.InputComponent.Kind())
	if in != nil && !paused(w) && !inDialogue(w) {
		switch {
		case holding && (in.DropPressed || in.PickupPressed):
			h.release(w, player, held, 0)
			holding = false
		case holding && in.ThrowPressed:
			speed := 0.0
			if pl, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
				speed = pl.ThrowSpeed
			}
			h.release(w, player, held, speed)
			holding = false
		case !holding && in.PickupPressed:
			if target, ok := ecs.Get(w, player, component.PickupTargetComponent.Kind()); ok && target.Valid {
				held = ecs.Entity(target.Entity)
				holding = h.pickUp(w, player, held)
			}
		}
	}

	if holding {
		h.carry(w, player, held)
	}
	if hasCrosshair {
		crosshair.Claims.Set(component.CrosshairForceHidden, h.claimant, holding)
	}
}

func (h *HeldPropSystem) pickUp(w *ecs.World, player, prop ecs.Entity) bool {
	p, ok := ecs.Get(w, prop, component.PropComponent.Kind())
	if !ok || ecs.Has(w, prop, component.HeldComponent.Kind()) {
		return false
	}
	if err := ecs.Add(w, prop, component.HeldComponent.Kind(), &component.Held{By: uint64(player), Distance: h.holdDistance}); err != nil {
		return false
	}

	if p.Extinguishable && p.Lit {
		p.Lit = false
		if sprite, ok := ecs.Get(w, prop, component.SpriteComponent.Kind()); ok && p.UnlitImage != nil {
			sprite.Image = p.UnlitImage
		}
	}
	if body, ok := ecs.Get(w, prop, component.PhysicsBodyComponent.Kind()); ok && body.Shape != nil {
		body.Shape.SetSensor(true)
	}
	return true
}

func (h *HeldPropSystem) carry(w *ecs.World, player, prop ecs.Entity) {
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	held, ok := ecs.Get(w, prop, component.HeldComponent.Kind())
	if !ok {
		return
	}
	fx, fy := common.Facing(pt.Rotation)
	x := pt.X + fx*held.Distance
	y := pt.Y + fy*held.Distance

	if t, ok := ecs.Get(w, prop, component.TransformComponent.Kind()); ok {
		t.X, t.Y = x, y
	}
	if body, ok := ecs.Get(w, prop, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil && !body.Static {
		body.Body.SetPosition(cp.Vector{X: x, Y: y})
		body.Body.SetVelocity(0, 0)
		body.Body.SetAngularVelocity(0)
	}
}

func (h *HeldPropSystem) release(w *ecs.World, player, prop ecs.Entity, speed float64) {
	ecs.Remove(w, prop, component.HeldComponent.Kind())
	body, ok := ecs.Get(w, prop, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil {
		return
	}
	if body.Shape != nil {
		body.Shape.SetSensor(false)
	}
	if speed <= 0 {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	fx, fy := common.Facing(pt.Rotation)
	body.Body.SetVelocity(fx*speed, fy*speed)
}

// dropOrphans releases props whose holder has despawned.
func (h *HeldPropSystem) dropOrphans(w *ecs.World) {
	var orphans []ecs.Entity
	ecs.ForEach(w, component.HeldComponent.Kind(), func(e ecs.Entity, held *component.Held) {
		if !w.IsAlive(ecs.Entity(held.By)) {
			orphans = append(orphans, e)
		}
	})
	for _, prop := range orphans {
		h.release(w, ecs.Entity(0), prop, 0)
	}
}

// heldBy finds the prop carried by holder.
func heldBy(w *ecs.World, holder ecs.Entity) (ecs.Entity, bool) {
	var found ecs.Entity
	ok := false
	ecs.ForEach(w, component.HeldComponent.Kind(), func(e ecs.Entity, held *component.Held) {
		if !ok && ecs.Entity(held.By) == holder {
			found = e
			ok = true
		}
	})
	return found, ok
}
