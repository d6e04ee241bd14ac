package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

type fakeProber struct {
	hit   ecs.Entity
	ok    bool
	calls int
}

func (p *fakeProber) FirstAlong(x0, y0, x1, y1 float64, category component.PhysicsCategory) (ecs.Entity, bool) {
	p.calls++
	return p.hit, p.ok
}

func addProp(t *testing.T, f *fixture, prop *component.Prop) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(f.w)
	mustAdd(t, f.w, e, component.PropComponent.Kind(), prop)
	mustAdd(t, f.w, e, component.TransformComponent.Kind(), &component.Transform{X: 40})
	mustAdd(t, f.w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: new(ebiten.Image)})
	return e
}

func pickupScheduler(prober SegmentProber) (*ecs.Scheduler, *eventCounter) {
	counter := newEventCounter()
	s := ecs.NewScheduler()
	s.MustAdd(ecs.StageProduce, NewPickupProbeSystem(prober), NewHeldPropSystem())
	s.MustAdd(ecs.StageResolve, NewCrosshairResolveSystem())
	s.MustAdd(ecs.StageConsume, NewCrosshairSystem(), counter)
	return s, counter
}

func TestProbeAssertsSquareOnProp(t *testing.T) {
	f := newFixture(t)
	book := addProp(t, f, &component.Prop{Kind: "book"})
	prober := &fakeProber{hit: book, ok: true}
	s, _ := pickupScheduler(prober)

	s.Update(f.w)
	if got := f.crosshairClaims(t).Claims.Last(); got != component.CrosshairSquare {
		t.Fatalf("expected square, got %s", got)
	}
	target, _ := ecs.Get(f.w, f.player, component.PickupTargetComponent.Kind())
	if !target.Valid || ecs.Entity(target.Entity) != book {
		t.Fatalf("expected target %v, got %+v", book, target)
	}

	prober.ok = false
	s.Update(f.w)
	if got := f.crosshairClaims(t).Claims.Last(); got != component.CrosshairDot {
		t.Fatalf("expected dot after looking away, got %s", got)
	}
}

func TestProbeIgnoresNonProps(t *testing.T) {
	f := newFixture(t)
	wall := ecs.CreateEntity(f.w)
	s, _ := pickupScheduler(&fakeProber{hit: wall, ok: true})
	s.Update(f.w)
	if f.crosshairClaims(t).Claims.IsActive(component.CrosshairPreferSquare) {
		t.Fatalf("a wall is not a pickup target")
	}
}

func TestPickupHidesCrosshairAndExtinguishesCandle(t *testing.T) {
	f := newFixture(t)
	unlit := new(ebiten.Image)
	candle := addProp(t, f, &component.Prop{Kind: "candle", Extinguishable: true, Lit: true, UnlitImage: unlit})
	prober := &fakeProber{hit: candle, ok: true}
	s, counter := pickupScheduler(prober)

	s.Update(f.w)
	f.input(t).PickupPressed = true
	s.Update(f.w)
	f.input(t).PickupPressed = false

	held, ok := ecs.Get(f.w, candle, component.HeldComponent.Kind())
	if !ok || ecs.Entity(held.By) != f.player {
		t.Fatalf("expected candle held by player")
	}
	prop, _ := ecs.Get(f.w, candle, component.PropComponent.Kind())
	if prop.Lit {
		t.Fatalf("picking up a candle puts it out")
	}
	if sprite, _ := ecs.Get(f.w, candle, component.SpriteComponent.Kind()); sprite.Image != unlit {
		t.Fatalf("expected unlit sprite")
	}
	if !f.crosshairSprite(t).Hidden {
		t.Fatalf("holding a prop hides the crosshair")
	}

	calls := prober.calls
	s.Update(f.w)
	if prober.calls != calls {
		t.Fatalf("probe must not run while holding")
	}
	if t2, _ := ecs.Get(f.w, candle, component.TransformComponent.Kind()); t2.X != defaultHoldDistance || t2.Y != 0 {
		t.Fatalf("expected candle carried in front, got (%v, %v)", t2.X, t2.Y)
	}

	f.input(t).DropPressed = true
	s.Update(f.w)
	f.input(t).DropPressed = false
	if ecs.Has(f.w, candle, component.HeldComponent.Kind()) {
		t.Fatalf("expected candle dropped")
	}
	if f.crosshairSprite(t).Hidden {
		t.Fatalf("crosshair should be back after dropping")
	}
	// square, hidden, dot
	if got := counter.counts[EventCrosshairChanged]; got != 3 {
		t.Fatalf("expected 3 notifications, got %d", got)
	}
}

func TestPickupWithoutTargetDoesNothing(t *testing.T) {
	f := newFixture(t)
	s, counter := pickupScheduler(&fakeProber{})
	f.input(t).PickupPressed = true
	s.Update(f.w)
	if ecs.Count(f.w, component.HeldComponent.Kind()) != 0 {
		t.Fatalf("nothing to pick up")
	}
	if counter.counts[EventCrosshairChanged] != 0 {
		t.Fatalf("unexpected crosshair change")
	}
}

func TestHeldPropDroppedWhenHolderDespawns(t *testing.T) {
	f := newFixture(t)
	book := addProp(t, f, &component.Prop{Kind: "book"})
	s, _ := pickupScheduler(&fakeProber{hit: book, ok: true})

	s.Update(f.w)
	f.input(t).PickupPressed = true
	s.Update(f.w)
	if !ecs.Has(f.w, book, component.HeldComponent.Kind()) {
		t.Fatalf("expected book held")
	}

	ecs.DestroyEntity(f.w, f.player)
	s.Update(f.w)
	if ecs.Has(f.w, book, component.HeldComponent.Kind()) {
		t.Fatalf("book still held by a despawned player")
	}
	c := f.crosshairClaims(t)
	if c.Claims.IsActive(component.CrosshairForceHidden) || c.Claims.IsActive(component.CrosshairPreferSquare) {
		t.Fatalf("expected every crosshair claim dropped, got %v", c.Claims.Snapshot())
	}
	if f.crosshairSprite(t).Hidden {
		t.Fatalf("crosshair should be back once nothing is held")
	}
}
