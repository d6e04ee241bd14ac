package system

import (
	"testing"

	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

func addBody(t *testing.T, w *ecs.World, x, y float64, body *component.PhysicsBody) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), body)
	return e
}

func TestFirstAlong(t *testing.T) {
	cases := []struct {
		name    string
		propX   float64
		wantHit bool
	}{
		{"prop_in_front_of_wall", 50, true},
		{"prop_behind_wall", 150, false},
		{"prop_out_of_reach", 300, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			addBody(t, w, 100, 0, &component.PhysicsBody{Width: 32, Height: 32, Static: true, Category: component.CategorySolid})
			prop := addBody(t, w, c.propX, 0, &component.PhysicsBody{Radius: 8, Mass: 1, Category: component.CategoryProp})

			ps := NewPhysicsSystem()
			ps.Update(w)

			got, ok := ps.FirstAlong(0, 0, 200, 0, component.CategoryProp)
			if ok != c.wantHit {
				t.Fatalf("expected hit=%v, got %v (%v)", c.wantHit, ok, got)
			}
			if ok && got != prop {
				t.Fatalf("expected prop %v, got %v", prop, got)
			}
		})
	}
}

func TestFirstAlongSkipsCharacters(t *testing.T) {
	w := ecs.NewWorld()
	addBody(t, w, 40, 0, &component.PhysicsBody{Radius: 12, Mass: 1, Category: component.CategoryCharacter})
	prop := addBody(t, w, 80, 0, &component.PhysicsBody{Radius: 8, Mass: 1, Category: component.CategoryProp})

	ps := NewPhysicsSystem()
	ps.Update(w)

	got, ok := ps.FirstAlong(0, 0, 200, 0, component.CategoryProp)
	if !ok || got != prop {
		t.Fatalf("expected the ray to pass the character and hit %v, got %v ok=%v", prop, got, ok)
	}
}

func TestPhysicsMovesDynamicBodies(t *testing.T) {
	f := newFixture(t)
	mustAdd(t, f.w, f.player, component.ControllerComponent.Kind(), &component.Controller{MoveSpeed: 120, Grounded: true})
	mustAdd(t, f.w, f.player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 12, Mass: 1, Category: component.CategoryCharacter})

	s := ecs.NewScheduler()
	s.MustAdd(ecs.StagePhysics, NewControllerSystem(), NewPhysicsSystem())

	// first tick creates the body
	s.Update(f.w)
	f.input(t).MoveY = 1
	for i := 0; i < 30; i++ {
		s.Update(f.w)
	}

	tr, _ := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	if tr.X < 30 || tr.Y > 1 || tr.Y < -1 {
		t.Fatalf("player should walk east, got (%v,%v)", tr.X, tr.Y)
	}
	if tr.Rotation != 0 {
		t.Fatalf("characters must not spin, rotation=%v", tr.Rotation)
	}
}

func TestPhysicsFrozenWhilePaused(t *testing.T) {
	f := newFixture(t)
	prop := addBody(t, f.w, 0, 50, &component.PhysicsBody{Radius: 8, Mass: 1, Category: component.CategoryProp})

	ps := NewPhysicsSystem()
	ps.Update(f.w)
	body, _ := ecs.Get(f.w, prop, component.PhysicsBodyComponent.Kind())
	body.Body.SetVelocity(100, 0)

	pause, _ := ecs.Get(f.w, f.session, component.PauseStateComponent.Kind())
	pause.Paused = true
	for i := 0; i < 10; i++ {
		ps.Update(f.w)
	}
	tr, _ := ecs.Get(f.w, prop, component.TransformComponent.Kind())
	if tr.X != 0 {
		t.Fatalf("paused physics moved the prop to %v", tr.X)
	}
}
