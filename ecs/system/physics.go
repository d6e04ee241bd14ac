package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/foxtrot/common"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

const (
	collisionTypeCharacter cp.CollisionType = iota + 1
	collisionTypeProp
	collisionTypeSolid
)

// fraction of velocity kept per second; controllers overwrite theirs every tick
const propDamping = 0.05

// PhysicsSystem owns the Chipmunk space. The space is the top-down ground
// plane, so there is no gravity; the controller integrates height itself.
type PhysicsSystem struct {
	space    *cp.Space
	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
}

type bodyInfo struct {
	body     *cp.Body
	shape    *cp.Shape
	static   bool
	category component.PhysicsCategory
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	space.SetDamping(propDamping)
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace()
	}

	ps.syncEntities(w)
	if paused(w) {
		return
	}
	ps.space.Step(common.TickSeconds)
	ps.syncTransforms(w)
}

// FirstAlong returns the first entity of the given category hit by the
// segment. Solid shapes occlude: a wall in front of a prop hides it.
func (ps *PhysicsSystem) FirstAlong(x0, y0, x1, y1 float64, category component.PhysicsCategory) (ecs.Entity, bool) {
	if ps == nil || ps.space == nil {
		return 0, false
	}
	mask := uint(category | component.CategorySolid)
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)
	hit := ps.space.SegmentQueryFirst(cp.Vector{X: x0, Y: y0}, cp.Vector{X: x1, Y: y1}, 0, filter)
	if hit.Shape == nil {
		return 0, false
	}
	e, ok := ps.shapes[hit.Shape]
	if !ok {
		return 0, false
	}
	info := ps.entities[e]
	if info == nil || info.category&category == 0 {
		return 0, false
	}
	return e, true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			if bodyComp.Body == nil || bodyComp.Shape == nil {
				bodyComp.Body = info.body
				bodyComp.Shape = info.shape
			}
			return
		}

		info := ps.createBodyInfo(transform, bodyComp)
		if info == nil {
			return
		}
		ps.entities[e] = info
		ps.shapes[info.shape] = e
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		width = common.TileSize
		height = common.TileSize
	}

	category := bodyComp.Category
	if category == 0 {
		category = component.CategorySolid
	}
	filter := cp.NewShapeFilter(cp.NO_GROUP, uint(category), cp.ALL_CATEGORIES)

	info := &bodyInfo{static: bodyComp.Static, category: category}

	if bodyComp.Static {
		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, cp.Vector{X: transform.X, Y: transform.Y})
		} else {
			bb := cp.BB{L: transform.X - width/2, B: transform.Y - height/2, R: transform.X + width/2, T: transform.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		shape.SetFriction(bodyComp.Friction)
		shape.SetCollisionType(collisionTypeFor(category))
		shape.SetFilter(filter)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shape = shape
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// characters never spin; props tumble
	moment := cp.INFINITY
	if category == component.CategoryProp {
		if radius > 0 {
			moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
		} else {
			moment = cp.MomentForBox(mass, width, height)
		}
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetCollisionType(collisionTypeFor(category))
	shape.SetFilter(filter)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shape = shape
	return info
}

func collisionTypeFor(category component.PhysicsCategory) cp.CollisionType {
	switch category {
	case component.CategoryCharacter:
		return collisionTypeCharacter
	case component.CategoryProp:
		return collisionTypeProp
	default:
		return collisionTypeSolid
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		// the player's facing comes from look input, not the body
		if bodyComp.Category == component.CategoryProp {
			transform.Rotation = bodyComp.Body.Angle()
		}
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapes, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
