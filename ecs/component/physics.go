package component

import "github.com/jakecoffman/cp"

// PhysicsCategory selects the collision layer of a body.
type PhysicsCategory uint

const (
	CategorySolid PhysicsCategory = 1 << iota
	CategoryCharacter
	CategoryProp
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration. The
// space is the top-down ground plane; X/Y are world X/Z.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	Radius   float64
	Mass     float64
	Friction float64
	Static   bool
	Category PhysicsCategory
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
