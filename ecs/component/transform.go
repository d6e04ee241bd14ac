package component

// Transform places an entity on the ground plane. Rotation is the facing
// angle in radians, 0 along +X.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
