package component

// RenderLayer orders drawing; lower indices draw first. Level tiles use
// negative indices so every prefab draws above them.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
