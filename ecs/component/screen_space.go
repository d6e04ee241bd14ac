package component

// ScreenSpace marks sprites whose Transform is a screen position. The world
// view rotation and offset do not apply to them.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
