package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CrosshairTag struct{}

var CrosshairTagComponent = NewComponent[CrosshairTag]()

type NPCTag struct{}

var NPCTagComponent = NewComponent[NPCTag]()
