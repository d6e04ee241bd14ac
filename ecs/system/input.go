package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

// InputSource samples devices once per tick.
type InputSource interface {
	Sample() component.Input
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.source == nil || w == nil {
		return
	}

	sample := i.source.Sample()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = sample
	})
}

// EbitenInput reads keyboard, mouse and the first gamepad.
type EbitenInput struct {
	lastCursorX int
	hasCursor   bool
}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (in *EbitenInput) Sample() component.Input {
	const stickDeadzone = 0.2
	const stickLookScale = 12.0

	var s component.Input

	if ebiten.IsKeyPressed(ebiten.KeyA) {
		s.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		s.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		s.MoveY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		s.MoveY -= 1
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		s.LookDelta -= stickLookScale
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.LookDelta += stickLookScale
	}

	x, _ := ebiten.CursorPosition()
	if ebiten.CursorMode() == ebiten.CursorModeCaptured && in.hasCursor {
		s.LookDelta += float64(x - in.lastCursorX)
	}
	in.lastCursorX = x
	in.hasCursor = true

	s.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	s.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	s.InteractPressed = inpututil.IsKeyJustPressed(ebiten.KeyE)
	s.PickupPressed = inpututil.IsKeyJustPressed(ebiten.KeyF) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.ThrowPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	s.DropPressed = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	s.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	s.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			s.MoveX = lx
			s.MoveY = -ly
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		if math.Abs(rx) > stickDeadzone {
			s.LookDelta += rx * stickLookScale
		}

		s.Jump = s.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		s.JumpPressed = s.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		s.InteractPressed = s.InteractPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		s.PickupPressed = s.PickupPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		s.ThrowPressed = s.ThrowPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		s.DropPressed = s.DropPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
		s.PausePressed = s.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	return s
}
