package system

import (
	"testing"

	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

type fakeCursor struct {
	calls    int
	captured bool
}

func (c *fakeCursor) SetCaptured(captured bool) {
	c.calls++
	c.captured = captured
}

func TestCursorReleaseHidesCrosshair(t *testing.T) {
	f := newFixture(t)
	cursor := &fakeCursor{captured: true}
	pause := NewPauseSystem()

	s := ecs.NewScheduler()
	s.MustAdd(ecs.StageInput, pause)
	s.MustAdd(ecs.StageProduce, NewCursorSystem(cursor))
	s.MustAdd(ecs.StageResolve, NewCrosshairResolveSystem())
	s.MustAdd(ecs.StageConsume, NewCrosshairSystem())

	s.Update(f.w)
	if cursor.calls != 0 {
		t.Fatalf("already captured, expected no cursor calls")
	}

	f.input(t).PausePressed = true
	s.Update(f.w)
	f.input(t).PausePressed = false

	if cursor.captured || cursor.calls != 1 {
		t.Fatalf("pause should release the cursor once, calls=%d", cursor.calls)
	}
	claims := f.crosshairClaims(t).Claims
	if got := len(claims.Claimants(component.CrosshairForceHidden)); got != 2 {
		t.Fatalf("expected pause and cursor to both hide, got %d claimants", got)
	}
	if !f.crosshairSprite(t).Hidden {
		t.Fatalf("expected hidden crosshair while paused")
	}

	pause.RequestResume()
	s.Update(f.w)
	if !cursor.captured || cursor.calls != 2 {
		t.Fatalf("resume should capture again, calls=%d", cursor.calls)
	}
	if f.crosshairSprite(t).Hidden {
		t.Fatalf("expected visible crosshair after resume")
	}
}

func TestCursorReleasedDuringDialogue(t *testing.T) {
	f := newFixture(t)
	cursor := &fakeCursor{captured: true}
	sys := NewCursorSystem(cursor)

	d, _ := dialogueState(f.w)
	d.Active = true
	sys.Update(f.w)
	if cursor.captured {
		t.Fatalf("dialogue releases the cursor")
	}
	state, _ := ecs.Get(f.w, f.session, component.CursorStateComponent.Kind())
	if state.Captured {
		t.Fatalf("cursor state not updated")
	}
}
