package system

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/foxtrot/claim"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func TestDebugSnapshotCopiesClaims(t *testing.T) {
	f := newFixture(t)
	_, engine := testLibrary(t)
	addAnimated(t, f.w, f.player, engine, &component.Controller{Grounded: true})
	f.crosshairClaims(t).Claims.Assert(component.CrosshairPreferSquare, claim.NewClaimant("pickup_probe"))

	clip := &fakeClipboard{}
	s := ecs.NewScheduler()
	s.MustAdd(ecs.StageResolve, NewCrosshairResolveSystem())
	s.MustAdd(ecs.StageConsume, NewDebugSnapshotSystem(clip))

	s.Update(f.w)
	require.Empty(t, clip.text, "snapshot only on the debug key")

	f.input(t).DebugPressed = true
	s.Update(f.w)

	var snap DebugSnapshot
	require.NoError(t, yaml.Unmarshal([]byte(clip.text), &snap))
	require.NotNil(t, snap.Crosshair)
	require.Equal(t, "square", snap.Crosshair.Value)
	require.Equal(t, []string{"pickup_probe"}, snap.Crosshair.Claims["prefer_square"])
	require.NotNil(t, snap.Prompt)
	require.Len(t, snap.Animations, 1)
	for _, a := range snap.Animations {
		require.Equal(t, "test", a.Config)
		require.Equal(t, "idle", a.Intent)
		require.Equal(t, "idle", a.Clip)
		require.Equal(t, 1, a.Fades)
	}
}

func TestDebugSnapshotClipboardFailure(t *testing.T) {
	f := newFixture(t)
	clip := &fakeClipboard{err: errors.New("no display")}
	f.input(t).DebugPressed = true

	NewDebugSnapshotSystem(clip).Update(f.w)
	require.Empty(t, clip.text)

	// without a clipboard the snapshot is only logged
	NewDebugSnapshotSystem(nil).Update(f.w)
	require.True(t, strings.Contains(TakeSnapshot(f.w).YAML(), "crosshair:"))
}

func TestDebugSnapshotReportsPrompt(t *testing.T) {
	f, _, s, _, _ := dialogueFixture(t, 30)
	s.Update(f.w)

	snap := TakeSnapshot(f.w)
	require.NotNil(t, snap.Prompt)
	require.Equal(t, "true", snap.Prompt.Value)
	require.Equal(t, "E: Talk to Fox", snap.Prompt.Text)
	require.Equal(t, []string{"interaction"}, snap.Prompt.Claims["offered"])

	f.press(t, s)
	snap = TakeSnapshot(f.w)
	require.Equal(t, "false", snap.Prompt.Value)
	require.Empty(t, snap.Prompt.Text)
	require.Equal(t, []string{"dialogue"}, snap.Prompt.Claims["suppressed"])
}
