package system

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
	"gopkg.in/yaml.v3"
)

// Clipboard receives debug snapshots.
type Clipboard interface {
	WriteText(text string) error
}

// DebugSnapshot is the state behind the crosshair, prompt and animations at
// the end of a tick.
type DebugSnapshot struct {
	Tick       uint64                       `yaml:"tick"`
	Crosshair  *RegistrySnapshot            `yaml:"crosshair,omitempty"`
	Prompt     *RegistrySnapshot            `yaml:"prompt,omitempty"`
	Animations map[string]AnimationSnapshot `yaml:"animations,omitempty"`
}

type RegistrySnapshot struct {
	Value  string              `yaml:"value"`
	Text   string              `yaml:"text,omitempty"`
	Claims map[string][]string `yaml:"claims"`
}

type AnimationSnapshot struct {
	Config string `yaml:"config"`
	Intent string `yaml:"intent"`
	Clip   string `yaml:"clip,omitempty"`
	Alters int    `yaml:"alters"`
	Fades  int    `yaml:"fades"`
}

// TakeSnapshot collects a DebugSnapshot from w.
func TakeSnapshot(w *ecs.World) DebugSnapshot {
	snap := DebugSnapshot{Tick: w.Tick()}
	if c, ok := firstCrosshair(w); ok {
		snap.Crosshair = &RegistrySnapshot{Value: c.Claims.Last().String(), Claims: c.Claims.Snapshot()}
	}
	if p, ok := firstPrompt(w); ok {
		last := p.Last()
		snap.Prompt = &RegistrySnapshot{Value: fmt.Sprint(p.Claims.Last()), Text: last.Text, Claims: p.Claims.Snapshot()}
	}
	ecs.ForEach(w, component.AnimationStateComponent.Kind(), func(e ecs.Entity, st *component.AnimationState) {
		if snap.Animations == nil {
			snap.Animations = make(map[string]AnimationSnapshot)
		}
		a := AnimationSnapshot{Config: st.Config, Alters: st.Alters}
		if st.Machine != nil {
			a.Intent = st.Machine.Current().String()
		}
		if an, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			a.Clip = an.Fade.To
			a.Fades = an.Fade.Started
		}
		snap.Animations[e.String()] = a
	})
	return snap
}

func (s DebugSnapshot) YAML() string {
	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Sprintf("snapshot: %v", err)
	}
	return string(out)
}

// DebugSnapshotSystem copies a snapshot to the clipboard when the player
// presses the debug key.
type DebugSnapshotSystem struct {
	clipboard Clipboard
}

func NewDebugSnapshotSystem(clipboard Clipboard) *DebugSnapshotSystem {
	return &DebugSnapshotSystem{clipboard: clipboard}
}

func (d *DebugSnapshotSystem) Update(w *ecs.World) {
	if d == nil || w == nil {
		return
	}
	pressed := false
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, in *component.Input) {
		pressed = pressed || in.DebugPressed
	})
	if !pressed {
		return
	}

	text := TakeSnapshot(w).YAML()
	if d.clipboard == nil {
		slog.Info("debug snapshot", "snapshot", text)
		return
	}
	if err := d.clipboard.WriteText(text); err != nil {
		slog.Warn("debug snapshot: clipboard", "err", err)
		return
	}
	slog.Info("debug snapshot copied", "tick", w.Tick())
}
