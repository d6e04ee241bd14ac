package anim

import (
	"errors"
	"math"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func fullTable() Table {
	return Table{
		Idle:    {Clip: "idle", Blend: 200 * time.Millisecond, Loop: Repeat},
		Moving:  {Clip: "run", Blend: 150 * time.Millisecond, Loop: Repeat},
		Jumping: {Clip: "jump", Blend: 80 * time.Millisecond, Loop: PlayOnce},
		Falling: {Clip: "fall", Blend: 120 * time.Millisecond, Loop: Repeat},
		Landing: {Clip: "land", Blend: 60 * time.Millisecond, Loop: PlayOnce},
	}
}

func TestComputeIntent(t *testing.T) {
	th := DefaultThresholds()
	cases := []struct {
		name string
		in   Signals
		want Kind
	}{
		{"standing", Signals{Grounded: true}, Idle},
		{"walking", Signals{Grounded: true, InputMagnitude: 1}, Moving},
		{"below_move_epsilon", Signals{Grounded: true, InputMagnitude: th.MoveEpsilon / 2}, Idle},
		{"jump_phase", Signals{JumpActive: true, VerticalVelocity: -1}, Jumping},
		{"rising_without_jump", Signals{VerticalVelocity: 3}, Jumping},
		{"falling", Signals{VerticalVelocity: -3}, Falling},
		{"apex", Signals{}, Falling},
		{"just_landed", Signals{Grounded: true, LandingTicks: 1, InputMagnitude: 1}, Landing},
		{"landing_window_over", Signals{Grounded: true, LandingTicks: th.LandingWindow + 1}, Idle},
		{"nan_velocity_airborne", Signals{VerticalVelocity: math.NaN()}, Falling},
		{"nan_input_grounded", Signals{Grounded: true, InputMagnitude: math.NaN()}, Idle},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := th.Intent(c.in); got.Kind != c.want {
				t.Fatalf("expected %s, got %s", c.want, got.Kind)
			}
		})
	}
}

func TestComputeIntentIsTotal(t *testing.T) {
	valid := map[Kind]bool{}
	for _, k := range Kinds() {
		valid[k] = true
	}
	rapid.Check(t, func(t *rapid.T) {
		s := Signals{
			Grounded:         rapid.Bool().Draw(t, "grounded"),
			VerticalVelocity: rapid.Float64().Draw(t, "vy"),
			JumpActive:       rapid.Bool().Draw(t, "jump"),
			InputMagnitude:   rapid.Float64().Draw(t, "input"),
			LandingTicks:     rapid.IntRange(-10, 100).Draw(t, "landing"),
		}
		got := DefaultThresholds().Intent(s)
		if !valid[got.Kind] {
			t.Fatalf("intent %v outside enumeration", got.Kind)
		}
		if s.Grounded && (got.Kind == Jumping || got.Kind == Falling) {
			t.Fatalf("grounded signals produced airborne intent %s", got.Kind)
		}
		if !s.Grounded && got.Kind != Jumping && got.Kind != Falling {
			t.Fatalf("airborne signals produced grounded intent %s", got.Kind)
		}
	})
}

func TestStableIntentMaintains(t *testing.T) {
	engine, err := NewEngine(Config{Initial: Idle, Thresholds: DefaultThresholds(), Transitions: fullTable()})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	state := engine.NewState()
	var fade CrossFade

	for tick := 0; tick < 2; tick++ {
		d := state.Update(engine.ComputeIntent(Signals{Grounded: true}))
		if d.Alter {
			fade.Start(engine.Transition(d.New.Kind))
		}
		if d != Maintain() {
			t.Fatalf("tick %d: expected maintain, got %s", tick, d)
		}
	}
	if fade.Started != 0 {
		t.Fatalf("expected no cross-fades, got %d", fade.Started)
	}
}

func TestIntentSequenceAlters(t *testing.T) {
	cases := []struct {
		name    string
		initial Kind
		seq     []Kind
		want    []Directive
	}{
		{
			name:    "default_matches_first",
			initial: Idle,
			seq:     []Kind{Idle, Moving, Idle},
			want: []Directive{
				Maintain(),
				{Alter: true, Old: Intent{Kind: Idle}, New: Intent{Kind: Moving}},
				{Alter: true, Old: Intent{Kind: Moving}, New: Intent{Kind: Idle}},
			},
		},
		{
			name:    "default_differs_from_first",
			initial: Falling,
			seq:     []Kind{Idle, Moving, Idle},
			want: []Directive{
				{Alter: true, Old: Intent{Kind: Falling}, New: Intent{Kind: Idle}},
				{Alter: true, Old: Intent{Kind: Idle}, New: Intent{Kind: Moving}},
				{Alter: true, Old: Intent{Kind: Moving}, New: Intent{Kind: Idle}},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			state := NewState(Intent{Kind: c.initial})
			for i, k := range c.seq {
				got := state.Update(Intent{Kind: k})
				if got != c.want[i] {
					t.Fatalf("step %d: expected %s, got %s", i, c.want[i], got)
				}
				if state.Current().Kind != k {
					t.Fatalf("step %d: committed %s, expected %s", i, state.Current().Kind, k)
				}
			}
		})
	}
}

func TestUpdateIgnoresPayload(t *testing.T) {
	state := NewState(Intent{Kind: Moving, Speed: 1})
	if d := state.Update(Intent{Kind: Moving, Speed: 9, VerticalSpeed: 2}); d.Alter {
		t.Fatalf("payload change produced %s", d)
	}
	if state.Current().Speed != 1 {
		t.Fatalf("maintain must not overwrite the committed payload")
	}

	rapid.Check(t, func(t *rapid.T) {
		kinds := Kinds()
		s := NewState(Intent{Kind: rapid.SampledFrom(kinds).Draw(t, "initial")})
		alters := 0
		changes := 0
		prev := s.Current().Kind
		n := rapid.IntRange(1, 50).Draw(t, "n")
		for i := 0; i < n; i++ {
			in := Intent{
				Kind:  rapid.SampledFrom(kinds).Draw(t, "kind"),
				Speed: rapid.Float64Range(0, 10).Draw(t, "speed"),
			}
			d := s.Update(in)
			if d.Alter {
				alters++
				if d.Old.Kind != prev || d.New.Kind != in.Kind {
					t.Fatalf("alter %s does not describe %s->%s", d, prev, in.Kind)
				}
			}
			if in.Kind != prev {
				changes++
			}
			prev = in.Kind
		}
		if alters != changes {
			t.Fatalf("alters=%d tag changes=%d", alters, changes)
		}
	})
}

func TestValidateMissingIntent(t *testing.T) {
	table := fullTable()
	delete(table, Landing)

	_, err := NewEngine(Config{Initial: Idle, Transitions: table})
	if !errors.Is(err, ErrMissingTransition) {
		t.Fatalf("expected ErrMissingTransition, got %v", err)
	}
}

func TestValidateInvalidTransition(t *testing.T) {
	table := fullTable()
	table[Jumping] = Transition{Blend: -time.Second}

	err := table.Validate(Kinds())
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if errors.Is(err, ErrMissingTransition) {
		t.Fatalf("did not expect ErrMissingTransition, got %v", err)
	}
}

func TestEngineCopiesTable(t *testing.T) {
	table := fullTable()
	engine, err := NewEngine(Config{Transitions: table})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	delete(table, Idle)
	if got := engine.Transition(Idle); got.Clip != "idle" {
		t.Fatalf("engine table changed after validation: %+v", got)
	}
}

func TestCrossFade(t *testing.T) {
	var f CrossFade
	f.Start(Transition{Clip: "idle", Blend: 200 * time.Millisecond, Loop: Repeat})
	if f.Weight() != 1 {
		t.Fatalf("first clip has nothing to fade from, weight=%v", f.Weight())
	}

	f.Start(Transition{Clip: "run", Blend: 100 * time.Millisecond, Loop: Repeat})
	if f.From != "idle" || f.To != "run" {
		t.Fatalf("unexpected clips %q -> %q", f.From, f.To)
	}
	if !f.Blending() {
		t.Fatalf("expected blending right after start")
	}
	f.Advance(50 * time.Millisecond)
	if w := f.Weight(); w < 0.49 || w > 0.51 {
		t.Fatalf("expected half weight, got %v", w)
	}
	f.Advance(time.Second)
	if f.Blending() || f.Weight() != 1 {
		t.Fatalf("expected fade finished, weight=%v", f.Weight())
	}
	if !f.Looping() {
		t.Fatalf("run should loop")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("round trip %s: got %s err=%v", k, got, err)
		}
	}
	if _, err := ParseKind("swimming"); err == nil {
		t.Fatalf("expected error for unknown intent")
	}
}
