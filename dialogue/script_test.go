package dialogue

import (
	"context"
	"errors"
	"testing"
)

const foxScript = `
text := import("text")

prompt := "Talk to " + speaker
available := visits < 2
lines := ["Hello there.", "Lovely evening."]
if visits > 0 {
	lines = [text.join(["Back again", "?"], "")]
}
`

func TestScriptRun(t *testing.T) {
	s, err := Compile("fox", []byte(foxScript))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		name      string
		visits    int
		available bool
		lines     []string
	}{
		{"first_visit", 0, true, []string{"Hello there.", "Lovely evening."}},
		{"second_visit", 1, true, []string{"Back again?"}},
		{"exhausted", 2, false, []string{"Back again?"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := s.Run(context.Background(), "Fox", c.visits)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if res.Prompt != "Talk to Fox" {
				t.Fatalf("unexpected prompt %q", res.Prompt)
			}
			if res.Available != c.available {
				t.Fatalf("expected available=%v, got %v", c.available, res.Available)
			}
			if len(res.Lines) != len(c.lines) {
				t.Fatalf("expected lines %v, got %v", c.lines, res.Lines)
			}
			for i := range c.lines {
				if res.Lines[i] != c.lines[i] {
					t.Fatalf("expected lines %v, got %v", c.lines, res.Lines)
				}
			}
		})
	}
}

func TestScriptWithoutLines(t *testing.T) {
	s, err := Compile("empty", []byte(`prompt := "..."`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := s.Run(context.Background(), "x", 0); !errors.Is(err, ErrNoLines) {
		t.Fatalf("expected ErrNoLines, got %v", err)
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile("broken", []byte(`lines := [`)); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestRunawayScriptTimesOut(t *testing.T) {
	s, err := Compile("loop", []byte(`for true {}`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := s.Run(context.Background(), "x", 0); err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestLibraryKeepsPreviousOnError(t *testing.T) {
	lib := NewLibrary()
	if err := lib.Load("fox", []byte(foxScript)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := lib.Load("fox", []byte(`lines := [`)); err == nil {
		t.Fatalf("expected compile error")
	}
	s, ok := lib.Get("fox")
	if !ok {
		t.Fatalf("expected previous script to survive")
	}
	if _, err := s.Run(context.Background(), "Fox", 0); err != nil {
		t.Fatalf("run previous script: %v", err)
	}
	if names := lib.Names(); len(names) != 1 || names[0] != "fox" {
		t.Fatalf("unexpected names %v", names)
	}
}
