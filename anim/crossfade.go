package anim

import "time"

// CrossFade blends from the clip that was playing into a new one. It is
// driven by the consumer of Alter directives, never by the engine.
type CrossFade struct {
	From     string
	To       string
	Duration time.Duration
	Elapsed  time.Duration
	Loop     LoopPolicy
	// Started counts how many fades have begun; useful for debugging thrash.
	Started int
}

// Start begins a fade into tr. The current target becomes the outgoing clip.
func (f *CrossFade) Start(tr Transition) {
	if f == nil {
		return
	}
	f.From = f.To
	f.To = tr.Clip
	f.Duration = tr.Blend
	f.Elapsed = 0
	f.Loop = tr.Loop
	f.Started++
}

// Advance moves the fade forward by dt.
func (f *CrossFade) Advance(dt time.Duration) {
	if f == nil || dt <= 0 {
		return
	}
	f.Elapsed += dt
	if f.Elapsed > f.Duration {
		f.Elapsed = f.Duration
	}
}

// Weight is the incoming clip weight in [0, 1].
func (f *CrossFade) Weight() float64 {
	if f == nil || f.Duration <= 0 || f.From == "" {
		return 1
	}
	w := float64(f.Elapsed) / float64(f.Duration)
	if w > 1 {
		return 1
	}
	return w
}

// Blending reports whether the outgoing clip is still visible.
func (f *CrossFade) Blending() bool {
	return f.Weight() < 1
}

func (f *CrossFade) Looping() bool {
	return f != nil && f.Loop == Repeat
}
