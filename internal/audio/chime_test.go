package audio

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/loading-splash/internal/splash"
)

func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never ended")
	return nil
}

func TestChimeLength(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
	}{
		{name: "short", d: 10 * time.Millisecond},
		{name: "quarter", d: 250 * time.Millisecond},
		{name: "empty", d: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drain(t, NewChime(440, tt.d))
			if want := SampleRate.N(tt.d); len(got) != want {
				t.Errorf("streamed %d samples, want %d", len(got), want)
			}
		})
	}
}

func TestChimeEnvelope(t *testing.T) {
	s := NewChime(660, 250*time.Millisecond)
	samples := drain(t, s)
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	peak := func(from, to int) float64 {
		m := 0.0
		for _, v := range samples[from:to] {
			if v[0] != v[1] {
				t.Fatalf("channels differ: %v", v)
			}
			m = math.Max(m, math.Abs(v[0]))
		}
		return m
	}
	n := len(samples)
	head, tail := peak(0, n/10), peak(n-n/10, n)
	if head > 0.4 || head < 0.1 {
		t.Errorf("head peak = %v, want within (0.1, 0.4]", head)
	}
	if tail >= head/10 {
		t.Errorf("tail peak %v did not decay below a tenth of %v", tail, head)
	}
}

func TestForPhase(t *testing.T) {
	for _, p := range []splash.Phase{splash.PhaseIdle, splash.PhaseRotating} {
		if ForPhase(p) != nil {
			t.Errorf("ForPhase(%v) is not silent", p)
		}
	}
	for _, p := range []splash.Phase{splash.PhaseMerging, splash.PhaseExpanding} {
		if ForPhase(p) == nil {
			t.Errorf("ForPhase(%v) is silent", p)
		}
	}
}
