package splash

import (
	"math"
	"testing"
	"time"
)

const tick = 10 * time.Millisecond

func TestDriverRepeatWraps(t *testing.T) {
	d := NewDriver(0, 2*math.Pi, 2*time.Second, Linear, true)
	completed := 0
	d.OnComplete = func() { completed++ }
	d.Start()

	d.Advance(time.Second)
	if got := d.Value(); math.Abs(got-math.Pi) > eps {
		t.Fatalf("after half a turn value = %v, want π", got)
	}
	if d.Advance(time.Second) {
		t.Fatal("repeating driver reported completion")
	}
	if got := d.Value(); got != 0 {
		t.Fatalf("after a full turn value = %v, want 0", got)
	}
	for i := 0; i < 1000; i++ {
		d.Advance(tick)
	}
	if completed != 0 {
		t.Errorf("OnComplete called %d times on a repeating driver", completed)
	}
	if !d.Running() {
		t.Error("repeating driver stopped on its own")
	}
}

func TestDriverAnticipateMerge(t *testing.T) {
	const radius = 75.0
	d := NewDriver(radius, 0, time.Second, Anticipate(3), false)
	completed := 0
	d.OnComplete = func() { completed++ }
	d.Start()

	var values []float64
	completedAt := -1
	for i := 1; i <= 120; i++ {
		if d.Advance(tick) {
			completedAt = i
		}
		values = append(values, d.Value())
	}

	if completedAt != 100 {
		t.Errorf("completed at tick %d, want 100", completedAt)
	}
	if completed != 1 {
		t.Errorf("OnComplete called %d times, want 1", completed)
	}
	if values[0] <= radius {
		t.Errorf("first value %v does not overshoot %v", values[0], radius)
	}
	// t=0.5 is the peak of the wind-up; strictly shrinking afterwards.
	if got := values[49]; math.Abs(got-93.75) > 1e-6 {
		t.Errorf("value at t=0.5 = %v, want 93.75", got)
	}
	for i := 50; i < 100; i++ {
		if values[i] >= values[i-1] {
			t.Fatalf("tick %d: %v not below %v", i+1, values[i], values[i-1])
		}
	}
	for i := 99; i < len(values); i++ {
		if values[i] != 0 {
			t.Fatalf("tick %d: value %v after completion, want 0", i+1, values[i])
		}
	}
}

func TestDriverLinearExpand(t *testing.T) {
	diag := DiagonalHalfLength(300, 200)
	d := NewDriver(0, diag, time.Second, nil, false)
	d.Start()

	prevHole, prevStroke := -1.0, math.Inf(1)
	for !d.Finished() {
		d.Advance(tick)
		hole := d.Value()
		stroke := diag - hole
		if hole <= prevHole || stroke >= prevStroke {
			t.Fatalf("hole %v (prev %v), stroke %v (prev %v) not monotonic", hole, prevHole, stroke, prevStroke)
		}
		if hole < 0 || hole > diag {
			t.Fatalf("hole %v outside [0, %v]", hole, diag)
		}
		prevHole, prevStroke = hole, stroke
	}
	if d.Value() != diag {
		t.Errorf("final value = %v, want %v", d.Value(), diag)
	}
}

func TestDriverCancel(t *testing.T) {
	tests := []struct {
		name string
		run  func(d *Driver)
	}{
		{
			name: "twice before tick",
			run: func(d *Driver) {
				d.Cancel()
				d.Cancel()
				d.Advance(2 * time.Second)
			},
		},
		{
			name: "after completion",
			run: func(d *Driver) {
				d.Advance(2 * time.Second)
				d.Cancel()
				d.Cancel()
				d.Advance(tick)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDriver(0, 1, time.Second, Linear, false)
			updates, completed := 0, 0
			d.OnUpdate = func(float64) { updates++ }
			d.OnComplete = func() { completed++ }
			d.Start()

			before := updates
			tt.run(d)
			if d.Running() {
				t.Error("driver still running")
			}
			if completed > 1 {
				t.Errorf("OnComplete called %d times", completed)
			}
			if tt.name == "twice before tick" && (updates != before || completed != 0) {
				t.Errorf("callbacks after cancel: updates=%d completed=%d", updates, completed)
			}
		})
	}
}

func TestDriverCancelFromUpdateSuppressesComplete(t *testing.T) {
	d := NewDriver(0, 1, time.Second, Linear, false)
	completed := 0
	d.OnUpdate = func(float64) { d.Cancel() }
	d.OnComplete = func() { completed++ }
	d.Start()

	if d.Advance(time.Second) {
		t.Error("Advance reported completion of a cancelled driver")
	}
	if completed != 0 {
		t.Errorf("OnComplete called %d times after cancel", completed)
	}
}

func TestDriverNotStarted(t *testing.T) {
	d := NewDriver(5, 10, time.Second, Linear, false)
	if d.Advance(2 * time.Second) {
		t.Error("unstarted driver completed")
	}
	if d.Value() != 5 {
		t.Errorf("value = %v, want start value 5", d.Value())
	}

	d.Cancel()
	d.Start()
	if d.Running() {
		t.Error("cancelled driver restarted")
	}
}
