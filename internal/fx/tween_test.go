package fx

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func TestEaseInOutQuad(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.25, 0.125}, {0.5, 0.5}, {0.75, 0.875}, {1, 1}, {2, 1},
	}
	for _, tt := range tests {
		if got := EaseInOutQuad(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ease(%f) = %f want %f", tt.in, got, tt.want)
		}
	}
}

func TestTweenerSamplesAndFinishes(t *testing.T) {
	tw := NewTweener()
	t0 := time.Unix(0, 0)
	tw.Start(CameraMove, mgl64.Vec3{}, mgl64.Vec3{10, 0, 0}, t0, time.Second)

	v, ok := tw.Value(CameraMove, t0.Add(500*time.Millisecond))
	if !ok || math.Abs(v.X()-5) > 1e-9 {
		t.Fatalf("midpoint: %v %v", v, ok)
	}
	v, ok = tw.Value(CameraMove, t0.Add(2*time.Second))
	if !ok || v.X() != 10 {
		t.Fatalf("end value: %v %v", v, ok)
	}
	if tw.Active(CameraMove) {
		t.Fatalf("finished tween still active")
	}
	if _, ok := tw.Value(CameraMove, t0); ok {
		t.Fatalf("value reported after finish")
	}
}

func TestTweenerPreemptsSameKindOnly(t *testing.T) {
	tw := NewTweener()
	t0 := time.Unix(0, 0)
	tw.Start(CameraMove, mgl64.Vec3{}, mgl64.Vec3{10, 0, 0}, t0, time.Second)
	tw.Start(SquashRecover, mgl64.Vec3{0.7, 0, 0}, mgl64.Vec3{1, 0, 0}, t0, SquashRecoverDuration)

	// A new camera move replaces the old one mid-flight.
	t1 := t0.Add(300 * time.Millisecond)
	tw.Start(CameraMove, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{3, 0, 8}, t1, time.Second)
	v, _ := tw.Value(CameraMove, t1)
	if v != (mgl64.Vec3{3, 0, 0}) {
		t.Fatalf("preempted tween still driving the value: %v", v)
	}
	if !tw.Active(SquashRecover) {
		t.Fatalf("other kind was cancelled")
	}

	tw.Cancel(SquashRecover)
	if tw.Active(SquashRecover) {
		t.Fatalf("cancel had no effect")
	}
	tw.Clear()
	if tw.Active(CameraMove) {
		t.Fatalf("clear had no effect")
	}
}

func TestSquash(t *testing.T) {
	if SquashAmount(0.5) != 0.15 || SquashAmount(5) != 0.3 || SquashAmount(-1) != 0 {
		t.Fatalf("squash amount: %f %f", SquashAmount(0.5), SquashAmount(5))
	}
	a, s := SquashScales(0.3)
	if math.Abs(a-0.7) > 1e-12 || math.Abs(s-0.85) > 1e-12 {
		t.Fatalf("scales: %f %f", a, s)
	}
}
