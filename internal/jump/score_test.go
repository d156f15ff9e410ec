package jump

import (
	"math"
	"testing"
)

func TestScoreStreak(t *testing.T) {
	s := NewScore()
	precisions := []float64{0.3, 0.1414, 0.05, 0, 0.2, 0.19}
	wantRewards := []int{1, 2, 4, 8, 1, 2}
	for i, p := range precisions {
		reward, _ := s.Land(p, 0.2)
		if reward != wantRewards[i] {
			t.Fatalf("landing %d (p=%f): reward %d want %d", i, p, reward, wantRewards[i])
		}
	}
	if s.Total != 18 {
		t.Fatalf("total: got %d want 18", s.Total)
	}
}

func TestScorePreciseDoubles(t *testing.T) {
	s := Score{Total: 10, Multiplier: 4}
	reward, precise := s.Land(0.1414, 0.2)
	if !precise || s.Multiplier != 8 || reward != 8 || s.Total != 18 {
		t.Fatalf("got %+v precise=%v reward=%d", s, precise, reward)
	}
	_, precise = s.Land(0.2, 0.2)
	if precise || s.Multiplier != 1 || s.Total != 19 {
		t.Fatalf("boundary should be imprecise: %+v", s)
	}
}

func TestScoreSaturates(t *testing.T) {
	s := NewScore()
	for i := 0; i < 200; i++ {
		reward, _ := s.Land(0.1, 0.2)
		if reward < 1 || s.Multiplier < 1 || s.Total < 0 {
			t.Fatalf("landing %d: reward=%d %+v", i, reward, s)
		}
	}
	if s.Multiplier != MaxMultiplier {
		t.Fatalf("multiplier: got %d want %d", s.Multiplier, MaxMultiplier)
	}
	if s.Total != math.MaxInt {
		t.Fatalf("total: got %d want %d", s.Total, math.MaxInt)
	}

	// A miss still resets the streak after saturation.
	if reward, _ := s.Land(0.5, 0.2); reward != 1 || s.Total != math.MaxInt {
		t.Fatalf("after miss: reward=%d %+v", reward, s)
	}
}
