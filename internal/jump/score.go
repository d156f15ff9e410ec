package jump

import "math"

// MaxMultiplier is the largest power of two an int holds. A streak stops
// doubling there.
const MaxMultiplier = math.MaxInt/2 + 1

// Score is the running total and the streak multiplier.
type Score struct {
	Total      int
	Multiplier int
}

func NewScore() Score {
	return Score{Multiplier: 1}
}

// Land records a confirmed landing with the given precision. A landing closer
// than radius doubles the multiplier, anything else resets it. The post-update
// multiplier is added to the total and returned. Both saturate instead of
// wrapping.
func (s *Score) Land(precision, radius float64) (reward int, precise bool) {
	precise = precision < radius
	switch {
	case !precise:
		s.Multiplier = 1
	case s.Multiplier >= MaxMultiplier/2:
		s.Multiplier = MaxMultiplier
	default:
		s.Multiplier *= 2
	}
	if s.Total > math.MaxInt-s.Multiplier {
		s.Total = math.MaxInt
	} else {
		s.Total += s.Multiplier
	}
	return s.Multiplier, precise
}
