package jump

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ContactKind says what the agent touched.
type ContactKind uint8

const (
	ContactOther ContactKind = iota
	ContactVoidFloor
	ContactPlatform
)

// Contact is one agent collision, already matched to game objects.
type Contact struct {
	Kind     ContactKind
	Platform *Platform // set for ContactPlatform
	Normal   mgl64.Vec3
	Point    mgl64.Vec3
}

// Outcome is the gameplay meaning of a contact.
type Outcome uint8

const (
	OutcomeIgnored Outcome = iota
	OutcomeLanded          // foot landing on the next platform
	OutcomeRest            // foot contact with any other platform
	OutcomeSideHit         // glancing hit on the next platform
	OutcomeVoid            // touched the void floor
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLanded:
		return "landed"
	case OutcomeRest:
		return "rest"
	case OutcomeSideHit:
		return "side-hit"
	case OutcomeVoid:
		return "void"
	}
	return "ignored"
}

// Classifier decides outcomes. It has no state of its own; the caller passes
// the target platform, the landing guard and whether a round is live.
type Classifier struct {
	FootNormalMin float64
}

func (c Classifier) foot(n mgl64.Vec3) bool {
	return math.Abs(n.Y()) > c.FootNormalMin
}

func (c Classifier) Classify(ct Contact, next *Platform, guard, playing bool) Outcome {
	switch ct.Kind {
	case ContactVoidFloor:
		if playing {
			return OutcomeVoid
		}
		return OutcomeIgnored
	case ContactPlatform:
		if ct.Platform == nil {
			return OutcomeIgnored
		}
		if ct.Platform != next {
			if c.foot(ct.Normal) {
				return OutcomeRest
			}
			return OutcomeIgnored
		}
		if guard || !playing {
			return OutcomeIgnored
		}
		if c.foot(ct.Normal) {
			return OutcomeLanded
		}
		return OutcomeSideHit
	}
	return OutcomeIgnored
}
