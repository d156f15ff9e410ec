package jump

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClassify(t *testing.T) {
	c := Classifier{FootNormalMin: 0.9}
	next := &Platform{Role: RoleNext}
	cur := &Platform{Role: RoleCurrent}
	up := mgl64.Vec3{0, 0.95, 0.312}
	side := mgl64.Vec3{0.9165, 0.4, 0}

	tests := []struct {
		name    string
		ct      Contact
		guard   bool
		playing bool
		want    Outcome
	}{
		{"foot on next", Contact{Kind: ContactPlatform, Platform: next, Normal: up}, false, true, OutcomeLanded},
		{"side of next", Contact{Kind: ContactPlatform, Platform: next, Normal: side}, false, true, OutcomeSideHit},
		{"underside of next", Contact{Kind: ContactPlatform, Platform: next, Normal: mgl64.Vec3{0, -1, 0}}, false, true, OutcomeLanded},
		{"guard blocks landing", Contact{Kind: ContactPlatform, Platform: next, Normal: up}, true, true, OutcomeIgnored},
		{"guard blocks side hit", Contact{Kind: ContactPlatform, Platform: next, Normal: side}, true, true, OutcomeIgnored},
		{"side hit after game over", Contact{Kind: ContactPlatform, Platform: next, Normal: side}, false, false, OutcomeIgnored},
		{"standing on current", Contact{Kind: ContactPlatform, Platform: cur, Normal: up}, false, true, OutcomeRest},
		{"side of current", Contact{Kind: ContactPlatform, Platform: cur, Normal: side}, false, true, OutcomeIgnored},
		{"unregistered platform", Contact{Kind: ContactPlatform, Normal: up}, false, true, OutcomeIgnored},
		{"void while playing", Contact{Kind: ContactVoidFloor, Normal: side}, false, true, OutcomeVoid},
		{"void with guard", Contact{Kind: ContactVoidFloor, Normal: mgl64.Vec3{1, 0, 0}}, true, true, OutcomeVoid},
		{"void after game over", Contact{Kind: ContactVoidFloor, Normal: up}, false, false, OutcomeIgnored},
		{"unknown tag", Contact{Kind: ContactOther, Normal: up}, false, true, OutcomeIgnored},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.ct, next, tt.guard, tt.playing); got != tt.want {
				t.Fatalf("got %s want %s", got, tt.want)
			}
		})
	}
}
