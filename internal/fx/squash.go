package fx

const maxSquash = 0.3

// SquashAmount grows with hold time and saturates at 0.3.
func SquashAmount(hold float64) float64 {
	if hold <= 0 {
		return 0
	}
	s := hold * maxSquash
	if s > maxSquash {
		return maxSquash
	}
	return s
}

// SquashScales returns the vertical scale of the agent and of the platform
// under it for a squash amount. The platform gives half as much.
func SquashScales(amount float64) (agentY, stageY float64) {
	return 1 - amount, 1 - amount*0.5
}
