package component

// Combat drives a tower's fire cycle.
type Combat struct {
	FireRate float64 // shots per second
	Cooldown float64 // seconds until the next shot
	Range    float64 // acquisition radius in cells, tolerance included
}

// CooldownRatio is how far the tower is from being ready, in [0,1].
func (c *Combat) CooldownRatio() float64 {
	if c.FireRate <= 0 || c.Cooldown <= 0 {
		return 0
	}
	r := c.Cooldown * c.FireRate
	if r > 1 {
		return 1
	}
	return r
}
