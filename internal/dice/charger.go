package dice

// PowerCharger accumulates throw power while the throw input is held.
// Power is a scalar in [0,1]: zeroed when a charge begins, grows by
// Rate per second while charging, clamps at 1, and is consumed exactly
// once by Release.
type PowerCharger struct {
	Rate float32 // charge per second

	power    float32
	charging bool
}

func NewPowerCharger(rate float32) *PowerCharger {
	return &PowerCharger{Rate: rate}
}

// Begin starts a new charge cycle. Fails with ErrInvalidState if a charge
// is already active.
func (c *PowerCharger) Begin() error {
	if c.charging {
		return ErrInvalidState
	}
	c.power = 0
	c.charging = true
	return nil
}

// Tick advances the charge by the elapsed time. No-op when not charging.
// Holding indefinitely simply saturates at full power.
func (c *PowerCharger) Tick(deltaTime float32) {
	if !c.charging {
		return
	}
	c.power += c.Rate * deltaTime
	if c.power > 1 {
		c.power = 1
	}
}

// Release consumes the charge and returns the accumulated power. Fails with
// ErrInvalidState if no charge is active. Releasing immediately after Begin
// yields power ~0 - a valid soft toss, not an error.
func (c *PowerCharger) Release() (float32, error) {
	if !c.charging {
		return 0, ErrInvalidState
	}
	power := c.power
	c.power = 0
	c.charging = false
	return power, nil
}

// Power returns the current charge level for UI readouts.
func (c *PowerCharger) Power() float32 {
	return c.power
}

func (c *PowerCharger) Charging() bool {
	return c.charging
}
