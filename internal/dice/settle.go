package dice

// SettleState classifies one die's motion.
type SettleState int

const (
	// Moving: tumbling, bouncing, sliding.
	Moving SettleState = iota
	// Settling: below the rest thresholds, waiting out the dwell window.
	Settling
	// Settled: at rest for this throw. Terminal until the next spawn.
	Settled
)

func (s SettleState) String() string {
	switch s {
	case Moving:
		return "moving"
	case Settling:
		return "settling"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// SettleConfig holds the rest-detection thresholds. Low and high form a
// hysteresis band: a die enters Settling below the low thresholds but is
// only kicked back to Moving above the high ones, so a single slow frame
// in the middle of a bounce doesn't flap the state.
type SettleConfig struct {
	LinearRest  float32 // enter Settling below this linear speed
	LinearWake  float32 // back to Moving above this linear speed
	AngularRest float32 // enter Settling below this angular speed, deg/s
	AngularWake float32 // back to Moving above this angular speed, deg/s

	Dwell float32 // seconds the rest condition must hold continuously

	// StuckTimeout forces a settle after this much simulated time, for dice
	// wedged against geometry or sliding forever. Forced settles are flagged
	// on the outcome, never silently treated as clean.
	StuckTimeout float32
}

type dieTracker struct {
	state   SettleState
	dwell   float32 // time spent continuously below the rest thresholds
	elapsed float32 // total time since spawn
	forced  bool
}

// SettleDetector runs the Moving -> Settling -> Settled state machine for
// every die of the current throw, one observation per physics step.
type SettleDetector struct {
	cfg      SettleConfig
	trackers []dieTracker
}

func NewSettleDetector(cfg SettleConfig, diceCount int) *SettleDetector {
	return &SettleDetector{
		cfg:      cfg,
		trackers: make([]dieTracker, diceCount),
	}
}

// Reset re-arms every tracker for a fresh throw.
func (d *SettleDetector) Reset() {
	for i := range d.trackers {
		d.trackers[i] = dieTracker{}
	}
}

// Observe feeds one physics step's velocities for one die and returns the
// resulting state. Settled is terminal: further observations are ignored.
func (d *SettleDetector) Observe(die int, speed, angularSpeed, deltaTime float32) SettleState {
	t := &d.trackers[die]
	if t.state == Settled {
		return Settled
	}

	t.elapsed += deltaTime

	switch t.state {
	case Moving:
		if speed < d.cfg.LinearRest && angularSpeed < d.cfg.AngularRest {
			t.state = Settling
			t.dwell = 0
		}
	case Settling:
		if speed > d.cfg.LinearWake || angularSpeed > d.cfg.AngularWake {
			// Micro-jitter stays in Settling; a real bounce wakes the die
			t.state = Moving
			t.dwell = 0
			break
		}
		t.dwell += deltaTime
		if t.dwell >= d.cfg.Dwell {
			t.state = Settled
		}
	}

	if t.state != Settled && t.elapsed >= d.cfg.StuckTimeout {
		t.state = Settled
		t.forced = true
	}

	return t.state
}

// State returns the current state of one die.
func (d *SettleDetector) State(die int) SettleState {
	return d.trackers[die].state
}

// AllSettled reports whether every tracked die has settled.
func (d *SettleDetector) AllSettled() bool {
	for i := range d.trackers {
		if d.trackers[i].state != Settled {
			return false
		}
	}
	return true
}

// Forced reports whether any die only settled via the stuck timeout.
func (d *SettleDetector) Forced() bool {
	for i := range d.trackers {
		if d.trackers[i].forced {
			return true
		}
	}
	return false
}
