package dice

import (
	"fmt"
	"math/rand"
	"time"

	"dicetable/internal/components"
	"dicetable/internal/engine"
	"dicetable/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DiceCount is the number of dice per throw.
const DiceCount = 2

// TableConfig gathers every tuning constant of the simulation. Values are
// fixed for the lifetime of a Table; the env-driven config layer overrides
// the interesting ones at startup.
type TableConfig struct {
	ChargeRate float32 // charge per second, full power at 1/ChargeRate s

	Impulse ImpulseConfig
	Settle  SettleConfig

	// Table geometry
	SurfaceX      float32 // table width
	SurfaceZ      float32 // table depth
	WallHeight    float32
	WallThickness float32

	// Launch pose
	SpawnAhead    float32 // distance ahead of the eye along the flat forward
	SpawnHeight   float32 // fixed height above the surface
	SpawnMargin   float32 // keep-out distance from the walls
	DieSeparation float32 // half the gap between the two dice along camera right

	// Die body
	DieSize        float32
	DieMass        float32
	DieRestitution float32
	DieFriction    float32
	LinearDamping  float32
	AngularDamping float32

	// Static materials
	SurfaceRestitution float32
	SurfaceFriction    float32
	WallRestitution    float32
	WallFriction       float32

	// Seed for the per-throw spin randomness. 0 means time-based.
	Seed int64
}

// DefaultConfig returns the stock craps-table tuning.
func DefaultConfig() TableConfig {
	return TableConfig{
		ChargeRate: 2.0,
		Impulse: ImpulseConfig{
			MinForce:    2.0,
			MaxForce:    12.0,
			UpwardArc:   0.35,
			LateralSkew: 0.5,
			MinSpin:     30,
			MaxSpin:     240,
		},
		Settle: SettleConfig{
			LinearRest:   0.25,
			LinearWake:   0.6,
			AngularRest:  20,
			AngularWake:  60,
			Dwell:        0.3,
			StuckTimeout: 8.0,
		},
		SurfaceX:           8.0,
		SurfaceZ:           4.0,
		WallHeight:         1.0,
		WallThickness:      0.2,
		SpawnAhead:         1.0,
		SpawnHeight:        0.5,
		SpawnMargin:        0.3,
		DieSeparation:      0.25,
		DieSize:            0.4,
		DieMass:            1.0,
		DieRestitution:     0.15,
		DieFriction:        0.7,
		LinearDamping:      2.0,
		AngularDamping:     3.0,
		SurfaceRestitution: 0.1,
		SurfaceFriction:    0.8,
		WallRestitution:    0.08,
		WallFriction:       0.5,
	}
}

// Die is one of the two dice of the current throw.
type Die struct {
	Index int
	Body  *engine.GameObject
	rb    *components.Rigidbody
}

// Rotation returns the die's current orientation (Euler degrees).
func (d *Die) Rotation() rl.Vector3 {
	return d.Body.Transform.Rotation
}

// Table drives the full charge -> throw -> settle -> read lifecycle over a
// physics world. Everything runs on the caller's goroutine via Step; the
// single in-flight flag is the only mutual exclusion the lifecycle needs.
type Table struct {
	cfg      TableConfig
	world    *physics.World
	charger  *PowerCharger
	detector *SettleDetector
	rng      *rand.Rand

	dice        []*Die
	inFlight    bool
	throwCount  int
	lastOutcome *Outcome

	// Completed fires exactly once per throw, after both dice settle.
	Completed engine.EventWithArg[Outcome]
}

func NewTable(cfg TableConfig) *Table {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	t := &Table{
		cfg:      cfg,
		world:    physics.NewWorld(),
		charger:  NewPowerCharger(cfg.ChargeRate),
		detector: NewSettleDetector(cfg.Settle, DiceCount),
		rng:      rand.New(rand.NewSource(seed)),
	}
	t.buildStatics()
	return t
}

// buildStatics creates the table surface and the four walls.
func (t *Table) buildStatics() {
	halfX := t.cfg.SurfaceX / 2
	halfZ := t.cfg.SurfaceZ / 2
	wt := t.cfg.WallThickness
	wh := t.cfg.WallHeight

	t.newStatic("Surface", "table",
		rl.Vector3{X: 0, Y: -0.05, Z: 0},
		rl.Vector3{X: t.cfg.SurfaceX, Y: 0.1, Z: t.cfg.SurfaceZ},
		t.cfg.SurfaceRestitution, t.cfg.SurfaceFriction)

	longWall := rl.Vector3{X: wt, Y: wh, Z: t.cfg.SurfaceZ + wt*2}
	shortWall := rl.Vector3{X: t.cfg.SurfaceX + wt*2, Y: wh, Z: wt}

	t.newStatic("WallWest", "wall",
		rl.Vector3{X: -halfX - wt/2, Y: wh / 2, Z: 0}, longWall,
		t.cfg.WallRestitution, t.cfg.WallFriction)
	t.newStatic("WallEast", "wall",
		rl.Vector3{X: halfX + wt/2, Y: wh / 2, Z: 0}, longWall,
		t.cfg.WallRestitution, t.cfg.WallFriction)
	t.newStatic("WallNorth", "wall",
		rl.Vector3{X: 0, Y: wh / 2, Z: -halfZ - wt/2}, shortWall,
		t.cfg.WallRestitution, t.cfg.WallFriction)
	t.newStatic("WallSouth", "wall",
		rl.Vector3{X: 0, Y: wh / 2, Z: halfZ + wt/2}, shortWall,
		t.cfg.WallRestitution, t.cfg.WallFriction)
}

func (t *Table) newStatic(name, tag string, pos, size rl.Vector3, restitution, friction float32) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Tags = []string{tag}
	obj.Transform.Position = pos
	obj.AddComponent(components.NewBoxCollider(size))
	obj.AddComponent(components.NewSurface(restitution, friction))
	obj.Start()
	t.world.AddStatic(obj)
	return obj
}

// BeginCharge starts a charge cycle. Rejected with ErrInvalidState while a
// charge is active or a throw is in flight - outcomes are never abandoned
// mid-air.
func (t *Table) BeginCharge() error {
	if t.inFlight {
		return ErrInvalidState
	}
	return t.charger.Begin()
}

// Power returns the current charge level in [0,1] for the fill bar.
func (t *Table) Power() float32 {
	return t.charger.Power()
}

func (t *Table) Charging() bool {
	return t.charger.Charging()
}

func (t *Table) InFlight() bool {
	return t.inFlight
}

// Release consumes the charge and launches both dice. eye is the thrower's
// eye position, forward the camera forward direction at release time.
func (t *Table) Release(eye, forward rl.Vector3) error {
	if t.inFlight {
		return ErrAlreadyInFlight
	}
	power, err := t.charger.Release()
	if err != nil {
		return err
	}
	t.spawnThrow(power, eye, forward)
	return nil
}

func (t *Table) spawnThrow(power float32, eye, forward rl.Vector3) {
	flat := FlattenForward(forward)
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(flat, worldUp))

	origin := rl.Vector3Add(eye, rl.Vector3Scale(flat, t.cfg.SpawnAhead))
	origin.Y = t.cfg.SpawnHeight

	// Keep the launch pose inside the walls
	halfX := t.cfg.SurfaceX/2 - t.cfg.SpawnMargin
	halfZ := t.cfg.SurfaceZ/2 - t.cfg.SpawnMargin
	origin.X = clampf(origin.X, -halfX, halfX)
	origin.Z = clampf(origin.Z, -halfZ, halfZ)

	// Recycle the dice of the previous throw
	for _, d := range t.dice {
		t.world.RemoveBody(d.Body)
	}
	t.dice = t.dice[:0]
	t.throwCount++

	size := rl.Vector3{X: t.cfg.DieSize, Y: t.cfg.DieSize, Z: t.cfg.DieSize}
	for i := 0; i < DiceCount; i++ {
		imp := DieImpulse(t.cfg.Impulse, power, forward, i, t.rng)

		obj := engine.NewGameObject(fmt.Sprintf("Die%d", i))
		obj.Tags = []string{"die"}
		obj.Transform.Position = rl.Vector3Add(origin,
			rl.Vector3Scale(right, lateralSign(i)*t.cfg.DieSeparation))
		obj.AddComponent(components.NewBoxCollider(size))

		rb := components.NewRigidbody()
		rb.Mass = t.cfg.DieMass
		rb.Bounciness = t.cfg.DieRestitution
		rb.Friction = t.cfg.DieFriction
		rb.LinearDamping = t.cfg.LinearDamping
		rb.AngularDamping = t.cfg.AngularDamping
		obj.AddComponent(rb)

		// The impulse is attached before the body enters the world, so
		// there is no step where the die exists unlaunched
		rb.ApplyImpulse(imp.Linear)
		rb.ApplyTorqueImpulse(imp.Angular)

		obj.Start()
		t.world.AddBody(obj)
		t.dice = append(t.dice, &Die{Index: i, Body: obj, rb: rb})
	}

	t.detector.Reset()
	t.lastOutcome = nil
	t.inFlight = true
}

// Step advances the whole lifecycle by one fixed timestep: charger first,
// then the physics world, then settle detection, then - once both dice are
// at rest - the outcome read and the single Completed emission.
func (t *Table) Step(deltaTime float32) {
	t.charger.Tick(deltaTime)
	t.world.Step(deltaTime)

	if !t.inFlight {
		return
	}

	for _, d := range t.dice {
		t.detector.Observe(d.Index, d.rb.Speed(), d.rb.AngularSpeed(), deltaTime)
	}

	if t.detector.AllSettled() {
		outcome := Outcome{
			Die0:   FaceUp(t.dice[0].Rotation()),
			Die1:   FaceUp(t.dice[1].Rotation()),
			Forced: t.detector.Forced(),
		}
		t.lastOutcome = &outcome
		// Clear in-flight before invoking listeners so a listener may start
		// the next charge synchronously
		t.inFlight = false
		t.Completed.Invoke(outcome)
	}
}

// ReadOutcome returns the up-facing value of one die. Fails with
// ErrNotSettled until the die is at rest.
func (t *Table) ReadOutcome(die int) (int, error) {
	if die < 0 || die >= len(t.dice) {
		return 0, ErrNotSettled
	}
	if t.detector.State(die) != Settled {
		return 0, ErrNotSettled
	}
	return FaceUp(t.dice[die].Rotation()), nil
}

// SettleState returns the current settle classification of one die.
func (t *Table) SettleState(die int) SettleState {
	if die < 0 || die >= len(t.dice) {
		return Moving
	}
	return t.detector.State(die)
}

// Dice returns the dice of the current throw (nil before the first throw).
func (t *Table) Dice() []*Die {
	return t.dice
}

// World exposes the physics world, e.g. for rendering its statics.
func (t *Table) World() *physics.World {
	return t.world
}

// LastOutcome returns the most recent completed outcome, or nil while a
// throw is in flight or before the first throw.
func (t *Table) LastOutcome() *Outcome {
	return t.lastOutcome
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
