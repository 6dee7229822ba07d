package dice

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ImpulseConfig holds the tuning constants of the power-to-impulse mapping.
type ImpulseConfig struct {
	MinForce    float32 // linear impulse at power 0; must be > 0
	MaxForce    float32 // linear impulse at power 1
	UpwardArc   float32 // fixed upward blend so throws arc instead of skimming
	LateralSkew float32 // per-die sideways impulse so the pair isn't symmetric
	MinSpin     float32 // angular impulse range at power 0, deg/s
	MaxSpin     float32 // angular impulse range at power 1, deg/s
}

// Impulse is the launch momentum for one die.
type Impulse struct {
	Linear  rl.Vector3
	Angular rl.Vector3 // deg/s
}

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// FlattenForward projects a camera forward vector onto the table plane and
// normalizes it. A degenerate input (camera looking straight down) falls
// back to +X so the throw still has a direction.
func FlattenForward(forward rl.Vector3) rl.Vector3 {
	flat := rl.Vector3{X: forward.X, Y: 0, Z: forward.Z}
	if rl.Vector3Length(flat) < 0.0001 {
		return rl.Vector3{X: 1, Y: 0, Z: 0}
	}
	return rl.Vector3Normalize(flat)
}

// DieImpulse maps (power, camera forward, die index) to the launch impulse.
// Pure except for draws from rng, which the caller seeds per throw.
//
// The linear magnitude is exactly MinForce + power*(MaxForce-MinForce):
// monotonically non-decreasing in power and strictly positive at power 0, so
// even an instant release tosses the die instead of leaving it dead at the
// spawn point. The lateral skew tilts the direction before scaling, so the
// magnitude contract holds for both dice.
func DieImpulse(cfg ImpulseConfig, power float32, forward rl.Vector3, die int, rng *rand.Rand) Impulse {
	flat := FlattenForward(forward)
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(flat, worldUp))

	dir := rl.Vector3Add(flat, rl.Vector3Scale(worldUp, cfg.UpwardArc))
	dir = rl.Vector3Add(dir, rl.Vector3Scale(right, lateralSign(die)*cfg.LateralSkew))
	dir = rl.Vector3Normalize(dir)

	magnitude := cfg.MinForce + power*(cfg.MaxForce-cfg.MinForce)
	linear := rl.Vector3Scale(dir, magnitude)

	spin := cfg.MinSpin + power*(cfg.MaxSpin-cfg.MinSpin)
	angular := rl.Vector3{
		X: (rng.Float32()*2 - 1) * spin,
		Y: (rng.Float32()*2 - 1) * spin,
		Z: (rng.Float32()*2 - 1) * spin,
	}

	return Impulse{Linear: linear, Angular: angular}
}

func lateralSign(die int) float32 {
	if die == 0 {
		return 1
	}
	return -1
}
