package particle

import (
	"math/rand"

	"nova2d/internal/engine2D"
)

type Particle struct {
	Position     engine2D.Vec2
	Velocity     engine2D.Vec2
	Color        [3]float32
	InitialColor [3]float32
	Life         float32
	MaxLife      float32
	Alpha        float32
	InitialAlpha float32
	// Rotation and AngularVel are in degrees.
	Rotation    float32
	AngularVel  float32
	Size        float32
	InitialSize float32
	SpawnTime   float32
	Frame       int
	RandomValue float32
}

// Age returns how far through its life the particle is, in [0,1].
func (p *Particle) Age() float32 {
	if p.MaxLife <= 0 {
		return 1
	}
	return (p.MaxLife - p.Life) / p.MaxLife
}

type Shape int

const (
	ShapePoint Shape = iota
	// ShapeBox spawns inside the rectangle ±DistanceMax around the emitter.
	ShapeBox
	// ShapeSphere spawns on a ring between DistanceMin.X and DistanceMax.X.
	ShapeSphere
)

type Range struct {
	Min, Max float32
}

type VecRange struct {
	Min, Max engine2D.Vec2
}

// Attractor pulls particles within Threshold pixels towards Point.
type Attractor struct {
	Point     engine2D.Vec2
	Strength  float32
	Threshold float32
}

type Turbulence struct {
	SpeedMin, SpeedMax float32
	TimeScale          float32
	Scale              float32
}

type Config struct {
	Texture *engine2D.Texture
	// Columns and Rows split Texture into a sprite sheet; each particle
	// picks a random frame.
	Columns int
	Rows    int

	Rate     float32
	MaxCount int
	Shape    Shape

	DistanceMin engine2D.Vec2
	DistanceMax engine2D.Vec2

	// Initializers.
	Lifetime        Range
	Size            Range
	Velocity        VecRange
	Rotation        Range
	AngularVelocity Range
	Alpha           Range
	ColorMin        engine2D.Color
	ColorMax        engine2D.Color

	// Operators.
	Gravity engine2D.Vec2
	Drag    float32
	// FadeIn and FadeOut are fractions of the particle life. When both are
	// zero particles fade in over the first 10% and out over the last 20%.
	FadeIn   float32
	FadeOut  float32
	SizeEnd  float32
	ColorEnd *engine2D.Color

	Turbulence *Turbulence
	Attractor  *Attractor

	// Seed fixes the random sequence; zero seeds from the clock.
	Seed int64
}

type Emitter struct {
	Name      string
	Config    Config
	Position  engine2D.Vec2
	Particles []*Particle
	Emitting  bool

	Timer      float32
	GlobalTime float32

	rng *rand.Rand
}
