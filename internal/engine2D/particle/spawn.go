package particle

import (
	"github.com/chewxy/math32"
)

// spawnParticle creates and initializes a new particle at the emitter.
func (e *Emitter) spawnParticle() {
	p := &Particle{
		Color:        [3]float32{1, 1, 1},
		Life:         1,
		MaxLife:      1,
		Alpha:        1,
		InitialAlpha: 1,
		Size:         1,
		InitialSize:  1,
		SpawnTime:    e.GlobalTime,
		RandomValue:  e.rng.Float32() * math32.Pi * 2,
	}

	cfg := &e.Config
	switch cfg.Shape {
	case ShapeBox:
		distMax, distMin := cfg.DistanceMax, cfg.DistanceMin
		p.Position.X = (e.rng.Float32()*2-1)*(distMax.X-distMin.X)/2 + distMin.X
		p.Position.Y = (e.rng.Float32()*2-1)*(distMax.Y-distMin.Y)/2 + distMin.Y

	case ShapeSphere:
		distMax, distMin := cfg.DistanceMax.X, cfg.DistanceMin.X
		if distMax == 0 && distMin == 0 {
			distMax = 1
		}
		angle := e.rng.Float32() * math32.Pi * 2
		radius := distMin + e.rng.Float32()*(distMax-distMin)
		sin, cos := math32.Sincos(angle)
		p.Position.X = cos * radius
		p.Position.Y = sin * radius
	}

	if frames := cfg.Columns * cfg.Rows; frames > 1 {
		p.Frame = e.rng.Intn(frames)
	}

	e.applyInitializers(p)
	e.Particles = append(e.Particles, p)
}
