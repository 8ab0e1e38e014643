package particle

import (
	"math/rand"
	"time"

	"nova2d/internal/engine2D"
	"nova2d/internal/utils"
)

const defaultMaxCount = 100

// NewEmitter creates an emitter with the given config. It starts emitting
// immediately.
func NewEmitter(name string, cfg Config) *Emitter {
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = defaultMaxCount
	}
	if cfg.Lifetime.Max <= 0 {
		cfg.Lifetime = Range{Min: 1, Max: 1}
	}
	if cfg.Size.Max <= 0 {
		cfg.Size = Range{Min: 8, Max: 8}
	}
	if cfg.Alpha.Max <= 0 {
		cfg.Alpha = Range{Min: 1, Max: 1}
	}
	if cfg.ColorMin == (engine2D.Color{}) && cfg.ColorMax == (engine2D.Color{}) {
		cfg.ColorMin = engine2D.White
		cfg.ColorMax = engine2D.White
	}
	if cfg.Columns <= 0 {
		cfg.Columns = 1
	}
	if cfg.Rows <= 0 {
		cfg.Rows = 1
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	utils.Debug("Created particle emitter %s: rate %.1f/s, max %d", name, cfg.Rate, cfg.MaxCount)
	return &Emitter{
		Name:      name,
		Config:    cfg,
		Particles: make([]*Particle, 0, cfg.MaxCount),
		Emitting:  true,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Update spawns new particles at the configured rate and advances the live ones.
func (e *Emitter) Update(dt float32) {
	e.GlobalTime += dt

	if e.Emitting && e.Config.Rate > 0 {
		e.Timer += dt
		spawnInterval := 1 / e.Config.Rate
		for e.Timer >= spawnInterval {
			e.Timer -= spawnInterval
			if len(e.Particles) < e.Config.MaxCount {
				e.spawnParticle()
			}
		}
	}

	alive := e.Particles[:0]
	for _, p := range e.Particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}

		e.applyOperators(p, dt)

		p.Position.X += p.Velocity.X * dt
		p.Position.Y += p.Velocity.Y * dt
		p.Rotation += p.AngularVel * dt
		alive = append(alive, p)
	}
	for i := len(alive); i < len(e.Particles); i++ {
		e.Particles[i] = nil
	}
	e.Particles = alive
}

// Burst spawns up to n particles at once, ignoring the rate.
func (e *Emitter) Burst(n int) {
	for i := 0; i < n && len(e.Particles) < e.Config.MaxCount; i++ {
		e.spawnParticle()
	}
}

// SetPosition moves the emitter. Live particles move with it.
func (e *Emitter) SetPosition(x, y float32) {
	e.Position.X = x
	e.Position.Y = y
}

func (e *Emitter) Count() int {
	return len(e.Particles)
}

// Clear removes every live particle.
func (e *Emitter) Clear() {
	e.Particles = e.Particles[:0]
	e.Timer = 0
}
