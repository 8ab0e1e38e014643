package particle

import (
	"github.com/chewxy/math32"
)

// applyOperators applies the configured over-life behaviour to a particle.
func (e *Emitter) applyOperators(p *Particle, dt float32) {
	cfg := &e.Config
	age := p.Age()

	// movement
	p.Velocity.X += cfg.Gravity.X * dt
	p.Velocity.Y += cfg.Gravity.Y * dt
	if cfg.Drag > 0 {
		dragFactor := 1 - cfg.Drag*dt
		if dragFactor < 0 {
			dragFactor = 0
		}
		p.Velocity.X *= dragFactor
		p.Velocity.Y *= dragFactor
	}

	if t := cfg.Turbulence; t != nil && t.SpeedMax > 0 {
		timeScale := t.TimeScale
		if timeScale == 0 {
			timeScale = 1
		}
		scale := t.Scale
		if scale == 0 {
			scale = 1
		}

		time := e.GlobalTime * timeScale
		noiseX := math32.Sin(time*0.7+p.Position.X*scale) * math32.Cos(time*0.3)
		noiseY := math32.Cos(time*0.5+p.Position.Y*scale) * math32.Sin(time*0.8)

		speed := t.SpeedMin + e.rng.Float32()*(t.SpeedMax-t.SpeedMin)
		p.Velocity.X += noiseX * speed * dt
		p.Velocity.Y += noiseY * speed * dt
	}

	if a := cfg.Attractor; a != nil {
		dx := a.Point.X - e.Position.X - p.Position.X
		dy := a.Point.Y - e.Position.Y - p.Position.Y

		distSq := dx*dx + dy*dy
		threshold := a.Threshold
		if threshold <= 0 {
			threshold = 100
		}

		if distSq < threshold*threshold && distSq > 1 {
			dist := math32.Sqrt(distSq)
			strength := a.Strength / distSq
			p.Velocity.X += (dx / dist) * strength * dt
			p.Velocity.Y += (dy / dist) * strength * dt
		}
	}

	if cfg.ColorEnd != nil {
		end := cfg.ColorEnd.Normalize()
		for i := range p.Color {
			p.Color[i] = p.InitialColor[i] + (end[i]-p.InitialColor[i])*age
		}
	}

	if cfg.SizeEnd > 0 {
		p.Size = p.InitialSize * (1 + (cfg.SizeEnd-1)*age)
	}

	p.Alpha = p.InitialAlpha * fade(age, cfg.FadeIn, cfg.FadeOut)
}

// fade returns the alpha multiplier at age. With no fade times configured
// particles fade in over the first 10% and out over the last 20% of life.
func fade(age, fadeIn, fadeOut float32) float32 {
	if fadeIn == 0 && fadeOut == 0 {
		fadeIn, fadeOut = 0.1, 0.2
	}

	m := float32(1)
	if fadeIn > 0 && age < fadeIn {
		m = age / fadeIn
	}
	if fadeOut > 0 {
		start := 1 - fadeOut
		if age > start {
			m = math32.Min(m, 1-(age-start)/fadeOut)
		}
	}
	return math32.Max(0, m)
}
