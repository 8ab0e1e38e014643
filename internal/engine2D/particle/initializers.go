package particle

func (e *Emitter) randRange(r Range) float32 {
	return r.Min + e.rng.Float32()*(r.Max-r.Min)
}

// applyInitializers rolls the per-particle random properties.
func (e *Emitter) applyInitializers(p *Particle) {
	cfg := &e.Config

	p.MaxLife = e.randRange(cfg.Lifetime)
	p.Life = p.MaxLife

	p.Size = e.randRange(cfg.Size)
	p.InitialSize = p.Size

	p.Velocity.X = cfg.Velocity.Min.X + e.rng.Float32()*(cfg.Velocity.Max.X-cfg.Velocity.Min.X)
	p.Velocity.Y = cfg.Velocity.Min.Y + e.rng.Float32()*(cfg.Velocity.Max.Y-cfg.Velocity.Min.Y)

	p.Rotation = e.randRange(cfg.Rotation)
	p.AngularVel = e.randRange(cfg.AngularVelocity)

	minColor, maxColor := cfg.ColorMin, cfg.ColorMax
	p.Color[0] = (float32(minColor.R) + e.rng.Float32()*(float32(maxColor.R)-float32(minColor.R))) / 255.0
	p.Color[1] = (float32(minColor.G) + e.rng.Float32()*(float32(maxColor.G)-float32(minColor.G))) / 255.0
	p.Color[2] = (float32(minColor.B) + e.rng.Float32()*(float32(maxColor.B)-float32(minColor.B))) / 255.0
	p.InitialColor = p.Color

	p.Alpha = e.randRange(cfg.Alpha)
	p.InitialAlpha = p.Alpha
}
