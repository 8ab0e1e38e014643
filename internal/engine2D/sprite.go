package engine2D

import "nova2d/internal/utils"

// SpriteConfig describes a sprite sheet laid out as a grid of equal frames.
type SpriteConfig struct {
	Texture     *Texture
	FrameWidth  int
	FrameHeight int
	Columns     int
	Rows        int
	// FrameDuration is the time in seconds each animation frame is shown.
	FrameDuration float32
	Loop          bool
}

// Sprite is an animated view onto a sprite sheet. Animations are lists of
// frame indices counted row by row from the top-left cell.
type Sprite struct {
	FlipX bool
	Tint  Color

	config     SpriteConfig
	animations map[string][]int

	current string
	index   int
	frame   int
	elapsed float32
	loop    bool
}

func NewSprite(cfg SpriteConfig) *Sprite {
	if cfg.Columns <= 0 {
		cfg.Columns = 1
	}
	if cfg.Rows <= 0 {
		cfg.Rows = 1
	}
	if cfg.FrameDuration <= 0 {
		cfg.FrameDuration = 1
	}
	return &Sprite{
		Tint:       White,
		config:     cfg,
		animations: make(map[string][]int),
		loop:       cfg.Loop,
	}
}

func (s *Sprite) Texture() *Texture {
	return s.config.Texture
}

func (s *Sprite) Config() SpriteConfig {
	return s.config
}

// AddAnimation registers frames under name, replacing any previous definition.
func (s *Sprite) AddAnimation(name string, frames ...int) {
	total := s.config.Columns * s.config.Rows
	for _, f := range frames {
		utils.Assert(f >= 0 && f < total, "Sprite animation %s: frame %d outside %d frame sheet", name, f, total)
	}
	s.animations[name] = append([]int(nil), frames...)
}

func (s *Sprite) HasAnimation(name string) bool {
	_, ok := s.animations[name]
	return ok
}

// PlayAnimation starts the named animation from its first frame. When
// skipIfPlaying is set and name is already current, the animation continues
// undisturbed.
func (s *Sprite) PlayAnimation(name string, loop, skipIfPlaying bool) {
	frames, ok := s.animations[name]
	if !ok {
		utils.Warn("Animation %s does not exist!", name)
		return
	}
	if skipIfPlaying && s.current == name {
		return
	}

	s.current = name
	s.index = 0
	s.elapsed = 0
	s.loop = loop
	s.frame = 0
	if len(frames) > 0 {
		s.frame = frames[0]
	}
}

func (s *Sprite) CurrentAnimation() string {
	return s.current
}

// CurrentFrame returns the sheet index of the frame being shown.
func (s *Sprite) CurrentFrame() int {
	return s.frame
}

// Finished reports whether a non-looping animation has reached its last frame.
func (s *Sprite) Finished() bool {
	frames := s.animations[s.current]
	return !s.loop && len(frames) > 0 && s.index == len(frames)-1
}

// Update advances the current animation by dt seconds.
func (s *Sprite) Update(dt float32) {
	frames := s.animations[s.current]
	if len(frames) == 0 {
		return
	}

	s.elapsed += dt
	for s.elapsed >= s.config.FrameDuration {
		s.elapsed -= s.config.FrameDuration
		switch {
		case s.loop:
			s.index = (s.index + 1) % len(frames)
		case s.index < len(frames)-1:
			s.index++
		}
	}
	s.frame = frames[s.index]
}

// FrameSize returns the size of one frame, or the whole texture when the
// sheet has no frame size.
func (s *Sprite) FrameSize() Vec2 {
	if s.config.FrameWidth <= 0 || s.config.FrameHeight <= 0 {
		if s.config.Texture == nil {
			return Vec2{}
		}
		return s.config.Texture.Size()
	}
	return Vec2{float32(s.config.FrameWidth), float32(s.config.FrameHeight)}
}

// FramePosition returns the pixel offset of the current frame in the sheet.
func (s *Sprite) FramePosition() Vec2 {
	col := s.frame % s.config.Columns
	row := s.frame / s.config.Columns
	return Vec2{
		X: float32(col * s.config.FrameWidth),
		Y: float32(row * s.config.FrameHeight),
	}
}

// SourceRect is the current frame as a source rectangle for Draw.
func (s *Sprite) SourceRect() Rect {
	if s.config.FrameWidth <= 0 || s.config.FrameHeight <= 0 {
		return Rect{}
	}
	p := s.FramePosition()
	return Rect{X: p.X, Y: p.Y, Width: float32(s.config.FrameWidth), Height: float32(s.config.FrameHeight)}
}
