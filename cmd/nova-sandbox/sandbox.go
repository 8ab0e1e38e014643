package main

import (
	"image"
	"image/color"

	"nova2d/internal/app"
	"nova2d/internal/engine2D"
	"nova2d/internal/engine2D/particle"
	"nova2d/internal/input"
	"nova2d/internal/scene"
	"nova2d/internal/utils"
)

const (
	checkerTexture = "checker"
	walkerTexture  = "walker"
)

var tints = []engine2D.Color{engine2D.White, engine2D.SkyBlue, engine2D.Gold, engine2D.Pink, engine2D.Lime, engine2D.Violet}

// sandboxScene is a playground: a quad follows the mouse, a row of
// textured quads spins, a sprite walks in place and a fountain sprays
// particles. Left/Right rotate the cursor quad, Up/Down resize it and
// Space bursts the fountain.
type sandboxScene struct {
	scene.Base
	app *app.App

	render   scene.RenderSystem
	systems  []scene.System
	cursor   scene.Entity
	fountain *particle.Emitter
	spin     float32
	pulse    float32
}

func newSandboxScene(a *app.App) *sandboxScene {
	return &sandboxScene{
		app:     a,
		render:  scene.RenderSystem{Renderer: a.Renderer},
		systems: []scene.System{scene.SpriteSystem{}, scene.ParticleSystem{}, scene.ClockSystem{}},
		pulse:   1,
	}
}

func (s *sandboxScene) Start() {
	utils.Info("Hi! Welcome to Nova!")
	w := s.World()
	ensureTextures(s.app)

	s.cursor = w.CreateEntity()
	scene.Add(w, s.cursor, scene.Transform{Size: engine2D.NewVec2(100, 100)})
	scene.Add(w, s.cursor, scene.ColorComponent{Color: engine2D.White})

	checker := s.app.Assets.GetTexture(checkerTexture)
	for i := 0; i < 6; i++ {
		e := w.CreateEntity()
		scene.Add(w, e, scene.Transform{
			Position: engine2D.NewVec2(120+float32(i)*110, 120),
			Size:     engine2D.NewVec2(64, 64),
			Rotation: float32(i) * 15,
		})
		tc := scene.Textured(checker)
		tc.Tint = tints[i%len(tints)]
		scene.Add(w, e, tc)
	}

	walker := engine2D.NewSprite(engine2D.SpriteConfig{
		Texture:       s.app.Assets.GetTexture(walkerTexture),
		FrameWidth:    16,
		FrameHeight:   16,
		Columns:       4,
		Rows:          1,
		FrameDuration: 0.15,
		Loop:          true,
	})
	walker.AddAnimation("walk", 0, 1, 2, 3)
	walker.PlayAnimation("walk", true, false)
	hero := w.CreateEntity()
	scene.Add(w, hero, scene.Transform{Position: engine2D.NewVec2(200, 400), Size: engine2D.NewVec2(96, 96)})
	scene.Add(w, hero, scene.SpriteComponent{Sprite: walker})

	end := engine2D.NewColor(255, 80, 0, 255)
	s.fountain = particle.NewEmitter("fountain", particle.Config{
		Rate:        120,
		MaxCount:    600,
		Shape:       particle.ShapeBox,
		DistanceMax: engine2D.NewVec2(20, 4),
		Lifetime:    particle.Range{Min: 1, Max: 2},
		Size:        particle.Range{Min: 4, Max: 10},
		Gravity:     engine2D.NewVec2(0, 300),
		ColorMin:    engine2D.Gold,
		ColorMax:    engine2D.Yellow,
		ColorEnd:    &end,
		SizeEnd:     0.2,
		Velocity: particle.VecRange{
			Min: engine2D.NewVec2(-60, -320),
			Max: engine2D.NewVec2(60, -220),
		},
	})
	fountain := w.CreateEntity()
	scene.Add(w, fountain, scene.Transform{Position: engine2D.NewVec2(600, 500)})
	scene.Add(w, fountain, scene.EmitterComponent{Emitter: s.fountain})

	addClock(w, engine2D.NewVec2(1100, 140), 80)

	s.app.DebugWorld = w
	s.breathe()
}

// addClock builds a clock face of the given radius with three hands
// pivoting on its center.
func addClock(w scene.World, center engine2D.Vec2, radius float32) {
	face := w.CreateEntity()
	scene.Add(w, face, scene.Transform{Position: center, Size: engine2D.NewVec2(2*radius, 2*radius)})
	scene.Add(w, face, scene.ColorComponent{Color: engine2D.DarkGray})

	hands := []struct {
		unit   scene.ClockUnit
		length float32
		width  float32
		color  engine2D.Color
	}{
		{scene.ClockHour, radius * 0.5, 6, engine2D.RayWhite},
		{scene.ClockMinute, radius * 0.8, 4, engine2D.LightGray},
		{scene.ClockSecond, radius * 0.9, 2, engine2D.Red},
	}
	for _, h := range hands {
		e := w.CreateEntity()
		// pivot on the middle of the bottom edge, placed at the center
		pivot := engine2D.NewVec2(0, 0.5)
		scene.Add(w, e, scene.Transform{
			Position: center.Sub(pivot),
			Size:     engine2D.NewVec2(h.width, h.length),
			Origin:   pivot,
		})
		scene.Add(w, e, scene.ColorComponent{Color: h.color})
		scene.Add(w, e, scene.ClockHand{Unit: h.unit})
	}
}

// breathe eases pulse between 0.6 and 1 forever.
func (s *sandboxScene) breathe() {
	to := float32(0.6)
	if s.pulse < 0.8 {
		to = 1
	}
	s.AddEasing(scene.NewEasing(scene.SineInOut, &s.pulse, to, 1.2, s.breathe))
}

func (s *sandboxScene) End() {
	if s.app.DebugWorld == scene.World(s.World()) {
		s.app.DebugWorld = nil
	}
	s.ClearEasings()
	s.World().Clear()
}

func (s *sandboxScene) Update(dt float32) {
	in := s.app.Input
	t, _ := scene.Get[scene.Transform](s.World(), s.cursor)

	t.Position = in.MousePosition()
	t.Rotation += input.Axis(in, input.KeyLeft, input.KeyRight) * 90 * dt
	grow := input.Axis(in, input.KeyDown, input.KeyUp) * 60 * dt
	t.Size = engine2D.NewVec2(max(t.Size.X+grow, 4), max(t.Size.Y+grow, 4))

	if in.IsKeyPressed(input.KeySpace) {
		s.fountain.Burst(100)
	}

	s.spin += 45 * dt
	scene.Each2[scene.Transform, scene.TextureComponent](s.World(), func(_ scene.Entity, t *scene.Transform, _ *scene.TextureComponent) {
		t.Rotation = s.spin
		t.Size = engine2D.NewVec2(64*s.pulse, 64*s.pulse)
	})

	for _, sys := range s.systems {
		sys.Update(s.World(), dt)
	}
}

func (s *sandboxScene) Draw() {
	s.render.Draw(s.World())
}

// ensureTextures registers generated stand-ins for textures the asset
// directory does not provide.
func ensureTextures(a *app.App) {
	if !a.Assets.HasTexture(checkerTexture) {
		if err := a.Assets.AddImage(checkerTexture, checkerImage(32, 8)); err != nil {
			utils.Warn("Generating %s: %v", checkerTexture, err)
		}
	}
	if !a.Assets.HasTexture(walkerTexture) {
		if err := a.Assets.AddImage(walkerTexture, walkerSheet()); err != nil {
			utils.Warn("Generating %s: %v", walkerTexture, err)
		}
	}
}

func checkerImage(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if (x/cell+y/cell)%2 == 1 {
				c = color.RGBA{90, 90, 90, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// walkerSheet is four 16x16 frames of a bar moving down.
func walkerSheet() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 16))
	for frame := 0; frame < 4; frame++ {
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				c := color.RGBA{40, 120, 220, 255}
				if y/4 == frame {
					c = color.RGBA{250, 250, 250, 255}
				}
				img.SetRGBA(frame*16+x, y, c)
			}
		}
	}
	return img
}
