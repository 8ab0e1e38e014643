package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"nova2d/internal/engine2D"
	"nova2d/internal/utils"
)

// MaxQuadsLimit keeps the vertex count addressable by 32-bit indices with
// plenty of room.
const MaxQuadsLimit = 1 << 20

type Config struct {
	LogLevel string         `yaml:"log_level"`
	Window   WindowConfig   `yaml:"window"`
	Renderer RendererConfig `yaml:"renderer"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
	Headless HeadlessConfig `yaml:"headless"`
}

type WindowConfig struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	VSync       bool   `yaml:"vsync"`
	Fullscreen  bool   `yaml:"fullscreen"`
	Resizable   bool   `yaml:"resizable"`
	Undecorated bool   `yaml:"undecorated"`
	MSAA        bool   `yaml:"msaa"`
	TargetFPS   int    `yaml:"target_fps"`
}

type RendererConfig struct {
	MaxQuads   int      `yaml:"max_quads"`
	ClearColor HexColor `yaml:"clear_color"`
}

type AssetsConfig struct {
	Directory string   `yaml:"directory"`
	Packages  []string `yaml:"packages,omitempty"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float32 `yaml:"master_volume"`
}

// HeadlessConfig runs without a window for a fixed number of frames.
type HeadlessConfig struct {
	Enabled bool `yaml:"enabled"`
	Frames  int  `yaml:"frames"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Window: WindowConfig{
			Title:     "Nova Sandbox",
			Width:     1280,
			Height:    720,
			VSync:     true,
			Resizable: true,
			MSAA:      true,
			TargetFPS: 60,
		},
		Renderer: RendererConfig{
			MaxQuads:   engine2D.DefaultMaxQuads,
			ClearColor: HexColor(engine2D.NewColor(30, 30, 30, 255)),
		},
		Assets: AssetsConfig{Directory: "assets"},
		Audio:  AudioConfig{Enabled: true, MasterVolume: 1},
		Headless: HeadlessConfig{
			Frames: 120,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	utils.Info("Loaded config from %s", path)
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("target fps %d must not be negative", c.Window.TargetFPS))
	}
	if c.Renderer.MaxQuads <= 0 || c.Renderer.MaxQuads > MaxQuadsLimit {
		errs = append(errs, fmt.Errorf("max quads %d must be in 1..%d", c.Renderer.MaxQuads, MaxQuadsLimit))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("master volume %.2f must be in 0..1", c.Audio.MasterVolume))
	}
	if c.Headless.Frames < 0 {
		errs = append(errs, fmt.Errorf("headless frames %d must not be negative", c.Headless.Frames))
	}
	if _, err := utils.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// HexColor is a color written as "#RRGGBB" or "#RRGGBBAA".
type HexColor engine2D.Color

func (h HexColor) Color() engine2D.Color {
	return engine2D.Color(h)
}

func (h HexColor) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", h.R, h.G, h.B, h.A)
}

func (h HexColor) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}

func (h *HexColor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	c, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*h = c
	return nil
}

func ParseHexColor(s string) (HexColor, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return HexColor{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "FF"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid color %q", s)
	}
	return HexColor{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
