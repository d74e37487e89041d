// Package config loads the player settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	css "github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"

	"liquidplayer/glass"
)

const DefaultPath = "liquidplayer.yml"

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Overlay struct {
	Disabled bool `yaml:"disabled"`

	// any css color
	Tint string `yaml:"tint"`

	// "elapsed" or "frame"
	Smoothing string  `yaml:"smoothing"`
	Decay     float64 `yaml:"decay"`
	Tau       float64 `yaml:"tau"`

	// "freeze" or "collapse"
	MissingElement string `yaml:"missing_element"`

	MaxPixelRatio float64 `yaml:"max_pixel_ratio"`
}

type Player struct {
	Duration time.Duration `yaml:"duration"`
	AutoHide time.Duration `yaml:"auto_hide"`
}

type Config struct {
	Window  Window  `yaml:"window"`
	Overlay Overlay `yaml:"overlay"`
	Player  Player  `yaml:"player"`

	// chrome color overrides, name to css color
	Colors map[string]string `yaml:"colors"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Liquid Player",
		},
		Overlay: Overlay{
			Tint:           "rgb(80%, 90%, 100%)",
			Smoothing:      "elapsed",
			Decay:          glass.DefaultDecay,
			Tau:            glass.DefaultTau,
			MissingElement: "freeze",
			MaxPixelRatio:  2,
		},
		Player: Player{
			Duration: 3*time.Minute + 7*time.Second,
			AutoHide: 3 * time.Second,
		},
	}
}

// Load reads path over the defaults.
// If path is the default path and it doesn't exist, defaults are returned.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return c, nil
		}
		return c, err
	}

	c, err = Parse(data)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse decodes a yaml document over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	c := Default()

	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), err
	}
	if err := c.Validate(); err != nil {
		return Default(), err
	}

	return c, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	o := c.Overlay

	if _, err := ParseTint(o.Tint); err != nil {
		return err
	}
	if _, err := parseSmoothing(o.Smoothing); err != nil {
		return err
	}
	if _, err := parseMissing(o.MissingElement); err != nil {
		return err
	}
	if !(o.Decay > 0 && o.Decay <= 1) {
		return fmt.Errorf("overlay decay %v is not in (0, 1]", o.Decay)
	}
	if !(o.Tau > 0) {
		return fmt.Errorf("overlay tau %v must be positive", o.Tau)
	}
	if o.MaxPixelRatio < 0 {
		return fmt.Errorf("overlay max_pixel_ratio %v is negative", o.MaxPixelRatio)
	}

	for name, str := range c.Colors {
		if _, err := css.Parse(str); err != nil {
			return fmt.Errorf("invalid color %q for %s: %w", str, name, err)
		}
	}

	if c.Player.Duration <= 0 {
		return fmt.Errorf("player duration %v must be positive", c.Player.Duration)
	}
	if c.Player.AutoHide <= 0 {
		return fmt.Errorf("player auto_hide %v must be positive", c.Player.AutoHide)
	}

	return nil
}

// ParseTint parses a css color into normalized rgb.
func ParseTint(str string) ([3]float64, error) {
	c, err := css.Parse(str)
	if err != nil {
		return [3]float64{}, fmt.Errorf("invalid tint %q: %w", str, err)
	}
	return [3]float64{c.R, c.G, c.B}, nil
}

func parseSmoothing(str string) (glass.SmoothingMode, error) {
	switch str {
	case "elapsed", "":
		return glass.SmoothElapsed, nil
	case "frame":
		return glass.SmoothPerFrame, nil
	}
	return 0, fmt.Errorf("unknown smoothing mode %q", str)
}

func parseMissing(str string) (glass.MissingPolicy, error) {
	switch str {
	case "freeze", "":
		return glass.MissingFreeze, nil
	case "collapse":
		return glass.MissingCollapse, nil
	}
	return 0, fmt.Errorf("unknown missing_element policy %q", str)
}

// GlassOptions converts the overlay section. c must be valid.
func (c Config) GlassOptions() glass.Options {
	o := glass.DefaultOptions()

	mode, _ := parseSmoothing(c.Overlay.Smoothing)
	o.Smoothing = glass.Smoother{
		Mode:  mode,
		Decay: c.Overlay.Decay,
		Tau:   c.Overlay.Tau,
	}
	o.Missing, _ = parseMissing(c.Overlay.MissingElement)
	o.MaxPixelRatio = c.Overlay.MaxPixelRatio

	if tint, err := ParseTint(c.Overlay.Tint); err == nil {
		o.Tint = tint
	}

	return o
}
