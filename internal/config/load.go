package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Palette is the parsed form of the colour fields.
type Palette struct {
	Background color.Color
	Ball       color.Color
	Particles  []color.Color
	Circles    []color.Color
}

// Load reads a TOML file on top of the defaults. An empty path returns the
// defaults. Keys the file sets that Config does not know are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath picks the flag value, falling back to the environment.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvPath)
}

// Normalize applies the only clamp the simulation relies on: the squashed
// ball can never be thicker than the ball itself.
func (c *Config) Normalize() {
	if c.MinRadius > c.Radius {
		c.MinRadius = c.Radius
	}
}

// Validate rejects values that would crash the scene or poison it with NaN.
func (c *Config) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"gravity", c.Gravity},
		{"friction", c.Friction},
		{"friction_multiplier", c.FrictionMultiplier},
		{"throwing_power", c.ThrowingPower},
		{"distortion_effect", c.DistortionEffect},
		{"radius", c.Radius},
		{"min_radius", c.MinRadius},
		{"particle_sensitivity", c.ParticleSensitivity},
		{"particle_length", c.ParticleLength},
		{"particle_thickness", c.ParticleThickness},
		{"particle_gravity_divisor", c.ParticleGravityDivisor},
		{"circle_speed", c.CircleSpeed},
		{"max_circle_radius", c.MaxCircleRadius},
		{"min_circle_radius", c.MinCircleRadius},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalid, f.name, f.v)
		}
	}

	if c.Radius <= 0 {
		return fmt.Errorf("%w: radius must be > 0, got %v", ErrInvalid, c.Radius)
	}
	if c.Friction == 0 || c.FrictionMultiplier == 0 {
		return fmt.Errorf("%w: friction and friction_multiplier must be non-zero", ErrInvalid)
	}
	if c.ParticleGravityDivisor == 0 {
		return fmt.Errorf("%w: particle_gravity_divisor must be non-zero", ErrInvalid)
	}

	counts := []struct {
		name string
		v    int
	}{
		{"ball_count", c.BallCount},
		{"circle_count", c.CircleCount},
		{"particle_count", c.ParticleCount},
		{"particle_despawn_ms", c.ParticleDespawnMs},
	}
	for _, n := range counts {
		if n.v < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalid, n.name, n.v)
		}
	}

	if c.Window.Width < 0 || c.Window.Height < 0 || c.Window.TPS < 0 {
		return fmt.Errorf("%w: window size and tps must be >= 0", ErrInvalid)
	}

	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette parses the colour fields.
func (c *Config) Palette() (Palette, error) {
	var (
		p   Palette
		err error
	)
	if p.Background, err = parseColor("background_color", c.BackgroundColor); err != nil {
		return Palette{}, err
	}
	if p.Ball, err = parseColor("ball_color", c.BallColor); err != nil {
		return Palette{}, err
	}
	if p.Particles, err = parseColors("particle_colors", c.ParticleColors); err != nil {
		return Palette{}, err
	}
	if p.Circles, err = parseColors("circle_colors", c.CircleColors); err != nil {
		return Palette{}, err
	}
	return p, nil
}

func parseColor(name, hex string) (color.Color, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %v", ErrInvalid, name, hex, err)
	}
	return col, nil
}

func parseColors(name string, hexes []string) ([]color.Color, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("%w: %s must not be empty", ErrInvalid, name)
	}
	out := make([]color.Color, len(hexes))
	for i, h := range hexes {
		col, err := parseColor(fmt.Sprintf("%s[%d]", name, i), h)
		if err != nil {
			return nil, err
		}
		out[i] = col
	}
	return out, nil
}
