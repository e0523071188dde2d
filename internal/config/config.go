package config

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Bounce - drag the ball, R: reload, O: open config, Space: pause, Esc/Q: quit"

	// EnvPath names the environment variable consulted when no -config flag is given.
	EnvPath = "BOUNCE_CONFIG"
)

// Config holds every tunable of the simulation. Values other than MinRadius
// are used as given: out-of-range numbers such as friction < 1 or a negative
// gravity make the scene unstable or strange, but they are not clamped.
type Config struct {
	Gravity            float64 `toml:"gravity"`
	Friction           float64 `toml:"friction"`            // >= 1 to bleed energy
	FrictionMultiplier float64 `toml:"friction_multiplier"` // extra loss on the normal axis
	ThrowingPower      float64 `toml:"throwing_power"`
	DistortionEffect   float64 `toml:"distortion_effect"`

	Radius    float64 `toml:"radius"`
	MinRadius float64 `toml:"min_radius"` // clamped to Radius on load
	BallColor string  `toml:"ball_color"`
	BallCount int     `toml:"ball_count"`

	ParticleColors         []string `toml:"particle_colors"`
	ParticleSensitivity    float64  `toml:"particle_sensitivity"`
	ParticleCount          int      `toml:"particle_count"`
	ParticleLength         float64  `toml:"particle_length"`
	ParticleThickness      float64  `toml:"particle_thickness"`
	ParticleDespawnMs      int      `toml:"particle_despawn_ms"`
	ParticleGravityDivisor float64  `toml:"particle_gravity_divisor"` // the lower, the stronger

	CircleSpeed     float64  `toml:"circle_speed"`
	CircleCount     int      `toml:"circle_count"`
	MaxCircleRadius float64  `toml:"max_circle_radius"`
	MinCircleRadius float64  `toml:"min_circle_radius"`
	CircleColors    []string `toml:"circle_colors"`

	BackgroundColor string `toml:"background_color"`

	Window Window `toml:"window"`
}

// Window carries the runtime settings of the display loop.
type Window struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	TPS       int    `toml:"tps"` // 0 follows the display refresh rate
	Resizable bool   `toml:"resizable"`
	Seed      uint64 `toml:"seed"` // 0 seeds from the clock
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Gravity:            0.2,
		Friction:           1.01,
		FrictionMultiplier: 1.05,
		ThrowingPower:      5,
		DistortionEffect:   0.7,

		Radius:    50,
		MinRadius: 20,
		BallColor: "#6a8cf0",
		BallCount: 1,

		ParticleColors:         []string{"#d1dbfa"},
		ParticleSensitivity:    8,
		ParticleCount:          1,
		ParticleLength:         5,
		ParticleThickness:      0.5,
		ParticleDespawnMs:      7000,
		ParticleGravityDivisor: 100,

		CircleSpeed:     0.5,
		CircleCount:     200,
		MaxCircleRadius: 5,
		MinCircleRadius: 0.1,
		CircleColors: []string{
			"#ed092e",
			"#f51430",
			"#f62739",
			"#f63942",
			"#f74c4e",
			"#f8635e",
			"#f97970",
			"#f98f83",
			"#faa395",
			"#fbb6a7",
		},

		BackgroundColor: "#020008",

		Window: Window{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     WindowTitle,
			Resizable: true,
		},
	}
}
