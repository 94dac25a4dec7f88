package field

import (
	"encoding/json"
	"errors"
	"math"
	"os"
)

// Config errors for load/save operations.
var (
	// ErrConfigRead indicates the config file could not be read.
	ErrConfigRead = errors.New("field: config file unreadable")

	// ErrConfigParse indicates the config file is not valid JSON.
	ErrConfigParse = errors.New("field: config file malformed")
)

// Config holds all tunable parameters of a particle field. Colors are
// CSS-style strings ("rgba(r,g,b,a)", "rgb(r,g,b)" or "#rrggbb").
type Config struct {
	ParticleCount    int     `json:"particleCount"`
	ParticleColor    string  `json:"particleColor"`
	LineColor        string  `json:"lineColor"`
	ParticleRadius   float64 `json:"particleRadius"`
	LineDistance     float64 `json:"lineDistance"`
	Speed            float64 `json:"speed"`
	MouseInteraction bool    `json:"mouseInteraction"`
	MouseRadius      float64 `json:"mouseRadius"`
	ShowParticles    bool    `json:"showParticles"`
	LineWidth        float64 `json:"lineWidth"`
}

// DefaultConfig returns the standard parameter set.
func DefaultConfig() Config {
	return Config{
		ParticleCount:    80,
		ParticleColor:    "rgba(0, 180, 216, 0.5)",
		LineColor:        "rgba(0, 180, 216, 0.2)",
		ParticleRadius:   2,
		LineDistance:     150,
		Speed:            0.5,
		MouseInteraction: true,
		MouseRadius:      200,
		ShowParticles:    true,
		LineWidth:        1.5,
	}
}

// finite reports whether v is a usable number (not NaN, not infinite).
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sanitize replaces out-of-range values so that per-tick arithmetic never
// sees a negative count, a NaN distance or an unparseable color. Zero counts
// and distances are meaningful and kept.
func sanitize(c Config) Config {
	def := DefaultConfig()
	if c.ParticleCount < 0 {
		c.ParticleCount = 0
	}
	if !finite(c.ParticleRadius) || c.ParticleRadius <= 0 {
		c.ParticleRadius = def.ParticleRadius
	}
	if !finite(c.LineDistance) || c.LineDistance < 0 {
		c.LineDistance = def.LineDistance
	}
	if !finite(c.Speed) || c.Speed < 0 {
		c.Speed = def.Speed
	}
	if !finite(c.MouseRadius) || c.MouseRadius < 0 {
		c.MouseRadius = def.MouseRadius
	}
	if !finite(c.LineWidth) || c.LineWidth <= 0 {
		c.LineWidth = def.LineWidth
	}
	if _, ok := ParseColor(c.ParticleColor); !ok {
		c.ParticleColor = def.ParticleColor
	}
	if _, ok := ParseColor(c.LineColor); !ok {
		c.LineColor = def.LineColor
	}
	return c
}

// LoadConfig reads a JSON config from disk. Missing fields keep their
// default values, so a partial file is a valid overlay.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Join(ErrConfigRead, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Join(ErrConfigParse, err)
	}
	return sanitize(cfg), nil
}

// SaveConfig writes the config as indented JSON.
func SaveConfig(filename string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
