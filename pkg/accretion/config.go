package accretion

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/multierr"
)

// MaxTicksPerFrame caps the speed multiplier.
const MaxTicksPerFrame = 10

// Ring is one seeding band around the star. Every ring becomes its own merge group.
type Ring struct {
	Name        string  `json:"name"`
	MinDistance float64 `json:"minDistance"`
	MaxDistance float64 `json:"maxDistance"`
	Count       int     `json:"count"`
	Color       string  `json:"color"` // #rrggbb
	MinMass     float64 `json:"minMass"`
	MaxMass     float64 `json:"maxMass"`
}

type Config struct {
	// Window (front-ends only)
	ScreenWidth  int  `json:"screenWidth"`
	ScreenHeight int  `json:"screenHeight"`
	ShowPanel    bool `json:"showPanel"`
	Sound        bool `json:"sound"`

	// Star
	G          float64 `json:"g"`
	StarMass   float64 `json:"starMass"`
	StarRadius float64 `json:"starRadius"` // display only
	StarColor  string  `json:"starColor"`

	// Integrator
	MinDistance        float64 `json:"minDistance"` // softening floor on the star distance
	DtScale            float64 `json:"dtScale"`
	Damping            float64 `json:"damping"`
	StabilizationTicks uint32  `json:"stabilizationTicks"`
	Jitter             float64 `json:"jitter"`

	// Coalescence
	MergeMinAge     uint32  `json:"mergeMinAge"`
	PromotionMass   float64 `json:"promotionMass"`
	RadiusScale     float64 `json:"radiusScale"` // k in floor(k*ln(m+1))
	MinRadius       float64 `json:"minRadius"`
	PlanetMinRadius float64 `json:"planetMinRadius"`

	// Loop
	TicksPerFrame int    `json:"ticksPerFrame"`
	InjectCount   int    `json:"injectCount"`
	Workers       int    `json:"workers"`
	Seed          uint64 `json:"seed"` // 0 picks a time based seed

	Rings []Ring `json:"rings"`
}

func DefaultConfig() *Config {
	return &Config{
		ScreenWidth:        1000,
		ScreenHeight:       800,
		ShowPanel:          true,
		Sound:              false,
		G:                  0.6674,
		StarMass:           10000,
		StarRadius:         15,
		StarColor:          "#ffdc32",
		MinDistance:        20,
		DtScale:            1,
		Damping:            0.9995,
		StabilizationTicks: 30,
		Jitter:             0.03,
		MergeMinAge:        60,
		PromotionMass:      20,
		RadiusScale:        1.3,
		MinRadius:          1,
		PlanetMinRadius:    3,
		TicksPerFrame:      1,
		InjectCount:        100,
		Workers:            1,
		Rings: []Ring{
			{Name: "Disk", MinDistance: 60, MaxDistance: 350, Count: 2000, Color: "#c8c8ff", MinMass: 0.8, MaxMass: 1.2},
		},
	}
}

// LoadConfig loads configuration from a JSON file, validates it against the schema
// and then checks the cross-field rules with Validate.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// fields missing from the file keep their defaults
	cfg := DefaultConfig()
	cfg.Rings = nil
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every cross-field problem at once. Each one wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	var err error
	invalid := func(format string, args ...interface{}) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfig}, args...)...))
	}

	if c.G <= 0 {
		invalid("g must be > 0, got %v", c.G)
	}
	if c.StarMass <= 0 {
		invalid("starMass must be > 0, got %v", c.StarMass)
	}
	if c.MinDistance <= 0 {
		invalid("minDistance must be > 0, got %v", c.MinDistance)
	}
	if c.DtScale <= 0 {
		invalid("dtScale must be > 0, got %v", c.DtScale)
	}
	if c.Damping <= 0 || c.Damping > 1 {
		invalid("damping must be in (0, 1], got %v", c.Damping)
	}
	if c.Jitter < 0 || c.Jitter >= 1 {
		invalid("jitter must be in [0, 1), got %v", c.Jitter)
	}
	if c.PromotionMass <= 0 {
		invalid("promotionMass must be > 0, got %v", c.PromotionMass)
	}
	if c.RadiusScale <= 0 {
		invalid("radiusScale must be > 0, got %v", c.RadiusScale)
	}
	if c.MinRadius <= 0 || c.PlanetMinRadius <= 0 {
		invalid("minRadius and planetMinRadius must be > 0, got %v and %v", c.MinRadius, c.PlanetMinRadius)
	}
	if c.TicksPerFrame < 1 || c.TicksPerFrame > MaxTicksPerFrame {
		invalid("ticksPerFrame must be in [1, %d], got %d", MaxTicksPerFrame, c.TicksPerFrame)
	}
	if c.InjectCount < 0 {
		invalid("injectCount must be >= 0, got %d", c.InjectCount)
	}
	if c.Workers < 0 {
		invalid("workers must be >= 0, got %d", c.Workers)
	}
	if _, cerr := ParseColor(c.StarColor); cerr != nil {
		invalid("starColor: %v", cerr)
	}
	if len(c.Rings) == 0 {
		invalid("at least one ring is required")
	}
	for i := range c.Rings {
		err = multierr.Append(err, c.Rings[i].Validate())
	}
	return err
}

// Validate checks a single ring band.
func (r *Ring) Validate() error {
	var err error
	invalid := func(format string, args ...interface{}) {
		args = append([]interface{}{ErrInvalidConfig, r.Name}, args...)
		err = multierr.Append(err, fmt.Errorf("%w: ring %q: "+format, args...))
	}

	if r.Count < 0 {
		invalid("count must be >= 0, got %d", r.Count)
	}
	if r.MinDistance <= 0 {
		invalid("minDistance must be > 0, got %v", r.MinDistance)
	}
	if r.MinDistance > r.MaxDistance {
		invalid("minDistance %v is greater than maxDistance %v", r.MinDistance, r.MaxDistance)
	}
	if r.MinMass <= 0 || r.MinMass > r.MaxMass {
		invalid("mass band [%v, %v] is empty or not positive", r.MinMass, r.MaxMass)
	}
	if _, cerr := ParseColor(r.Color); cerr != nil {
		invalid("%v", cerr)
	}
	return err
}

// ParseColor decodes a #rrggbb string.
func ParseColor(hex string) (color.RGBA, error) {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{R: r, G: g, B: b, A: 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("bad color %q, want #rrggbb", hex)
}
