package accretion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/multierr"
)

const (
	configFile = "../../config/accretion.json"
	schemaFile = "../../config/accretion.schema.json"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.G = 0
	cfg.Damping = 1.5
	cfg.TicksPerFrame = 0
	cfg.Rings[0].MinDistance = 500
	cfg.Rings[0].Color = "blue"

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() = %v; want ErrInvalidConfig", err)
	}
	if got := len(multierr.Errors(err)); got != 5 {
		t.Errorf("Validate() reported %d problems; want 5:\n%v", got, err)
	}
}

func TestConfig_ValidateNoRings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rings = nil
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate() = %v; want ErrInvalidConfig", err)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(configFile, schemaFile)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(cfg.Rings) != 8 {
		t.Errorf("rings = %d; want 8", len(cfg.Rings))
	}
	if cfg.Rings[4].Name != "Jupiter" || cfg.Rings[4].Count != 1000 {
		t.Errorf("ring 4 = %+v; want Jupiter with 1000 particles", cfg.Rings[4])
	}
	if cfg.G != 0.6674 || cfg.StarMass != 10000 {
		t.Errorf("star = (G %v, M %v); want (0.6674, 10000)", cfg.G, cfg.StarMass)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name    string
		config  string
		invalid bool // cross-field failure rather than schema failure
	}{
		{"NotJSON", `{"g":`, false},
		{"SchemaUnknownField", `{"g": 1, "starMass": 1, "rings": [], "bogus": true}`, false},
		{"SchemaEmptyRings", `{"g": 1, "starMass": 1, "rings": []}`, false},
		{"SchemaBadColor", `{"g": 1, "starMass": 1, "rings": [{"name": "a", "minDistance": 10, "maxDistance": 20, "count": 1, "color": "red", "minMass": 1, "maxMass": 1}]}`, false},
		{"CrossFieldBand", `{"g": 1, "starMass": 1, "rings": [{"name": "a", "minDistance": 30, "maxDistance": 20, "count": 1, "color": "#ffffff", "minMass": 1, "maxMass": 1}]}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := write(tt.name+".json", tt.config)
			_, err := LoadConfig(p, schemaFile)
			if err == nil {
				t.Fatal("LoadConfig() succeeded; want an error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v; want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(dir, "nope.json"), schemaFile); err == nil {
			t.Error("LoadConfig() on a missing file succeeded")
		}
	})
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"#ffdc32", false},
		{"#FFDC32", false},
		{"ffdc32", true},
		{"#ffdc3", true},
		{"#gggggg", true},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && (c.R != 0xff || c.G != 0xdc || c.B != 0x32 || c.A != 0xff) {
			t.Errorf("ParseColor(%q) = %v", tt.in, c)
		}
	}
}
