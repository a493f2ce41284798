package game

import (
	"errors"
	"testing"
)

func TestConfig_DefaultIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cell", func(c *Config) { c.CellW = 0 }},
		{"grid too small", func(c *Config) { c.Cols = 10 }},
		{"zero speed", func(c *Config) { c.UnitSpeed = 0 }},
		{"speed off grid", func(c *Config) { c.UnitSpeed = 3 }},
		{"zero bullet", func(c *Config) { c.BulletH = 0 }},
		{"no bullets", func(c *Config) { c.MaxBullets = 0 }},
		{"no lives", func(c *Config) { c.PlayerLives = 0 }},
		{"player outside", func(c *Config) { c.PlayerRow = 14 }},
		{"zero chance", func(c *Config) { c.AttackChance = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("got %v, want ErrInvalidConfig", err)
			}
			if _, err := NewSession(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("NewSession: got %v, want wrapped ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_FieldSize(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FieldWidth() != 544 || cfg.FieldHeight() != 448 {
		t.Fatalf("field %gx%g, want 544x448", cfg.FieldWidth(), cfg.FieldHeight())
	}
}
