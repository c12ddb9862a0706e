package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dyluth/forge/pkg/fab"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "forge.yml"

// EnvConfigPath names the environment variable that overrides DefaultPath.
const EnvConfigPath = "FORGE_CONFIG"

// CalibrationConfig overrides individual calibration defaults.
// Unset fields keep the factory value.
type CalibrationConfig struct {
	HighContrast     *bool    `yaml:"highContrast,omitempty" toml:"highContrast,omitempty"`
	HapticFeedback   *bool    `yaml:"hapticFeedback,omitempty" toml:"hapticFeedback,omitempty"`
	RefreshRate      *int     `yaml:"refreshRate,omitempty" toml:"refreshRate,omitempty"`
	MaxTorque        *float64 `yaml:"maxTorque,omitempty" toml:"maxTorque,omitempty"`
	TempCeiling      *float64 `yaml:"tempCeiling,omitempty" toml:"tempCeiling,omitempty"`
	GridDensity      *int     `yaml:"gridDensity,omitempty" toml:"gridDensity,omitempty"`
	CalibrationNotes *string  `yaml:"calibrationNotes,omitempty" toml:"calibrationNotes,omitempty"`
}

// ForgeConfig represents the top-level forge.yml configuration
type ForgeConfig struct {
	Version     string             `yaml:"version" toml:"version"`
	Seed        *bool              `yaml:"seed,omitempty" toml:"seed,omitempty"` // Fall back to the built-in demo data for empty lists (default true)
	Calibration *CalibrationConfig `yaml:"calibration,omitempty" toml:"calibration,omitempty"`
	Tasks       []fab.Task         `yaml:"tasks,omitempty" toml:"tasks,omitempty"`
	Resources   []fab.Resource     `yaml:"resources,omitempty" toml:"resources,omitempty"`
}

// Default returns the configuration used when no forge.yml exists.
func Default() *ForgeConfig {
	seed := true
	return &ForgeConfig{Version: "1.0", Seed: &seed}
}

// Validate performs strict validation on the configuration
func (c *ForgeConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Seed == nil {
		seed := true
		c.Seed = &seed
	}

	taskIDs := make(map[string]bool)
	for i := range c.Tasks {
		t := &c.Tasks[i]
		if t.Assignee == "" {
			t.Assignee = fab.Unassigned
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("tasks[%d]: %w", i, err)
		}
		if taskIDs[t.ID] {
			return fmt.Errorf("duplicate task id '%s': task ids must be unique", t.ID)
		}
		taskIDs[t.ID] = true
	}

	resourceIDs := make(map[string]bool)
	for i := range c.Resources {
		r := &c.Resources[i]
		if err := r.Validate(); err != nil {
			return fmt.Errorf("resources[%d]: %w", i, err)
		}
		if resourceIDs[r.ID] {
			return fmt.Errorf("duplicate resource id '%s': resource ids must be unique", r.ID)
		}
		resourceIDs[r.ID] = true
	}

	return nil
}

// SeedTasks returns the tasks a new board starts with.
func (c *ForgeConfig) SeedTasks() []fab.Task {
	if len(c.Tasks) > 0 {
		out := make([]fab.Task, len(c.Tasks))
		copy(out, c.Tasks)
		return out
	}
	if c.seedEnabled() {
		return fab.SeedTasks()
	}
	return nil
}

// SeedResources returns the roster the registry serves.
func (c *ForgeConfig) SeedResources() []fab.Resource {
	if len(c.Resources) > 0 {
		out := make([]fab.Resource, len(c.Resources))
		copy(out, c.Resources)
		return out
	}
	if c.seedEnabled() {
		return fab.SeedResources()
	}
	return nil
}

// CalibrationDefaults applies the calibration overrides to the factory settings.
func (c *ForgeConfig) CalibrationDefaults() fab.Config {
	cfg := fab.DefaultConfig()
	o := c.Calibration
	if o == nil {
		return cfg
	}

	if o.HighContrast != nil {
		cfg.HighContrast = *o.HighContrast
	}
	if o.HapticFeedback != nil {
		cfg.HapticFeedback = *o.HapticFeedback
	}
	if o.RefreshRate != nil {
		cfg.RefreshRate = *o.RefreshRate
	}
	if o.MaxTorque != nil {
		cfg.MaxTorque = *o.MaxTorque
	}
	if o.TempCeiling != nil {
		cfg.TempCeiling = *o.TempCeiling
	}
	if o.GridDensity != nil {
		cfg.GridDensity = *o.GridDensity
	}
	if o.CalibrationNotes != nil {
		cfg.CalibrationNotes = *o.CalibrationNotes
	}
	return cfg
}

func (c *ForgeConfig) seedEnabled() bool {
	return c.Seed == nil || *c.Seed
}

// Load reads and validates forge.yml from the specified path.
// A path ending in .toml is decoded as TOML instead of YAML.
func Load(path string) (*ForgeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config ForgeConfig
	if err := decode(path, data, &config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// IsTOML reports whether path names a TOML configuration file.
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func decode(path string, data []byte, config *ForgeConfig) error {
	if IsTOML(path) {
		if _, err := toml.Decode(string(data), config); err != nil {
			return fmt.Errorf("failed to parse TOML: %w", err)
		}
		return nil
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// LoadOrDefault loads path if it exists and falls back to Default otherwise.
// An explicitly requested path must exist.
func LoadOrDefault(path string, explicit bool) (*ForgeConfig, error) {
	if !explicit {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Default(), nil
		}
	}
	return Load(path)
}

// ResolvePath picks the config path: the flag value if set, then
// $FORGE_CONFIG, then DefaultPath. explicit reports whether the caller
// asked for a specific file.
func ResolvePath(flagValue string) (path string, explicit bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, true
	}
	return DefaultPath, false
}
