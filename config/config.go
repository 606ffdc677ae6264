package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openfiscal/wealthsim/sim"
)

// Config represents the complete simulator configuration
type Config struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// SimulationConfig holds the policy inputs in human-friendly units:
// rates and efficiency in percent, the threshold in £ millions.
// Parameters() converts to engine units.
type SimulationConfig struct {
	TaxRate                  float64 `json:"tax_rate" yaml:"tax_rate"`
	WealthThresholdMillions  float64 `json:"wealth_threshold_millions" yaml:"wealth_threshold_millions"`
	Years                    int     `json:"years" yaml:"years"`
	BaseGrowthRate           float64 `json:"base_growth_rate" yaml:"base_growth_rate"`
	GrowthPremium            float64 `json:"high_wealth_premium" yaml:"high_wealth_premium"`
	RedistributionEfficiency float64 `json:"redistribution_efficiency" yaml:"redistribution_efficiency"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "csv" or "sqlite"
	RunsFile      string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	SnapshotsFile string `json:"snapshots_file,omitempty" yaml:"snapshots_file,omitempty"`
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Parameters converts the file units into engine units: the threshold from
// £ millions to pounds, efficiency from percent to a fraction. Growth and
// tax rates stay in percent, which is what the engine expects.
func (s SimulationConfig) Parameters() sim.Parameters {
	return sim.Parameters{
		TaxRate:                  s.TaxRate,
		WealthThreshold:          s.WealthThresholdMillions * 1_000_000,
		BaseGrowthRate:           s.BaseGrowthRate,
		GrowthPremium:            s.GrowthPremium,
		RedistributionEfficiency: s.RedistributionEfficiency / 100,
		Years:                    s.Years,
	}
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	// Determine format by extension
	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid. It rejects structurally
// broken input (negative years, non-finite rates, an efficiency outside
// 0-100, a mis-wired journal) but does not police policy ranges; unusual
// rates are allowed and the engine handles them arithmetically.
func (c *Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return err
	}
	if c.Journal.Type != "csv" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	if c.Journal.Type == "csv" && (c.Journal.RunsFile == "" || c.Journal.SnapshotsFile == "") {
		return fmt.Errorf("journal runs_file and snapshots_file required for CSV type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	return nil
}

// Validate checks the simulation section on its own, for callers (the
// HTTP API) that take policy inputs without a journal.
func (s SimulationConfig) Validate() error {
	if s.Years < 0 {
		return fmt.Errorf("simulation.years must be >= 0")
	}
	for name, v := range map[string]float64{
		"simulation.tax_rate":                  s.TaxRate,
		"simulation.wealth_threshold_millions": s.WealthThresholdMillions,
		"simulation.base_growth_rate":          s.BaseGrowthRate,
		"simulation.high_wealth_premium":       s.GrowthPremium,
		"simulation.redistribution_efficiency": s.RedistributionEfficiency,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number", name)
		}
	}
	if s.RedistributionEfficiency < 0 || s.RedistributionEfficiency > 100 {
		return fmt.Errorf("simulation.redistribution_efficiency must be between 0 and 100")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TaxRate:                  2.0,
			WealthThresholdMillions:  10,
			Years:                    20,
			BaseGrowthRate:           5.0,
			GrowthPremium:            1.0,
			RedistributionEfficiency: 80,
		},
		Journal: JournalConfig{
			Type:          "csv",
			RunsFile:      "./runs.csv",
			SnapshotsFile: "./snapshots.csv",
		},
	}
}
