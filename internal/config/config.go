package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds configuration shared by the command line tools.
type Config struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Seed for every random source. 0 picks a random seed at startup.
	Seed uint64 `yaml:"seed"`

	// DataDir overrides embedded game data. Empty uses the embedded set.
	DataDir string `yaml:"data_dir"`

	Database  DatabaseConfig  `yaml:"database"`
	Generator GeneratorConfig `yaml:"generator"`
	Duel      DuelConfig      `yaml:"duel"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the item archive.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// GeneratorConfig drives cmd/lootgen.
type GeneratorConfig struct {
	Items     int    `yaml:"items"`
	Workers   int    `yaml:"workers"`
	MinLevel  int    `yaml:"min_level"`
	MaxLevel  int    `yaml:"max_level"`
	Rarity    string `yaml:"rarity"`     // normal, magic, rare; empty rolls rarity per item
	MagicRate int    `yaml:"magic_rate"` // percent of items rolled magic when rarity is empty
	RareRate  int    `yaml:"rare_rate"`  // percent of items rolled rare when rarity is empty
}

// DuelConfig drives cmd/duelsim.
type DuelConfig struct {
	ItemLevel int `yaml:"item_level"`
	MaxRounds int `yaml:"max_rounds"`
	TickMs    int `yaml:"tick_ms"` // simulated time between rounds
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "arpg",
			Password: "arpg",
			DBName:   "arpg",
			SSLMode:  "disable",
		},
		Generator: GeneratorConfig{
			Items:     1000,
			Workers:   4,
			MinLevel:  1,
			MaxLevel:  30,
			MagicRate: 60,
			RareRate:  25,
		},
		Duel: DuelConfig{
			ItemLevel: 15,
			MaxRounds: 200,
			TickMs:    500,
		},
	}
}

// Validate checks value ranges that the tools rely on.
func (c Config) Validate() error {
	g := c.Generator
	if g.Items < 0 {
		return fmt.Errorf("generator.items must be >= 0, got %d", g.Items)
	}
	if g.Workers < 1 {
		return fmt.Errorf("generator.workers must be >= 1, got %d", g.Workers)
	}
	if g.MinLevel < 1 || g.MaxLevel < g.MinLevel {
		return fmt.Errorf("generator level range [%d, %d] is invalid", g.MinLevel, g.MaxLevel)
	}
	if g.MagicRate < 0 || g.RareRate < 0 || g.MagicRate+g.RareRate > 100 {
		return fmt.Errorf("generator magic_rate + rare_rate must be within [0, 100]")
	}
	if c.Duel.MaxRounds < 1 {
		return fmt.Errorf("duel.max_rounds must be >= 1, got %d", c.Duel.MaxRounds)
	}
	return nil
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
