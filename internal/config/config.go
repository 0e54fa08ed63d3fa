package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DatasetPath string `mapstructure:"dataset_path" yaml:"dataset_path"`
	GeoJSONPath string `mapstructure:"geojson_path" yaml:"geojson_path"`
	OutputPath  string `mapstructure:"output_path" yaml:"output_path"`
	XLSXPath    string `mapstructure:"xlsx_path" yaml:"xlsx_path"`
	// GoalYear is the tournament edition used by the per-stage goal tally.
	GoalYear int `mapstructure:"goal_year" yaml:"goal_year"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.cupstats/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".cupstats")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("CUPSTATS")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dataset_path", "WorldCupMatches.csv")
	v.SetDefault("geojson_path", "world.geo.json")
	v.SetDefault("output_path", "worldcup-report.html")
	v.SetDefault("xlsx_path", "")
	v.SetDefault("goal_year", 2014)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".cupstats")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
