package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Delimiter separating fields in input files: "," | ";" | "tab".
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	// Precision is the number of digits after the decimal point in reports.
	Precision int `mapstructure:"precision" yaml:"precision"`
	// WorkspacesDir overrides where workspaces are stored.
	WorkspacesDir string `mapstructure:"workspaces_dir" yaml:"workspaces_dir"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.colstat/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".colstat")
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
	// Best-effort .env for local development before viper reads the env.
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetEnvPrefix("COLSTAT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("delimiter", ",")
	v.SetDefault("precision", 4)
	v.SetDefault("workspaces_dir", "")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".colstat")
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
	if c.Precision <= 0 {
		c.Precision = 4
	}
	if c.Delimiter == "" {
		c.Delimiter = ","
	}
	return &c, nil
}
