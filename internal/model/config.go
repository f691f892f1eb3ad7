package model

import "time"

// Config holds the complete demclean configuration
type Config struct {
	Scan   ScanConfig   `yaml:"scan" mapstructure:"scan"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// ScanConfig controls how directories are scanned for demos and annotations
type ScanConfig struct {
	DemoExtension    string `yaml:"demo_extension" mapstructure:"demo_extension"`       // e.g. ".dem"
	SidecarExtension string `yaml:"sidecar_extension" mapstructure:"sidecar_extension"` // e.g. ".json"
	EventLogName     string `yaml:"event_log_name" mapstructure:"event_log_name"`       // shared log file name
}

// CacheConfig controls the extraction result cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// OutputConfig controls console and file output
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			DemoExtension:    ".dem",
			SidecarExtension: ".json",
			EventLogName:     "KillStreaks.txt",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Output: OutputConfig{
			Verbose: false,
			NoColor: false,
		},
	}
}
