package config

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yegors/takeoff/internal/takeoff"
	"github.com/yegors/takeoff/pkg/logger"
)

// Config represents the application configuration
type Config struct {
	Logging  logger.Config    `toml:"logging"`
	Server   ServerConfig     `toml:"server"`
	Aircraft []AircraftConfig `toml:"aircraft"`
}

// ServerConfig represents the HTTP API configuration
type ServerConfig struct {
	Host                string   `toml:"host"`
	Port                int      `toml:"port"`
	CORSAllowedOrigins  []string `toml:"cors_allowed_origins"`
	ReadTimeoutSeconds  int      `toml:"read_timeout_seconds"`
	WriteTimeoutSeconds int      `toml:"write_timeout_seconds"`
}

// Addr returns the listen address in host:port form
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AircraftConfig is a named take-off scenario with the obstacle heights it is
// usually evaluated against.
type AircraftConfig struct {
	Name            string                `toml:"name" json:"name"`
	Description     string                `toml:"description" json:"description,omitempty"`
	ObstacleHeights []float64             `toml:"obstacle_heights_ft" json:"obstacle_heights_ft"`
	Performance     takeoff.Configuration `toml:"performance" json:"performance"`
}

// ReferenceAircraftName names the built-in profile shipped by DefaultConfig.
const ReferenceAircraftName = "reference-single"

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Logging: logger.Config{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Host:                "127.0.0.1",
			Port:                8080,
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
		},
		Aircraft: []AircraftConfig{
			{
				Name:            ReferenceAircraftName,
				Description:     "3400 lbf single, flaps take-off, sea level",
				ObstacleHeights: []float64{30, 50},
				Performance: takeoff.Configuration{
					StallSpeed:          108.0,
					ThrustAtRotation:    908,
					Weight:              3400,
					MinDragCoefficient:  0.0350,
					MaxLiftCoefficient:  1.69,
					WingArea:            144.9,
					InducedDragConstant: 0.04207,
					GroundRollDistance:  1038.0,
				},
			},
		},
	}
}

// Load reads a TOML file on top of the defaults. A file that declares any
// [[aircraft]] replaces the built-in profiles.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	defaults := cfg.Aircraft
	cfg.Aircraft = nil

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if len(cfg.Aircraft) == 0 {
		cfg.Aircraft = defaults
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the logging and server settings and every aircraft profile
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "json", "console", "":
	default:
		return fmt.Errorf("unsupported log format: %s", c.Logging.Format)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}

	seen := make(map[string]bool, len(c.Aircraft))
	for i, a := range c.Aircraft {
		if a.Name == "" {
			return fmt.Errorf("aircraft #%d has no name", i+1)
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate aircraft %q", a.Name)
		}
		seen[a.Name] = true

		if err := a.Performance.Validate(); err != nil {
			return fmt.Errorf("aircraft %q: %w", a.Name, err)
		}
		for _, h := range a.ObstacleHeights {
			if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
				return fmt.Errorf("aircraft %q: obstacle height must be a finite non-negative number, got %v", a.Name, h)
			}
		}
	}

	return nil
}

// FindAircraft returns the profile with the given name
func (c *Config) FindAircraft(name string) (AircraftConfig, bool) {
	for _, a := range c.Aircraft {
		if a.Name == name {
			return a, true
		}
	}
	return AircraftConfig{}, false
}

// AircraftNames returns the configured profile names, sorted
func (c *Config) AircraftNames() []string {
	names := make([]string, 0, len(c.Aircraft))
	for _, a := range c.Aircraft {
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return names
}
