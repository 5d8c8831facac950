package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/netpath/mapgen"
)

// Config holds all application configuration.
type Config struct {
	Map    MapConfig    `mapstructure:"map"`
	Search SearchConfig `mapstructure:"search"`
	Log    LogConfig    `mapstructure:"log"`
}

type MapConfig struct {
	Locations     int     `mapstructure:"locations"`
	Density       float64 `mapstructure:"density"`
	Bidirectional bool    `mapstructure:"bidirectional"`
	Backbone      bool    `mapstructure:"backbone"`
	MaxAttempts   int     `mapstructure:"max_attempts"`

	// Seed makes generation reproducible. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}

type SearchConfig struct {
	Workers int    `mapstructure:"workers"`
	Runs    int    `mapstructure:"runs"`
	Seed    uint64 `mapstructure:"seed"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"locations":     "map.locations",
	"density":       "map.density",
	"bidirectional": "map.bidirectional",
	"backbone":      "map.backbone",
	"max-attempts":  "map.max_attempts",
	"seed":          "map.seed",
	"workers":       "search.workers",
	"runs":          "search.runs",
	"search-seed":   "search.seed",
	"log-level":     "log.level",
	"log-format":    "log.format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("map.locations", 10)
	v.SetDefault("map.density", 0.5)
	v.SetDefault("map.bidirectional", true)
	v.SetDefault("map.backbone", true)
	v.SetDefault("map.max_attempts", mapgen.DefaultMaxAttempts)
	v.SetDefault("map.seed", 0)
	v.SetDefault("search.workers", 4)
	v.SetDefault("search.runs", 100)
	v.SetDefault("search.seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration from defaults, the file at path (skipped when
// empty), NETPATH_* environment variables and the flags in fs that were
// set explicitly, in increasing priority. fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("NETPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Map.Locations < mapgen.MinLocations {
		warnings = append(warnings, fmt.Sprintf("map locations %d is below the minimum of %d", c.Map.Locations, mapgen.MinLocations))
	}

	if c.Map.Density < 0 || c.Map.Density > 1 {
		warnings = append(warnings, fmt.Sprintf("map density %.2f is outside [0.0, 1.0]", c.Map.Density))
	} else if minimum := mapgen.MinimumDensity(c.Map.Locations, c.Map.Bidirectional); c.Map.Density < minimum {
		warnings = append(warnings, fmt.Sprintf("map density %.2f is below the minimum %.2f for %d locations", c.Map.Density, minimum, c.Map.Locations))
	}

	if c.Map.MaxAttempts < 1 {
		warnings = append(warnings, fmt.Sprintf("map max_attempts %d is not positive", c.Map.MaxAttempts))
	}

	if c.Search.Workers < 1 {
		warnings = append(warnings, fmt.Sprintf("search workers %d is not positive", c.Search.Workers))
	}
	if c.Search.Runs < 0 {
		warnings = append(warnings, fmt.Sprintf("search runs %d is negative", c.Search.Runs))
	}

	if _, err := c.Log.level(); err != nil {
		warnings = append(warnings, fmt.Sprintf("log level %q is unknown, using info", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		warnings = append(warnings, fmt.Sprintf("log format %q is unknown, using text", c.Log.Format))
	}

	return warnings
}

// MapOptions translates the map section into generator options.
func (c MapConfig) MapOptions(logger *slog.Logger) []mapgen.Option {
	opts := []mapgen.Option{
		mapgen.WithBidirectional(c.Bidirectional),
		mapgen.WithMaxAttempts(c.MaxAttempts),
		mapgen.WithLogger(logger),
	}
	if !c.Backbone {
		opts = append(opts, mapgen.WithoutBackbone())
	}
	if c.Seed != 0 {
		opts = append(opts, mapgen.WithSeed(c.Seed))
	}

	return opts
}

func (c LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if c.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo, err
	}

	return lvl, nil
}

// Logger builds a slog logger writing to w. Unknown levels fall back to
// info and unknown formats to text; Validate reports both.
func (c LogConfig) Logger(w io.Writer) *slog.Logger {
	lvl, _ := c.level()
	opts := &slog.HandlerOptions{Level: lvl}

	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
