// Package config holds the timeslider configuration: the slider's
// domain and tick layout, the render surface, the initial sweep and
// the logging setup. Values come from defaults, an optional YAML file,
// TIMESLIDER_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// TIMESLIDER_SWEEP_DURATION=3s.
const EnvPrefix = "TIMESLIDER"

// MaxFPS caps the sweep frame rate.
const MaxFPS = 240

// MinSurfaceHeight leaves room for the track row and the label row.
const MinSurfaceHeight = 2

var (
	ErrInvalidDomain  = errors.New("domain min must be less than domain max")
	ErrInvalidTicks   = errors.New("tick count must be at least 1")
	ErrInvalidSurface = errors.New("surface too small for the track and labels")
	ErrInvalidSweep   = errors.New("sweep duration must be positive and fps in [1, 240]")
	ErrInvalidColor   = errors.New("saturation and lightness must lie in [0, 1]")
)

// Config is the complete runtime configuration.
type Config struct {
	Domain  DomainConfig  `mapstructure:"domain" yaml:"domain" json:"domain"`
	Surface SurfaceConfig `mapstructure:"surface" yaml:"surface" json:"surface"`
	Sweep   SweepConfig   `mapstructure:"sweep" yaml:"sweep" json:"sweep"`
	Color   ColorConfig   `mapstructure:"color" yaml:"color" json:"color"`
	Log     LogConfig     `mapstructure:"log" yaml:"log" json:"log"`
}

// DomainConfig describes the month axis.
type DomainConfig struct {
	Min       float64 `mapstructure:"min" yaml:"min" json:"min"`
	Max       float64 `mapstructure:"max" yaml:"max" json:"max"`
	TickCount int     `mapstructure:"tick_count" yaml:"tick_count" json:"tick_count"`

	// Year labels each month tick as "YYYY-MM".
	Year int `mapstructure:"year" yaml:"year" json:"year"`

	// Step is how far one arrow key press moves the handle.
	Step float64 `mapstructure:"step" yaml:"step" json:"step"`
}

// SurfaceConfig is the render target, measured in terminal cells.
type SurfaceConfig struct {
	Width       int `mapstructure:"width" yaml:"width" json:"width"`
	Height      int `mapstructure:"height" yaml:"height" json:"height"`
	MarginLeft  int `mapstructure:"margin_left" yaml:"margin_left" json:"margin_left"`
	MarginRight int `mapstructure:"margin_right" yaml:"margin_right" json:"margin_right"`
}

// SweepConfig controls the automatic preview sweep on startup.
type SweepConfig struct {
	Enabled         bool          `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Duration        time.Duration `mapstructure:"duration" yaml:"duration" json:"duration"`
	FPS             int           `mapstructure:"fps" yaml:"fps" json:"fps"`
	InterruptOnDrag bool          `mapstructure:"interrupt_on_drag" yaml:"interrupt_on_drag" json:"interrupt_on_drag"`
}

// ColorConfig fixes the HSL saturation and lightness of the background;
// the hue follows the slider position.
type ColorConfig struct {
	Saturation float64 `mapstructure:"saturation" yaml:"saturation" json:"saturation"`
	Lightness  float64 `mapstructure:"lightness" yaml:"lightness" json:"lightness"`
}

// LogConfig selects where diagnostics go. The TUI owns the terminal,
// so an empty File discards logs while it runs.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" json:"level"`
	File  string `mapstructure:"file" yaml:"file" json:"file"`
}

// Default returns the stock timeline layout:
// months 1..4 of 2020 swept from April back to January over 9s.
func Default() Config {
	return Config{
		Domain: DomainConfig{
			Min:       1,
			Max:       4,
			TickCount: 4,
			Year:      2020,
			Step:      0.1,
		},
		Surface: SurfaceConfig{
			Width:       80,
			Height:      7,
			MarginLeft:  5,
			MarginRight: 5,
		},
		Sweep: SweepConfig{
			Enabled:         true,
			Duration:        9 * time.Second,
			FPS:             60,
			InterruptOnDrag: true,
		},
		Color: ColorConfig{
			Saturation: 0.8,
			Lightness:  0.8,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers Default() with v so that file, env and flag
// values layer on top of it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("domain.min", d.Domain.Min)
	v.SetDefault("domain.max", d.Domain.Max)
	v.SetDefault("domain.tick_count", d.Domain.TickCount)
	v.SetDefault("domain.year", d.Domain.Year)
	v.SetDefault("domain.step", d.Domain.Step)
	v.SetDefault("surface.width", d.Surface.Width)
	v.SetDefault("surface.height", d.Surface.Height)
	v.SetDefault("surface.margin_left", d.Surface.MarginLeft)
	v.SetDefault("surface.margin_right", d.Surface.MarginRight)
	v.SetDefault("sweep.enabled", d.Sweep.Enabled)
	v.SetDefault("sweep.duration", d.Sweep.Duration)
	v.SetDefault("sweep.fps", d.Sweep.FPS)
	v.SetDefault("sweep.interrupt_on_drag", d.Sweep.InterruptOnDrag)
	v.SetDefault("color.saturation", d.Color.Saturation)
	v.SetDefault("color.lightness", d.Color.Lightness)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Load reads the configuration from v. When cfgFile is non-empty it
// must exist; otherwise $HOME/.timeslider.yaml is used if present.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath("$HOME")
		v.SetConfigName(".timeslider")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the slider cannot use.
func (c Config) Validate() error {
	if !(c.Domain.Min < c.Domain.Max) {
		return fmt.Errorf("%w: got [%v, %v]", ErrInvalidDomain, c.Domain.Min, c.Domain.Max)
	}
	if c.Domain.TickCount < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTicks, c.Domain.TickCount)
	}
	if c.Surface.MarginLeft < 0 || c.Surface.MarginRight < 0 ||
		c.Surface.Width-c.Surface.MarginLeft-c.Surface.MarginRight < 2 {
		return fmt.Errorf("%w: width %d, margins %d/%d", ErrInvalidSurface,
			c.Surface.Width, c.Surface.MarginLeft, c.Surface.MarginRight)
	}
	if c.Surface.Height < MinSurfaceHeight {
		return fmt.Errorf("%w: height %d, need at least %d", ErrInvalidSurface,
			c.Surface.Height, MinSurfaceHeight)
	}
	if c.Sweep.Duration <= 0 || c.Sweep.FPS <= 0 || c.Sweep.FPS > MaxFPS {
		return fmt.Errorf("%w: duration %v, fps %d", ErrInvalidSweep, c.Sweep.Duration, c.Sweep.FPS)
	}
	if !unit(c.Color.Saturation) || !unit(c.Color.Lightness) {
		return fmt.Errorf("%w: s=%v l=%v", ErrInvalidColor, c.Color.Saturation, c.Color.Lightness)
	}
	return nil
}

// TrackWidth is the pixel range available to the scale.
func (c Config) TrackWidth() int {
	return c.Surface.Width - c.Surface.MarginLeft - c.Surface.MarginRight
}

// FrameInterval is the time between sweep frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Sweep.FPS)
}

func unit(v float64) bool {
	return v >= 0 && v <= 1
}
