// Package config resolves runtime settings from defaults, an optional YAML file, the environment and flags
package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lixenwraith/flip-clock/constant"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a setting outside its accepted range
var ErrInvalid = errors.New("invalid config")

// Environment variable names
const (
	EnvFPS        = "FLIP_CLOCK_FPS"
	EnvSound      = "FLIP_CLOCK_SOUND"
	EnvDebug      = "FLIP_CLOCK_DEBUG"
	EnvDateLayout = "FLIP_CLOCK_DATE_LAYOUT"
)

const defaultVolume = 0.4

// Config holds every tunable of the clock
type Config struct {
	FPS          int           `yaml:"fps"`
	FlipDuration time.Duration `yaml:"flip_duration"`
	ColonFade    time.Duration `yaml:"colon_fade"`
	Sound        bool          `yaml:"sound"`
	Volume       float64       `yaml:"volume"`
	Debug        bool          `yaml:"debug"`
	DateLayout   string        `yaml:"date_layout"`

	// Path is the file the config was read from, empty when none
	Path string `yaml:"-"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		FPS:          constant.DefaultFPS,
		FlipDuration: constant.FlipDuration,
		ColonFade:    constant.ColonFadeDuration,
		Volume:       defaultVolume,
		DateLayout:   constant.DefaultDateLayout,
	}
}

// FrameInterval is the render period for the configured frame rate
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return constant.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}

// Validate checks ranges, wrapping ErrInvalid
func (c Config) Validate() error {
	if c.FPS < constant.MinFPS || c.FPS > constant.MaxFPS {
		return errors.Wrapf(ErrInvalid, "fps %d outside [%d, %d]", c.FPS, constant.MinFPS, constant.MaxFPS)
	}
	if c.FlipDuration <= 0 {
		return errors.Wrapf(ErrInvalid, "flip_duration %s must be positive", c.FlipDuration)
	}
	if c.ColonFade < 0 {
		return errors.Wrapf(ErrInvalid, "colon_fade %s must not be negative", c.ColonFade)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return errors.Wrapf(ErrInvalid, "volume %g outside [0, 1]", c.Volume)
	}
	if c.DateLayout == "" {
		return errors.Wrap(ErrInvalid, "date_layout is empty")
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/flip-clock/config.yaml, falling back to the user config dir
func DefaultPath(lookup func(string) (string, bool)) string {
	if dir, ok := lookup("XDG_CONFIG_HOME"); ok && dir != "" {
		return filepath.Join(dir, "flip-clock", "config.yaml")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "flip-clock", "config.yaml")
}

// LoadFile overlays the YAML file at path onto cfg
// A missing file is an error only when required
func LoadFile(path string, required bool, cfg *Config) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	cfg.Path = path
	return nil
}

// ApplyEnv overlays FLIP_CLOCK_* variables onto cfg
func ApplyEnv(lookup func(string) (string, bool), cfg *Config) error {
	if v, ok := lookup(EnvFPS); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvFPS)
		}
		cfg.FPS = n
	}
	if v, ok := lookup(EnvSound); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvSound)
		}
		cfg.Sound = b
	}
	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvDebug)
		}
		cfg.Debug = b
	}
	if v, ok := lookup(EnvDateLayout); ok {
		cfg.DateLayout = v
	}
	return nil
}

// Load resolves the configuration: defaults < YAML file < environment < flags
// args excludes the program name; lookup is os.LookupEnv outside tests
func Load(args []string, lookup func(string) (string, bool), output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("flip-clock", flag.ContinueOnError)
	fs.SetOutput(output)

	path := fs.String("config", "", "Path to a YAML config file")
	fps := fs.Int("fps", constant.DefaultFPS, "Frames per second while animating")
	sound := fs.Bool("sound", false, "Play a click when cards flip")
	debug := fs.Bool("debug", false, "Write debug logs to logs/flip-clock.log")
	dateLayout := fs.String("date-layout", constant.DefaultDateLayout, "Go time layout for the date label")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()

	filePath, required := *path, true
	if filePath == "" {
		filePath, required = DefaultPath(lookup), false
	}
	if err := LoadFile(filePath, required, &cfg); err != nil {
		return Config{}, err
	}

	if err := ApplyEnv(lookup, &cfg); err != nil {
		return Config{}, err
	}

	// Only flags given on the command line override
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.FPS = *fps
		case "sound":
			cfg.Sound = *sound
		case "debug":
			cfg.Debug = *debug
		case "date-layout":
			cfg.DateLayout = *dateLayout
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
