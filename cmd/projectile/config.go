package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sauerbraten/jsonfile"

	"github.com/hupe1980/rtc/projectile"
	"github.com/hupe1980/rtc/trajectory"
	"github.com/hupe1980/rtc/tuple"
)

// Config describes one CLI invocation. It can be loaded from a JSON file
// (// comments allowed) and then overridden by flags.
type Config struct {
	Start       Vec3      `json:"start"`
	Heading     Vec3      `json:"heading"`
	Speed       float64   `json:"speed"`
	Gravity     Vec3      `json:"gravity"`
	Wind        Vec3      `json:"wind"`
	MaxTicks    int       `json:"max_ticks"`
	Rate        float64   `json:"rate"`
	Sweep       []float64 `json:"sweep"`
	Out         string    `json:"out"`
	Name        string    `json:"name"`
	Compression string    `json:"compression"`
	LogLevel    string    `json:"log_level"`
	JSONLog     bool      `json:"json_log"`
	Quiet       bool      `json:"quiet"`
}

// DefaultConfig returns the reference scenario with output disabled.
func DefaultConfig() Config {
	return Config{
		Start:       Vec3{0, 1, 0},
		Heading:     Vec3{1, 1, 0},
		Speed:       100,
		Gravity:     Vec3{0, -1, 0},
		Wind:        Vec3{-0.01, 0, 0},
		MaxTicks:    projectile.DefaultMaxTicks,
		Name:        "projectile",
		Compression: "zstd",
		LogLevel:    "warn",
	}
}

// Environment returns the configured gravity and wind.
func (c Config) Environment() projectile.Environment {
	return projectile.Environment{
		Gravity: c.Gravity.Vector(),
		Wind:    c.Wind.Vector(),
	}
}

// Launch returns the projectile launched at speed.
func (c Config) Launch(speed float64) projectile.Projectile {
	return projectile.Launch(c.Start.Point(), c.Heading.Vector(), speed)
}

// Validate checks values that flags and JSON cannot constrain.
func (c Config) Validate() error {
	var errs []error
	if c.MaxTicks < 0 {
		errs = append(errs, fmt.Errorf("max_ticks must be >= 0, got %d", c.MaxTicks))
	}
	if c.Rate < 0 {
		errs = append(errs, fmt.Errorf("rate must be >= 0, got %g", c.Rate))
	}
	if c.Out != "" && c.Name == "" {
		errs = append(errs, errors.New("name is required when out is set"))
	}
	if _, err := trajectory.ParseCompression(c.Compression); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// Vec3 is an x,y,z triple. In JSON it is an array, on the command line a
// comma-separated list.
type Vec3 [3]float64

// Point returns v as a point.
func (v Vec3) Point() tuple.Tuple { return tuple.Point(v[0], v[1], v[2]) }

// Vector returns v as a vector.
func (v Vec3) Vector() tuple.Tuple { return tuple.Vector(v[0], v[1], v[2]) }

func (v *Vec3) String() string {
	return fmt.Sprintf("%g,%g,%g", v[0], v[1], v[2])
}

// Set implements flag.Value.
func (v *Vec3) Set(s string) error {
	fs, err := parseFloats(s)
	if err != nil {
		return err
	}
	if len(fs) != 3 {
		return fmt.Errorf("want 3 components, got %d", len(fs))
	}
	copy(v[:], fs)
	return nil
}

// floatList is a comma-separated list of floats.
type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, f := range *l {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(s string) error {
	fs, err := parseFloats(s)
	if err != nil {
		return err
	}
	*l = fs
	return nil
}

func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	fs := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		fs[i] = f
	}
	return fs, nil
}

// parseConfig builds a Config from defaults, the optional -config file and
// the flags in args, in that order of precedence (flags win).
func parseConfig(args []string, stderr io.Writer) (Config, error) {
	var (
		path  string
		flags = DefaultConfig()
	)

	fs := flag.NewFlagSet("projectile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&path, "config", "", "JSON config file (// comments allowed)")
	fs.Var(&flags.Start, "start", "launch point x,y,z")
	fs.Var(&flags.Heading, "heading", "launch direction x,y,z (normalized)")
	fs.Float64Var(&flags.Speed, "speed", flags.Speed, "launch speed")
	fs.Var(&flags.Gravity, "gravity", "gravity vector x,y,z")
	fs.Var(&flags.Wind, "wind", "wind vector x,y,z")
	fs.IntVar(&flags.MaxTicks, "max-ticks", flags.MaxTicks, "give up after this many ticks (0 = unbounded)")
	fs.Float64Var(&flags.Rate, "rate", flags.Rate, "ticks per second (0 = as fast as possible)")
	fs.Var((*floatList)(&flags.Sweep), "sweep", "comma-separated launch speeds simulated concurrently")
	fs.StringVar(&flags.Out, "out", flags.Out, "store URL for trajectories (file://dir, mem://, minio://host/bucket/prefix, s3://bucket/prefix)")
	fs.StringVar(&flags.Name, "name", flags.Name, "trajectory base name")
	fs.StringVar(&flags.Compression, "compression", flags.Compression, "none, lz4 or zstd")
	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&flags.JSONLog, "json-log", flags.JSONLog, "log as JSON")
	fs.BoolVar(&flags.Quiet, "quiet", flags.Quiet, "do not print every tick")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := DefaultConfig()
	if path != "" {
		if err := jsonfile.ParseFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			cfg.Start = flags.Start
		case "heading":
			cfg.Heading = flags.Heading
		case "speed":
			cfg.Speed = flags.Speed
		case "gravity":
			cfg.Gravity = flags.Gravity
		case "wind":
			cfg.Wind = flags.Wind
		case "max-ticks":
			cfg.MaxTicks = flags.MaxTicks
		case "rate":
			cfg.Rate = flags.Rate
		case "sweep":
			cfg.Sweep = flags.Sweep
		case "out":
			cfg.Out = flags.Out
		case "name":
			cfg.Name = flags.Name
		case "compression":
			cfg.Compression = flags.Compression
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "json-log":
			cfg.JSONLog = flags.JSONLog
		case "quiet":
			cfg.Quiet = flags.Quiet
		}
	})

	return cfg, cfg.Validate()
}
