// Package demo holds the flag handling, logging and profiling setup shared by
// the example programs.
package demo

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phanxgames/dropzone"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options are the command-line options every example accepts.
type Options struct {
	ConfigPath string
	ScriptPath string
	AssetsDir  string
	LogLevel   string
	LogFormat  string
	Profile    string
	Debug      bool
}

// RegisterFlags binds o to fs.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "YAML or TOML config overlaying the example's preset")
	fs.StringVar(&o.ScriptPath, "script", "", "YAML script of injected input to replay")
	fs.StringVar(&o.AssetsDir, "assets", "assets/img", "directory holding sprite and background images")
	fs.StringVar(&o.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&o.LogFormat, "log-format", "console", "log format (console or json)")
	fs.StringVar(&o.Profile, "profile", "", "write a cpu or mem profile to the working directory")
	fs.BoolVar(&o.Debug, "debug", false, "log per-frame timing")
}

// NewLogger builds a zap logger for the given level and format.
func NewLogger(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}

// StartProfile starts the requested profiler. The returned stop function is
// always safe to call.
func StartProfile(kind string) (func(), error) {
	var mode func(*profile.Profile)
	switch kind {
	case "":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfileAllocs
	default:
		return nil, fmt.Errorf("unknown profile %q (want cpu or mem)", kind)
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	return p.Stop, nil
}

// Env is what Setup hands back to an example.
type Env struct {
	World  *dropzone.World
	Logger *zap.Logger
	opts   Options
	stop   func()
}

// Setup parses flags, builds the logger, starts profiling, loads the config
// (falling back to preset) and creates the world.
func Setup(preset dropzone.Config, width, height int) (*Env, error) {
	var opts Options
	opts.RegisterFlags(flag.CommandLine)
	flag.Parse()

	logger, err := NewLogger(opts.LogLevel, opts.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	stop, err := StartProfile(opts.Profile)
	if err != nil {
		return nil, err
	}

	cfg := &preset
	if opts.ConfigPath != "" {
		cfg, err = dropzone.LoadConfig(opts.ConfigPath)
		if err != nil {
			stop()
			return nil, err
		}
		logger.Info("config loaded", zap.String("path", opts.ConfigPath), zap.String("preset", cfg.Preset))
	}

	world, err := dropzone.NewWorld(*cfg, float64(width), float64(height))
	if err != nil {
		stop()
		return nil, err
	}
	world.SetLogger(logger)
	world.SetDebugMode(opts.Debug)

	if opts.ScriptPath != "" {
		data, err := os.ReadFile(opts.ScriptPath)
		if err != nil {
			stop()
			return nil, fmt.Errorf("read script: %w", err)
		}
		runner, err := dropzone.LoadScript(data)
		if err != nil {
			stop()
			return nil, err
		}
		world.SetScriptRunner(runner)
	}

	return &Env{World: world, Logger: logger, opts: opts, stop: stop}, nil
}

// Texture starts loading name from the assets directory.
func (e *Env) Texture(name string) *dropzone.Texture {
	return dropzone.LoadTexture(filepath.Join(e.opts.AssetsDir, name))
}

// Close stops profiling and flushes the logger.
func (e *Env) Close() {
	e.stop()
	_ = e.Logger.Sync()
}
