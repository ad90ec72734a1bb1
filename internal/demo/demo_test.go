package demo

import (
	"flag"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestRegisterFlags(t *testing.T) {
	var o Options
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.RegisterFlags(fs)
	err := fs.Parse([]string{"-config", "world.toml", "-log-level", "debug", "-debug", "-profile", "cpu"})
	if err != nil {
		t.Fatal(err)
	}
	if o.ConfigPath != "world.toml" || o.LogLevel != "debug" || !o.Debug || o.Profile != "cpu" {
		t.Errorf("options = %+v", o)
	}
	if o.AssetsDir != "assets/img" || o.LogFormat != "console" {
		t.Errorf("defaults = %+v", o)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level, format string
		want          zapcore.Level
	}{
		{"debug", "console", zapcore.DebugLevel},
		{"warn", "json", zapcore.WarnLevel},
		{"bogus", "console", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		logger, err := NewLogger(tt.level, tt.format)
		if err != nil {
			t.Fatalf("NewLogger(%q, %q): %v", tt.level, tt.format, err)
		}
		if !logger.Core().Enabled(tt.want) {
			t.Errorf("%q logger should enable %v", tt.level, tt.want)
		}
		if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
			t.Errorf("%q logger should not enable %v", tt.level, tt.want-1)
		}
	}
}

func TestStartProfile(t *testing.T) {
	stop, err := StartProfile("")
	if err != nil {
		t.Fatal(err)
	}
	stop()

	if _, err := StartProfile("trace-everything"); err == nil {
		t.Error("expected error for unknown profile kind")
	}
}
