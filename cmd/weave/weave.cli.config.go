package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels accepted by WEAVE_LOG_LEVEL
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// cliConfig holds settings read from the environment. Command flags take
// precedence over these values.
type cliConfig struct {
	Language       string `env:"WEAVE_LANG" envDefault:"en"`
	DictionaryPath string `env:"WEAVE_DICTIONARY"`
	MaxDepth       int    `env:"WEAVE_MAX_DEPTH" envDefault:"100"`
	MaxIterations  int    `env:"WEAVE_MAX_ITERATIONS" envDefault:"1000"`
	LogLevel       string `env:"WEAVE_LOG_LEVEL" envDefault:"warn"`
}

// loadConfig reads the CLI configuration from the environment.
func loadConfig() (*cliConfig, error) {
	cfg := &cliConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *cliConfig) validate() error {
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxDepth < 0 || c.MaxIterations < 0 {
		return fmt.Errorf("%s: limits must not be negative", ErrMsgInvalidConfig)
	}
	return nil
}

func parseLogLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case LogLevelDebug:
		return zapcore.DebugLevel, nil
	case LogLevelInfo:
		return zapcore.InfoLevel, nil
	case LogLevelWarn:
		return zapcore.WarnLevel, nil
	case LogLevelError:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%s: %q", ErrMsgInvalidLogLevel, level)
	}
}

// newLogger builds a console logger writing to w. Quiet mode discards
// everything.
func newLogger(level string, quiet bool, w io.Writer) *zap.Logger {
	if quiet {
		return zap.NewNop()
	}
	lvl, err := parseLogLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core)
}
