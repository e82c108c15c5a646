// Package logging builds the zap logger shared by the server and the CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the LOG_* block of the process configuration.
type Config struct {
	Level  string
	Format string
	Output string
}

// Validate rejects encodings and streams the console cannot log to.
// Log files are left to the process supervisor.
func (c Config) Validate() error {
	switch c.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT %q must be console or json", c.Format)
	}
	switch c.Output {
	case "", "stdout", "stderr":
	default:
		return fmt.Errorf("LOG_OUTPUT %q must be stdout or stderr", c.Output)
	}
	return nil
}

// New builds a logger whose entries carry component. Unknown levels read
// as info.
func New(component string, cfg Config) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	encoding := "console"
	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.EncodeLevel = zapcore.CapitalLevelEncoder
	if cfg.Format == "json" {
		encoding = "json"
		encoder = zap.NewProductionEncoderConfig()
	}
	encoder.TimeKey = "timestamp"
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder

	output := cfg.Output
	if output == "" {
		output = "stdout"
	}

	zc := zap.Config{
		Level:             level,
		Encoding:          encoding,
		EncoderConfig:     encoder,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
		InitialFields:     map[string]any{"component": component},
	}
	logger, err := zc.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
