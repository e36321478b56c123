package debug

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerConfig struct {
	level  zapcore.Level
	output zapcore.WriteSyncer
}

// LoggerOption configures NewLogger.
type LoggerOption func(*loggerConfig)

// WithLevel sets the minimum level by name ("debug", "info", ...).
// Unknown names leave the level unchanged.
func WithLevel(level string) LoggerOption {
	return func(cfg *loggerConfig) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			cfg.level = l
		}
	}
}

// WithOutput sends log lines to w.
func WithOutput(w io.Writer) LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.output = zapcore.AddSync(w)
	}
}

// NewLogger builds a console logger writing to stderr at debug level.
func NewLogger(opts ...LoggerOption) *zap.Logger {
	cfg := loggerConfig{
		level:  zapcore.DebugLevel,
		output: zapcore.Lock(os.Stderr),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), cfg.output, cfg.level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}
