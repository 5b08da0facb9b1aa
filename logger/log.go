package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func parseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// GetLogger returns a console logger on stderr; stdout is left for
// command output.
func GetLogger(level string) *zap.Logger {
	return New(zapcore.Lock(os.Stderr), level)
}

func New(ws zapcore.WriteSyncer, level string) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(cfg)

	return zap.New(
		zapcore.NewCore(encoder, ws, parseLevel(level)),
		zap.AddCaller(),
	)
}
