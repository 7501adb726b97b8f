package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger = zap.Must(zap.NewProduction())

type LoggerOptions struct {
	Key  string
	Data interface{}
}

// InitializeLogger swaps the default production logger for a development one
// outside release mode. Call once during startup.
func InitializeLogger() {
	if os.Getenv("GIN_MODE") == "release" {
		Logger = zap.Must(zap.NewProduction())
	} else {
		Logger = zap.Must(zap.NewDevelopment())
	}
}

// This logs info level messages.
func Info(msg string, payload ...LoggerOptions) {
	Logger.Info(msg, zapFields(payload)...)
}

// This logs error messages.
// describe the incident in msg and pass the error through logger options
// with key error
func Error(msg string, payload ...LoggerOptions) {
	Logger.Error(msg, zapFields(payload)...)
}

// This logs warning messages.
func Warning(msg string, payload ...LoggerOptions) {
	Logger.Warn(msg, zapFields(payload)...)
}

func zapFields(payload []LoggerOptions) []zapcore.Field {
	fields := []zapcore.Field{}
	for _, data := range payload {
		fields = append(fields, zap.Any(data.Key, data.Data))
	}
	return fields
}
