package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Loggers default to no-ops so packages (and tests) can log before
// InitLogger has run.
var (
	AppLogger     = zap.NewNop()
	RequestLogger = zap.NewNop()
	ErrorLogger   = zap.NewNop()
)

// ensureLogsDir makes sure the ./logs folder exists
func ensureLogsDir() {
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		panic("Failed to create logs directory: " + err.Error())
	}
}

func InitLogger() {
	ensureLogsDir()
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	// app.log (general logs)
	appCore := zapcore.NewCore(encoder,
		zapcore.AddSync(&lumberjack.Logger{
			Filename: "./logs/app.log", MaxSize: 100, MaxAge: 28, Compress: true,
		}),
		zap.InfoLevel,
	)
	AppLogger = zap.New(appCore)

	// request.log
	requestCore := zapcore.NewCore(encoder,
		zapcore.AddSync(&lumberjack.Logger{
			Filename: "./logs/request.log", MaxSize: 50, MaxAge: 7, Compress: true,
		}),
		zap.InfoLevel,
	)
	RequestLogger = zap.New(requestCore)

	// error.log
	errorCore := zapcore.NewCore(encoder,
		zapcore.AddSync(&lumberjack.Logger{
			Filename: "./logs/error.log", MaxSize: 100, MaxAge: 30, Compress: true,
		}),
		zap.ErrorLevel,
	)
	ErrorLogger = zap.New(errorCore)
}
