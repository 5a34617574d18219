package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	global *zap.SugaredLogger
	once   sync.Once
)

// Init builds the process-wide logger. When logFile is non-empty, output is
// duplicated to a size-rotated file alongside stdout.
func Init(logFile string) {
	once.Do(func() {
		encoderConfig := zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			MessageKey:     "msg",
			CallerKey:      "caller",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}

		consoleCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			zapcore.InfoLevel,
		)

		cores := []zapcore.Core{consoleCore}
		if logFile != "" {
			fileWriter := &lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    50, // megabytes
				MaxBackups: 5,
				MaxAge:     30, // days
				Compress:   true,
			}
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(fileWriter),
				zapcore.InfoLevel,
			))
		}

		global = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	})
}

// L returns the global logger, initializing a stdout-only one if Init was
// never called (keeps tests from needing setup).
func L() *zap.SugaredLogger {
	if global == nil {
		Init("")
	}
	return global
}
