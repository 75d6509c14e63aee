package logger

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileRotate 可选的文件落盘 + 按大小切割
type FileRotate struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New 纯 stdout logger；cleanup 在退出前 flush
func New(level string, json bool) (*zap.Logger, func()) {
	return NewWithRotate(level, json, FileRotate{})
}

// NewWithRotate stdout + （可选）lumberjack 文件双写
func NewWithRotate(level string, json bool, rot FileRotate) (*zap.Logger, func()) {
	lvl := parseLevel(level)
	enc := newEncoder(json)

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl),
	}
	if rot.Enable {
		lj := &lumberjack.Logger{
			Filename:   rot.Filename,
			MaxSize:    max(1, rot.MaxSizeMB),
			MaxBackups: max(0, rot.MaxBackups),
			MaxAge:     max(0, rot.MaxAgeDays),
			Compress:   rot.Compress,
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(lj), lvl))
	}

	// 热路径日志抽样，一秒内同一条目过百只留样本
	core := zapcore.NewSamplerWithOptions(zapcore.NewTee(cores...), time.Second, 100, 100)

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if !json {
		opts = append(opts, zap.Development())
	}
	l := zap.New(core, opts...)
	return l, func() { _ = l.Sync() }
}

func parseLevel(s string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.Set(s); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func newEncoder(json bool) zapcore.Encoder {
	if json {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "ts"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeCaller = zapcore.ShortCallerEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewConsoleEncoder(cfg)
}
