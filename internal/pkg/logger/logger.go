package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOption 日志初始化参数
type LogOption struct {
	Format   string // "console" 或 "json"
	LogDir   string // 日志目录，为空时只输出到 stderr
	Level    string // debug / info / warn / error
	Compress bool   // 是否压缩旧日志文件
}

const (
	logFileName   = "initmint.log"
	maxSizeMB     = 100
	maxBackups    = 7
	maxAgeDays    = 30
	defaultFormat = "console"
)

var (
	base  = zap.New(newCore(defaultFormat, zapcore.AddSync(os.Stderr), zapcore.InfoLevel))
	sugar = base.Sugar()
)

// Init 按配置重建全局 logger，未调用时使用 stderr + info 级别的默认 logger
func Init(opt LogOption) error {
	level := zapcore.InfoLevel
	if opt.Level != "" {
		if err := level.UnmarshalText([]byte(opt.Level)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", opt.Level, err)
		}
	}

	format := strings.ToLower(opt.Format)
	if format == "" {
		format = defaultFormat
	}
	if format != "console" && format != "json" {
		return fmt.Errorf("invalid log format %q", opt.Format)
	}

	cores := []zapcore.Core{newCore(format, zapcore.AddSync(os.Stderr), level)}
	if opt.LogDir != "" {
		if err := os.MkdirAll(opt.LogDir, 0o755); err != nil {
			return fmt.Errorf("create log dir %s: %w", opt.LogDir, err)
		}
		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(opt.LogDir, logFileName),
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   opt.Compress,
			LocalTime:  true,
		}
		// 文件一律 json，方便采集
		cores = append(cores, newCore("json", zapcore.AddSync(fileWriter), level))
	}

	base = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	sugar = base.Sugar()
	return nil
}

func newCore(format string, ws zapcore.WriteSyncer, level zapcore.Level) zapcore.Core {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")

	var enc zapcore.Encoder
	if format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	return zapcore.NewCore(enc, ws, level)
}

func Debugf(format string, args ...any) {
	sugar.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	sugar.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	sugar.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	sugar.Errorf(format, args...)
}

// Sync 刷新缓冲，进程退出前调用
func Sync() {
	_ = base.Sync()
}
