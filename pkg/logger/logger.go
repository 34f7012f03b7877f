package logger

import (
    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

var base *zap.Logger = zap.NewNop()

// Init 初始化全局 logger（level: debug/info/warn/error）
func Init(level string, development bool) error {
    var cfg zap.Config
    if development {
        cfg = zap.NewDevelopmentConfig()
    } else {
        cfg = zap.NewProductionConfig()
    }
    lv, err := zapcore.ParseLevel(level)
    if err != nil {
        lv = zapcore.InfoLevel
    }
    cfg.Level = zap.NewAtomicLevelAt(lv)
    l, err := cfg.Build(zap.AddCallerSkip(1))
    if err != nil {
        return err
    }
    base = l
    return nil
}

// L 返回底层 zap logger（组件需要自定义字段时使用）
func L() *zap.Logger { return base }

func Debug(msg string, fields ...zap.Field) { base.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { base.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { base.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { base.Error(msg, fields...) }

// Sync 刷新缓冲日志，进程退出前调用
func Sync() { _ = base.Sync() }
