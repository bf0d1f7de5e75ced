package logging

import (
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel 日志级别
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String 返回日志级别的字符串表示
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field 日志字段
type Field struct {
	Key   string
	Value any
}

// F 创建一个日志字段。
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger 日志接口。构建引擎只依赖它发出非致命告警，
// 实现方不允许因为一条日志让构建失败。
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	WithCategory(category string) Logger
}

// consoleLogger 控制台日志实现
type consoleLogger struct {
	mu       *sync.Mutex
	out      io.Writer
	minimum  LogLevel
	category string
}

// NewLogger 创建一个默认的控制台 Logger。
func NewLogger() Logger {
	return NewConsoleLogger(os.Stderr, LogLevelInfo)
}

// NewConsoleLogger 创建写入指定 Writer 的控制台 Logger。
func NewConsoleLogger(out io.Writer, minimum LogLevel) Logger {
	return &consoleLogger{
		mu:      &sync.Mutex{},
		out:     out,
		minimum: minimum,
	}
}

func (l *consoleLogger) Debug(msg string, fields ...Field) { l.log(LogLevelDebug, msg, fields) }
func (l *consoleLogger) Info(msg string, fields ...Field)  { l.log(LogLevelInfo, msg, fields) }
func (l *consoleLogger) Warn(msg string, fields ...Field)  { l.log(LogLevelWarn, msg, fields) }
func (l *consoleLogger) Error(msg string, fields ...Field) { l.log(LogLevelError, msg, fields) }

func (l *consoleLogger) WithCategory(category string) Logger {
	return &consoleLogger{
		mu:       l.mu,
		out:      l.out,
		minimum:  l.minimum,
		category: category,
	}
}

func (l *consoleLogger) log(level LogLevel, msg string, fields []Field) {
	if level < l.minimum {
		return
	}
	entry := &Entry{
		Time:     time.Now(),
		Level:    level,
		Category: l.category,
		Message:  msg,
		Fields:   fields,
	}
	line := formatText(entry)

	l.mu.Lock()
	defer l.mu.Unlock()
	// 日志失败不向上传播
	_, _ = l.out.Write(line)
}
