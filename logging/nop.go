package logging

// nopLogger 丢弃所有日志。
type nopLogger struct{}

// Nop 返回一个什么都不做的 Logger，测试和默认环境使用。
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field) {}
func (nopLogger) Warn(string, ...Field) {}
func (nopLogger) Error(string, ...Field) {}

func (nopLogger) WithCategory(string) Logger { return nopLogger{} }
