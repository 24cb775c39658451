package rabbitmq_common

// Logger - минимальный логгер пакета, пары ключ/значение как в slog.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(err error, msg string, keysAndValues ...interface{})
}

// OrDiscard возвращает l, а вместо nil - логгер, который ничего не пишет.
func OrDiscard(l Logger) Logger {
	if l == nil {
		return discardLogger{}
	}
	return l
}

type discardLogger struct{}

func (discardLogger) Debug(string, ...interface{})        {}
func (discardLogger) Info(string, ...interface{})         {}
func (discardLogger) Warn(string, ...interface{})         {}
func (discardLogger) Error(error, string, ...interface{}) {}
