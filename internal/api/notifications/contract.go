package notifications

// IDGenerator генератор идентификаторов сообщений
type IDGenerator interface {
	New() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
