package preferences

// Store хранилище ключ-значение (cookie браузера или память)
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
