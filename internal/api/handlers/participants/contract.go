package participants

import "github.com/m04kA/SMC-SkiSchoolBooking/internal/session"

type SessionRegistry interface {
	Get(id string) (*session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
