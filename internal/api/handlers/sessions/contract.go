package sessions

import (
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/infra/storage/preferences"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
)

// SessionRegistry хранилище сессий
type SessionRegistry interface {
	Create(seed preferences.Store) *session.Session
	Get(id string) (*session.Session, error)
	Delete(id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
