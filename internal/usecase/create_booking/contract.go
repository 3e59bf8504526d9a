package create_booking

import (
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
)

// SessionRegistry хранилище сессий бронирования
type SessionRegistry interface {
	Get(id string) (*session.Session, error)
}

// LessonPolicy проверка доступных участнику типов занятий
type LessonPolicy interface {
	IsLessonTypePermitted(p *domain.Participant, lessonType domain.LessonType) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
