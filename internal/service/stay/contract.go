package stay

import "github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"

// IDGenerator генератор уникальных идентификаторов участников
type IDGenerator interface {
	New() string
}

// SkillCatalog каталог уровней и видов активности для проверки выбора участника
type SkillCatalog interface {
	ValidateSelection(p *domain.Participant) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
