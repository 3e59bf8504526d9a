package stay

import "errors"

var (
	// ErrParticipantNotFound возвращается, когда участник с указанным ID отсутствует в списке
	ErrParticipantNotFound = errors.New("stay: participant not found")

	// ErrInvalidInput возвращается при некорректных данных участника
	ErrInvalidInput = errors.New("stay: invalid input data")
)
