package get_eligible_groups

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("get_eligible_groups: session not found")

	// ErrParticipantNotFound возвращается, когда участника нет в списке сессии
	ErrParticipantNotFound = errors.New("get_eligible_groups: participant not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_eligible_groups: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_eligible_groups: internal error")
)
