package create_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("create_booking: session not found")

	// ErrParticipantNotFound возвращается, когда участника нет в списке сессии
	ErrParticipantNotFound = errors.New("create_booking: participant not found")

	// ErrLessonTypeNotPermitted возвращается, когда тип занятия недоступен участнику
	ErrLessonTypeNotPermitted = errors.New("create_booking: lesson type is not permitted for participant")

	// ErrSlotNotFound возвращается, когда слот не найден в каталоге
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrGroupNotFound возвращается, когда группа не найдена в каталоге
	ErrGroupNotFound = errors.New("create_booking: group not found")

	// ErrGroupNotEligible возвращается, когда группа не подходит по активности или длительности пребывания
	ErrGroupNotEligible = errors.New("create_booking: group is not eligible for participant")

	// ErrInsuranceNotOffered возвращается, когда группа продается без страховки
	ErrInsuranceNotOffered = errors.New("create_booking: insurance is not offered for this group")

	// ErrChildAddOnNotAllowed возвращается, когда дополнительную опцию выбирают для взрослого
	ErrChildAddOnNotAllowed = errors.New("create_booking: child add-on is available for children only")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
