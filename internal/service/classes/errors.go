package classes

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот отсутствует в каталоге
	ErrSlotNotFound = errors.New("classes: slot not found")

	// ErrGroupNotFound возвращается, когда группа отсутствует в каталоге
	ErrGroupNotFound = errors.New("classes: group not found")

	// ErrUnknownKind возвращается для неизвестного набора предпочтений
	ErrUnknownKind = errors.New("classes: unknown slot kind")

	// ErrInvalidBooking возвращается, когда бронирование не может быть добавлено в корзину
	ErrInvalidBooking = errors.New("classes: invalid booking")
)
