package flow

import "errors"

var (
	// ErrUnknownStep возвращается для шага, которого нет в мастере
	ErrUnknownStep = errors.New("flow: unknown step")

	// ErrStepNotCompleted возвращается при переходе вперед через незавершенный шаг
	ErrStepNotCompleted = errors.New("flow: step not completed")

	// ErrNoNextStep возвращается при попытке перейти дальше последнего шага
	ErrNoNextStep = errors.New("flow: no next step")
)
