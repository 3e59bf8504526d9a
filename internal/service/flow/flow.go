package flow

import (
	"fmt"
)

// Верхние шаги мастера
const (
	StepStayDetails    = 1
	StepClassSelection = 2
	StepCheckout       = 3
)

// layout названия внутренних шагов каждого верхнего шага
var layout = map[int][]string{
	StepStayDetails:    {"data", "preferences"},
	StepClassSelection: {"slots", "summary"},
	StepCheckout:       {"cart", "participant_details", "payment"},
}

// Step позиция в мастере: верхний шаг и внутренний шаг (с 1)
type Step struct {
	Parent int `json:"parent"`
	Child  int `json:"child"`
}

// Name название внутреннего шага
func (s Step) Name() string {
	children, ok := layout[s.Parent]
	if !ok || s.Child < 1 || s.Child > len(children) {
		return ""
	}
	return children[s.Child-1]
}

func (s Step) valid() bool {
	return s.Name() != ""
}

func (s Step) before(o Step) bool {
	if s.Parent != o.Parent {
		return s.Parent < o.Parent
	}
	return s.Child < o.Child
}

// Flow состояние навигации мастера бронирования.
// Вперед можно перейти только с завершенного шага, назад - всегда.
type Flow struct {
	current   Step
	completed map[Step]bool
	logger    Logger
}

// New создает мастер на первом шаге
func New(logger Logger) *Flow {
	return &Flow{
		current:   Step{Parent: StepStayDetails, Child: 1},
		completed: make(map[Step]bool),
		logger:    logger,
	}
}

// Current возвращает текущий шаг
func (f *Flow) Current() Step {
	return f.current
}

// Complete выставляет флаг завершения шага (выставляется формой после валидации)
func (f *Flow) Complete(step Step, done bool) error {
	if !step.valid() {
		return fmt.Errorf("%w: %d.%d", ErrUnknownStep, step.Parent, step.Child)
	}
	if done {
		f.completed[step] = true
	} else {
		delete(f.completed, step)
	}
	return nil
}

// IsCompleted проверяет флаг завершения шага
func (f *Flow) IsCompleted(step Step) bool {
	return f.completed[step]
}

// CanProceed true, если текущий шаг завершен и за ним есть следующий
func (f *Flow) CanProceed() bool {
	_, hasNext := next(f.current)
	return hasNext && f.completed[f.current]
}

// Next переходит к следующему шагу, если текущий завершен
func (f *Flow) Next() error {
	target, ok := next(f.current)
	if !ok {
		return ErrNoNextStep
	}
	if !f.completed[f.current] {
		f.logger.Warn("Flow.Next: step %d.%d is not completed", f.current.Parent, f.current.Child)
		return fmt.Errorf("%w: %d.%d", ErrStepNotCompleted, f.current.Parent, f.current.Child)
	}
	f.current = target
	return nil
}

// Back переходит к предыдущему шагу без условий; на первом шаге ничего не делает
func (f *Flow) Back() {
	if f.current.Child > 1 {
		f.current.Child--
		return
	}
	if f.current.Parent > StepStayDetails {
		parent := f.current.Parent - 1
		f.current = Step{Parent: parent, Child: len(layout[parent])}
	}
}

// GoTo переходит на шаг: назад свободно, вперед только через завершенные шаги
func (f *Flow) GoTo(step Step) error {
	if !step.valid() {
		return fmt.Errorf("%w: %d.%d", ErrUnknownStep, step.Parent, step.Child)
	}
	if !f.current.before(step) {
		f.current = step
		return nil
	}
	for s := f.current; s.before(step); s, _ = next(s) {
		if !f.completed[s] {
			f.logger.Warn("Flow.GoTo: step %d.%d is not completed", s.Parent, s.Child)
			return fmt.Errorf("%w: %d.%d", ErrStepNotCompleted, s.Parent, s.Child)
		}
	}
	f.current = step
	return nil
}

// ResetStep сбрасывает внутренний шаг верхнего шага на первый и очищает его флаги
func (f *Flow) ResetStep(parent int) error {
	children, ok := layout[parent]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStep, parent)
	}
	for i := range children {
		delete(f.completed, Step{Parent: parent, Child: i + 1})
	}
	if f.current.Parent == parent {
		f.current.Child = 1
	}
	return nil
}

// ReturnToClassSelection возвращает пользователя к выбору слотов (после истечения брони)
func (f *Flow) ReturnToClassSelection() {
	_ = f.ResetStep(StepClassSelection)
	f.current = Step{Parent: StepClassSelection, Child: 1}
	f.logger.Info("Flow: returned to class selection")
}

// Reset возвращает мастер в начальное состояние
func (f *Flow) Reset() {
	f.current = Step{Parent: StepStayDetails, Child: 1}
	f.completed = make(map[Step]bool)
}

// Completed возвращает завершенные шаги по порядку
func (f *Flow) Completed() []Step {
	result := make([]Step, 0, len(f.completed))
	first := Step{Parent: StepStayDetails, Child: 1}
	for s, ok := first, true; ok; s, ok = next(s) {
		if f.completed[s] {
			result = append(result, s)
		}
	}
	return result
}

func next(s Step) (Step, bool) {
	if s.Child < len(layout[s.Parent]) {
		return Step{Parent: s.Parent, Child: s.Child + 1}, true
	}
	if _, ok := layout[s.Parent+1]; ok {
		return Step{Parent: s.Parent + 1, Child: 1}, true
	}
	return s, false
}
