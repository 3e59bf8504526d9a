package flow

import (
	"errors"

	flowService "github.com/m04kA/SMC-SkiSchoolBooking/internal/service/flow"
)

// Действия мастера
const (
	ActionComplete  = "complete"
	ActionNext      = "next"
	ActionBack      = "back"
	ActionGoTo      = "goto"
	ActionResetStep = "reset_step"
	ActionReset     = "reset"
)

var errUnknownAction = errors.New("unknown flow action")

// UpdateFlowRequest HTTP request model
//
// complete:   {"action":"complete","step":{"parent":1,"child":1},"done":true}
// goto:       {"action":"goto","step":{"parent":2,"child":1}}
// reset_step: {"action":"reset_step","parent":2}
type UpdateFlowRequest struct {
	Action string            `json:"action"`
	Step   *flowService.Step `json:"step,omitempty"`
	Done   *bool             `json:"done,omitempty"`
	Parent int               `json:"parent,omitempty"`
}

// Apply выполняет действие над мастером
func (r *UpdateFlowRequest) Apply(f *flowService.Flow) error {
	switch r.Action {
	case ActionComplete:
		step := f.Current()
		if r.Step != nil {
			step = *r.Step
		}
		done := true
		if r.Done != nil {
			done = *r.Done
		}
		return f.Complete(step, done)
	case ActionNext:
		return f.Next()
	case ActionBack:
		f.Back()
		return nil
	case ActionGoTo:
		if r.Step == nil {
			return flowService.ErrUnknownStep
		}
		return f.GoTo(*r.Step)
	case ActionResetStep:
		return f.ResetStep(r.Parent)
	case ActionReset:
		f.Reset()
		return nil
	default:
		return errUnknownAction
	}
}
