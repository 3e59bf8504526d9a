package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.ParticipantID == "" {
		return fmt.Errorf("%w: participantID is required", ErrInvalidInput)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown lesson type %q", ErrInvalidInput, req.Type)
	}

	if req.Type == domain.LessonGroup {
		if req.GroupID <= 0 {
			return fmt.Errorf("%w: groupID must be positive", ErrInvalidInput)
		}
		return nil
	}

	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required for %s lessons", ErrInvalidInput, req.Type)
	}

	return nil
}

// validateChildAddOn проверяет, что опция ребенка выбрана для ребенка
func validateChildAddOn(req *Request, p *domain.Participant) error {
	if req.ChildAddOn && !p.IsChild() {
		return ErrChildAddOnNotAllowed
	}
	return nil
}

// validateGroupEligible проверяет активность участника и длительность пребывания
func validateGroupEligible(g *domain.Group, p *domain.Participant, stayDays int) error {
	activity := p.ActivityType
	if activity == "" {
		activity = domain.ActivitySki
	}
	if g.Activity != activity {
		return fmt.Errorf("%w: group activity %s, participant activity %s", ErrGroupNotEligible, g.Activity, activity)
	}
	if g.DayCount() > stayDays {
		return fmt.Errorf("%w: group lasts %d days, stay lasts %d", ErrGroupNotEligible, g.DayCount(), stayDays)
	}
	return nil
}
