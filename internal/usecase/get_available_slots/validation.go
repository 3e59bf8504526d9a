package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}

	if req.Date != nil && *req.Date != "" {
		if _, err := time.Parse(domain.DateFormat, *req.Date); err != nil {
			return fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, *req.Date)
		}
	}

	return nil
}
