package get_order_summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/format"
)

// UseCase use case для расчета итога заказа
type UseCase struct {
	sessions SessionRegistry
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRegistry, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute считает итог заказа по текущему состоянию сессии
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" {
		uc.logger.Warn("GetOrderSummary: validation failed: session is required")
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	s, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("GetOrderSummary: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetOrderSummary: failed to get session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	s.Lock()
	defer s.Unlock()

	summary := s.Summary()
	loyalty := s.Loyalty.State()

	resp := &Response{
		StayLabel:           stayLabel(s.Stay.Stay(), s.Locale()),
		Participants:        make([]Line, 0, len(summary.Participants)),
		Bookings:            s.Classes.Cart().Len(),
		ClassesSubtotal:     amount(summary.ClassesSubtotal),
		InsuranceSubtotal:   amount(summary.InsuranceSubtotal),
		ChildAddOnsSubtotal: amount(summary.ChildAddOnsSubtotal),
		EligibleSubtotal:    amount(summary.EligibleSubtotal),
		Discount: Discount{
			Tier:    string(summary.Tier),
			Percent: summary.DiscountPercent,
			Amount:  amount(summary.DiscountAmount),
		},
		Total:              amount(summary.Total),
		TotalHours:         summary.TotalHours,
		HoursToFirstLevel:  summary.HoursToFirstLevel,
		HoursToSecondLevel: summary.HoursToSecondLevel,
		LoyaltyCard: LoyaltyCard{
			CardNumber: loyalty.CardNumber,
			Valid:      loyalty.Valid,
			Loading:    loyalty.Loading,
		},
		Currency: domain.Currency,
		Links: Links{
			Terms:          domain.TermsURL,
			PrivacyPolicy:  domain.PrivacyPolicyURL,
			InsuranceTerms: domain.InsuranceTermsURL,
			LoyaltyProgram: domain.LoyaltyProgramURL,
		},
	}
	for _, l := range summary.Participants {
		resp.Participants = append(resp.Participants, Line{
			ParticipantID: l.ParticipantID,
			Name:          l.Name,
			Type:          l.Type,
			Bookings:      l.Bookings,
			Classes:       amount(l.Classes),
			Insurance:     amount(l.Insurance),
			ChildAddOns:   amount(l.ChildAddOns),
			Total:         amount(l.Total),
		})
	}

	uc.logger.Info("GetOrderSummary: session=%s: %d bookings, %.1fh, tier=%s, total=%.2f",
		req.SessionID, resp.Bookings, summary.TotalHours, summary.Tier, summary.Total)

	return resp, nil
}

func amount(v float64) Amount {
	return Amount{Value: v, Label: format.Price(v)}
}

func stayLabel(stay domain.Stay, locale string) string {
	if stay.Date == nil {
		return ""
	}
	if stay.Date.End == nil {
		return format.DateRangeLocale(stay.Date.Start, locale)
	}
	return format.DateRangeLocale([]time.Time{stay.Date.Start, *stay.Date.End}, locale)
}
