package loyalty_card

import (
	"strings"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/pricing"
)

// CheckCardRequest HTTP request model
type CheckCardRequest struct {
	CardNumber string `json:"cardNumber"`
}

// LoyaltyCardResponse HTTP response model
type LoyaltyCardResponse struct {
	CardNumber string `json:"cardNumber"`
	Valid      *bool  `json:"valid"` // null - карта не проверена
	Loading    bool   `json:"loading"`
}

// Validate проверяет, что номер карты передан
func (r *CheckCardRequest) Validate() bool {
	return strings.TrimSpace(r.CardNumber) != ""
}

// FromState конвертирует состояние проверки в HTTP response
func FromState(state pricing.LoyaltyState) *LoyaltyCardResponse {
	return &LoyaltyCardResponse{
		CardNumber: state.CardNumber,
		Valid:      state.Valid,
		Loading:    state.Loading,
	}
}
