package get_order_summary

import getOrderSummary "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/get_order_summary"

// SummaryResponse HTTP response model
type SummaryResponse struct {
	StayLabel    string         `json:"stayLabel"`
	Participants []LineResponse `json:"participants"`
	Bookings     int            `json:"bookings"`

	ClassesSubtotal     AmountResponse   `json:"classesSubtotal"`
	InsuranceSubtotal   AmountResponse   `json:"insuranceSubtotal"`
	ChildAddOnsSubtotal AmountResponse   `json:"childAddOnsSubtotal"`
	EligibleSubtotal    AmountResponse   `json:"eligibleSubtotal"`
	Discount            DiscountResponse `json:"discount"`
	Total               AmountResponse   `json:"total"`

	TotalHours         float64 `json:"totalHours"`
	HoursToFirstLevel  float64 `json:"hoursToFirstLevel"`
	HoursToSecondLevel float64 `json:"hoursToSecondLevel"`

	LoyaltyCard LoyaltyCardResponse `json:"loyaltyCard"`
	Currency    string              `json:"currency"`
	Links       LinksResponse       `json:"links"`
}

// AmountResponse HTTP response model
type AmountResponse struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// LineResponse HTTP response model
type LineResponse struct {
	ParticipantID string         `json:"participantId"`
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	Bookings      int            `json:"bookings"`
	Classes       AmountResponse `json:"classes"`
	Insurance     AmountResponse `json:"insurance"`
	ChildAddOns   AmountResponse `json:"childAddOns"`
	Total         AmountResponse `json:"total"`
}

// DiscountResponse HTTP response model
type DiscountResponse struct {
	Tier    string         `json:"tier"`
	Percent float64        `json:"percent"`
	Amount  AmountResponse `json:"amount"`
}

// LoyaltyCardResponse HTTP response model
type LoyaltyCardResponse struct {
	CardNumber string `json:"cardNumber,omitempty"`
	Valid      *bool  `json:"valid"`
	Loading    bool   `json:"loading"`
}

// LinksResponse HTTP response model
type LinksResponse struct {
	Terms          string `json:"terms"`
	PrivacyPolicy  string `json:"privacyPolicy"`
	InsuranceTerms string `json:"insuranceTerms"`
	LoyaltyProgram string `json:"loyaltyProgram"`
}

func amount(a getOrderSummary.Amount) AmountResponse {
	return AmountResponse{Value: a.Value, Label: a.Label}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOrderSummary.Response) *SummaryResponse {
	lines := make([]LineResponse, 0, len(resp.Participants))
	for _, l := range resp.Participants {
		lines = append(lines, LineResponse{
			ParticipantID: l.ParticipantID,
			Name:          l.Name,
			Type:          string(l.Type),
			Bookings:      l.Bookings,
			Classes:       amount(l.Classes),
			Insurance:     amount(l.Insurance),
			ChildAddOns:   amount(l.ChildAddOns),
			Total:         amount(l.Total),
		})
	}

	return &SummaryResponse{
		StayLabel:           resp.StayLabel,
		Participants:        lines,
		Bookings:            resp.Bookings,
		ClassesSubtotal:     amount(resp.ClassesSubtotal),
		InsuranceSubtotal:   amount(resp.InsuranceSubtotal),
		ChildAddOnsSubtotal: amount(resp.ChildAddOnsSubtotal),
		EligibleSubtotal:    amount(resp.EligibleSubtotal),
		Discount: DiscountResponse{
			Tier:    resp.Discount.Tier,
			Percent: resp.Discount.Percent,
			Amount:  amount(resp.Discount.Amount),
		},
		Total:              amount(resp.Total),
		TotalHours:         resp.TotalHours,
		HoursToFirstLevel:  resp.HoursToFirstLevel,
		HoursToSecondLevel: resp.HoursToSecondLevel,
		LoyaltyCard: LoyaltyCardResponse{
			CardNumber: resp.LoyaltyCard.CardNumber,
			Valid:      resp.LoyaltyCard.Valid,
			Loading:    resp.LoyaltyCard.Loading,
		},
		Currency: resp.Currency,
		Links: LinksResponse{
			Terms:          resp.Links.Terms,
			PrivacyPolicy:  resp.Links.PrivacyPolicy,
			InsuranceTerms: resp.Links.InsuranceTerms,
			LoyaltyProgram: resp.Links.LoyaltyProgram,
		},
	}
}
