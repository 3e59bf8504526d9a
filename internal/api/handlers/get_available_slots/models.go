package get_available_slots

import (
	"strconv"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Kind           string         `json:"kind"`
	Date           string         `json:"date"`
	Slots          []SlotResponse `json:"slots"`
	Total          int            `json:"total"`
	Limit          int            `json:"limit"`
	HasMore        bool           `json:"hasMore"`
	SelectedSlotID *string        `json:"selectedSlotId,omitempty"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Duration         string  `json:"duration"`
	Price            float64 `json:"price"`
	PriceLabel       string  `json:"priceLabel"`
	Instructor       *string `json:"instructor,omitempty"`
	InstructorGender *string `json:"instructorGender,omitempty"`
	TimeOfDay        string  `json:"timeOfDay"`
	IsHappyHours     bool    `json:"isHappyHours"`
	ChildSpecialist  bool    `json:"childSpecialist"`
}

// ToUseCaseRequest собирает запрос use case из параметров пути и query
// Query: kind (обязательный), date (YYYY-MM-DD, пустое значение сбрасывает дату), all=true
func ToUseCaseRequest(sessionID, kind string, date *string, all string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{
		SessionID: sessionID,
		Kind:      domain.SlotKind(kind),
		Date:      date,
	}
	if all != "" {
		showAll, err := strconv.ParseBool(all)
		if err != nil {
			return nil, err
		}
		req.ShowAll = showAll
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:               s.ID,
			Date:             s.Date,
			Time:             s.Time,
			Duration:         s.Duration,
			Price:            s.Price,
			PriceLabel:       s.PriceLabel,
			Instructor:       s.Instructor,
			InstructorGender: s.InstructorGender,
			TimeOfDay:        s.TimeOfDay,
			IsHappyHours:     s.IsHappyHours,
			ChildSpecialist:  s.ChildSpecialist,
		})
	}

	return &SlotsResponse{
		Kind:           string(resp.Kind),
		Date:           resp.Date,
		Slots:          slots,
		Total:          resp.Total,
		Limit:          resp.Limit,
		HasMore:        resp.HasMore,
		SelectedSlotID: resp.SelectedSlotID,
	}
}
