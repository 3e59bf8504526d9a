package get_eligible_groups

import getEligibleGroups "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/get_eligible_groups"

// GroupsResponse HTTP response model
type GroupsResponse struct {
	ParticipantID   string          `json:"participantId"`
	Activity        string          `json:"activity"`
	StayDays        int             `json:"stayDays"`
	Permitted       bool            `json:"permitted"`
	Groups          []GroupResponse `json:"groups"`
	SelectedGroupID *int            `json:"selectedGroupId,omitempty"`
}

// GroupResponse HTTP response model
type GroupResponse struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Activity        string   `json:"activity"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	Dates           []string `json:"dates"`
	DayCount        int      `json:"dayCount"`
	Price           float64  `json:"price"`
	PriceLabel      string   `json:"priceLabel"`
	IsHappyHours    bool     `json:"isHappyHours"`
	InsurancePerDay *float64 `json:"insurancePerDay,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getEligibleGroups.Response) *GroupsResponse {
	groups := make([]GroupResponse, 0, len(resp.Groups))
	for _, g := range resp.Groups {
		groups = append(groups, GroupResponse{
			ID:              g.ID,
			Name:            g.Name,
			Activity:        string(g.Activity),
			Description:     g.Description,
			Schedule:        g.Schedule,
			Dates:           g.Dates,
			DayCount:        g.DayCount,
			Price:           g.Price,
			PriceLabel:      g.PriceLabel,
			IsHappyHours:    g.IsHappyHours,
			InsurancePerDay: g.InsurancePerDay,
		})
	}

	return &GroupsResponse{
		ParticipantID:   resp.ParticipantID,
		Activity:        string(resp.Activity),
		StayDays:        resp.StayDays,
		Permitted:       resp.Permitted,
		Groups:          groups,
		SelectedGroupID: resp.SelectedGroupID,
	}
}
