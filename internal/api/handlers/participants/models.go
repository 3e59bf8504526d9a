package participants

import (
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	stayService "github.com/m04kA/SMC-SkiSchoolBooking/internal/service/stay"
)

// UpdateParticipantRequest HTTP request model; отсутствующие поля не меняются
type UpdateParticipantRequest struct {
	Name         *string `json:"name,omitempty"`
	Surname      *string `json:"surname,omitempty"`
	Age          *int    `json:"age,omitempty"`
	ActivityType *string `json:"activityType,omitempty"`
	SkillLevel   *string `json:"skillLevel,omitempty"`
	Language     *string `json:"language,omitempty"`
}

// ToServiceUpdate конвертирует HTTP запрос в изменение профиля
func (r *UpdateParticipantRequest) ToServiceUpdate() stayService.ParticipantUpdate {
	upd := stayService.ParticipantUpdate{
		Name:       r.Name,
		Surname:    r.Surname,
		Age:        r.Age,
		SkillLevel: r.SkillLevel,
	}
	if r.ActivityType != nil {
		activity := domain.ActivityType(*r.ActivityType)
		upd.ActivityType = &activity
	}
	if r.Language != nil {
		language := domain.Language(*r.Language)
		upd.Language = &language
	}
	return upd
}
