package stay

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

// MaxChildAge participants older than this are adults
const MaxChildAge = 17

// ParticipantUpdate изменения профиля участника, nil - поле не меняется
type ParticipantUpdate struct {
	Name         *string
	Surname      *string
	Age          *int
	ActivityType *domain.ActivityType
	SkillLevel   *string
	Language     *domain.Language
}

// Roster список участников, синхронизированный с количеством взрослых и детей.
// Участники создаются и удаляются только в Sync.
type Roster struct {
	participants []*domain.Participant
	ids          IDGenerator
	catalog      SkillCatalog
	logger       Logger
}

// NewRoster создает пустой список участников
func NewRoster(ids IDGenerator, catalog SkillCatalog, logger Logger) *Roster {
	return &Roster{
		ids:     ids,
		catalog: catalog,
		logger:  logger,
	}
}

// Sync приводит список к adults+children записям.
// Рост добавляет новые записи в конец, сокращение удаляет с конца,
// так что ID оставшихся участников сохраняются.
// После синхронизации первые adults записей имеют тип adult, остальные child.
func (r *Roster) Sync(adults, children int) {
	if adults < 0 {
		adults = 0
	}
	if children < 0 {
		children = 0
	}

	totalNeeded := adults + children
	current := len(r.participants)

	switch {
	case totalNeeded > current:
		newAdults := adults - r.countType(domain.ParticipantAdult)
		if newAdults < 0 {
			newAdults = 0
		}
		for i := 0; i < totalNeeded-current; i++ {
			participantType := domain.ParticipantChild
			if i < newAdults {
				participantType = domain.ParticipantAdult
			}
			r.participants = append(r.participants, domain.NewParticipant(r.ids.New(), participantType))
		}
		r.logger.Info("Roster.Sync: added %d participants (adults=%d, children=%d)",
			totalNeeded-current, adults, children)

	case totalNeeded < current:
		for i := totalNeeded; i < current; i++ {
			r.participants[i] = nil
		}
		r.participants = r.participants[:totalNeeded]
		r.logger.Info("Roster.Sync: removed %d participants (adults=%d, children=%d)",
			current-totalNeeded, adults, children)
	}

	r.normalizeTypes(adults)
}

// Participants возвращает снимок списка участников
func (r *Roster) Participants() []*domain.Participant {
	result := make([]*domain.Participant, len(r.participants))
	for i, p := range r.participants {
		result[i] = p.Clone()
	}
	return result
}

// Len возвращает количество участников
func (r *Roster) Len() int {
	return len(r.participants)
}

// Get возвращает копию участника по ID
func (r *Roster) Get(id string) (*domain.Participant, error) {
	p := r.find(id)
	if p == nil {
		return nil, fmt.Errorf("%w: id=%s", ErrParticipantNotFound, id)
	}
	return p.Clone(), nil
}

// Update применяет изменения профиля участника.
// Изменение проверяется целиком и применяется только при успешной проверке.
func (r *Roster) Update(id string, upd ParticipantUpdate) (*domain.Participant, error) {
	p := r.find(id)
	if p == nil {
		r.logger.Warn("Roster.Update: participant id=%s not found", id)
		return nil, fmt.Errorf("%w: id=%s", ErrParticipantNotFound, id)
	}

	next := p.Clone()

	if upd.Name != nil {
		next.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Surname != nil {
		next.Surname = strings.TrimSpace(*upd.Surname)
	}
	if upd.Age != nil {
		if !next.IsChild() {
			return nil, fmt.Errorf("%w: age is set only for children", ErrInvalidInput)
		}
		if *upd.Age < 0 || *upd.Age > MaxChildAge {
			return nil, fmt.Errorf("%w: age must be between 0 and %d", ErrInvalidInput, MaxChildAge)
		}
		age := *upd.Age
		next.Age = &age
	}
	if upd.ActivityType != nil {
		if *upd.ActivityType != "" && !upd.ActivityType.IsValid() {
			return nil, fmt.Errorf("%w: unknown activity type %q", ErrInvalidInput, *upd.ActivityType)
		}
		if next.ActivityType != *upd.ActivityType && next.IsChild() && upd.SkillLevel == nil {
			// детские уровни различаются для лыж и сноуборда
			next.SkillLevel = ""
		}
		next.ActivityType = *upd.ActivityType
	}
	if upd.SkillLevel != nil {
		next.SkillLevel = *upd.SkillLevel
	}
	if upd.Language != nil {
		if *upd.Language != domain.LanguagePolish && *upd.Language != domain.LanguageEnglish {
			return nil, fmt.Errorf("%w: unknown language %q", ErrInvalidInput, *upd.Language)
		}
		next.Language = *upd.Language
	}

	if err := r.catalog.ValidateSelection(next); err != nil {
		r.logger.Warn("Roster.Update: invalid selection for participant id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	*p = *next
	r.logger.Info("Roster.Update: participant id=%s updated", id)
	return p.Clone(), nil
}

func (r *Roster) find(id string) *domain.Participant {
	for _, p := range r.participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Roster) countType(t domain.ParticipantType) int {
	n := 0
	for _, p := range r.participants {
		if p.Type == t {
			n++
		}
	}
	return n
}

// normalizeTypes выставляет тип по позиции в списке
// При смене типа сбрасываются поля, которые имеют смысл только для прежнего типа
func (r *Roster) normalizeTypes(adults int) {
	for i, p := range r.participants {
		want := domain.ParticipantChild
		if i < adults {
			want = domain.ParticipantAdult
		}
		if p.Type == want {
			continue
		}
		p.Type = want
		p.SkillLevel = ""
		if want == domain.ParticipantAdult {
			p.Age = nil
		}
	}
}
