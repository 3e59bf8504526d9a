package domain

// ParticipantType adult or child, derived from roster position
type ParticipantType string

const (
	ParticipantAdult ParticipantType = "adult"
	ParticipantChild ParticipantType = "child"
)

// ActivityType kind of lesson equipment
type ActivityType string

const (
	ActivitySki       ActivityType = "ski"
	ActivitySnowboard ActivityType = "snowboard"
)

// IsValid returns true for known activity types
func (a ActivityType) IsValid() bool {
	return a == ActivitySki || a == ActivitySnowboard
}

// LessonType kind of lesson; also the type of a cart booking
type LessonType string

const (
	LessonIndividual LessonType = "individual"
	LessonShared     LessonType = "shared"
	LessonGroup      LessonType = "group"
)

// IsValid returns true for known lesson types
func (l LessonType) IsValid() bool {
	return l == LessonIndividual || l == LessonShared || l == LessonGroup
}

// Language lesson language preference
type Language string

const (
	LanguagePolish  Language = "pl"
	LanguageEnglish Language = "en"
)

// Participant one person covered by the stay
// Holds only the participant's own selections; catalogs of activities and
// skill levels are shared templates owned by stay configuration.
type Participant struct {
	ID           string
	Name         string
	Surname      string
	Type         ParticipantType
	Age          *int // required for children
	ActivityType ActivityType
	SkillLevel   string // code of a skill level template, empty if not chosen
	Language     Language
}

// NewParticipant creates a participant with default field values
func NewParticipant(id string, participantType ParticipantType) *Participant {
	return &Participant{
		ID:       id,
		Type:     participantType,
		Language: LanguagePolish,
	}
}

// IsChild returns true if the participant is a child
func (p *Participant) IsChild() bool {
	return p.Type == ParticipantChild
}

// DisplayName returns "Name Surname" or an empty string
func (p *Participant) DisplayName() string {
	switch {
	case p.Name != "" && p.Surname != "":
		return p.Name + " " + p.Surname
	case p.Name != "":
		return p.Name
	default:
		return p.Surname
	}
}

// Clone returns a deep copy of the participant
func (p *Participant) Clone() *Participant {
	c := *p
	if p.Age != nil {
		age := *p.Age
		c.Age = &age
	}
	return &c
}
