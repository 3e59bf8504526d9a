package stayconfig

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

var (
	// ErrSkillLevelNotFound возвращается, когда уровень не существует для аудитории и вида активности
	ErrSkillLevelNotFound = errors.New("stayconfig: skill level not found")

	// ErrActivityNotPermitted возвращается, когда активность недоступна участнику (например, по возрасту)
	ErrActivityNotPermitted = errors.New("stayconfig: activity not permitted for participant")

	// ErrAgeOutOfRange возвращается, когда возраст участника не подходит к выбранному уровню
	ErrAgeOutOfRange = errors.New("stayconfig: age out of skill level range")
)

// AgeRange inclusive age range of a children's skill level
type AgeRange struct {
	Min int
	Max int
}

// Contains returns true if age is within the range
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// SkillLevel шаблон уровня подготовки
// Code совпадает с ключом перевода названия; описание берется по ключу Code+"_desc"
type SkillLevel struct {
	Code     string
	Audience domain.ParticipantType
	Activity domain.ActivityType // пусто для взрослых: уровень общий для лыж и сноуборда
	Ages     *AgeRange           // только для детских уровней
}

// DescriptionKey ключ перевода описания уровня
func (l SkillLevel) DescriptionKey() string {
	return l.Code + "_desc"
}

// InfoKey ключ перевода дополнительной информации
func (l SkillLevel) InfoKey() string {
	return l.Code + "_info"
}

// AcceptsAge проверяет, подходит ли возраст (уровни без диапазона принимают любой)
func (l SkillLevel) AcceptsAge(age int) bool {
	return l.Ages == nil || l.Ages.Contains(age)
}

// Catalog неизменяемый каталог видов активности, уровней и языков.
// Один экземпляр разделяется всеми участниками и сессиями.
type Catalog struct {
	activities  []domain.ActivityType
	languages   []domain.Language
	lessonTypes []domain.LessonType

	adultLevels          []SkillLevel
	childSkiLevels       []SkillLevel
	childSnowboardLevels []SkillLevel
}

// New создает каталог со стандартной конфигурацией школы
func New() *Catalog {
	adult := func(code string) SkillLevel {
		return SkillLevel{Code: code, Audience: domain.ParticipantAdult}
	}
	child := func(code string, activity domain.ActivityType, min, max int) SkillLevel {
		return SkillLevel{
			Code:     code,
			Audience: domain.ParticipantChild,
			Activity: activity,
			Ages:     &AgeRange{Min: min, Max: max},
		}
	}

	return &Catalog{
		activities:  []domain.ActivityType{domain.ActivitySki, domain.ActivitySnowboard},
		languages:   []domain.Language{domain.LanguagePolish, domain.LanguageEnglish},
		lessonTypes: []domain.LessonType{domain.LessonIndividual, domain.LessonShared, domain.LessonGroup},
		adultLevels: []SkillLevel{
			adult("firstime"),
			adult("novice"),
			adult("intermediate"),
			adult("advanced"),
		},
		childSkiLevels: []SkillLevel{
			child("orange_group", domain.ActivitySki, 4, 10),
			child("bronze_group", domain.ActivitySki, 6, 10),
			child("silver_group", domain.ActivitySki, 7, 14),
			child("gold_group", domain.ActivitySki, 9, 14),
			child("diamond_group", domain.ActivitySki, 10, 14),
		},
		childSnowboardLevels: []SkillLevel{
			child("yellow_snowboard", domain.ActivitySnowboard, 7, 14),
			child("wide_snowboard", domain.ActivitySnowboard, 7, 14),
			child("narrow_snowboard", domain.ActivitySnowboard, 7, 14),
		},
	}
}

// ActivityTypes возвращает доступные виды активности
func (c *Catalog) ActivityTypes() []domain.ActivityType {
	return append([]domain.ActivityType(nil), c.activities...)
}

// Languages возвращает языки занятий, первый - язык по умолчанию
func (c *Catalog) Languages() []domain.Language {
	return append([]domain.Language(nil), c.languages...)
}

// LessonTypes возвращает все типы занятий
func (c *Catalog) LessonTypes() []domain.LessonType {
	return append([]domain.LessonType(nil), c.lessonTypes...)
}

// SkillLevels возвращает уровни для аудитории и вида активности
func (c *Catalog) SkillLevels(audience domain.ParticipantType, activity domain.ActivityType) []SkillLevel {
	return append([]SkillLevel(nil), c.levels(audience, activity)...)
}

// SkillLevel ищет уровень по коду
func (c *Catalog) SkillLevel(audience domain.ParticipantType, activity domain.ActivityType, code string) (SkillLevel, error) {
	for _, l := range c.levels(audience, activity) {
		if l.Code == code {
			return l, nil
		}
	}
	return SkillLevel{}, fmt.Errorf("%w: audience=%s activity=%s code=%q", ErrSkillLevelNotFound, audience, activity, code)
}

// PermittedActivities сужает виды активности по возрасту ребенка.
// Активность недоступна, если ребенок младше самого младшего детского уровня этой активности.
// Для взрослых и детей без указанного возраста доступны все активности.
func (c *Catalog) PermittedActivities(p *domain.Participant) []domain.ActivityType {
	if !p.IsChild() || p.Age == nil {
		return c.ActivityTypes()
	}

	result := make([]domain.ActivityType, 0, len(c.activities))
	for _, activity := range c.activities {
		if *p.Age >= minAge(c.levels(domain.ParticipantChild, activity)) {
			result = append(result, activity)
		}
	}
	return result
}

// PermittedLessonTypes сужает типы занятий по возрасту и уровню участника.
// Ребенок может пойти в группу, только если хотя бы один уровень выбранной активности
// (или выбранный уровень) принимает его возраст.
func (c *Catalog) PermittedLessonTypes(p *domain.Participant) []domain.LessonType {
	if !p.IsChild() {
		return c.LessonTypes()
	}
	if len(c.PermittedActivities(p)) == 0 {
		return []domain.LessonType{}
	}

	result := []domain.LessonType{domain.LessonIndividual, domain.LessonShared}
	if c.childFitsGroup(p) {
		result = append(result, domain.LessonGroup)
	}
	return result
}

// IsLessonTypePermitted проверяет тип занятия для участника
func (c *Catalog) IsLessonTypePermitted(p *domain.Participant, lessonType domain.LessonType) bool {
	for _, lt := range c.PermittedLessonTypes(p) {
		if lt == lessonType {
			return true
		}
	}
	return false
}

// ValidateSelection проверяет выбор активности и уровня участника
func (c *Catalog) ValidateSelection(p *domain.Participant) error {
	if p.ActivityType != "" {
		permitted := false
		for _, a := range c.PermittedActivities(p) {
			if a == p.ActivityType {
				permitted = true
				break
			}
		}
		if !permitted {
			return fmt.Errorf("%w: %s", ErrActivityNotPermitted, p.ActivityType)
		}
	}

	if p.SkillLevel == "" {
		return nil
	}

	level, err := c.SkillLevel(p.Type, p.ActivityType, p.SkillLevel)
	if err != nil {
		return err
	}
	if p.IsChild() && p.Age != nil && !level.AcceptsAge(*p.Age) {
		return fmt.Errorf("%w: level=%s age=%d", ErrAgeOutOfRange, level.Code, *p.Age)
	}
	return nil
}

func (c *Catalog) childFitsGroup(p *domain.Participant) bool {
	if p.Age == nil || p.ActivityType == "" {
		return false
	}

	if p.SkillLevel != "" {
		level, err := c.SkillLevel(domain.ParticipantChild, p.ActivityType, p.SkillLevel)
		if err != nil {
			return false
		}
		return level.AcceptsAge(*p.Age)
	}

	for _, l := range c.levels(domain.ParticipantChild, p.ActivityType) {
		if l.AcceptsAge(*p.Age) {
			return true
		}
	}
	return false
}

func (c *Catalog) levels(audience domain.ParticipantType, activity domain.ActivityType) []SkillLevel {
	if audience == domain.ParticipantAdult {
		return c.adultLevels
	}
	switch activity {
	case domain.ActivitySki:
		return c.childSkiLevels
	case domain.ActivitySnowboard:
		return c.childSnowboardLevels
	default:
		return nil
	}
}

func minAge(levels []SkillLevel) int {
	if len(levels) == 0 {
		return 0
	}
	m := -1
	for _, l := range levels {
		if l.Ages == nil {
			return 0
		}
		if m < 0 || l.Ages.Min < m {
			m = l.Ages.Min
		}
	}
	return m
}
