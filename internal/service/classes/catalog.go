package classes

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/ptr"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/types"
)

// SlotTemplate ежедневный шаблон занятия
type SlotTemplate struct {
	Start           int // минуты от начала суток
	End             int
	Price           float64
	Instructor      *domain.Instructor
	TimeOfDay       domain.TimeOfDay
	IsHappyHours    bool
	ChildSpecialist bool
}

// Duration категория длительности ("1h", "2h")
func (t SlotTemplate) Duration() string {
	return fmt.Sprintf("%dh", (t.End-t.Start)/60)
}

// GroupTemplate шаблон многодневного пакета
type GroupTemplate struct {
	Name         string
	Activity     domain.ActivityType
	Days         int
	Times        []types.TimeRange // занятия в течение одного дня
	Price        *float64          // nil для happy hours
	IsHappyHours bool
	Insurance    *domain.InsuranceOffer
}

func clock(h, m int) int {
	return h*60 + m
}

func instructor(name string, gender domain.Gender) *domain.Instructor {
	return &domain.Instructor{Name: name, Gender: gender}
}

// DefaultSlotTemplates ежедневное расписание школы
func DefaultSlotTemplates() []SlotTemplate {
	return []SlotTemplate{
		{Start: clock(9, 0), End: clock(11, 0), Price: 50, Instructor: instructor("Marcin Kowalik", domain.GenderMale), TimeOfDay: domain.TimeOfDayMorning},
		{Start: clock(10, 0), End: clock(12, 0), Price: 50, Instructor: instructor("Anna Nowak", domain.GenderFemale), TimeOfDay: domain.TimeOfDayMorning, ChildSpecialist: true},
		{Start: clock(10, 0), End: clock(12, 0), Price: 50, TimeOfDay: domain.TimeOfDayMorning, IsHappyHours: true},
		{Start: clock(10, 30), End: clock(12, 30), Price: 50, TimeOfDay: domain.TimeOfDayMorning},
		{Start: clock(11, 0), End: clock(13, 0), Price: 50, TimeOfDay: domain.TimeOfDayMorning},
		{Start: clock(14, 0), End: clock(16, 0), Price: 50, Instructor: instructor("Piotr Wiśniewski", domain.GenderMale), TimeOfDay: domain.TimeOfDayAfternoon},
		{Start: clock(15, 0), End: clock(16, 0), Price: 35, Instructor: instructor("Maria Zielińska", domain.GenderFemale), TimeOfDay: domain.TimeOfDayAfternoon, ChildSpecialist: true},
		{Start: clock(18, 0), End: clock(20, 0), Price: 50, Instructor: instructor("Tomasz Kamiński", domain.GenderMale), TimeOfDay: domain.TimeOfDayEvening},
		{Start: clock(19, 0), End: clock(20, 0), Price: 35, Instructor: instructor("Katarzyna Lewandowska", domain.GenderFemale), TimeOfDay: domain.TimeOfDayEvening, ChildSpecialist: true},
	}
}

// DefaultGroupTemplates пакеты групповых занятий
func DefaultGroupTemplates() []GroupTemplate {
	morning := types.NewTimeRange(clock(9, 30), clock(10, 30))
	afternoon := types.NewTimeRange(clock(15, 30), clock(17, 30))

	return []GroupTemplate{
		{Name: "Grupa narciarska", Activity: domain.ActivitySki, Days: 5, Times: []types.TimeRange{morning}, Price: ptr.Ptr(1400.0), Insurance: &domain.InsuranceOffer{PricePerDay: domain.DefaultGroupInsurancePerDay}},
		{Name: "Grupa narciarska intensywna", Activity: domain.ActivitySki, Days: 3, Times: []types.TimeRange{morning, afternoon}, Price: ptr.Ptr(1400.0), Insurance: &domain.InsuranceOffer{PricePerDay: domain.DefaultGroupInsurancePerDay}},
		{Name: "Grupa narciarska happy hours", Activity: domain.ActivitySki, Days: 5, Times: []types.TimeRange{morning}, IsHappyHours: true},
		{Name: "Grupa snowboardowa", Activity: domain.ActivitySnowboard, Days: 4, Times: []types.TimeRange{afternoon}, Price: ptr.Ptr(1200.0), Insurance: &domain.InsuranceOffer{PricePerDay: domain.DefaultGroupInsurancePerDay}},
		{Name: "Grupa snowboardowa weekendowa", Activity: domain.ActivitySnowboard, Days: 2, Times: []types.TimeRange{morning}, Price: ptr.Ptr(650.0)},
	}
}

// Catalog каталог слотов и групп, неизменяемый после генерации
type Catalog struct {
	slots  []domain.Slot
	groups []domain.Group
}

// GenerateCatalog разворачивает шаблоны на days дней начиная с today.
// ID слота: "{date}-{templateIndex}". Пакеты групп стартуют раз в неделю и целиком помещаются в окно.
func GenerateCatalog(today time.Time, days int, slotTemplates []SlotTemplate, groupTemplates []GroupTemplate) *Catalog {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	slots := make([]domain.Slot, 0, days*len(slotTemplates))
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d).Format(domain.DateFormat)
		for i, t := range slotTemplates {
			slot := domain.Slot{
				ID:              fmt.Sprintf("%s-%d", date, i),
				Date:            date,
				Time:            types.NewTimeRange(t.Start, t.End),
				Price:           t.Price,
				Duration:        t.Duration(),
				TimeOfDay:       t.TimeOfDay,
				IsHappyHours:    t.IsHappyHours,
				ChildSpecialist: t.ChildSpecialist,
			}
			if t.Instructor != nil {
				in := *t.Instructor
				slot.Instructor = &in
			}
			slots = append(slots, slot)
		}
	}

	var groups []domain.Group
	nextID := 1
	for offset := 0; offset < days; offset += 7 {
		for _, t := range groupTemplates {
			if t.Days <= 0 || offset+t.Days > days {
				continue
			}
			groups = append(groups, buildGroup(nextID, start.AddDate(0, 0, offset), t))
			nextID++
		}
	}

	return &Catalog{slots: slots, groups: groups}
}

func buildGroup(id int, first time.Time, t GroupTemplate) domain.Group {
	sessions := make([]domain.GroupSession, 0, t.Days*len(t.Times))
	for d := 0; d < t.Days; d++ {
		date := first.AddDate(0, 0, d).Format(domain.DateFormat)
		for _, tr := range t.Times {
			sessions = append(sessions, domain.GroupSession{Date: date, Time: tr})
		}
	}

	schedule := make([]string, 0, len(t.Times))
	for _, tr := range t.Times {
		start, end, err := tr.Bounds()
		if err != nil {
			continue
		}
		schedule = append(schedule, fmt.Sprintf("od %s do %s", types.FormatClock(start), types.FormatClock(end)))
	}

	g := domain.Group{
		ID:           id,
		Name:         t.Name,
		Activity:     t.Activity,
		Sessions:     sessions,
		Description:  fmt.Sprintf("%d dni zajęć, zajęcia %dx dziennie", t.Days, len(t.Times)),
		Schedule:     strings.Join(schedule, " oraz "),
		IsHappyHours: t.IsHappyHours,
	}
	if t.Price != nil {
		g.Price = ptr.Ptr(*t.Price)
	}
	if t.Insurance != nil {
		offer := *t.Insurance
		g.Insurance = &offer
	}
	return g
}

// Slots возвращает все слоты каталога
func (c *Catalog) Slots() []domain.Slot {
	return c.slots
}

// Groups возвращает все группы каталога
func (c *Catalog) Groups() []domain.Group {
	return c.groups
}

// Slot ищет слот по ID
func (c *Catalog) Slot(id string) (*domain.Slot, error) {
	for i := range c.slots {
		if c.slots[i].ID == id {
			slot := c.slots[i]
			return &slot, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%s", ErrSlotNotFound, id)
}

// Group ищет группу по ID
func (c *Catalog) Group(id int) (*domain.Group, error) {
	for i := range c.groups {
		if c.groups[i].ID == id {
			g := c.groups[i]
			return &g, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", ErrGroupNotFound, id)
}

// Instructors возвращает имена инструкторов каталога без повторов в порядке появления
func (c *Catalog) Instructors() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for i := range c.slots {
		name := c.slots[i].InstructorName()
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
