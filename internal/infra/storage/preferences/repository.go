package preferences

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

// DefaultLocale язык по умолчанию
const DefaultLocale = "pl"

// Repository типизированный доступ к сохраненным предпочтениям.
// Отсутствующие и поврежденные значения заменяются значениями по умолчанию без ошибки.
type Repository struct {
	store  Store
	logger Logger
}

// NewRepository создает репозиторий поверх хранилища
func NewRepository(store Store, logger Logger) *Repository {
	return &Repository{store: store, logger: logger}
}

// Locale возвращает сохраненный язык
func (r *Repository) Locale() string {
	v, ok := r.store.Get(KeyLocale)
	if !ok || v == "" {
		return DefaultLocale
	}
	return v
}

// SetLocale сохраняет язык
func (r *Repository) SetLocale(locale string) {
	r.store.Set(KeyLocale, locale)
}

// SearchPrevInstructor возвращает флаг поиска ранее выбранного инструктора
func (r *Repository) SearchPrevInstructor() bool {
	v, ok := r.store.Get(KeySearchPrevInstructor)
	if !ok {
		return false
	}
	enabled, err := strconv.ParseBool(v)
	if err != nil {
		r.logger.Warn("Preferences: malformed %s=%q, using default", KeySearchPrevInstructor, v)
		return false
	}
	return enabled
}

// SetSearchPrevInstructor сохраняет флаг как "true"/"false"
func (r *Repository) SetSearchPrevInstructor(enabled bool) {
	r.store.Set(KeySearchPrevInstructor, strconv.FormatBool(enabled))
}

// FilterPreferences возвращает сохраненные предпочтения поверх значений по умолчанию
func (r *Repository) FilterPreferences() domain.FilterPreferences {
	prefs := domain.DefaultFilterPreferences()

	v, ok := r.store.Get(KeyUserFilterPreferences)
	if !ok || v == "" {
		return prefs
	}

	// поля, которых нет в JSON, остаются значениями по умолчанию
	if err := json.Unmarshal([]byte(v), &prefs); err != nil {
		r.logger.Warn("Preferences: malformed %s, using defaults: %v", KeyUserFilterPreferences, err)
		return domain.DefaultFilterPreferences()
	}

	return prefs.WithDefaults()
}

// SaveFilterPreferences сохраняет предпочтения как JSON
func (r *Repository) SaveFilterPreferences(prefs domain.FilterPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, KeyUserFilterPreferences, err)
	}
	r.store.Set(KeyUserFilterPreferences, string(data))
	return nil
}
