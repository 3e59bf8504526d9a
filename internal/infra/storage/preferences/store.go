package preferences

import (
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Ключи сохраняемых предпочтений
const (
	KeyLocale                = "locale"
	KeySearchPrevInstructor  = "search_prev_instructor"
	KeyUserFilterPreferences = "user_filter_preferences"
)

// Keys все ключи предпочтений
var Keys = []string{KeyLocale, KeySearchPrevInstructor, KeyUserFilterPreferences}

const cookieMaxAge = 365 * 24 * time.Hour

// MemoryStore хранилище в памяти, безопасно для конкурентного доступа
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get возвращает значение по ключу
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set сохраняет значение
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// CookieStore читает cookie запроса и записывает Set-Cookie в ответ.
// Значения кодируются как query-компонент, записанное значение видно последующим Get.
type CookieStore struct {
	r       *http.Request
	w       http.ResponseWriter
	written map[string]string
}

// NewCookieStore создает хранилище поверх одного HTTP-обмена
func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{r: r, w: w, written: make(map[string]string)}
}

// Get возвращает значение cookie
func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.written[key]; ok {
		return v, true
	}
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return "", false
	}
	return v, true
}

// Set записывает cookie в ответ
func (s *CookieStore) Set(key, value string) {
	s.written[key] = value
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Copy переносит значения ключей из src в dst
func Copy(dst, src Store, keys ...string) {
	for _, k := range keys {
		if v, ok := src.Get(k); ok {
			dst.Set(k, v)
		}
	}
}
