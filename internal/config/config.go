package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/holdtimer"
)

// EnvPrefix префикс переменных окружения, переопределяющих значения из файла
const EnvPrefix = "SKI_"

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Session     SessionConfig     `toml:"session"`
	Hold        HoldConfig        `toml:"hold"`
	Pricing     PricingConfig     `toml:"pricing"`
	LoyaltyCard LoyaltyCardConfig `toml:"loyalty_card"`
	CORS        CORSConfig        `toml:"cors"`
}

// ServerConfig HTTP сервер; таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SessionConfig время жизни сессий бронирования; интервалы в секундах
type SessionConfig struct {
	IdleTimeout      int `toml:"idle_timeout"`
	EvictionInterval int `toml:"eviction_interval"`
	CatalogDays      int `toml:"catalog_days"`
}

// HoldConfig таймер удержания брони
type HoldConfig struct {
	DurationSeconds  int `toml:"duration_seconds"`
	WarningSeconds   int `toml:"warning_seconds"`
	ExtensionSeconds int `toml:"extension_seconds"`
	// Задержка автоматического возврата к выбору занятий после истечения, 0 - выключено
	RedirectDelaySeconds int `toml:"redirect_delay_seconds"`
}

// PricingConfig тарифы; нулевые значения заменяются встроенными
type PricingConfig struct {
	FirstLevelHours      float64 `toml:"first_level_hours"`
	SecondLevelHours     float64 `toml:"second_level_hours"`
	FirstLevelDiscount   float64 `toml:"first_level_discount"`
	SecondLevelDiscount  float64 `toml:"second_level_discount"`
	LoyaltyCardDiscount  float64 `toml:"loyalty_card_discount"`
	InsurancePrice       float64 `toml:"insurance_price"`
	GroupInsurancePerDay float64 `toml:"group_insurance_per_day"`
	ChildAddOnPrice      float64 `toml:"child_add_on_price"`
	HappyHoursGroupPrice float64 `toml:"happy_hours_group_price"`
}

// LoyaltyCardConfig сервис карт постоянного клиента.
// Пустой URL включает встроенную имитацию.
type LoyaltyCardConfig struct {
	URL                string  `toml:"url"`
	Timeout            int     `toml:"timeout"`
	StubLatencyMs      int     `toml:"stub_latency_ms"`
	RateLimitPerMinute float64 `toml:"rate_limit_per_minute"`
	RateLimitBurst     int     `toml:"rate_limit_burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию из TOML файла, затем переменные SKI_* (включая .env рядом с процессом)
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "ski_school_booking"
	}

	if c.Session.IdleTimeout == 0 {
		c.Session.IdleTimeout = 3600
	}
	if c.Session.EvictionInterval == 0 {
		c.Session.EvictionInterval = 60
	}
	if c.Session.CatalogDays == 0 {
		c.Session.CatalogDays = domain.CatalogDays
	}

	if c.LoyaltyCard.Timeout == 0 {
		c.LoyaltyCard.Timeout = 5
	}
	if c.LoyaltyCard.RateLimitPerMinute == 0 {
		c.LoyaltyCard.RateLimitPerMinute = 10
	}
	if c.LoyaltyCard.RateLimitBurst == 0 {
		c.LoyaltyCard.RateLimitBurst = 3
	}
}

// applyEnv переопределяет значения переменными окружения SKI_<SECTION>_<KEY>
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"SERVER_HTTP_PORT":              &c.Server.HTTPPort,
		"SERVER_SHUTDOWN_TIMEOUT":       &c.Server.ShutdownTimeout,
		"SESSION_IDLE_TIMEOUT":          &c.Session.IdleTimeout,
		"SESSION_EVICTION_INTERVAL":     &c.Session.EvictionInterval,
		"SESSION_CATALOG_DAYS":          &c.Session.CatalogDays,
		"HOLD_DURATION_SECONDS":         &c.Hold.DurationSeconds,
		"HOLD_WARNING_SECONDS":          &c.Hold.WarningSeconds,
		"HOLD_EXTENSION_SECONDS":        &c.Hold.ExtensionSeconds,
		"HOLD_REDIRECT_DELAY_SECONDS":   &c.Hold.RedirectDelaySeconds,
		"LOYALTY_CARD_TIMEOUT":          &c.LoyaltyCard.Timeout,
		"LOYALTY_CARD_STUB_LATENCY_MS":  &c.LoyaltyCard.StubLatencyMs,
		"LOYALTY_CARD_RATE_LIMIT_BURST": &c.LoyaltyCard.RateLimitBurst,
	}
	strs := map[string]*string{
		"LOGS_FILE":        &c.Logs.File,
		"LOGS_LEVEL":       &c.Logs.Level,
		"LOYALTY_CARD_URL": &c.LoyaltyCard.URL,
	}

	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s%s=%q: %w", EnvPrefix, key, v, err)
		}
		*dst = n
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "METRICS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sMETRICS_ENABLED=%q: %w", EnvPrefix, v, err)
		}
		c.Metrics.Enabled = enabled
	}
	if v, ok := lookup(EnvPrefix + "CORS_ALLOWED_ORIGINS"); ok {
		c.CORS.AllowedOrigins = splitList(v)
	}

	return nil
}

func splitList(v string) []string {
	result := make([]string, 0)
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

// HoldTimer параметры таймера удержания
func (c HoldConfig) HoldTimer() holdtimer.Config {
	return holdtimer.Config{
		DurationSeconds:  c.DurationSeconds,
		WarningSeconds:   c.WarningSeconds,
		ExtensionSeconds: c.ExtensionSeconds,
		RedirectDelay:    time.Duration(c.RedirectDelaySeconds) * time.Second,
	}
}

// Domain тарифы для движка расчета, нулевые поля заполнены встроенными значениями
func (c PricingConfig) Domain() domain.PricingConfig {
	return domain.PricingConfig{
		FirstLevelHours:      c.FirstLevelHours,
		SecondLevelHours:     c.SecondLevelHours,
		FirstLevelDiscount:   c.FirstLevelDiscount,
		SecondLevelDiscount:  c.SecondLevelDiscount,
		LoyaltyCardDiscount:  c.LoyaltyCardDiscount,
		InsurancePrice:       c.InsurancePrice,
		GroupInsurancePerDay: c.GroupInsurancePerDay,
		ChildAddOnPrice:      c.ChildAddOnPrice,
		HappyHoursGroupPrice: c.HappyHoursGroupPrice,
	}.WithDefaults()
}
