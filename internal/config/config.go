package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/beautyline/salon-service/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры расчета слотов и бронирования
// Спецификой домена не фиксируются, поэтому вынесены в конфигурацию
type BookingConfig struct {
	GranularityMinutes int    `toml:"granularity_minutes"`  // шаг сетки слотов
	MinLeadTimeMinutes int    `toml:"min_lead_time_minutes"` // минимальный отступ от "сейчас"
	AdvanceBookingDays int    `toml:"advance_booking_days"`  // горизонт бронирования, 0 = без ограничений
	DefaultLocale      string `toml:"default_locale"`        // fallback-локаль переводов
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Logs.File == "" {
		cfg.Logs.File = "logs/app.log"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "salon-service"
	}
	if cfg.Booking.GranularityMinutes == 0 {
		cfg.Booking.GranularityMinutes = domain.DefaultGranularityMinutes
	}
	if cfg.Booking.DefaultLocale == "" {
		cfg.Booking.DefaultLocale = domain.DefaultLocale
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if cfg.Booking.GranularityMinutes < domain.MinGranularityMinutes ||
		cfg.Booking.GranularityMinutes > domain.MaxGranularityMinutes {
		return fmt.Errorf("booking.granularity_minutes must be between %d and %d",
			domain.MinGranularityMinutes, domain.MaxGranularityMinutes)
	}
	if cfg.Booking.MinLeadTimeMinutes < 0 {
		return fmt.Errorf("booking.min_lead_time_minutes must not be negative")
	}
	if cfg.Booking.AdvanceBookingDays < 0 {
		return fmt.Errorf("booking.advance_booking_days must not be negative")
	}
	return nil
}
