package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Business BusinessConfig `toml:"business"`
	Holidays HolidaysConfig `toml:"holidays"`
	Session  SessionConfig  `toml:"session"`
	Slack    SlackConfig    `toml:"slack"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int  `toml:"http_port"`
	ReadTimeout     int  `toml:"read_timeout"`
	WriteTimeout    int  `toml:"write_timeout"`
	IdleTimeout     int  `toml:"idle_timeout"`
	ShutdownTimeout int  `toml:"shutdown_timeout"`
	MigrateOnStart  bool `toml:"migrate_on_start"`
}

// DatabaseConfig настройки подключения к БД
type DatabaseConfig struct {
	Driver          string `toml:"driver"` // postgres | sqlite3
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"` // Файл БД для sqlite3
	RawDSN          string `toml:"dsn"`  // Если указан, используется как есть
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessConfig параметры окна бронирования
type BusinessConfig struct {
	Timezone    string `toml:"timezone"`
	StartHour   int    `toml:"start_hour"`
	EndHour     int    `toml:"end_hour"`
	MinLeadDays int    `toml:"min_lead_days"`
	MaxLeadDays int    `toml:"max_lead_days"`
}

// HolidaysConfig источники праздничных дней
type HolidaysConfig struct {
	Dates       []HolidayEntry `toml:"dates"`
	SourceURL   string         `toml:"source_url"`   // Базовый URL календаря, пустой отключает загрузку
	CountryCode string         `toml:"country_code"` // ISO 3166-1 alpha-2
	Timeout     int            `toml:"timeout"`
}

// HolidayEntry праздник из конфигурации
type HolidayEntry struct {
	Date string `toml:"date"` // YYYY-MM-DD
	Name string `toml:"name"`
}

// SessionConfig настройки сессий администратора
type SessionConfig struct {
	CookieName string `toml:"cookie_name"`
	HashKey    string `toml:"hash_key"`  // base64
	BlockKey   string `toml:"block_key"` // base64
	TTLMinutes int    `toml:"ttl_minutes"`
	Secure     bool   `toml:"secure"`
}

// SlackConfig настройки уведомлений о новых бронированиях
type SlackConfig struct {
	BotToken  string `toml:"bot_token"`
	ChannelID string `toml:"channel_id"`
}

// Load читает .env (если есть), TOML файл, применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "pickup_service",
		},
		Business: BusinessConfig{
			Timezone:    domain.DefaultTimezone,
			StartHour:   domain.DefaultBusinessStartHour,
			EndHour:     domain.DefaultBusinessEndHour,
			MinLeadDays: domain.DefaultMinLeadDays,
			MaxLeadDays: domain.DefaultMaxLeadDays,
		},
		Holidays: HolidaysConfig{
			CountryCode: "JP",
			Timeout:     5,
		},
		Session: SessionConfig{
			CookieName: "pickup_admin_session",
			TTLMinutes: 60,
		},
	}
}

func (c *Config) applyEnv() {
	setFromEnv(&c.Database.Password, "DB_PASSWORD")
	setFromEnv(&c.Database.RawDSN, "DB_DSN")
	setFromEnv(&c.Session.HashKey, "SESSION_HASH_KEY")
	setFromEnv(&c.Session.BlockKey, "SESSION_BLOCK_KEY")
	setFromEnv(&c.Slack.BotToken, "SLACK_BOT_TOKEN")
	setFromEnv(&c.Slack.ChannelID, "SLACK_CHANNEL_ID")
}

func (c *Config) applyDefaults() {
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "pickup_admin_session"
	}
	if c.Session.TTLMinutes <= 0 {
		c.Session.TTLMinutes = 60
	}
	if c.Holidays.Timeout <= 0 {
		c.Holidays.Timeout = 5
	}
	if c.Holidays.CountryCode == "" {
		c.Holidays.CountryCode = "JP"
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Database.Driver {
	case DriverPostgres:
	case DriverSQLite:
		if c.Database.Path == "" && c.Database.RawDSN == "" {
			return fmt.Errorf("%w: database.path is required for sqlite3", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported database.driver %q", ErrInvalidConfig, c.Database.Driver)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: business.timezone: %v", ErrInvalidConfig, err)
	}

	if err := c.Policy().Check(); err != nil {
		return fmt.Errorf("%w: business: %v", ErrInvalidConfig, err)
	}

	if _, err := c.HolidayList(); err != nil {
		return fmt.Errorf("%w: holidays: %v", ErrInvalidConfig, err)
	}

	if _, _, err := c.Session.Keys(); err != nil {
		return fmt.Errorf("%w: session: %v", ErrInvalidConfig, err)
	}

	return nil
}

// DSN собирает строку подключения для выбранного драйвера
func (d DatabaseConfig) DSN() string {
	if d.RawDSN != "" {
		return d.RawDSN
	}

	if d.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", d.Path)
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location загружает бизнес-таймзону
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Business.Timezone)
}

// Policy собирает политику бронирования из конфигурации
// Если таймзона некорректна, Location остаётся nil и Check вернёт ошибку
func (c *Config) Policy() *domain.BookingPolicy {
	loc, _ := c.Location()
	return &domain.BookingPolicy{
		MinLeadDays: c.Business.MinLeadDays,
		MaxLeadDays: c.Business.MaxLeadDays,
		BusinessHours: domain.BusinessHours{
			Start: c.Business.StartHour,
			End:   c.Business.EndHour,
		},
		Location: loc,
	}
}

// HolidayList разбирает статический список праздников в бизнес-таймзоне
func (c *Config) HolidayList() ([]domain.Holiday, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	holidays := make([]domain.Holiday, 0, len(c.Holidays.Dates))
	for _, entry := range c.Holidays.Dates {
		h, err := domain.ParseHoliday(entry.Date, entry.Name, loc)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	return domain.MergeHolidays(holidays), nil
}

// Keys декодирует ключи cookie. Пустые ключи допустимы: тогда сервер генерирует временные
func (s SessionConfig) Keys() (hashKey, blockKey []byte, err error) {
	if s.HashKey != "" {
		hashKey, err = base64.StdEncoding.DecodeString(s.HashKey)
		if err != nil {
			return nil, nil, fmt.Errorf("hash_key is not valid base64: %w", err)
		}
		if len(hashKey) < 32 {
			return nil, nil, fmt.Errorf("hash_key must be at least 32 bytes, got %d", len(hashKey))
		}
	}

	if s.BlockKey != "" {
		blockKey, err = base64.StdEncoding.DecodeString(s.BlockKey)
		if err != nil {
			return nil, nil, fmt.Errorf("block_key is not valid base64: %w", err)
		}
		switch len(blockKey) {
		case 16, 24, 32:
		default:
			return nil, nil, fmt.Errorf("block_key must be 16, 24 or 32 bytes, got %d", len(blockKey))
		}
	}

	return hashKey, blockKey, nil
}

// TTL время жизни сессии
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
