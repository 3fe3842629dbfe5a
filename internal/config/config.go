package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Host      HostConfig      `toml:"host"`
	Booking   BookingConfig   `toml:"booking"`
	Notifier  NotifierConfig  `toml:"notifier"`
	Mail      MailConfig      `toml:"mail"`
	NATS      NATSConfig      `toml:"nats"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	CORS      CORSConfig      `toml:"cors"`
	Reminders RemindersConfig `toml:"reminders"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig подключение к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig логирование
type LogsConfig struct {
	File  string `toml:"file" env:"LOG_FILE"`
	Level string `toml:"level" env:"LOG_LEVEL"`
}

// MetricsConfig Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HostConfig хост, от имени которого работает сервис (один на инсталляцию)
type HostConfig struct {
	ID int64 `toml:"id" env:"HOST_ID"`
}

// BookingConfig правила записи бронирований
type BookingConfig struct {
	// GuardMode raw - проверка без буферов, buffered - с буферами типа события
	GuardMode string `toml:"guard_mode" env:"BOOKING_GUARD_MODE"`
}

// NotifierConfig очередь уведомлений
type NotifierConfig struct {
	Workers   int `toml:"workers"`
	QueueSize int `toml:"queue_size"`
	Timeout   int `toml:"timeout"` // секунды на одно уведомление
}

// MailConfig доставка писем
type MailConfig struct {
	// Provider mailersend, smtp или пусто (письма только логируются)
	Provider         string `toml:"provider" env:"MAIL_PROVIDER"`
	FromEmail        string `toml:"from_email" env:"MAIL_FROM_EMAIL"`
	FromName         string `toml:"from_name"`
	MailerSendAPIKey string `toml:"mailersend_api_key" env:"MAILERSEND_API_KEY"`
	SMTPHost         string `toml:"smtp_host" env:"SMTP_HOST"`
	SMTPPort         int    `toml:"smtp_port" env:"SMTP_PORT"`
	SMTPUsername     string `toml:"smtp_username" env:"SMTP_USERNAME"`
	SMTPPassword     string `toml:"smtp_password" env:"SMTP_PASSWORD"`
}

// NATSConfig публикация событий бронирований
type NATSConfig struct {
	Enabled       bool   `toml:"enabled" env:"NATS_ENABLED"`
	URL           string `toml:"url" env:"NATS_URL"`
	SubjectPrefix string `toml:"subject_prefix"`
}

// RedisConfig хранилище счетчиков rate limit
type RedisConfig struct {
	Enabled  bool   `toml:"enabled" env:"REDIS_ENABLED"`
	Addr     string `toml:"addr" env:"REDIS_ADDR"`
	Password string `toml:"password" env:"REDIS_PASSWORD"`
	DB       int    `toml:"db"`
}

// RateLimitConfig ограничение публичных эндпоинтов бронирования
type RateLimitConfig struct {
	Requests      int `toml:"requests"`
	WindowSeconds int `toml:"window_seconds"`
}

// CORSConfig разрешенные источники
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// RemindersConfig напоминания о предстоящих встречах
type RemindersConfig struct {
	Enabled     bool   `toml:"enabled" env:"REMINDERS_ENABLED"`
	Schedule    string `toml:"schedule"`
	LeadMinutes int    `toml:"lead_minutes"`
}

// Lead время до встречи, за которое отправляется напоминание
func (r RemindersConfig) Lead() time.Duration {
	return time.Duration(r.LeadMinutes) * time.Minute
}

// Load читает .env (если есть), TOML файл и переменные окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: load .env: %v", ErrLoad, err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrLoad, path, err)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%w: read env: %v", ErrLoad, err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
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
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "scheduling_service"
	}
	if c.Host.ID == 0 {
		c.Host.ID = 1
	}
	if c.Booking.GuardMode == "" {
		c.Booking.GuardMode = string(domain.GuardModeRaw)
	}
	if c.Notifier.Workers == 0 {
		c.Notifier.Workers = 2
	}
	if c.Notifier.QueueSize == 0 {
		c.Notifier.QueueSize = 100
	}
	if c.Notifier.Timeout == 0 {
		c.Notifier.Timeout = 10
	}
	if c.Mail.FromName == "" {
		c.Mail.FromName = "Scheduling"
	}
	if c.Mail.SMTPPort == 0 {
		c.Mail.SMTPPort = 587
	}
	if c.NATS.SubjectPrefix == "" {
		c.NATS.SubjectPrefix = "bookings"
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 30
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
	if c.Reminders.Schedule == "" {
		c.Reminders.Schedule = "@every 5m"
	}
	if c.Reminders.LeadMinutes == 0 {
		c.Reminders.LeadMinutes = 60
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalid, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalid)
	}
	if c.Host.ID <= 0 {
		return fmt.Errorf("%w: host.id must be positive", ErrInvalid)
	}
	if _, err := domain.ParseGuardMode(c.Booking.GuardMode); err != nil {
		return fmt.Errorf("%w: booking.guard_mode: %v", ErrInvalid, err)
	}

	switch c.Mail.Provider {
	case "":
	case MailProviderMailerSend:
		if c.Mail.MailerSendAPIKey == "" || c.Mail.FromEmail == "" {
			return fmt.Errorf("%w: mail.mailersend_api_key and mail.from_email are required", ErrInvalid)
		}
	case MailProviderSMTP:
		if c.Mail.SMTPHost == "" || c.Mail.FromEmail == "" {
			return fmt.Errorf("%w: mail.smtp_host and mail.from_email are required", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown mail.provider %q", ErrInvalid, c.Mail.Provider)
	}

	if c.NATS.Enabled && c.NATS.URL == "" {
		return fmt.Errorf("%w: nats.url is required when nats is enabled", ErrInvalid)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalid)
	}
	if c.Notifier.Workers < 1 || c.Notifier.QueueSize < 1 {
		return fmt.Errorf("%w: notifier.workers and notifier.queue_size must be positive", ErrInvalid)
	}

	return nil
}
