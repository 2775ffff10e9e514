package config

import (
	"fmt"
	"time"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Venue     VenueConfig     `yaml:"venue"     validate:"required"`
	Redis     RedisConfig     `yaml:"redis"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"release" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"meteorit"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// StorageConfig picks the reservation store. The memory driver keeps
// nothing across restarts and is meant for local runs.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=postgres memory"`
}

type SchedulerConfig struct {
	ReminderInterval  time.Duration `yaml:"reminder_interval"  env:"SCHEDULER_REMINDER_INTERVAL"  env-default:"60s" validate:"required,gt=0"`
	ExpiryInterval    time.Duration `yaml:"expiry_interval"    env:"SCHEDULER_EXPIRY_INTERVAL"    env-default:"2m"  validate:"required,gt=0"`
	ReminderTolerance time.Duration `yaml:"reminder_tolerance" env:"SCHEDULER_REMINDER_TOLERANCE" env-default:"5m"  validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"     env:"TELEGRAM_BOT_TOKEN"     env-default:""`
	StaffChatID int64  `yaml:"staff_chat_id" env:"TELEGRAM_STAFF_CHAT_ID" env-default:"0"`
	Debug       bool   `yaml:"debug"         env:"TELEGRAM_DEBUG"         env-default:"false"`
}

type VenueConfig struct {
	Timezone      string        `yaml:"timezone"       env:"VENUE_TIMEZONE"       env-default:"Europe/Moscow"       validate:"required"`
	Open          string        `yaml:"open"           env:"VENUE_OPEN"           env-default:"09:00"               validate:"required"`
	Close         string        `yaml:"close"          env:"VENUE_CLOSE"          env-default:"23:00"               validate:"required"`
	Step          time.Duration `yaml:"step"           env:"VENUE_STEP"           env-default:"30m"                 validate:"gt=0"`
	Duration      time.Duration `yaml:"duration"       env:"VENUE_DURATION"       env-default:"2h"                  validate:"gt=0"`
	MinGap        time.Duration `yaml:"min_gap"        env:"VENUE_MIN_GAP"        env-default:"30m"                 validate:"gte=0"`
	BookingDays   int           `yaml:"booking_days"   env:"VENUE_BOOKING_DAYS"   env-default:"14"                  validate:"min=1"`
	Name          string        `yaml:"name"           env:"VENUE_NAME"           env-default:"Метеорит"`
	Address       string        `yaml:"address"        env:"VENUE_ADDRESS"        env-default:"ул. Покровка, 20/1с1"`
	ReviewURL     string        `yaml:"review_url"     env:"VENUE_REVIEW_URL"     env-default:"https://yandex.ru/maps/org/meteorit/217545735013/reviews/"`
	InventoryFile string        `yaml:"inventory_file" env:"VENUE_INVENTORY_FILE" env-default:""`
}

// OperatingHours builds the venue clock from the configured strings.
func (v VenueConfig) OperatingHours() (domain.OperatingHours, error) {
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return domain.OperatingHours{}, fmt.Errorf("%w: timezone %q: %v", domain.ErrValidation, v.Timezone, err)
	}
	open, err := domain.ParseTimeOfDay(v.Open)
	if err != nil {
		return domain.OperatingHours{}, fmt.Errorf("venue open: %w", err)
	}
	closeAt, err := domain.ParseTimeOfDay(v.Close)
	if err != nil {
		return domain.OperatingHours{}, fmt.Errorf("venue close: %w", err)
	}

	hours := domain.OperatingHours{
		Location: loc,
		Open:     open,
		Close:    closeAt,
		Step:     v.Step,
		Duration: v.Duration,
		MinGap:   v.MinGap,
	}
	if err = hours.Validate(); err != nil {
		return domain.OperatingHours{}, fmt.Errorf("venue hours: %w", err)
	}
	return hours, nil
}

// Inventory reads the table layout from InventoryFile, or falls back to the
// built-in layout of the hall.
func (v VenueConfig) Inventory() (*domain.Inventory, error) {
	if v.InventoryFile == "" {
		return domain.NewInventory(DefaultInventory())
	}
	return LoadInventory(v.InventoryFile)
}

type RedisConfig struct {
	Enabled  bool          `yaml:"enabled"   env:"REDIS_ENABLED"   env-default:"false"`
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"      env-default:"localhost:6379"`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"  env-default:""`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"   validate:"min=0"`
	HoldTTL  time.Duration `yaml:"hold_ttl"  env:"REDIS_HOLD_TTL"  env-default:"10m" validate:"gt=0"`
	StateTTL time.Duration `yaml:"state_ttl" env:"REDIS_STATE_TTL" env-default:"24h" validate:"gt=0"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
