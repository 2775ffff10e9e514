package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/IXIIIK/meteorit-bot/internal/allocator"
	"github.com/IXIIIK/meteorit-bot/internal/bot"
	"github.com/IXIIIK/meteorit-bot/internal/cache"
	"github.com/IXIIIK/meteorit-bot/internal/config"
	"github.com/IXIIIK/meteorit-bot/internal/domain"
	"github.com/IXIIIK/meteorit-bot/internal/handler"
	"github.com/IXIIIK/meteorit-bot/internal/metrics"
	"github.com/IXIIIK/meteorit-bot/internal/middleware"
	"github.com/IXIIIK/meteorit-bot/internal/notification"
	"github.com/IXIIIK/meteorit-bot/internal/repository"
	"github.com/IXIIIK/meteorit-bot/internal/repository/memory"
	"github.com/IXIIIK/meteorit-bot/internal/router"
	"github.com/IXIIIK/meteorit-bot/internal/scheduler"
	"github.com/IXIIIK/meteorit-bot/internal/service"
	"github.com/IXIIIK/meteorit-bot/internal/service/ports"
	"github.com/IXIIIK/meteorit-bot/migrations"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const appName = "meteorit"

type App struct {
	cfg *config.Config
	log logger.Logger

	hours     domain.OperatingHours
	inventory *domain.Inventory

	db    *dbpg.DB
	repo  ports.ReservationRepo
	cache *cache.RedisCache
	tg    *tgbotapi.BotAPI

	reservations *service.ReservationService
	lifecycle    *service.LifecycleService
	scheduler    *scheduler.Scheduler
	bot          *bot.Bot
	httpServer   *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	steps := []struct {
		name string
		fn   func() error
	}{
		{"venue", app.initVenue},
		{"storage", app.initStorage},
		{"cache", app.initCache},
		{"telegram", app.initTelegram},
		{"services", app.initServices},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("init %s: %w", step.name, err)
		}
	}

	return app, nil
}

func NewLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func (a *App) initVenue() error {
	hours, err := a.cfg.Venue.OperatingHours()
	if err != nil {
		return err
	}
	inv, err := a.cfg.Venue.Inventory()
	if err != nil {
		return err
	}

	a.hours = hours
	a.inventory = inv
	a.log.Info("venue configured",
		logger.String("timezone", a.cfg.Venue.Timezone),
		logger.String("open", a.cfg.Venue.Open),
		logger.String("close", a.cfg.Venue.Close),
		logger.Int("max_party", inv.MaxCapacity()),
	)
	return nil
}

func (a *App) initStorage() error {
	if a.cfg.Storage.Driver == config.StorageMemory {
		a.repo = memory.NewReservationStore(a.hours.Duration)
		a.log.Warn("using in-memory reservation store, data is lost on restart")
		return nil
	}

	if err := Migrate(a.cfg, a.log); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		_ = db.Master.Close()
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.repo = repository.NewReservationRepo(db, a.hours.Duration)
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initCache is optional: without Redis the dialogue keeps state in memory
// and slots are not held between steps.
func (a *App) initCache() error {
	if !a.cfg.Redis.Enabled {
		return nil
	}

	c := cache.NewRedisCache(
		cache.NewClient(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB),
		a.cfg.Redis.HoldTTL,
		a.cfg.Redis.StateTTL,
		a.hours.Duration,
	)
	if err := c.Ping(context.Background()); err != nil {
		_ = c.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.cache = c
	a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))
	return nil
}

func (a *App) initTelegram() error {
	if a.cfg.Telegram.BotToken == "" {
		a.log.Warn("TELEGRAM_BOT_TOKEN is empty, bot and notifications are disabled")
		return nil
	}

	api, err := tgbotapi.NewBotAPI(a.cfg.Telegram.BotToken)
	if err != nil {
		return fmt.Errorf("telegram auth: %w", err)
	}
	api.Debug = a.cfg.Telegram.Debug

	a.tg = api
	a.log.Info("telegram authorized", logger.String("account", api.Self.UserName))
	return nil
}

func (a *App) initServices() error {
	alloc := allocator.New(a.inventory, a.hours)

	texts := notification.NewTexts(a.hours, notification.Venue{
		Name:      a.cfg.Venue.Name,
		Address:   a.cfg.Venue.Address,
		ReviewURL: a.cfg.Venue.ReviewURL,
	})
	notifier := notification.NewTelegramNotifier(a.tg, a.cfg.Telegram.StaffChatID, texts, a.log)

	var holds ports.SlotHolder
	if a.cache != nil {
		holds = a.cache
	}

	a.reservations = service.NewReservationService(a.repo, alloc, holds, notifier, a.log)
	a.lifecycle = service.NewLifecycleService(a.repo, notifier, a.log, service.LifecycleConfig{
		Reminders: service.DefaultReminders(),
		Tolerance: a.cfg.Scheduler.ReminderTolerance,
		Duration:  a.hours.Duration,
	})
	a.scheduler = scheduler.New(
		a.lifecycle,
		a.cfg.Scheduler.ReminderInterval,
		a.cfg.Scheduler.ExpiryInterval,
		a.log,
	)

	if a.tg != nil {
		var store bot.ConversationStore = bot.NewMemoryConversations()
		if a.cache != nil {
			store = bot.NewRedisConversations(a.cache)
		}
		dialogue := bot.NewDialogue(a.reservations, store, texts, a.hours, a.inventory.MaxCapacity(), a.log,
			bot.WithBookingDays(a.cfg.Venue.BookingDays),
		)
		a.bot = bot.New(a.tg, dialogue, a.log)
	}

	var metricsHandler http.Handler
	if a.cfg.Metrics.Enabled {
		metricsHandler = metrics.Handler()
	}

	h := handler.NewHandler(a.reservations)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		metricsHandler,
		a.cfg.Metrics.Path,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Metrics(),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// Run serves HTTP, polls Telegram and runs the sweeps until SIGINT/SIGTERM.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.scheduler.Start(ctx)

	errCh := make(chan error, 2)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if a.bot != nil {
		go func() {
			if err := a.bot.Run(ctx); err != nil {
				errCh <- fmt.Errorf("telegram bot: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case runErr = <-errCh:
		stop()
	}

	return errors.Join(runErr, a.shutdown())
}

// Sweep runs the reminder and expiry sweeps once.
func (a *App) Sweep(ctx context.Context) error {
	return a.scheduler.RunOnce(ctx)
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	var errs []error
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.scheduler.Stop()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "scheduler stopped")

	if err := a.Close(); err != nil {
		errs = append(errs, err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")
	return errors.Join(errs...)
}

// Close releases the database and Redis connections.
func (a *App) Close() error {
	var errs []error
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}
	return errors.Join(errs...)
}

// Migrate applies the embedded goose migrations to the configured database.
func Migrate(cfg *config.Config, log logger.Logger) error {
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	log.Info("migrations applied successfully")
	return nil
}
