package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kintsugi-journal/kintsugi/internal/api"
	"github.com/kintsugi-journal/kintsugi/internal/app/affirmation"
	"github.com/kintsugi-journal/kintsugi/internal/app/engagement"
	"github.com/kintsugi-journal/kintsugi/internal/domain"
	"github.com/kintsugi-journal/kintsugi/internal/health"
	_ "github.com/kintsugi-journal/kintsugi/internal/infra/metrics" // Register Prometheus metrics
	"github.com/kintsugi-journal/kintsugi/internal/infra/sqlite"
)

// Daemon is the Kintsugi runtime. It wires together storage, the
// engagement engine, and the HTTP API.
type Daemon struct {
	Config       Config
	DB           *sqlite.DB
	Engagement   *engagement.Service
	Affirmations *affirmation.Service
	Server       *api.Server
	Health       *health.Checker
	cancel       context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	db, err := sqlite.Open(kintsugiHome())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	loc := cfg.DayLocation()
	eng := engagement.NewServiceWithPolicy(db, loc, cfg.NotificationPolicy())
	aff := affirmation.NewService(eng.Store(), loc)

	checker := health.NewChecker(db, eng.Store(), kintsugiHome())

	srv := api.NewServer(eng, aff)
	srv.SetHealth(checker)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:       cfg,
		DB:           db,
		Engagement:   eng,
		Affirmations: aff,
		Server:       srv,
		Health:       checker,
	}, nil
}

// Close shuts down the daemon's resources.
func (d *Daemon) Close() error {
	if d.cancel != nil {
		d.cancel()
	}
	return d.DB.Close()
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)

	// Every launch of the server counts as a visit.
	if _, err := d.Engagement.RecordVisit(); err != nil {
		log.Printf("[daemon] record visit: %v", err)
	}

	d.Engagement.Subscribe(func(event string) {
		log.Printf("[daemon] engagement updated: %s", event)
	})

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[daemon] shutdown error: %v", err)
		}
	}()

	log.Printf("[daemon] kintsugi listening on %s (day boundary: %s)", addr, d.Config.Journal.DayBoundary)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// NotificationPolicy builds the notifier policy from config, falling back
// to the shipped defaults for unset fields.
func (c Config) NotificationPolicy() domain.NotificationPolicy {
	policy := domain.DefaultNotificationPolicy()
	if c.Journal.NotifyMaxPerDay > 0 {
		policy.MaxPerDay = c.Journal.NotifyMaxPerDay
	}
	if c.Journal.NotifyQuietFrom != "" {
		policy.QuietStart = c.Journal.NotifyQuietFrom
	}
	if c.Journal.NotifyQuietTo != "" {
		policy.QuietEnd = c.Journal.NotifyQuietTo
	}
	return policy
}
