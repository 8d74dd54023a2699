// Package server wires the sync server together: configuration, logging,
// PostgreSQL repositories, identity verifiers, services and the gRPC endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/logging"
	"github.com/dmitrijs2005/standup/internal/server/config"
	"github.com/dmitrijs2005/standup/internal/server/hub"
	"github.com/dmitrijs2005/standup/internal/server/identity"
	"github.com/dmitrijs2005/standup/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/standup/internal/server/services"

	gs "github.com/dmitrijs2005/standup/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	userService    *services.UserService
	standupService *services.StandupService
	exportService  *services.ExportService
}

// NewLogger builds the process logger from the configured level and format.
func NewLogger(c *config.Config) (logging.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return logging.New(os.Stdout, c.LogFormat, level), nil
}

// NewRegistry registers the GitHub and Google verifiers.
func NewRegistry(c *config.Config, hc *http.Client) (*identity.Registry, error) {
	gh, err := identity.NewGitHubVerifier(hc, c.GitHubAPIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("github verifier: %w", err)
	}
	r := identity.NewRegistry()
	r.Register(common.ProviderGitHub, gh)
	r.Register(common.ProviderGoogle, identity.NewGoogleVerifier(hc, c.GoogleUserInfoURL))
	return r, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := NewLogger(c)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	registry, err := NewRegistry(c, &http.Client{Timeout: 10 * time.Second})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		userService:    services.NewUserService(db, rm, registry, c),
		standupService: services.NewStandupService(db, rm, hub.New(), logger),
		exportService:  services.NewExportService(db, rm, c),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.standupService, app.exportService, app.config.SecretKey)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// tokenPurger is the part of the user service the cleanup loop needs.
type tokenPurger interface {
	PurgeExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

// runTokenCleanup purges expired refresh tokens every interval until ctx is done.
func runTokenCleanup(ctx context.Context, p tokenPurger, interval time.Duration, l logging.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := p.PurgeExpiredTokens(ctx, now)
			if err != nil {
				l.Error(ctx, "refresh token cleanup failed", "error", err)
				continue
			}
			if n > 0 {
				l.Info(ctx, "expired refresh tokens purged", "count", n)
			}
		}
	}
}

// Run serves until a termination signal arrives or the gRPC server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		runTokenCleanup(ctx, app.userService, app.config.TokenCleanupInterval, app.logger)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
