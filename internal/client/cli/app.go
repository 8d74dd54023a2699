package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/standup/internal/calendar"
	"github.com/dmitrijs2005/standup/internal/client/client"
	"github.com/dmitrijs2005/standup/internal/client/config"
	"github.com/dmitrijs2005/standup/internal/client/export"
	"github.com/dmitrijs2005/standup/internal/client/identity"
	"github.com/dmitrijs2005/standup/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/standup/internal/client/services"
	"github.com/dmitrijs2005/standup/internal/client/store"
	"github.com/dmitrijs2005/standup/internal/client/summary"
	"github.com/dmitrijs2005/standup/internal/common"
	"github.com/dmitrijs2005/standup/internal/logging"
	"github.com/fatih/color"
)

// Pinger probes the sync server.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ExportLister lists a user's uploaded exports.
type ExportLister interface {
	ListExports(ctx context.Context, userID string, limit int) ([]client.ExportFile, error)
}

// Uploader stores an export remotely and returns a download link.
type Uploader interface {
	Upload(ctx context.Context, userID, fileName, contentType string, data []byte) (string, error)
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	entries  services.EntryService
	session  services.SessionService
	pinger   Pinger
	exports  ExportLister
	uploader Uploader
	summary  *summary.Presenter
	renderer *calendar.Renderer
	reader   *bufio.Reader
	out      io.Writer
	loc      *time.Location
	now      func() time.Time
	closers  []func() error

	mu     sync.Mutex
	online bool
}

// NewLogger builds the CLI logger. Logs go to stderr so they do not mix
// with command output.
func NewLogger(c *config.Config) (logging.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return logging.New(os.Stderr, logging.FormatText, level), nil
}

// openRepository picks sqlite for a configured path and memory otherwise.
func openRepository(ctx context.Context, path string) (metadata.Repository, *sql.DB, error) {
	if path == "" {
		return metadata.NewMemoryRepository(), nil, nil
	}
	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}
	return metadata.NewSQLiteRepository(db), db, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := NewLogger(c)
	if err != nil {
		return nil, err
	}

	repo, db, err := openRepository(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	api, err := client.NewStandupClient(c.ServerEndpointAddr)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	out := color.Output

	providers := identity.NewDeviceFlow(map[string]identity.ProviderConfig{
		common.ProviderGitHub: identity.GitHub(c.GitHubClientID, c.GitHubClientSecret),
		common.ProviderGoogle: identity.Google(c.GoogleClientID, c.GoogleClientSecret),
	}, func(code, url string) {
		fmt.Fprintf(out, "Open %s and enter the code %s\n", url, color.New(color.Bold).Sprint(code))
	}, logger)

	entries := services.NewEntryService(
		store.NewLocal(repo, logger),
		func(userID string) store.Backend { return store.NewRemote(api, userID, logger) },
		logger,
	)
	session := services.NewSessionService(repo, api, providers, logger)

	api.OnTokens(func(access, refresh string) {
		if err := session.PersistTokens(context.Background(), access, refresh); err != nil {
			logger.Warn(context.Background(), "tokens not persisted", "error", err)
		}
	})

	a := &App{
		config:   c,
		logger:   logger.With("module", "cli"),
		entries:  entries,
		session:  session,
		pinger:   api,
		exports:  api,
		uploader: export.NewUploader(api, nil),
		summary:  summary.NewPresenter(summary.NewClient(c.SummaryEndpoint, c.SummaryModel, c.SummaryAPIKey, nil, logger), time.Local),
		renderer: calendar.NewRenderer(color.NoColor),
		reader:   bufio.NewReader(os.Stdin),
		out:      out,
		loc:      time.Local,
		now:      time.Now,
		closers:  []func() error{api.Close},
	}
	if db != nil {
		a.closers = append(a.closers, db.Close)
	}
	return a, nil
}

// bind makes the entry service follow the session identity.
func (a *App) bind() func() {
	return a.session.Subscribe(func(s services.Session) {
		a.entries.SetIdentity(s.Identity)
	})
}

func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	a.entries.Start(ctx)
	dispose := a.bind()
	defer dispose()

	if _, err := a.session.Init(ctx); err != nil {
		a.logger.Warn(ctx, "session not restored", "error", err)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Welcome to StandUp+ (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	a.entries.Close()
	for _, c := range a.closers {
		_ = c()
	}
}

func (a *App) setOnline(online bool) {
	a.mu.Lock()
	changed := a.online != online
	a.online = online
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "server reachability changed", "online", online)
	}
	a.entries.SetReachable(online)
}

func (a *App) isOnline() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.online
}

// StartOnlineStatusWatcher pings the server right away and then every
// interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	check := func() {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := a.pinger.Ping(pctx)
		cancel()
		a.setOnline(err == nil)
	}

	check()
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			check()
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) isSignedIn() bool {
	return a.session.State().State == services.StateAuthenticated
}

func (a *App) getStatus() string {
	s := a.session.State()
	who := string(s.State)
	if s.Identity != nil {
		who = s.Identity.DisplayName
		if who == "" {
			who = s.Identity.Email
		}
	}
	return fmt.Sprintf("(%s, %s, %s)", who, a.entries.Backend(), a.mode())
}

func (a *App) mode() string {
	if a.isOnline() {
		return "online"
	}
	return "offline"
}
