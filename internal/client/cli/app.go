package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/nicograef/jotti/internal/client/config"
	"github.com/nicograef/jotti/internal/client/gateway"
	"github.com/nicograef/jotti/internal/client/repositories/metadata"
	"github.com/nicograef/jotti/internal/client/services"
	"github.com/nicograef/jotti/internal/client/session"
	"github.com/nicograef/jotti/internal/client/storage"
	"github.com/nicograef/jotti/internal/filex"
	"github.com/nicograef/jotti/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

// sessionStore is the part of session.Store the commands use.
type sessionStore interface {
	ValidateAndSetToken(ctx context.Context, raw string) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) (session.Claims, bool)
	IsAuthenticated(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
	IsService(ctx context.Context) bool
	ExpiresIn(ctx context.Context) time.Duration
}

type pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config *config.Config
	log    logging.Logger

	session  sessionStore
	backend  pinger
	auth     services.AuthService
	users    services.UserService
	products services.ProductService
	tables   services.TableService
	orders   services.OrderService

	commands []command
	reader   *bufio.Reader
	out      io.Writer
	closers  []io.Closer

	mu       sync.Mutex
	mode     Mode
	signedIn bool
}

// NewApp builds the client: logger, local database, session store,
// gateway and the feature services on top of it.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	var (
		logOut  io.Writer = os.Stderr
		closers []io.Closer
	)
	if c.LogFile != "" {
		if err := filex.EnsureParentDir(c.LogFile); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logOut = f
		closers = append(closers, f)
	}

	closeAll := func() {
		for _, cl := range closers {
			_ = cl.Close()
		}
	}

	log, err := logging.New(logOut, c.LogFormat, c.LogLevel)
	if err != nil {
		closeAll()
		return nil, err
	}

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		closeAll()
		return nil, err
	}

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "err", err)
		closeAll()
		return nil, err
	}
	closers = append([]io.Closer{db}, closers...)

	store := session.NewStore(
		metadata.NewSQLiteRepository(db),
		session.WithLogger(log.With("component", "session")),
	)

	gw := gateway.New(c.BaseURL, store,
		gateway.WithTimeout(c.RequestTimeout),
		gateway.WithRateLimit(c.RateLimit, c.RateBurst),
		gateway.WithLogger(log.With("component", "gateway")),
	)

	a := newApp(c, log, store, gw, gw, in, out)
	a.closers = closers
	return a, nil
}

// newApp wires an App from ready-made parts.
func newApp(c *config.Config, log logging.Logger, store sessionStore, backend services.Poster, p pinger, in io.Reader, out io.Writer) *App {
	return &App{
		config:   c,
		log:      log,
		session:  store,
		backend:  p,
		auth:     services.NewAuthService(backend),
		users:    services.NewUserService(backend),
		products: services.NewProductService(backend),
		tables:   services.NewTableService(backend),
		orders:   services.NewOrderService(backend),
		commands: commandTable(),
		reader:   bufio.NewReader(in),
		out:      out,
		mode:     ModeOffline,
	}
}

// Close releases the database and log file.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Run starts the background watchers and blocks in the REPL until the
// user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.checkOnline(ctx)
	a.setSignedIn(a.session.IsAuthenticated(ctx))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()
	go func() {
		defer wg.Done()
		a.StartSessionWatcher(ctx, a.config.SessionCheckInterval)
	}()

	printlnFn("Willkommen bei jotti. 'help' zeigt die verfügbaren Befehle.")
	runREPL(ctx, a, a.status, a.reader)

	cancel()
	wg.Wait()
	return nil
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.mode != mode {
		a.mode = mode
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) setSignedIn(v bool) {
	a.mu.Lock()
	a.signedIn = v
	a.mu.Unlock()
}

// status is the prompt prefix, e.g. "[online] anna".
func (a *App) status() string {
	a.mu.Lock()
	mode, signedIn := a.mode, a.signedIn
	a.mu.Unlock()

	if !signedIn {
		return fmt.Sprintf("[%s]", mode)
	}
	claims, ok := a.session.Session(context.Background())
	if !ok {
		return fmt.Sprintf("[%s]", mode)
	}
	return fmt.Sprintf("[%s] %s", mode, claims.Subject)
}

// checkOnline pings the backend once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.backend.Ping(pctx)
	cancel()

	if err != nil {
		a.log.Debug(ctx, "ping failed", "err", err)
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// checkSession notices a session that ended behind the user's back,
// by expiry or by a logout in another process.
func (a *App) checkSession(ctx context.Context) {
	authenticated := a.session.IsAuthenticated(ctx)

	a.mu.Lock()
	expired := a.signedIn && !authenticated
	a.signedIn = authenticated
	a.mu.Unlock()

	if expired {
		a.log.Info(ctx, "session ended")
		printlnFn("Deine Sitzung ist abgelaufen. Bitte melde dich erneut an.")
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	watch(ctx, interval, a.checkOnline)
}

func (a *App) StartSessionWatcher(ctx context.Context, interval time.Duration) {
	watch(ctx, interval, a.checkSession)
}

func watch(ctx context.Context, interval time.Duration, tick func(context.Context)) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}
