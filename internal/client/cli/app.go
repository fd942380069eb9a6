package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/bookstore/internal/client/api"
	"github.com/dmitrijs2005/bookstore/internal/client/config"
	"github.com/dmitrijs2005/bookstore/internal/client/services"
	"github.com/dmitrijs2005/bookstore/internal/client/session"
	"github.com/dmitrijs2005/bookstore/internal/client/storage"
	"github.com/dmitrijs2005/bookstore/internal/i18n"
	"github.com/dmitrijs2005/bookstore/internal/logging"
)

// App is the real Commander. It owns the local state store and closes it in
// Close.
type App struct {
	config          *config.Config
	store           storage.Store
	session         *session.Store
	authService     services.AuthService
	settingsService services.SettingsService
	catalogService  services.CatalogService
	printer         *i18n.Printer
	log             logging.Logger
	reader          *bufio.Reader
	out             io.Writer
}

// NewApp opens local state and builds the API client and services on top of
// it. in and out carry all user interaction.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	store, err := storage.Open(ctx, c.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("error initializing local state: %w", err)
	}

	sess := session.New(store, log)
	reqHooks, respHooks := api.SessionHooks(sess, log)
	client := api.New(api.Options{
		BaseURL:       c.BaseURL,
		Timeout:       c.RequestTimeout,
		RequestHooks:  reqHooks,
		ResponseHooks: respHooks,
		Logger:        log,
	})

	settings := services.NewSettingsService(client, sess)

	a := &App{
		config:          c,
		store:           store,
		session:         sess,
		authService:     services.NewAuthService(client, sess, log),
		settingsService: settings,
		catalogService:  services.NewCatalogService(client, sess, settings),
		log:             log,
		reader:          bufio.NewReader(in),
		out:             out,
	}
	a.loadLanguage(ctx)

	return a, nil
}

// loadLanguage picks the configured language, then the stored preference,
// then the default.
func (a *App) loadLanguage(ctx context.Context) {
	code := ""
	if a.config != nil {
		code = a.config.Language
	}
	if code == "" {
		code, _ = a.session.Language(ctx)
	}
	a.printer = i18n.NewPrinter(code)
}

func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func (a *App) IsLoggedIn(ctx context.Context) bool {
	return a.authService.IsAuthenticated(ctx)
}

// Prompt is the REPL status, e.g. "(en, logged in)".
func (a *App) Prompt(ctx context.Context) string {
	if a.IsLoggedIn(ctx) {
		return fmt.Sprintf("(%s, logged in)", a.printer.Lang())
	}
	return fmt.Sprintf("(%s)", a.printer.Lang())
}

func (a *App) REPL(ctx context.Context) error {
	runREPL(ctx, a, a.reader)
	return nil
}

func (a *App) Text(key string, args ...any) string {
	return a.printer.Sprintf(key, args...)
}

func (a *App) println(key string, args ...any) {
	fmt.Fprintln(a.out, a.printer.Sprintf(key, args...))
}
