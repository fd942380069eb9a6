package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/dmitrijs2005/bookstore/internal/client/services"
	"github.com/dmitrijs2005/bookstore/internal/client/session"
	"github.com/dmitrijs2005/bookstore/internal/client/storage"
	"github.com/dmitrijs2005/bookstore/internal/i18n"
	"github.com/dmitrijs2005/bookstore/internal/logging"
)

// ---- fakes ----

type fakeAuth struct {
	sess     *session.Store
	creds    models.Credentials
	token    string
	loginErr error
}

func (f *fakeAuth) Login(ctx context.Context, c models.Credentials) (*models.LoginResult, error) {
	f.creds = c
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if err := f.sess.SetToken(ctx, f.token); err != nil {
		return nil, err
	}
	return &models.LoginResult{Token: f.token}, nil
}

func (f *fakeAuth) Logout(ctx context.Context) { f.sess.RemoveToken(ctx) }

func (f *fakeAuth) IsAuthenticated(ctx context.Context) bool {
	_, ok := f.sess.Token(ctx)
	return ok
}

type fakeSettings struct {
	out *models.Settings
	err error
}

func (f *fakeSettings) GetGlobalSettings(context.Context) (*models.Settings, error) {
	return f.out, f.err
}

type fakeCatalog struct {
	query   services.ListQuery
	books   []models.Book
	book    *models.Book
	lookups []string
	err     error
}

func (f *fakeCatalog) ListBooks(_ context.Context, q services.ListQuery) ([]models.Book, error) {
	f.query = q
	return f.books, f.err
}

func (f *fakeCatalog) GetBookByID(_ context.Context, id string) (*models.Book, error) {
	f.lookups = append(f.lookups, "id:"+id)
	return f.book, f.err
}

func (f *fakeCatalog) GetBookByBarcode(_ context.Context, code string) (*models.Book, error) {
	f.lookups = append(f.lookups, "barcode:"+code)
	return f.book, f.err
}

func (f *fakeCatalog) GetBookEnvelopeByBarcode(context.Context, string) (*models.Envelope[models.BookDetail], error) {
	return nil, f.err
}

// ---- helpers ----

type testApp struct {
	*App
	out      *bytes.Buffer
	auth     *fakeAuth
	settings *fakeSettings
	catalog  *fakeCatalog
}

func newTestApp(t *testing.T, lang string, input ...string) *testApp {
	t.Helper()
	sess := session.New(storage.NewMemoryStore(), logging.Discard())
	out := &bytes.Buffer{}
	ta := &testApp{
		out:      out,
		auth:     &fakeAuth{sess: sess, token: "T1"},
		settings: &fakeSettings{out: &models.Settings{}},
		catalog:  &fakeCatalog{},
	}
	ta.App = &App{
		session:         sess,
		authService:     ta.auth,
		settingsService: ta.settings,
		catalogService:  ta.catalog,
		printer:         i18n.NewPrinter(lang),
		log:             logging.Discard(),
		reader:          readerFromLines(input...),
		out:             out,
	}
	return ta
}

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func stubInputs(t *testing.T, email string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(_ *bufio.Reader, _ string, _ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmtArgs(a)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func fmtArgs(a []any) string {
	parts := make([]string, 0, len(a))
	for _, v := range a {
		if s, ok := v.(string); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
