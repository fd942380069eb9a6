package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/bookstore/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommander struct {
	loggedIn bool
	calls    []string
	queries  []services.ListQuery
	arg      string
	err      error
	closed   bool
}

func (f *fakeCommander) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeCommander) IsLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeCommander) Prompt(context.Context) string   { return "(en)" }
func (f *fakeCommander) Login(_ context.Context, email string) error {
	f.arg = email
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeCommander) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeCommander) Status(context.Context) error { return f.record("status") }
func (f *fakeCommander) List(_ context.Context, q services.ListQuery) error {
	f.queries = append(f.queries, q)
	return f.record("list")
}
func (f *fakeCommander) Show(_ context.Context, id string) error {
	f.arg = id
	return f.record("show")
}
func (f *fakeCommander) Barcode(_ context.Context, code string) error {
	f.arg = code
	return f.record("barcode")
}
func (f *fakeCommander) Settings(context.Context) error { return f.record("settings") }
func (f *fakeCommander) Lang(_ context.Context, code string) error {
	f.arg = code
	return f.record("lang")
}
func (f *fakeCommander) REPL(context.Context) error { return f.record("repl") }
func (f *fakeCommander) Describe(err error) string  { return "described: " + err.Error() }
func (f *fakeCommander) Text(key string, _ ...any) string {
	return key
}
func (f *fakeCommander) Close() error {
	f.closed = true
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := readerFromLines(
		"help",
		"login a@b.c",
		"help",
		"list war and peace",
		"next",
		"next",
		"prev",
		"page 7",
		"show 123",
		"barcode 978",
		"settings",
		"lang de",
		"status",
		"foobar",
		"logout",
		"exit",
	)

	exec := &fakeCommander{}
	runREPL(context.Background(), exec, input)

	assert.Equal(t, []string{
		"login", "list", "list", "list", "list", "list", "show", "barcode", "settings", "lang", "status", "logout",
	}, exec.calls)

	pages := make([]int, 0, len(exec.queries))
	for _, q := range exec.queries {
		assert.Equal(t, "war and peace", q.Search)
		pages = append(pages, q.Page)
	}
	assert.Equal(t, []int{1, 2, 3, 2, 7}, pages)
	assert.False(t, exec.loggedIn)
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeCommander{err: errors.New("no token")}
	runREPL(context.Background(), exec, readerFromLines("list", "settings", "quit"))

	assert.Equal(t, []string{"list", "settings"}, exec.calls)
	assert.Contains(t, *lines, "described: no token")
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	silencePrintln(t)

	exec := &fakeCommander{}
	runREPL(context.Background(), exec, readerFromLines("status"))
	require.Equal(t, []string{"status"}, exec.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeCommander{}
	runREPL(ctx, exec, readerFromLines("status", "status"))
	assert.Empty(t, exec.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeCommander{}
	runREPL(context.Background(), exec, readerFromLines("frobnicate", "quit"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Unknown command: %s")
}
