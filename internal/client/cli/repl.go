package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/client/services"
	"github.com/dmitrijs2005/bookstore/internal/i18n"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// Commander is the command surface shared by the cobra tree and the REPL.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type Commander interface {
	IsLoggedIn(ctx context.Context) bool
	Prompt(ctx context.Context) string
	Login(ctx context.Context, email string) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	List(ctx context.Context, q services.ListQuery) error
	Show(ctx context.Context, id string) error
	Barcode(ctx context.Context, code string) error
	Settings(ctx context.Context) error
	Lang(ctx context.Context, code string) error
	REPL(ctx context.Context) error
	Describe(err error) string
	Text(key string, args ...any) string
	Close() error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from in, parses the first token as the command, and
// dispatches to methods on a. Errors are reported through a.Describe and the
// loop continues. The loop exits on EOF, on "exit" or "quit", or when ctx is
// done.
//
// Commands:
//
//	help                   show available commands
//	login [email]          authenticate
//	logout                 drop the stored token
//	status                 show session state
//	list [search words]    first page of matching books
//	next | prev            page through the last list
//	page <n>               jump to page n of the last list
//	show <id>              book details by id
//	barcode <code>         book details by barcode
//	settings               global settings
//	lang [code]            show or change the language
//	exit | quit            leave the program
func runREPL(ctx context.Context, a Commander, in *bufio.Reader) {
	query := services.ListQuery{Page: services.DefaultPage}

	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("bookstore %s> ", a.Prompt(ctx)))
		line, err := readLine(in)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.IsLoggedIn(ctx) {
				printlnFn("Available commands: (l)ist, next, prev, page, show, barcode, settings, status, lang, logout, exit")
			} else {
				printlnFn("Available commands: login, status, lang, exit")
			}

		case "login":
			cmdErr = a.Login(ctx, firstArg(args))

		case "logout":
			cmdErr = a.Logout(ctx)

		case "status":
			cmdErr = a.Status(ctx)

		case "l", "list":
			query = services.ListQuery{Search: strings.Join(args, " "), Page: services.DefaultPage}
			cmdErr = a.List(ctx, query)

		case "next":
			query.Page++
			cmdErr = a.List(ctx, query)

		case "page":
			query.Page = parsePositive(firstArg(args), query.Page)
			cmdErr = a.List(ctx, query)

		case "prev":
			if query.Page > 1 {
				query.Page--
			}
			cmdErr = a.List(ctx, query)

		case "show":
			cmdErr = a.Show(ctx, firstArg(args))

		case "barcode":
			cmdErr = a.Barcode(ctx, firstArg(args))

		case "settings":
			cmdErr = a.Settings(ctx)

		case "lang":
			cmdErr = a.Lang(ctx, firstArg(args))

		case "exit", "quit":
			printlnFn(a.Text(i18n.MsgBye))
			return

		default:
			printlnFn(a.Text(i18n.MsgUnknownCommand, cmd))
		}

		if cmdErr != nil {
			printlnFn(a.Describe(cmdErr))
		}
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func parsePositive(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
