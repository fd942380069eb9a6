package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/buildinfo"
	"github.com/dmitrijs2005/bookstore/internal/client/services"
	"github.com/spf13/cobra"
)

// Factory builds the Commander for one invocation. The root command closes
// it when the command finishes.
type Factory func(ctx context.Context) (Commander, error)

type root struct {
	factory Factory
	cmdr    Commander
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the REPL.
//
// Config flags (-a, -t, -s, -d, -l, -c) are parsed separately and must be
// stripped from the arguments before Execute.
func NewRootCommand(factory Factory) *cobra.Command {
	r := &root{factory: factory}

	cmd := &cobra.Command{
		Use:   "bookstore",
		Short: "Command-line client for the bookstore catalog",
		Long: `bookstore talks to the catalog API: log in once, then list, search
and look up books by id or barcode. Without a command it starts an
interactive shell.

Environment Variables:
  BOOKSTORE_BASE_URL        Catalog API base URL
  BOOKSTORE_STORAGE_DRIVER  sqlite (default), redis or memory
  BOOKSTORE_LANGUAGE        tr (default), en, de or fr`,
		SilenceUsage:       true,
		PersistentPreRunE:  r.open,
		PersistentPostRunE: r.close,
		RunE: r.run(func(ctx context.Context, c Commander, _ []string) error {
			return c.REPL(ctx)
		}),
	}

	cmd.AddCommand(
		r.loginCommand(),
		r.simple("logout", "Remove the stored session token", Commander.Logout),
		r.simple("status", "Show the local session state", Commander.Status),
		r.listCommand(),
		r.lookupCommand("show <id>", "Show a book by id", Commander.Show),
		r.lookupCommand("barcode <code>", "Show a book by barcode", Commander.Barcode),
		r.simple("settings", "Show global catalog settings", Commander.Settings),
		r.langCommand(),
		r.simple("repl", "Start the interactive shell", Commander.REPL),
		versionCommand(),
	)

	return cmd
}

func (r *root) open(cmd *cobra.Command, _ []string) error {
	c, err := r.factory(cmd.Context())
	if err != nil {
		return err
	}
	r.cmdr = c
	return nil
}

func (r *root) close(*cobra.Command, []string) error {
	if r.cmdr == nil {
		return nil
	}
	err := r.cmdr.Close()
	r.cmdr = nil
	return err
}

// run adapts a Commander call to cobra, replacing errors with their
// localized description. The commander is closed here as well since cobra
// skips post-run hooks when RunE fails.
func (r *root) run(f func(ctx context.Context, c Commander, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := f(cmd.Context(), r.cmdr, args); err != nil {
			msg := r.cmdr.Describe(err)
			_ = r.close(cmd, args)
			return errors.New(msg)
		}
		return nil
	}
}

func (r *root) simple(use, short string, f func(Commander, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c Commander, _ []string) error {
			return f(c, ctx)
		}),
	}
}

func (r *root) lookupCommand(use, short string, f func(Commander, context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, c Commander, args []string) error {
			return f(c, ctx, args[0])
		}),
	}
}

func (r *root) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [email]",
		Short: "Log in and store the session token",
		Long:  "Log in with email and password. Missing values are prompted for; the password is read without echo.",
		Args:  cobra.MaximumNArgs(1),
		RunE: r.run(func(ctx context.Context, c Commander, args []string) error {
			return c.Login(ctx, firstArg(args))
		}),
	}
}

func (r *root) listCommand() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list [search words]",
		Short: "List books matching a search",
		Long:  "List one page of books. An empty search lists the default selection.",
		RunE: r.run(func(ctx context.Context, c Commander, args []string) error {
			return c.List(ctx, services.ListQuery{Search: strings.Join(args, " "), Page: page, Limit: limit})
		}),
	}
	cmd.Flags().IntVarP(&page, "page", "p", services.DefaultPage, "page number")
	cmd.Flags().IntVarP(&limit, "limit", "n", services.DefaultLimit, "books per page")
	return cmd
}

func (r *root) langCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lang [code]",
		Short: "Show or set the interface language (tr, en, de, fr)",
		Args:  cobra.MaximumNArgs(1),
		RunE: r.run(func(ctx context.Context, c Commander, args []string) error {
			return c.Lang(ctx, firstArg(args))
		}),
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// no local state is needed
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}
