// Package cli provides the bookstore command-line client.
//
// It wires configuration, local state storage, the catalog API services and
// two front ends over the same Commander surface: a cobra command tree for
// one-shot invocations and an interactive REPL.
//
// Commands:
//   - login [email] / logout / status
//   - list [search] with --page and --limit
//   - show <id> / barcode <code>
//   - settings
//   - lang [code]
//   - repl (default when no command is given)
//
// User-facing text is rendered through i18n in the stored language.
package cli
