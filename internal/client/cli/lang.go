package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/i18n"
)

type unsupportedLanguageError struct {
	code string
}

func (e *unsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q", e.code)
}

// Lang prints the current language when code is empty, otherwise stores
// code as the new preference and switches output to it.
func (a *App) Lang(ctx context.Context, code string) error {
	if code == "" {
		a.println(i18n.MsgLanguageCurrent, a.printer.Lang())
		return nil
	}
	if !i18n.IsSupported(code) {
		return &unsupportedLanguageError{code: code}
	}

	lang := i18n.Code(i18n.Match(code))
	if err := a.session.SetLanguage(ctx, lang); err != nil {
		return err
	}
	a.printer = i18n.NewPrinter(lang)
	a.println(i18n.MsgLanguageSet, lang)
	return nil
}

func supportedCodes() string {
	codes := make([]string, 0, len(i18n.Supported))
	for _, t := range i18n.Supported {
		codes = append(codes, i18n.Code(t))
	}
	return strings.Join(codes, ", ")
}
