package cli

import (
	"context"

	"github.com/dmitrijs2005/bookstore/internal/client/services"
	"github.com/dmitrijs2005/bookstore/internal/i18n"
)

func (a *App) List(ctx context.Context, q services.ListQuery) error {
	books, err := a.catalogService.ListBooks(ctx, q)
	if err != nil {
		return err
	}

	if len(books) == 0 {
		a.println(i18n.MsgNoBooks)
		return nil
	}

	page := q.Page
	if page < 1 {
		page = services.DefaultPage
	}
	a.println(i18n.MsgBooksPage, page, len(books))
	a.renderBooks(books)
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	book, err := a.catalogService.GetBookByID(ctx, id)
	if err != nil {
		return err
	}
	a.renderBook(book)
	return nil
}

func (a *App) Barcode(ctx context.Context, code string) error {
	book, err := a.catalogService.GetBookByBarcode(ctx, code)
	if err != nil {
		return err
	}
	a.renderBook(book)
	return nil
}

func (a *App) Settings(ctx context.Context) error {
	s, err := a.settingsService.GetGlobalSettings(ctx)
	if err != nil {
		return err
	}

	if s.StockSalePriceID == nil {
		a.println(i18n.MsgPriceListUnset)
		return nil
	}
	a.println(i18n.MsgPriceList, *s.StockSalePriceID)
	return nil
}
