package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/client/api"
	"github.com/dmitrijs2005/bookstore/internal/client/models"
)

const (
	// DefaultSearchText replaces an empty search; the list endpoint rejects
	// empty queries.
	DefaultSearchText = "kitap"
	DefaultPage       = 1
	DefaultLimit      = 10

	// default account and document type for detail lookups
	detailAccountID    = "2"
	detailDocumentCode = "30"
)

type ListQuery struct {
	Search string
	Page   int
	Limit  int
}

// CatalogService lists and looks up book records.
//
// GetBookByID and GetBookByBarcode share one convention: both return the
// unwrapped record and fail with api.ErrNotFound on an empty payload. The raw
// envelope is available through GetBookEnvelopeByBarcode.
type CatalogService interface {
	ListBooks(ctx context.Context, q ListQuery) ([]models.Book, error)
	GetBookByID(ctx context.Context, id string) (*models.Book, error)
	GetBookByBarcode(ctx context.Context, barcode string) (*models.Book, error)
	GetBookEnvelopeByBarcode(ctx context.Context, barcode string) (*models.Envelope[models.BookDetail], error)
}

type catalogService struct {
	api      Doer
	tokens   api.TokenSource
	settings SettingsService
}

func NewCatalogService(client Doer, tokens api.TokenSource, settings SettingsService) CatalogService {
	return &catalogService{api: client, tokens: tokens, settings: settings}
}

func (q ListQuery) values() url.Values {
	page, limit, search := q.Page, q.Limit, strings.TrimSpace(q.Search)
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if search == "" {
		search = DefaultSearchText
	}

	return url.Values{
		"searchType":  {"0"},
		"page":        {strconv.Itoa(page)},
		"limit":       {strconv.Itoa(limit)},
		"tags":        {"1"},
		"tmiktar":     {"1"},
		"search_text": {search},
	}
}

func (c *catalogService) ListBooks(ctx context.Context, q ListQuery) ([]models.Book, error) {
	if err := requireToken(ctx, c.tokens); err != nil {
		return nil, err
	}

	resp, err := c.api.Do(ctx, api.Request{Method: http.MethodGet, Path: api.BookListPath, Query: q.values()})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	env, err := api.DecodeEnvelope[models.BookList](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	books := env.Resp().Data.Stok
	if books == nil {
		books = []models.Book{}
	}
	return books, nil
}

func (c *catalogService) GetBookByID(ctx context.Context, id string) (*models.Book, error) {
	return c.getBook(ctx, id)
}

func (c *catalogService) GetBookByBarcode(ctx context.Context, barcode string) (*models.Book, error) {
	return c.getBook(ctx, barcode)
}

func (c *catalogService) GetBookEnvelopeByBarcode(ctx context.Context, barcode string) (*models.Envelope[models.BookDetail], error) {
	resp, err := c.lookup(ctx, barcode)
	if err != nil {
		return nil, err
	}

	env, err := api.DecodeEnvelope[models.BookDetail](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("get book %s: %w", barcode, err)
	}
	return env, nil
}

func (c *catalogService) getBook(ctx context.Context, code string) (*models.Book, error) {
	resp, err := c.lookup(ctx, code)
	if err != nil {
		return nil, err
	}

	if !api.HasData(resp.Body) {
		return nil, fmt.Errorf("get book %s: %w", code, api.ErrNotFound)
	}

	env, err := api.DecodeEnvelope[models.BookDetail](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("get book %s: %w", code, err)
	}

	book := env.Resp().Data.Stok
	if book == nil || (book.ID == 0 && book.Barcode == "") {
		return nil, fmt.Errorf("get book %s: %w", code, api.ErrNotFound)
	}
	return book, nil
}

// lookup validates the code, loads global settings and only then issues the
// detail request.
func (c *catalogService) lookup(ctx context.Context, code string) (*api.Response, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, api.ErrInvalidID
	}
	if err := requireToken(ctx, c.tokens); err != nil {
		return nil, err
	}

	// only a failed request blocks the lookup; the settings content is not used
	if _, err := c.settings.GetGlobalSettings(ctx); err != nil && !errors.Is(err, api.ErrMalformed) {
		return nil, err
	}

	resp, err := c.api.Do(ctx, api.Request{
		Method: http.MethodGet,
		Path:   api.BookByBarcodePath + url.PathEscape(code),
		Query: url.Values{
			"cari_id":  {detailAccountID},
			"belgekod": {detailDocumentCode},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get book %s: %w", code, err)
	}
	return resp, nil
}
