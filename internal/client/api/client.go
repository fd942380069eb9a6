package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/bookstore/internal/logging"
)

const (
	DefaultBaseURL = "https://api.onsocloud.com"
	DefaultTimeout = 30 * time.Second

	maxBodySize = 10 << 20
)

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	BaseURL       string
	Timeout       time.Duration
	HTTPClient    *http.Client
	RequestHooks  []RequestHook
	ResponseHooks []ResponseHook
	Logger        logging.Logger
}

type Client struct {
	baseURL       string
	httpClient    *http.Client
	requestHooks  []RequestHook
	responseHooks []ResponseHook
	log           logging.Logger
}

// Request describes one API call. Path is relative to the base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Response is a fully read reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func New(opts Options) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		httpClient:    opts.HTTPClient,
		requestHooks:  opts.RequestHooks,
		responseHooks: opts.ResponseHooks,
		log:           opts.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	return c
}

// BaseURL returns the endpoint every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

// Do runs the request hooks, sends the request, reads the reply and passes
// the outcome through the response hooks. A non-2xx status is returned as
// *Error together with the read Response.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	for _, hook := range c.requestHooks {
		if err := hook(ctx, req); err != nil {
			c.log.Warn(ctx, "request aborted", "method", req.Method, "path", req.URL.Path, "err", err)
			return nil, err
		}
	}

	var resp *Response
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		err = c.transportError(err)
	} else {
		resp, err = readResponse(httpResp)
	}

	for _, hook := range c.responseHooks {
		err = hook(ctx, req, resp, err)
	}

	return resp, err
}

func (c *Client) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	u := c.baseURL + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func readResponse(httpResp *http.Response) (*Response, error) {
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrNetwork, err)
	}

	resp := &Response{StatusCode: httpResp.StatusCode, Header: httpResp.Header, Body: body}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, newStatusError(httpResp.StatusCode, body)
	}
	return resp, nil
}

// transportError classifies a failed round trip. Cancellation by the caller
// is passed through untouched so errors.Is(err, context.Canceled) holds.
func (c *Client) transportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("request canceled: %w", err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return fmt.Errorf("%w: cannot connect to %s: %w", ErrNetwork, c.baseURL, err)
}
