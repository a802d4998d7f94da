package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client is a read-only JSON API client. Every completed exchange is
// returned as a *Response regardless of status code; interpreting the
// status belongs to the caller.
type Client struct {
	baseURL         string
	restyClient     *resty.Client
	defaultHeaders  map[string]string
	maxResponseSize int64 // 0 means no limit
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		restyClient: createDefaultRestyClient(),
		defaultHeaders: map[string]string{
			HeaderAccept: ContentTypeJSON,
		},
		maxResponseSize: 0,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func createDefaultRestyClient() *resty.Client {
	return resty.New().SetTimeout(DefaultTimeout)
}

func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, opts...)
}

func (c *Client) Head(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodHead, path, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, opts ...RequestOption) (*Response, error) {
	cfg := buildRequestConfig(opts...)

	if cfg.requestID == "" {
		cfg.requestID = uuid.New().String()
	}

	req := c.restyClient.R().
		SetContext(ctx).
		SetHeaders(c.defaultHeaders).
		SetHeaders(cfg.headers).
		SetHeader(HeaderXRequestID, cfg.requestID)

	if len(cfg.query) > 0 {
		req.SetQueryParams(cfg.query)
	}

	resp, err := req.Execute(method, c.buildURL(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	body := resp.Body()
	if c.maxResponseSize > 0 && int64(len(body)) > c.maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	respRequestID := resp.Header().Get(HeaderXRequestID)
	if respRequestID == "" {
		respRequestID = cfg.requestID
	}

	headers := make(map[string]string, len(resp.Header()))
	for k := range resp.Header() {
		headers[k] = resp.Header().Get(k)
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Headers:    headers,
		Body:       body,
		RequestID:  respRequestID,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}
