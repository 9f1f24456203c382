// Package cattle is the typed REST client for the cattle platform backend.
// Every method translates transport and HTTP failures into *apperr.Error.
package cattle

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/config"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/pagination"
)

const requestIDHeader = "X-Request-ID"

// Client wraps a single resty client configured with the backend base URL
// and a JSON content type. It does not retry.
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger

	mu    sync.RWMutex
	token string
}

// NewClient builds a backend client from the API configuration.
func NewClient(cfg config.APIConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{logger: logger}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader(requestIDHeader, uuid.NewString())
			if token := c.Token(); token != "" {
				req.SetAuthToken(token)
			}
			return nil
		})

	c.httpClient = restyClient
	return c
}

// SetToken stores the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current bearer token, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// call describes one backend request.
type call struct {
	method   string
	path     string
	query    url.Values
	body     any
	result   any
	notFound string
}

// do executes the call and returns the raw body on success. Failures are
// always *apperr.Error values.
func (c *Client) do(ctx context.Context, cl call) ([]byte, error) {
	payload := new(errorPayload)

	req := c.httpClient.R().
		SetContext(ctx).
		SetError(payload)
	if cl.query != nil {
		req.SetQueryParamsFromValues(cl.query)
	}
	if cl.body != nil {
		req.SetBody(cl.body)
	}
	if cl.result != nil {
		req.SetResult(cl.result)
	}

	resp, err := req.Execute(cl.method, cl.path)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("method", cl.method),
			zap.String("path", cl.path),
			zap.Error(err))
		return nil, translate(&APIError{Err: err}, cl.notFound)
	}

	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode(), Detail: payload.Detail}
		if apiErr.Detail.Kind == DetailNone && len(resp.Body()) > 0 {
			// Non-JSON error bodies are not parsed by resty.
			var fallback errorPayload
			if json.Unmarshal(resp.Body(), &fallback) == nil {
				apiErr.Detail = fallback.Detail
			}
		}
		c.logger.Debug("backend returned error status",
			zap.String("method", cl.method),
			zap.String("path", cl.path),
			zap.Int("status", apiErr.Status))
		return nil, translate(apiErr, cl.notFound)
	}

	return resp.Body(), nil
}

// getPage fetches one page from a list endpoint whose items live under key.
func getPage[T any](ctx context.Context, c *Client, path, key string, query url.Values, notFound string) (models.Page[T], error) {
	body, err := c.do(ctx, call{method: "GET", path: path, query: query, notFound: notFound})
	if err != nil {
		return models.Page[T]{}, err
	}
	return decodePage[T](body, key)
}

// decodePage accepts both the {total, <key>, page, page_size} envelope and a
// bare JSON array. Bare arrays carry no total. An envelope without an item
// list is reported as pagination.ErrMalformedPage.
func decodePage[T any](body []byte, key string) (models.Page[T], error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return models.Page[T]{}, fmt.Errorf("%s: empty body: %w", key, pagination.ErrMalformedPage)
	}

	if strings.HasPrefix(trimmed, "[") {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return models.Page[T]{}, fmt.Errorf("decode %s: %w", key, err)
		}
		return models.Page[T]{Items: items}, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return models.Page[T]{}, fmt.Errorf("decode %s envelope: %w", key, err)
	}

	raw, ok := envelope[key]
	if !ok {
		raw, ok = envelope["items"]
	}
	if !ok || string(raw) == "null" {
		return models.Page[T]{}, fmt.Errorf("%s: missing item list: %w", key, pagination.ErrMalformedPage)
	}

	var page models.Page[T]
	if err := json.Unmarshal(raw, &page.Items); err != nil {
		return models.Page[T]{}, fmt.Errorf("decode %s: %w", key, err)
	}

	for name, dst := range map[string]*int{"total": &page.Total, "page": &page.Page, "page_size": &page.PageSize} {
		if v, ok := envelope[name]; ok {
			*dst = decodeCount(v)
		}
	}

	return page, nil
}

// decodeCount reads an envelope counter written as an integer, an integral
// float such as 12.0, or a numeric string. Anything else reads as zero.
func decodeCount(raw json.RawMessage) int {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil || n == "" {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}
