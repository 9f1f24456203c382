package cattle

import (
	"context"
	"net/http"
)

func getOne[T any](ctx context.Context, c *Client, path, notFound string) (*T, error) {
	return send[T](ctx, c, http.MethodGet, path, nil, notFound)
}

func send[T any](ctx context.Context, c *Client, method, path string, body any, notFound string) (*T, error) {
	out := new(T)
	if _, err := c.do(ctx, call{method: method, path: path, body: body, result: out, notFound: notFound}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) remove(ctx context.Context, path, notFound string) error {
	_, err := c.do(ctx, call{method: http.MethodDelete, path: path, notFound: notFound})
	return err
}
