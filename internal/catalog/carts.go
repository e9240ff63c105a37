package catalog

import (
	"context"
	"fmt"
)

func (c *Client) CreateCart(ctx context.Context, req CartRequest) (*Cart, error) {
	var out Cart
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&out).Post("/cart")
	if err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) GetCart(ctx context.Context, id string) (*Cart, error) {
	var out Cart
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/cart/" + id)
	if err != nil {
		return nil, fmt.Errorf("get cart %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) ListCarts(ctx context.Context) ([]Cart, error) {
	var out []Cart
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/cart")
	if err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}
