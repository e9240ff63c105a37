package catalog

import (
	"context"
	"fmt"
)

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	var out Order
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&out).Post("/order")
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var out Order
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/order/" + id)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/order")
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (*Order, error) {
	var out Order
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]string{"status": status}).
		SetResult(&out).
		Patch("/order/" + id)
	if err != nil {
		return nil, fmt.Errorf("update order %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

// CreateSmartOrder sends free-form order text to the server-side interpreter
// and returns the structured items it extracted.
func (c *Client) CreateSmartOrder(ctx context.Context, req SmartOrderRequest) (*SmartOrderResponse, error) {
	var out SmartOrderResponse
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&out).Post("/order/smart")
	if err != nil {
		return nil, fmt.Errorf("smart order: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}
