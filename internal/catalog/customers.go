package catalog

import (
	"context"
	"fmt"
)

func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var out []Customer
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/customer")
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}

func (c *Client) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	var out Customer
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/customer/" + id)
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, cust Customer) (*StatusResponse, error) {
	var out StatusResponse
	resp, err := c.http.R().SetContext(ctx).SetBody(cust).SetResult(&out).Post("/customer")
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, cust Customer) (*StatusResponse, error) {
	var out StatusResponse
	resp, err := c.http.R().SetContext(ctx).SetBody(cust).SetResult(&out).Patch("/customer/" + id)
	if err != nil {
		return nil, fmt.Errorf("update customer %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/customer/" + id)
	if err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}
