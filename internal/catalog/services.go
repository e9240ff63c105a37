package catalog

import (
	"context"
	"fmt"
)

func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	var out []Service
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/service")
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}

func (c *Client) GetService(ctx context.Context, id string) (*Service, error) {
	var out Service
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/service/" + id)
	if err != nil {
		return nil, fmt.Errorf("get service %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) CreateService(ctx context.Context, svc Service) (*StatusResponse, error) {
	var out StatusResponse
	resp, err := c.http.R().SetContext(ctx).SetBody(svc).SetResult(&out).Post("/service")
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, svc Service) (*StatusResponse, error) {
	var out StatusResponse
	resp, err := c.http.R().SetContext(ctx).SetBody(svc).SetResult(&out).Patch("/service/" + id)
	if err != nil {
		return nil, fmt.Errorf("update service %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/service/" + id)
	if err != nil {
		return fmt.Errorf("delete service %s: %w", id, err)
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}
