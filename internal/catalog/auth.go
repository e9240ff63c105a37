package catalog

import (
	"context"
	"fmt"
)

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&out).Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*StatusResponse, error) {
	var out StatusResponse
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&out).Post("/auth/register")
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) RegisterVerify(ctx context.Context, req RegisterVerifyRequest) (*StatusResponse, error) {
	var out StatusResponse
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&out).Post("/auth/register/verify")
	if err != nil {
		return nil, fmt.Errorf("register verify: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}
