package catalog

import (
	"context"
	"fmt"
	"io"
)

func (c *Client) ListPets(ctx context.Context) ([]Pet, error) {
	var out []Pet
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/pet")
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}

func (c *Client) GetPet(ctx context.Context, id string) (*Pet, error) {
	var out Pet
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/pet/" + id)
	if err != nil {
		return nil, fmt.Errorf("get pet %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) CreatePet(ctx context.Context, fields map[string]string, image io.Reader, imageName string) (*StatusResponse, error) {
	var out StatusResponse
	req := c.http.R().SetContext(ctx).SetMultipartFormData(fields).SetResult(&out)
	if image != nil {
		req.SetFileReader("image", imageName, image)
	}
	resp, err := req.Post("/pet")
	if err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) UpdatePet(ctx context.Context, id string, fields map[string]string, image io.Reader, imageName string) (*StatusResponse, error) {
	var out StatusResponse
	req := c.http.R().SetContext(ctx).SetMultipartFormData(fields).SetResult(&out)
	if image != nil {
		req.SetFileReader("image", imageName, image)
	}
	resp, err := req.Patch("/pet/" + id)
	if err != nil {
		return nil, fmt.Errorf("update pet %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) DeletePet(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/pet/" + id)
	if err != nil {
		return fmt.Errorf("delete pet %s: %w", id, err)
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}
