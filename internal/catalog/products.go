package catalog

import (
	"context"
	"fmt"
	"io"
)

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/product")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var out Product
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/product/" + id)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

// CreateProduct posts the product fields as multipart form data with an
// optional image part, matching the server's upload endpoint.
func (c *Client) CreateProduct(ctx context.Context, fields map[string]string, image io.Reader, imageName string) (*StatusResponse, error) {
	var out StatusResponse
	req := c.http.R().SetContext(ctx).SetMultipartFormData(fields).SetResult(&out)
	if image != nil {
		req.SetFileReader("image", imageName, image)
	}
	resp, err := req.Post("/product")
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, fields map[string]string, image io.Reader, imageName string) (*StatusResponse, error) {
	var out StatusResponse
	req := c.http.R().SetContext(ctx).SetMultipartFormData(fields).SetResult(&out)
	if image != nil {
		req.SetFileReader("image", imageName, image)
	}
	resp, err := req.Patch("/product/" + id)
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/product/" + id)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}
