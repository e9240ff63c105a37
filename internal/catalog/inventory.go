package catalog

import (
	"context"
	"fmt"
	"strconv"
)

// TransactionFilter narrows the transaction listing; zero values mean
// "no filter". Limit defaults server-side to 100.
type TransactionFilter struct {
	ItemType string
	ItemID   string
	Type     string
	Limit    int
}

func (c *Client) ListTransactions(ctx context.Context, f TransactionFilter) ([]InventoryTransaction, error) {
	req := c.http.R().SetContext(ctx)
	if f.ItemType != "" {
		req.SetQueryParam("itemType", f.ItemType)
	}
	if f.ItemID != "" {
		req.SetQueryParam("itemId", f.ItemID)
	}
	if f.Type != "" {
		req.SetQueryParam("type", f.Type)
	}
	if f.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(f.Limit))
	}
	var out []InventoryTransaction
	resp, err := req.SetResult(&out).Get("/inventory/transactions")
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}

func (c *Client) ItemTransactions(ctx context.Context, itemType, itemID string) ([]InventoryTransaction, error) {
	var out []InventoryTransaction
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).
		Get("/inventory/transactions/" + itemType + "/" + itemID)
	if err != nil {
		return nil, fmt.Errorf("item transactions %s/%s: %w", itemType, itemID, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}

func (c *Client) ImportStock(ctx context.Context, req InventoryTransactionRequest) (*InventoryTransaction, error) {
	return c.postTransaction(ctx, "/inventory/import", req)
}

func (c *Client) ExportStock(ctx context.Context, req InventoryTransactionRequest) (*InventoryTransaction, error) {
	return c.postTransaction(ctx, "/inventory/export", req)
}

func (c *Client) postTransaction(ctx context.Context, path string, req InventoryTransactionRequest) (*InventoryTransaction, error) {
	var out InventoryTransaction
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&out).Post(path)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) AdjustStock(ctx context.Context, req AdjustInventoryRequest) (*InventoryTransaction, error) {
	var out InventoryTransaction
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&out).Patch("/inventory/adjust")
	if err != nil {
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) LowStockAlerts(ctx context.Context, threshold int) ([]InventoryAlert, error) {
	req := c.http.R().SetContext(ctx)
	if threshold > 0 {
		req.SetQueryParam("threshold", strconv.Itoa(threshold))
	}
	var out []InventoryAlert
	resp, err := req.SetResult(&out).Get("/inventory/alerts")
	if err != nil {
		return nil, fmt.Errorf("low stock alerts: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}

func (c *Client) InventoryStats(ctx context.Context, startDate, endDate string) (*InventoryStats, error) {
	req := c.http.R().SetContext(ctx)
	if startDate != "" {
		req.SetQueryParam("startDate", startDate)
	}
	if endDate != "" {
		req.SetQueryParam("endDate", endDate)
	}
	var out InventoryStats
	resp, err := req.SetResult(&out).Get("/inventory/stats")
	if err != nil {
		return nil, fmt.Errorf("inventory stats: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}
