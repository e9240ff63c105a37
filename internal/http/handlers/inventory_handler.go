package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"petpos/internal/catalog"
	"petpos/internal/validate"
)

var (
	errBadBody     = errors.New("bad request body")
	errMissingItem = errors.New("itemId and itemType are required")
	errBadQuantity = errors.New("quantity must be positive")
)

// InventoryHandler exposes the remote inventory endpoints to the terminal.
type InventoryHandler struct {
	API *catalog.Client
}

func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	f := catalog.TransactionFilter{
		ItemType: validate.Q(c.Query("itemType")),
		ItemID:   validate.Q(c.Query("itemId")),
		Type:     validate.Q(c.Query("type")),
		Limit:    validate.Limit(c.Query("limit"), 0, 500),
	}
	out, err := h.API.ListTransactions(c.Context(), f)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *InventoryHandler) ItemTransactions(c *fiber.Ctx) error {
	itemType := c.Params("itemType")
	if itemType != "product" && itemType != "service" && itemType != "pet" {
		return fail(c, fiber.StatusBadRequest, "unknown item type")
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	out, err := h.API.ItemTransactions(c.Context(), itemType, id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *InventoryHandler) Import(c *fiber.Ctx) error {
	req, err := transactionBody(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	out, err := h.API.ImportStock(c.Context(), req)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	req, err := transactionBody(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	out, err := h.API.ExportStock(c.Context(), req)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func transactionBody(c *fiber.Ctx) (catalog.InventoryTransactionRequest, error) {
	var req catalog.InventoryTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return req, errBadBody
	}
	if req.ItemID == "" || req.ItemType == "" {
		return req, errMissingItem
	}
	if req.Quantity <= 0 {
		return req, errBadQuantity
	}
	return req, nil
}

func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var req catalog.AdjustInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "bad request body")
	}
	if req.ItemID == "" || req.ItemType == "" {
		return fail(c, fiber.StatusBadRequest, "itemId and itemType are required")
	}
	out, err := h.API.AdjustStock(c.Context(), req)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	threshold := validate.Limit(c.Query("threshold"), 0, 10000)
	out, err := h.API.LowStockAlerts(c.Context(), threshold)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	out, err := h.API.InventoryStats(c.Context(), validate.Q(c.Query("startDate")), validate.Q(c.Query("endDate")))
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}
