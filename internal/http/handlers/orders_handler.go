package handlers

import (
	"github.com/gofiber/fiber/v2"

	"petpos/internal/catalog"
	applog "petpos/internal/log"
	"petpos/internal/store"
	"petpos/internal/validate"
)

// OrdersHandler serves the order history screen: remote orders and carts plus
// the locally recorded bills.
type OrdersHandler struct {
	API   *catalog.Client
	Store *store.Store
}

func (h *OrdersHandler) List(c *fiber.Ctx) error {
	out, err := h.API.ListOrders(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	out, err := h.API.GetOrder(c.Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return fail(c, fiber.StatusBadRequest, "status is required")
	}
	out, err := h.API.UpdateOrderStatus(c.Context(), id, body.Status)
	if err != nil {
		return failErr(c, err)
	}
	applog.Audit(c, "order.status", map[string]any{"order": id, "status": body.Status})
	return c.JSON(out)
}

func (h *OrdersHandler) ListCarts(c *fiber.Ctx) error {
	out, err := h.API.ListCarts(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *OrdersHandler) GetCart(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	out, err := h.API.GetCart(c.Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

// Bills lists locally recorded invoices, newest first.
func (h *OrdersHandler) Bills(c *fiber.Ctx) error {
	bills, err := h.Store.ListBills(validate.Limit(c.Query("limit"), 50, 200))
	if err != nil {
		applog.Error(c, "bills.list", err, nil)
		return fail(c, fiber.StatusInternalServerError, "cannot read bill records")
	}
	return c.JSON(fiber.Map{"bills": bills})
}
