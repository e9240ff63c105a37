package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"petpos/internal/catalog"
	applog "petpos/internal/log"
	"petpos/internal/sell"
)

type SmartOrderAPI interface {
	CreateSmartOrder(ctx context.Context, req catalog.SmartOrderRequest) (*catalog.SmartOrderResponse, error)
}

// SmartOrderHandler sends free text to the server-side interpreter and parks
// the structured items in the session bridge for the sell screen to drain.
type SmartOrderHandler struct {
	Reg *sell.Registry
	API SmartOrderAPI
}

func (h *SmartOrderHandler) Create(c *fiber.Ctx) error {
	var req catalog.SmartOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "bad request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return fail(c, fiber.StatusBadRequest, "order text is required")
	}

	resp, err := h.API.CreateSmartOrder(c.Context(), req)
	if err != nil {
		return failErr(c, err)
	}
	if !resp.Success {
		return fail(c, fiber.StatusUnprocessableEntity, resp.Message)
	}

	items := make([]sell.LineItem, 0, len(resp.CartItems))
	for _, it := range resp.CartItems {
		kind, ok := sell.ParseItemKind(it.Type)
		if !ok {
			applog.Warn(c, "smartorder.bad_kind", map[string]any{"type": it.Type, "item": it.ID})
			continue
		}
		items = append(items, sell.LineItem{
			ID:        it.ID,
			Name:      it.Name,
			UnitPrice: it.Price,
			ImageURL:  it.ImageURL,
			Kind:      kind,
			Quantity:  it.Quantity,
		})
	}

	s := h.Reg.Get(ensureSID(c))
	s.Bridge.Set(items)

	applog.Info(c, "smartorder.parked", map[string]any{"items": len(items)})
	return c.JSON(fiber.Map{
		"success":     true,
		"message":     resp.Message,
		"items":       items,
		"totalAmount": resp.TotalAmount,
	})
}
