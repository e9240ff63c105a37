package handlers

import (
	"github.com/gofiber/fiber/v2"

	"petpos/internal/checkout"
	applog "petpos/internal/log"
	"petpos/internal/sell"
	"petpos/internal/validate"
)

type SellHandler struct {
	Reg       *sell.Registry
	Search    *sell.Searcher
	Customers sell.CustomerSource
	Orch      *checkout.Orchestrator
}

// cartView is the sell screen's state snapshot; the caller must hold the
// session lock.
func cartView(s *sell.Session) fiber.Map {
	view := fiber.Map{
		"items":        s.Cart.Lines(),
		"total":        s.Cart.DisplayTotal(),
		"totalAmount":  s.Cart.Total(),
		"needCustomer": s.Customers.SelectionRequested(),
		"processing":   s.Processing(),
	}
	if sel := s.Customers.Selected(); sel != nil {
		view["customer"] = sel
	}
	if s.Query != "" {
		view["query"] = s.Query
		view["searchResults"] = s.Results
	}
	if s.BillPath != "" {
		view["billPath"] = s.BillPath
	}
	return view
}

// ViewCart returns the cart, first draining any smart-order hand-off into it.
func (h *SellHandler) ViewCart(c *fiber.Ctx) error {
	s := h.Reg.Get(ensureSID(c))
	s.Lock()
	defer s.Unlock()
	for _, item := range s.Bridge.Drain() {
		s.Cart.Merge(item)
	}
	return c.JSON(cartView(s))
}

func (h *SellHandler) AddItem(c *fiber.Ctx) error {
	var item sell.LineItem
	if err := c.BodyParser(&item); err != nil {
		return fail(c, fiber.StatusBadRequest, "bad request body")
	}
	if _, ok := validate.ID(item.ID); !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid item id")
	}
	if _, ok := sell.ParseItemKind(string(item.Kind)); !ok {
		return fail(c, fiber.StatusBadRequest, "kind must be product or service")
	}

	s := h.Reg.Get(ensureSID(c))
	s.Lock()
	defer s.Unlock()
	s.Cart.AddItem(item)
	return c.JSON(cartView(s))
}

func (h *SellHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid item id")
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "bad request body")
	}

	s := h.Reg.Get(ensureSID(c))
	s.Lock()
	defer s.Unlock()
	s.Cart.UpdateQuantity(id, body.Quantity)
	return c.JSON(cartView(s))
}

func (h *SellHandler) RemoveItem(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid item id")
	}
	kind, ok := sell.ParseItemKind(c.Params("kind"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "kind must be product or service")
	}

	s := h.Reg.Get(ensureSID(c))
	s.Lock()
	defer s.Unlock()
	s.Cart.RemoveItem(id, kind)
	return c.JSON(cartView(s))
}

func (h *SellHandler) ClearCart(c *fiber.Ctx) error {
	s := h.Reg.Get(ensureSID(c))
	s.Lock()
	defer s.Unlock()
	s.Cart.Clear()
	return c.JSON(cartView(s))
}

func (h *SellHandler) SearchItems(c *fiber.Ctx) error {
	q := validate.Q(c.Query("q"))
	s := h.Reg.Get(ensureSID(c))

	results := h.Search.Search(c.Context(), q)

	s.Lock()
	s.Query = q
	s.Results = results
	s.Unlock()
	if results == nil {
		results = []sell.LineItem{}
	}
	return c.JSON(fiber.Map{"query": q, "results": results})
}

func (h *SellHandler) ListCustomers(c *fiber.Ctx) error {
	s := h.Reg.Get(ensureSID(c))
	s.Lock()
	defer s.Unlock()
	s.Customers.Load(c.Context(), h.Customers)
	return c.JSON(fiber.Map{"customers": s.Customers.Customers()})
}

func (h *SellHandler) SelectCustomer(c *fiber.Ctx) error {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "bad request body")
	}
	id, ok := validate.ID(body.ID)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid customer id")
	}

	s := h.Reg.Get(ensureSID(c))
	s.Lock()
	defer s.Unlock()
	s.Customers.Load(c.Context(), h.Customers)
	if !s.Customers.Select(id) {
		return fail(c, fiber.StatusNotFound, "unknown customer")
	}
	return c.JSON(cartView(s))
}

func (h *SellHandler) Checkout(c *fiber.Ctx) error {
	s := h.Reg.Get(ensureSID(c))

	res, err := h.Orch.Process(c.Context(), s)
	if err != nil {
		applog.Error(c, "sell.checkout.fail", err, map[string]any{"sid": s.ID})
		return failErr(c, err)
	}

	applog.Audit(c, "sell.checkout", map[string]any{
		"order": res.OrderID, "cart": res.CartID, "total": res.Total,
	})
	return c.JSON(fiber.Map{
		"success":  true,
		"orderId":  res.OrderID,
		"cartId":   res.CartID,
		"total":    res.Total,
		"billPath": res.BillPath,
	})
}
