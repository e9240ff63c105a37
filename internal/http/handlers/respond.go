package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"petpos/internal/catalog"
	"petpos/internal/checkout"
)

// ensureSID pins the caller to a terminal session via the sid cookie.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}

// failErr maps an error from the lower layers onto the flat
// {success:false, message} shape the UI renders.
func failErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, checkout.ErrCartEmpty):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "cart is empty",
		})
	case errors.Is(err, checkout.ErrNoCustomer):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "please select a customer", "needCustomer": true,
		})
	case errors.Is(err, checkout.ErrProcessing):
		return fail(c, fiber.StatusConflict, "a checkout is already in progress")
	}
	var apiErr *catalog.APIError
	if errors.As(err, &apiErr) {
		return fail(c, fiber.StatusBadGateway, apiErr.Message)
	}
	// Transport-level failure: generic text, details stay in the log.
	return fail(c, fiber.StatusBadGateway, "cannot reach the shop server, please try again")
}
