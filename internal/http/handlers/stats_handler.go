package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"petpos/internal/catalog"
	"petpos/internal/stats"
)

type SummaryAPI interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	ListOrders(ctx context.Context) ([]catalog.Order, error)
}

type StatsHandler struct {
	Agg *stats.Aggregator
	API SummaryAPI
}

func (h *StatsHandler) Revenue(c *fiber.Ctx) error {
	mode, ok := stats.ParseMode(c.Query("mode", string(stats.ModeDaily)))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "mode must be daily, monthly or yearly")
	}

	buckets, err := h.Agg.Revenue(c.Context(), mode, time.Now())
	if err != nil {
		return failErr(c, err)
	}

	// Parallel label/value sequences, chronologically ascending.
	labels := make([]string, len(buckets))
	values := make([]int64, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
		values[i] = b.Revenue
	}
	return c.JSON(fiber.Map{"mode": mode, "labels": labels, "values": values})
}

// Summary feeds the home screen counters: total products and total orders.
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	products, err := h.API.ListProducts(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	orders, err := h.API.ListOrders(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(fiber.Map{
		"totalProducts": len(products),
		"totalOrders":   len(orders),
	})
}
