package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"petpos/internal/catalog"
	"petpos/internal/config"
	"petpos/internal/http/handlers"
	applog "petpos/internal/log"
	"petpos/internal/sell"
	"petpos/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	st, err := store.Open(cfg.DBDSN, cfg.TokenKey)
	if err != nil {
		log.Fatal(err)
	}

	client := catalog.NewClient(cfg.APIBaseURL, st)
	reg := sell.NewRegistry()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false, "message": "something went wrong, please try again",
			})
		},
	})
	// Global body size guard; covers catalog image uploads
	app.Server().MaxRequestBodySize = 8 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/healthz")
		},
	}))

	deps := handlers.NewDeps(client, st, reg, cfg)

	// Auth (login throttled)
	app.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false, "message": "too many attempts, please try again later",
			})
		},
	}), deps.AuthHandler.Login)
	app.Post("/auth/register", deps.AuthHandler.Register)
	app.Post("/auth/register/verify", deps.AuthHandler.RegisterVerify)
	app.Get("/auth/session", deps.AuthHandler.Session)
	app.Post("/auth/logout", deps.AuthHandler.Logout)

	// Sell screen
	sellGrp := app.Group("/sell")
	sellGrp.Get("/cart", deps.SellHandler.ViewCart)
	sellGrp.Post("/cart/items", deps.SellHandler.AddItem)
	sellGrp.Patch("/cart/items/:id", deps.SellHandler.UpdateQuantity)
	sellGrp.Delete("/cart/items/:kind/:id", deps.SellHandler.RemoveItem)
	sellGrp.Delete("/cart", deps.SellHandler.ClearCart)
	sellGrp.Get("/search", deps.SellHandler.SearchItems)
	sellGrp.Get("/customers", deps.SellHandler.ListCustomers)
	sellGrp.Post("/customer", deps.SellHandler.SelectCustomer)
	sellGrp.Post("/checkout", deps.SellHandler.Checkout)

	app.Post("/smart-order", deps.SmartHandler.Create)

	// Statistics
	app.Get("/stats/revenue", deps.StatsHandler.Revenue)
	app.Get("/stats/summary", deps.StatsHandler.Summary)

	// Catalog management
	app.Get("/products", deps.CatalogHandler.ListProducts)
	app.Get("/products/:id", deps.CatalogHandler.GetProduct)
	app.Post("/products", deps.CatalogHandler.CreateProduct)
	app.Patch("/products/:id", deps.CatalogHandler.UpdateProduct)
	app.Delete("/products/:id", deps.CatalogHandler.DeleteProduct)

	app.Get("/services", deps.CatalogHandler.ListServices)
	app.Get("/services/:id", deps.CatalogHandler.GetService)
	app.Post("/services", deps.CatalogHandler.CreateService)
	app.Patch("/services/:id", deps.CatalogHandler.UpdateService)
	app.Delete("/services/:id", deps.CatalogHandler.DeleteService)

	app.Get("/pets", deps.CatalogHandler.ListPets)
	app.Get("/pets/:id", deps.CatalogHandler.GetPet)
	app.Post("/pets", deps.CatalogHandler.CreatePet)
	app.Patch("/pets/:id", deps.CatalogHandler.UpdatePet)
	app.Delete("/pets/:id", deps.CatalogHandler.DeletePet)

	app.Get("/customers", deps.CatalogHandler.ListCustomers)
	app.Get("/customers/:id", deps.CatalogHandler.GetCustomer)
	app.Post("/customers", deps.CatalogHandler.CreateCustomer)
	app.Patch("/customers/:id", deps.CatalogHandler.UpdateCustomer)
	app.Delete("/customers/:id", deps.CatalogHandler.DeleteCustomer)

	// Order history
	app.Get("/orders", deps.OrdersHandler.List)
	app.Get("/orders/:id", deps.OrdersHandler.Get)
	app.Patch("/orders/:id/status", deps.OrdersHandler.UpdateStatus)
	app.Get("/carts", deps.OrdersHandler.ListCarts)
	app.Get("/carts/:id", deps.OrdersHandler.GetCart)
	app.Get("/bills", deps.OrdersHandler.Bills)

	// Inventory
	inv := app.Group("/inventory")
	inv.Get("/transactions", deps.InventoryHandler.ListTransactions)
	inv.Get("/transactions/:itemType/:id", deps.InventoryHandler.ItemTransactions)
	inv.Post("/import", deps.InventoryHandler.Import)
	inv.Post("/export", deps.InventoryHandler.Export)
	inv.Patch("/adjust", deps.InventoryHandler.Adjust)
	inv.Get("/alerts", deps.InventoryHandler.Alerts)
	inv.Get("/stats", deps.InventoryHandler.Stats)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"success": false, "message": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
