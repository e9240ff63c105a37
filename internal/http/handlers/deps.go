package handlers

import (
	"petpos/internal/billing"
	"petpos/internal/catalog"
	"petpos/internal/checkout"
	"petpos/internal/config"
	"petpos/internal/sell"
	"petpos/internal/stats"
	"petpos/internal/store"
)

type Deps struct {
	AuthHandler      *AuthHandler
	SellHandler      *SellHandler
	SmartHandler     *SmartOrderHandler
	StatsHandler     *StatsHandler
	CatalogHandler   *CatalogHandler
	OrdersHandler    *OrdersHandler
	InventoryHandler *InventoryHandler
}

func NewDeps(client *catalog.Client, st *store.Store, reg *sell.Registry, cfg config.Config) *Deps {
	bills := billing.New(cfg.BillDir)
	orch := &checkout.Orchestrator{API: client, Bills: bills, Store: st}
	agg := &stats.Aggregator{Orders: client, Carts: client, Cache: st}

	return &Deps{
		AuthHandler:      &AuthHandler{API: client, Tokens: st},
		SellHandler:      &SellHandler{Reg: reg, Search: &sell.Searcher{Source: client}, Customers: client, Orch: orch},
		SmartHandler:     &SmartOrderHandler{Reg: reg, API: client},
		StatsHandler:     &StatsHandler{Agg: agg, API: client},
		CatalogHandler:   &CatalogHandler{API: client},
		OrdersHandler:    &OrdersHandler{API: client, Store: st},
		InventoryHandler: &InventoryHandler{API: client},
	}
}
