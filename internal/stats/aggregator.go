// Package stats derives the home-screen revenue buckets from the order list
// and per-order cart totals.
package stats

import (
	"context"
	"fmt"
	"time"

	"petpos/internal/catalog"
	applog "petpos/internal/log"
)

type Mode string

const (
	ModeDaily   Mode = "daily"
	ModeMonthly Mode = "monthly"
	ModeYearly  Mode = "yearly"
)

func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeDaily, ModeMonthly, ModeYearly:
		return Mode(s), true
	}
	return "", false
}

// orderTimeLayout is the server's order timestamp form, e.g. "16:14 15/05/2025".
const orderTimeLayout = "15:04 02/01/2006"

const bucketCount = 5

type OrderSource interface {
	ListOrders(ctx context.Context) ([]catalog.Order, error)
}

type CartSource interface {
	GetCart(ctx context.Context, id string) (*catalog.Cart, error)
}

// OrderCache keeps the last good order snapshot so the charts survive a
// flaky listing call.
type OrderCache interface {
	CacheOrders(orders []catalog.Order) error
	CachedOrders() ([]catalog.Order, error)
}

type Aggregator struct {
	Orders OrderSource
	Carts  CartSource
	Cache  OrderCache // optional
}

type Bucket struct {
	Label   string `json:"label"`
	Revenue int64  `json:"revenue"`
}

// Revenue returns the last five buckets for the mode, chronologically
// ascending and ending at now. Orders with timestamps that do not parse are
// logged and excluded; a failed cart fetch contributes zero.
func (a *Aggregator) Revenue(ctx context.Context, mode Mode, now time.Time) ([]Bucket, error) {
	orders, err := a.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make([]Bucket, bucketCount)
	keyed := make(map[string]int, bucketCount)
	for i := 0; i < bucketCount; i++ {
		label, key := bucketAt(mode, now, i)
		buckets[i] = Bucket{Label: label}
		keyed[key] = i
	}

	for _, o := range orders {
		ts, err := time.Parse(orderTimeLayout, o.CreatedAt)
		if err != nil {
			applog.Warn(nil, "stats.bad_timestamp", map[string]any{"order": o.ID, "createdAt": o.CreatedAt})
			continue
		}
		i, ok := keyed[keyFor(mode, ts)]
		if !ok {
			continue
		}
		if o.CartID == "" {
			continue
		}
		cart, err := a.Carts.GetCart(ctx, o.CartID)
		if err != nil {
			applog.Warn(nil, "stats.cart_fetch", map[string]any{"cart": o.CartID, "err": err.Error()})
			continue
		}
		buckets[i].Revenue += cart.TotalAmount
	}
	return buckets, nil
}

func (a *Aggregator) loadOrders(ctx context.Context) ([]catalog.Order, error) {
	orders, err := a.Orders.ListOrders(ctx)
	if err != nil {
		if a.Cache == nil {
			return nil, err
		}
		cached, cerr := a.Cache.CachedOrders()
		if cerr != nil || len(cached) == 0 {
			return nil, err
		}
		applog.Warn(nil, "stats.using_cached_orders", map[string]any{"err": err.Error(), "n": len(cached)})
		return cached, nil
	}
	if a.Cache != nil {
		if cerr := a.Cache.CacheOrders(orders); cerr != nil {
			applog.Warn(nil, "stats.cache_orders", map[string]any{"err": cerr.Error()})
		}
	}
	return orders, nil
}

// bucketAt computes the label and grouping key of bucket i (0 = oldest);
// month arithmetic avoids time.AddDate normalization surprises at month ends.
func bucketAt(mode Mode, now time.Time, i int) (label, key string) {
	back := bucketCount - 1 - i
	switch mode {
	case ModeMonthly:
		y, m := now.Year(), int(now.Month())-back
		for m <= 0 {
			m += 12
			y--
		}
		return fmt.Sprintf("%02d/%04d", m, y), fmt.Sprintf("%04d-%02d", y, m)
	case ModeYearly:
		y := now.Year() - back
		return fmt.Sprintf("%04d", y), fmt.Sprintf("%04d", y)
	default:
		d := now.AddDate(0, 0, -back)
		return d.Format("02/01"), d.Format("2006-01-02")
	}
}

func keyFor(mode Mode, ts time.Time) string {
	switch mode {
	case ModeMonthly:
		return fmt.Sprintf("%04d-%02d", ts.Year(), int(ts.Month()))
	case ModeYearly:
		return fmt.Sprintf("%04d", ts.Year())
	default:
		return ts.Format("2006-01-02")
	}
}
