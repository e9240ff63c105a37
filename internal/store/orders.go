package store

import (
	"petpos/internal/catalog"
)

type orderRow struct {
	ID         string `db:"id"`
	CustomerID string `db:"customer_id"`
	CartID     string `db:"cart_id"`
	Status     string `db:"status"`
	CreatedAt  string `db:"created_at"`
}

// CacheOrders upserts a snapshot of the remote order list. The statistics
// aggregator reads from this cache so a flaky listing call does not blank
// out the charts.
func (s *Store) CacheOrders(orders []catalog.Order) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, o := range orders {
		if _, err := tx.Exec(`
			INSERT INTO order_cache(id, customer_id, cart_id, status, created_at)
			VALUES(?,?,?,?,?)
			ON CONFLICT(id) DO UPDATE SET
			  customer_id = excluded.customer_id,
			  cart_id     = excluded.cart_id,
			  status      = excluded.status,
			  created_at  = excluded.created_at
		`, o.ID, o.CustomerID, o.CartID, o.Status, o.CreatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// CachedOrders returns the cached order snapshots in insertion order.
func (s *Store) CachedOrders() ([]catalog.Order, error) {
	var rows []orderRow
	if err := s.db.Select(&rows, `SELECT id, customer_id, cart_id, status, created_at FROM order_cache ORDER BY rowid`); err != nil {
		return nil, err
	}
	out := make([]catalog.Order, 0, len(rows))
	for _, r := range rows {
		out = append(out, catalog.Order{
			ID:         r.ID,
			CustomerID: r.CustomerID,
			CartID:     r.CartID,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out, nil
}
