package store

type Bill struct {
	ID         string `db:"id"`
	CustomerID string `db:"customer_id"`
	OrderID    string `db:"order_id"`
	Path       string `db:"path"`
	Total      int64  `db:"total"`
	CreatedAt  string `db:"created_at"`
}

func (s *Store) RecordBill(b Bill) error {
	_, err := s.db.Exec(`
		INSERT INTO bills(id, customer_id, order_id, path, total)
		VALUES(?,?,?,?,?)
	`, b.ID, b.CustomerID, b.OrderID, b.Path, b.Total)
	return err
}

func (s *Store) ListBills(limit int) ([]Bill, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []Bill
	err := s.db.Select(&out, `
		SELECT id, customer_id, order_id, path, total, created_at
		FROM bills ORDER BY created_at DESC LIMIT ?
	`, limit)
	return out, err
}
