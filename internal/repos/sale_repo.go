package repos

import (
	"errors"

	"circular/internal/domain"

	"github.com/jmoiron/sqlx"
)

// ErrItemUnavailable signals a sale attempt on an item that is not
// currently available.
var ErrItemUnavailable = errors.New("item is not available")

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// SaleRow is a sale joined with customer and item names, for listings.
type SaleRow struct {
	ID           string  `db:"id" json:"id"`
	CustomerID   string  `db:"customer_id" json:"customer_id"`
	CustomerName string  `db:"customer_name" json:"customer_name"`
	ItemID       string  `db:"item_id" json:"item_id"`
	ItemName     string  `db:"item_name" json:"item_name"`
	SoldAt       string  `db:"sold_at" json:"sold_at"`
	FinalPrice   float64 `db:"final_price" json:"final_price"`
}

// Record writes the sale and flips the item to sold in one transaction.
// The status flip is a check-and-set: it only lands if the item is still
// available, so a concurrent second sale of the same item fails here
// instead of double-selling.
func (r *SaleRepo) Record(s domain.Sale) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  UPDATE items SET status = ? WHERE id = ? AND status = ?
	`, domain.StatusSold, s.ItemID, domain.StatusAvailable)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var status string
		if err := tx.Get(&status, `SELECT status FROM items WHERE id = ?`, s.ItemID); err != nil {
			return err // sql.ErrNoRows when the item does not exist
		}
		return ErrItemUnavailable
	}

	if _, err := tx.Exec(`
	  INSERT INTO sales(id,customer_id,item_id,sold_at,final_price)
	  VALUES(?,?,?,?,?)
	`, s.ID, s.CustomerID, s.ItemID, s.SoldAt, s.FinalPrice); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *SaleRepo) All() ([]SaleRow, error) {
	var out []SaleRow
	err := r.db.Select(&out, `
	  SELECT s.id, s.customer_id, c.name AS customer_name,
	         s.item_id, i.name AS item_name, s.sold_at, s.final_price
	  FROM sales s
	  JOIN customers c ON c.id = s.customer_id
	  JOIN items i     ON i.id = s.item_id
	  ORDER BY datetime(s.sold_at) DESC
	`)
	return out, err
}

func (r *SaleRepo) CountForItem(itemID string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM sales WHERE item_id = ?`, itemID)
	return n, err
}

func (r *SaleRepo) Totals() (revenue float64, count int, err error) {
	if err = r.db.Get(&revenue, `SELECT COALESCE(SUM(final_price),0) FROM sales`); err != nil {
		return 0, 0, err
	}
	if err = r.db.Get(&count, `SELECT COUNT(*) FROM sales`); err != nil {
		return 0, 0, err
	}
	return revenue, count, nil
}
