package repos

import (
	"fmt"

	"circular/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

const itemCols = `id,name,size,category,gender,price,intake_at,status`

func (r *ItemRepo) Insert(it domain.Item) error {
	_, err := r.db.Exec(`
	  INSERT INTO items(id,name,size,category,gender,price,intake_at,status)
	  VALUES(?,?,?,?,?,?,?,?)
	`, it.ID, it.Name, it.Size, it.Category, it.Gender, it.Price, it.IntakeAt, it.Status)
	return err
}

func (r *ItemRepo) ByID(id string) (domain.Item, error) {
	var it domain.Item
	err := r.db.Get(&it, `SELECT `+itemCols+` FROM items WHERE id = ?`, id)
	return it, err
}

func (r *ItemRepo) All() ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.Select(&out, `SELECT `+itemCols+` FROM items ORDER BY intake_at ASC`)
	return out, err
}

func (r *ItemRepo) Available() ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.Select(&out, `
	  SELECT `+itemCols+` FROM items WHERE status = ? ORDER BY intake_at ASC
	`, domain.StatusAvailable)
	return out, err
}

// MatchAvailable returns available items the size/gender rule admits for a
// customer, oldest intake first. limit <= 0 means unbounded.
func (r *ItemRepo) MatchAvailable(size, interest string, limit int) ([]domain.Item, error) {
	q := `
	  SELECT ` + itemCols + ` FROM items
	  WHERE status = ? AND size = ?
	    AND (gender = ? OR ? = ? OR gender = ?)
	  ORDER BY intake_at ASC`
	args := []any{domain.StatusAvailable, size, interest, interest, domain.InterestEither, domain.GenderUnisex}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	var out []domain.Item
	err := r.db.Select(&out, q, args...)
	return out, err
}

// StaleAvailable returns available items whose intake is older than the
// given number of days, oldest first.
func (r *ItemRepo) StaleAvailable(olderThanDays int) ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.Select(&out, `
	  SELECT `+itemCols+` FROM items
	  WHERE status = ? AND date(intake_at) < date('now', ?)
	  ORDER BY intake_at ASC
	`, domain.StatusAvailable, dayOffset(olderThanDays))
	return out, err
}

func (r *ItemRepo) CountByStatus() (total, sold int, err error) {
	if err = r.db.Get(&total, `SELECT COUNT(*) FROM items`); err != nil {
		return 0, 0, err
	}
	if err = r.db.Get(&sold, `SELECT COUNT(*) FROM items WHERE status = ?`, domain.StatusSold); err != nil {
		return 0, 0, err
	}
	return total, sold, nil
}

// dayOffset renders a sqlite date() modifier like "-15 days".
func dayOffset(days int) string { return fmt.Sprintf("-%d days", days) }
