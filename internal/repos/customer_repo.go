package repos

import (
	"circular/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) Insert(c domain.Customer) error {
	_, err := r.db.Exec(`
	  INSERT INTO customers(id,name,whatsapp,gender_interest,clothing_size,shoe_size,favorite_categories,created_at)
	  VALUES(?,?,?,?,?,?,?,CURRENT_TIMESTAMP)
	`, c.ID, c.Name, c.WhatsApp, c.GenderInterest, c.ClothingSize, c.ShoeSize, c.FavCategories)
	return err
}

func (r *CustomerRepo) ByID(id string) (domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `
	  SELECT id,name,whatsapp,gender_interest,clothing_size,shoe_size,favorite_categories,
	         COALESCE(created_at,'') AS created_at
	  FROM customers WHERE id = ?
	`, id)
	return c, err
}

func (r *CustomerRepo) All() ([]domain.Customer, error) {
	var out []domain.Customer
	err := r.db.Select(&out, `
	  SELECT id,name,whatsapp,gender_interest,clothing_size,shoe_size,favorite_categories,
	         COALESCE(created_at,'') AS created_at
	  FROM customers
	  ORDER BY name
	`)
	return out, err
}

// WithoutSaleSince returns customers with no sale on or after the cutoff
// ("re-engagement candidates").
func (r *CustomerRepo) WithoutSaleSince(cutoffDays int) ([]domain.Customer, error) {
	var out []domain.Customer
	err := r.db.Select(&out, `
	  SELECT c.id,c.name,c.whatsapp,c.gender_interest,c.clothing_size,c.shoe_size,c.favorite_categories,
	         COALESCE(c.created_at,'') AS created_at
	  FROM customers c
	  WHERE c.id NOT IN (
	    SELECT DISTINCT customer_id FROM sales
	    WHERE date(sold_at) >= date('now', ?)
	  )
	  ORDER BY c.name
	`, dayOffset(cutoffDays))
	return out, err
}
