package services

import (
	"database/sql"
	"errors"
	"time"

	"circular/internal/domain"
	"circular/internal/repos"

	"github.com/google/uuid"
)

type SaleService struct {
	Customers *repos.CustomerRepo
	Items     *repos.ItemRepo
	Sales     *repos.SaleRepo
}

func NewSaleService(customers *repos.CustomerRepo, items *repos.ItemRepo, sales *repos.SaleRepo) *SaleService {
	return &SaleService{Customers: customers, Items: items, Sales: sales}
}

// Record registers a sale and flips the item to sold as one transaction.
// A second call for the same item fails with ErrInvalidState; the status
// check and the flip happen atomically in the store, so concurrent callers
// cannot double-sell.
func (s *SaleService) Record(customerID, itemID string, finalPrice float64) (domain.Sale, error) {
	if finalPrice < 0 {
		return domain.Sale{}, Validationf("final price must not be negative")
	}
	if _, err := s.Customers.ByID(customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Sale{}, ErrNotFound
		}
		return domain.Sale{}, err
	}
	if _, err := s.Items.ByID(itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Sale{}, ErrNotFound
		}
		return domain.Sale{}, err
	}

	sale := domain.Sale{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		ItemID:     itemID,
		SoldAt:     time.Now().UTC().Format("2006-01-02 15:04:05"),
		FinalPrice: finalPrice,
	}
	if err := s.Sales.Record(sale); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return domain.Sale{}, ErrNotFound
		case errors.Is(err, repos.ErrItemUnavailable):
			return domain.Sale{}, ErrInvalidState
		default:
			return domain.Sale{}, err
		}
	}
	return sale, nil
}

func (s *SaleService) List() ([]repos.SaleRow, error) {
	return s.Sales.All()
}
