package services

import (
	"database/sql"
	"errors"
	"strings"

	"circular/internal/domain"
	"circular/internal/repos"

	"github.com/google/uuid"
)

type CustomerService struct {
	Customers *repos.CustomerRepo
}

func NewCustomerService(customers *repos.CustomerRepo) *CustomerService {
	return &CustomerService{Customers: customers}
}

// Register creates a customer record. Callers validate field formats; the
// service re-checks the business rules before any write lands.
func (s *CustomerService) Register(name, whatsapp, interest, clothingSize, shoeSize, favCategories string) (domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Customer{}, Validationf("name is required")
	}
	if whatsapp == "" {
		return domain.Customer{}, Validationf("whatsapp is required")
	}
	if !domain.ValidInterest(interest) {
		return domain.Customer{}, Validationf("unknown gender interest")
	}
	if !domain.ValidSize(clothingSize) {
		return domain.Customer{}, Validationf("unknown clothing size")
	}

	c := domain.Customer{
		ID:             uuid.NewString(),
		Name:           name,
		WhatsApp:       whatsapp,
		GenderInterest: interest,
		ClothingSize:   clothingSize,
		ShoeSize:       strings.TrimSpace(shoeSize),
		FavCategories:  strings.TrimSpace(favCategories),
	}
	if err := s.Customers.Insert(c); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

func (s *CustomerService) List() ([]domain.Customer, error) {
	return s.Customers.All()
}

func (s *CustomerService) Get(id string) (domain.Customer, error) {
	c, err := s.Customers.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, ErrNotFound
	}
	return c, err
}
