package services

import (
	"strings"
	"time"

	"circular/internal/domain"
	"circular/internal/repos"

	"github.com/google/uuid"
)

type InventoryService struct {
	Items *repos.ItemRepo
}

func NewInventoryService(items *repos.ItemRepo) *InventoryService {
	return &InventoryService{Items: items}
}

// Intake registers a new inventory item as available.
func (s *InventoryService) Intake(name, size, category, gender string, price float64) (domain.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Item{}, Validationf("item name is required")
	}
	if !domain.ValidSize(size) {
		return domain.Item{}, Validationf("unknown size")
	}
	if strings.TrimSpace(category) == "" {
		return domain.Item{}, Validationf("category is required")
	}
	if !domain.ValidItemGender(gender) {
		return domain.Item{}, Validationf("unknown gender")
	}
	if price < 0 {
		return domain.Item{}, Validationf("price must not be negative")
	}

	it := domain.Item{
		ID:       uuid.NewString(),
		Name:     name,
		Size:     size,
		Category: strings.TrimSpace(category),
		Gender:   gender,
		Price:    price,
		IntakeAt: time.Now().UTC().Format("2006-01-02 15:04:05"),
		Status:   domain.StatusAvailable,
	}
	if err := s.Items.Insert(it); err != nil {
		return domain.Item{}, err
	}
	return it, nil
}

func (s *InventoryService) List() ([]domain.Item, error) { return s.Items.All() }

func (s *InventoryService) ListAvailable() ([]domain.Item, error) { return s.Items.Available() }
