package services

import (
	"circular/internal/domain"
	"circular/internal/repos"
)

type MetricsService struct {
	Items *repos.ItemRepo
	Sales *repos.SaleRepo

	Customers *repos.CustomerRepo

	StaleAfterDays    int
	ReengageAfterDays int
}

func NewMetricsService(items *repos.ItemRepo, sales *repos.SaleRepo, customers *repos.CustomerRepo, staleDays, reengageDays int) *MetricsService {
	return &MetricsService{
		Items: items, Sales: sales, Customers: customers,
		StaleAfterDays: staleDays, ReengageAfterDays: reengageDays,
	}
}

// Compute derives the dashboard figures from sales and inventory.
// Division-by-zero cases are defined as 0, not errors.
func (s *MetricsService) Compute() (domain.Metrics, error) {
	revenue, saleCount, err := s.Sales.Totals()
	if err != nil {
		return domain.Metrics{}, err
	}
	total, sold, err := s.Items.CountByStatus()
	if err != nil {
		return domain.Metrics{}, err
	}

	m := domain.Metrics{GrossRevenue: revenue}
	if saleCount > 0 {
		m.AverageTicket = revenue / float64(saleCount)
	}
	if total > 0 {
		m.TurnoverRate = 100 * float64(sold) / float64(total)
	}
	return m, nil
}

// StaleStock lists available items sitting in inventory past the threshold.
func (s *MetricsService) StaleStock() ([]domain.Item, error) {
	return s.Items.StaleAvailable(s.StaleAfterDays)
}

// ReengagementCandidates lists customers with no sale in the trailing window.
func (s *MetricsService) ReengagementCandidates() ([]domain.Customer, error) {
	return s.Customers.WithoutSaleSince(s.ReengageAfterDays)
}
