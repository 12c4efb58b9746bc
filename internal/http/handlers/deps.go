package handlers

import (
	"circular/internal/config"
	"circular/internal/repos"
	"circular/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CustomerHandler *CustomerHandler
	ItemHandler     *ItemHandler
	SaleHandler     *SaleHandler
	MatchHandler    *MatchHandler
	MetricsHandler  *MetricsHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	custRepo := repos.NewCustomerRepo(db)
	itemRepo := repos.NewItemRepo(db)
	saleRepo := repos.NewSaleRepo(db)

	custSvc := services.NewCustomerService(custRepo)
	invSvc := services.NewInventoryService(itemRepo)
	saleSvc := services.NewSaleService(custRepo, itemRepo, saleRepo)
	matchSvc := services.NewMatchService(custRepo, itemRepo, cfg.MatchMaxResults)
	metricsSvc := services.NewMetricsService(itemRepo, saleRepo, custRepo, cfg.StaleAfterDays, cfg.ReengageAfterDays)

	return &Deps{
		CustomerHandler: &CustomerHandler{Customers: custSvc},
		ItemHandler:     &ItemHandler{Inv: invSvc},
		SaleHandler:     &SaleHandler{Sales: saleSvc},
		MatchHandler:    &MatchHandler{Match: matchSvc},
		MetricsHandler:  &MetricsHandler{Metrics: metricsSvc},
	}
}
