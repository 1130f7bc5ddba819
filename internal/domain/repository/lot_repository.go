package repository

import (
	"github.com/shopspring/decimal"

	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
)

// LotFilter filtros opcionales para listar lotes. Cada campo no vacío se
// agrega como cláusula AND con parámetro posicional propio.
type LotFilter struct {
	FarmerID string
	Status   string
}

// MarketplaceFilter filtros del listado público. Solo alcanza lotes con
// status=published y visibility=public; los filtros se aplican encima.
type MarketplaceFilter struct {
	Country  string
	MinScore *decimal.Decimal // cup_score >= MinScore
	MaxPrice *decimal.Decimal // price_per_kg IS NULL OR price_per_kg <= MaxPrice
}

// LotRepository define el puerto de persistencia para CoffeeLot.
type LotRepository interface {
	Create(lot *entity.CoffeeLot) error
	GetByID(id string) (*entity.CoffeeLot, error)
	List(f LotFilter) ([]*entity.CoffeeLot, error)
	Update(id string, u entity.LotUpdate) error
	Delete(id string) error
	Marketplace(f MarketplaceFilter) ([]*entity.MarketplaceLot, error)
}
