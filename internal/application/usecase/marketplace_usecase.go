package usecase

import (
	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

// MarketplaceUseCase listado público de lotes publicados.
type MarketplaceUseCase struct {
	lotRepo repository.LotRepository
}

// NewMarketplaceUseCase construye el caso de uso del marketplace.
func NewMarketplaceUseCase(lotRepo repository.LotRepository) *MarketplaceUseCase {
	return &MarketplaceUseCase{lotRepo: lotRepo}
}

// List devuelve los lotes publicados y públicos, con filtros opcionales de
// país, puntaje mínimo de taza y precio máximo.
func (uc *MarketplaceUseCase) List(f repository.MarketplaceFilter) (*dto.MarketplaceListEnvelope, error) {
	lots, err := uc.lotRepo.Marketplace(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarketplaceLotResponse, 0, len(lots))
	for _, lot := range lots {
		out = append(out, dto.MarketplaceLotResponse{
			LotResponse:     *toLotResponse(&lot.CoffeeLot),
			FarmerCompany:   lot.FarmerCompany,
			FarmerFirstName: lot.FarmerFirstName,
			FarmerLastName:  lot.FarmerLastName,
			FarmerCountry:   lot.FarmerCountry,
		})
	}
	return &dto.MarketplaceListEnvelope{Lots: out}, nil
}
