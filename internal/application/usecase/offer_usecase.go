package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/domain"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

// OfferUseCase casos de uso de ofertas de compra.
type OfferUseCase struct {
	offerRepo repository.OfferRepository
	lotRepo   repository.LotRepository
}

// NewOfferUseCase construye el caso de uso de ofertas.
func NewOfferUseCase(offerRepo repository.OfferRepository, lotRepo repository.LotRepository) *OfferUseCase {
	return &OfferUseCase{offerRepo: offerRepo, lotRepo: lotRepo}
}

// Create registra una oferta pending sobre un lote existente. El lote debe
// existir pero no se exige que esté publicado: una oferta sobre un lote
// oculto es decisión comercial del comprador.
func (uc *OfferUseCase) Create(buyerID string, in dto.CreateOfferRequest) (*dto.OfferEnvelope, error) {
	lot, err := uc.lotRepo.GetByID(in.LotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	offer := &entity.Offer{
		ID:         uuid.New().String(),
		LotID:      in.LotID,
		BuyerID:    buyerID,
		PricePerKg: *in.PricePerKg,
		Currency:   defaultCurrency,
		Incoterm:   in.Incoterm,
		Message:    in.Message,
		Status:     entity.OfferStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.Currency != nil && *in.Currency != "" {
		offer.Currency = *in.Currency
	}

	if err := uc.offerRepo.Create(offer); err != nil {
		return nil, err
	}
	return &dto.OfferEnvelope{Offer: *toOfferResponse(offer)}, nil
}

// List devuelve ofertas filtradas por lote, comprador y/o estado.
func (uc *OfferUseCase) List(f repository.OfferFilter) (*dto.OfferListEnvelope, error) {
	offers, err := uc.offerRepo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OfferResponse, 0, len(offers))
	for _, offer := range offers {
		out = append(out, *toOfferResponse(offer))
	}
	return &dto.OfferListEnvelope{Offers: out}, nil
}

func toOfferResponse(o *entity.Offer) *dto.OfferResponse {
	return &dto.OfferResponse{
		ID:         o.ID,
		LotID:      o.LotID,
		BuyerID:    o.BuyerID,
		PricePerKg: o.PricePerKg,
		Currency:   o.Currency,
		Incoterm:   o.Incoterm,
		Message:    o.Message,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
