package repository

import "github.com/equitycoffee/equity-coffee-api/internal/domain/entity"

// OfferFilter filtros opcionales para listar ofertas.
type OfferFilter struct {
	LotID   string
	BuyerID string
	Status  string
}

// OfferRepository define el puerto de persistencia para Offer.
type OfferRepository interface {
	Create(offer *entity.Offer) error
	List(f OfferFilter) ([]*entity.Offer, error)
}
