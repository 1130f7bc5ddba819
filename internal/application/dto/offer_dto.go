package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOfferRequest body camelCase para POST /api/trader/offers.
type CreateOfferRequest struct {
	LotID      string           `json:"lotId" validate:"required,uuid"`
	PricePerKg *decimal.Decimal `json:"pricePerKg" validate:"required"`
	Currency   *string          `json:"currency"`
	Incoterm   *string          `json:"incoterm"`
	Message    *string          `json:"message"`
}

// OfferResponse fila de oferta (snake_case).
type OfferResponse struct {
	ID         string          `json:"id"`
	LotID      string          `json:"lot_id"`
	BuyerID    string          `json:"buyer_id"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
	Currency   string          `json:"currency"`
	Incoterm   *string         `json:"incoterm"`
	Message    *string         `json:"message"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// OfferEnvelope envoltura {offer: ...}.
type OfferEnvelope struct {
	Offer OfferResponse `json:"offer"`
}

// OfferListEnvelope envoltura {offers: [...]}.
type OfferListEnvelope struct {
	Offers []OfferResponse `json:"offers"`
}
