package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado inicial de una oferta.
const OfferStatusPending = "pending"

// Offer es la propuesta de precio de un comprador sobre un lote.
type Offer struct {
	ID         string
	LotID      string
	BuyerID    string
	PricePerKg decimal.Decimal
	Currency   string
	Incoterm   *string
	Message    *string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
