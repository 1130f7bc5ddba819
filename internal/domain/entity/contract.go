package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado inicial de un contrato. El ciclo de vida posterior es texto libre
// dirigido por el caller.
const ContractStatusPending = "pending"

// Contract es la transacción acordada entre comprador y caficultor por un lote.
// TotalValue se calcula en el momento de la escritura a partir del payload
// (quantity_bags × bag_size_kg × price_per_kg), no se re-deriva en lecturas.
type Contract struct {
	ID             string
	ContractNumber string
	LotID          string
	FarmerID       string
	BuyerID        string
	QuantityBags   int
	BagSizeKg      decimal.Decimal
	PricePerKg     decimal.Decimal
	Currency       string
	TotalValue     decimal.Decimal
	Status         string
	ContractDate   time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContractUpdate cambios admitidos en el UPDATE parcial de un contrato.
type ContractUpdate struct {
	Status       *string
	Notes        *string
	QuantityBags *int
	PricePerKg   *decimal.Decimal
}

// Empty indica que no hay ningún campo reconocido que escribir.
func (u ContractUpdate) Empty() bool {
	return u.Status == nil && u.Notes == nil && u.QuantityBags == nil && u.PricePerKg == nil
}
