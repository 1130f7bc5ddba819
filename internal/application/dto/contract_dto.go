package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest body para POST /api/roaster/contracts. Las rutas de
// roaster usan claves snake_case (contrato histórico con el frontend).
type CreateContractRequest struct {
	ContractNumber string           `json:"contract_number" validate:"required"`
	LotID          string           `json:"lot_id" validate:"required,uuid"`
	FarmerID       string           `json:"farmer_id" validate:"required,uuid"`
	QuantityBags   *int             `json:"quantity_bags" validate:"required"`
	BagSizeKg      *decimal.Decimal `json:"bag_size_kg"`
	PricePerKg     *decimal.Decimal `json:"price_per_kg" validate:"required"`
	Currency       *string          `json:"currency"`
	Notes          *string          `json:"notes"`
}

// UpdateContractRequest body parcial para PUT /api/roaster/contracts/:id.
type UpdateContractRequest struct {
	Status       *string          `json:"status"`
	Notes        *string          `json:"notes"`
	QuantityBags *int             `json:"quantity_bags"`
	PricePerKg   *decimal.Decimal `json:"price_per_kg"`
}

// ContractResponse fila de contrato (snake_case). TotalValue viene calculado
// del momento de la escritura.
type ContractResponse struct {
	ID             string          `json:"id"`
	ContractNumber string          `json:"contract_number"`
	LotID          string          `json:"lot_id"`
	FarmerID       string          `json:"farmer_id"`
	BuyerID        string          `json:"buyer_id"`
	QuantityBags   int             `json:"quantity_bags"`
	BagSizeKg      decimal.Decimal `json:"bag_size_kg"`
	PricePerKg     decimal.Decimal `json:"price_per_kg"`
	Currency       string          `json:"currency"`
	TotalValue     decimal.Decimal `json:"total_value"`
	Status         string          `json:"status"`
	ContractDate   time.Time       `json:"contract_date"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ContractEnvelope envoltura {contract: ...}.
type ContractEnvelope struct {
	Message  string           `json:"message,omitempty"`
	Contract ContractResponse `json:"contract"`
}

// ContractListEnvelope envoltura {contracts: [...]}.
type ContractListEnvelope struct {
	Contracts []ContractResponse `json:"contracts"`
}
