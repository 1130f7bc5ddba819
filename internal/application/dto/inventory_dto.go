package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest body para POST /api/roaster/inventory (snake_case).
type CreateInventoryRequest struct {
	ContractID  string           `json:"contract_id" validate:"required,uuid"`
	LotID       string           `json:"lot_id" validate:"required,uuid"`
	CurrentBags *int             `json:"current_bags" validate:"required"`
	BagSizeKg   *decimal.Decimal `json:"bag_size_kg"`
	Location    *string          `json:"location"`
	Notes       *string          `json:"notes"`
}

// UpdateInventoryRequest body parcial para PUT /api/roaster/inventory/:id.
type UpdateInventoryRequest struct {
	CurrentBags *int    `json:"current_bags"`
	Location    *string `json:"location"`
	Notes       *string `json:"notes"`
}

// InventoryItemResponse fila de inventario (snake_case).
type InventoryItemResponse struct {
	ID          string          `json:"id"`
	RoasterID   string          `json:"roaster_id"`
	ContractID  string          `json:"contract_id"`
	LotID       string          `json:"lot_id"`
	CurrentBags int             `json:"current_bags"`
	BagSizeKg   decimal.Decimal `json:"bag_size_kg"`
	Location    *string         `json:"location"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// InventoryEnvelope envoltura {inventory: ...} para un renglón.
type InventoryEnvelope struct {
	Message   string                `json:"message,omitempty"`
	Inventory InventoryItemResponse `json:"inventory"`
}

// InventoryListEnvelope envoltura {inventory: [...]} del listado.
type InventoryListEnvelope struct {
	Inventory []InventoryItemResponse `json:"inventory"`
}

// InventoryDeletedResponse ack del DELETE.
type InventoryDeletedResponse struct {
	Message   string `json:"message"`
	DeletedID string `json:"deletedId"`
}
