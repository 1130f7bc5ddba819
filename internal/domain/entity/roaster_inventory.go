package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoasterInventory es el stock de sacos que un tostador mantiene por
// contrato y lote.
type RoasterInventory struct {
	ID          string
	RoasterID   string
	ContractID  string
	LotID       string
	CurrentBags int
	BagSizeKg   decimal.Decimal
	Location    *string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InventoryUpdate cambios admitidos en el UPDATE parcial de inventario.
type InventoryUpdate struct {
	CurrentBags *int
	Location    *string
	Notes       *string
}

// Empty indica que no hay ningún campo reconocido que escribir.
func (u InventoryUpdate) Empty() bool {
	return u.CurrentBags == nil && u.Location == nil && u.Notes == nil
}
