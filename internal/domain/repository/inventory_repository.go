package repository

import "github.com/equitycoffee/equity-coffee-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para RoasterInventory.
type InventoryRepository interface {
	Create(item *entity.RoasterInventory) error
	GetByID(id string) (*entity.RoasterInventory, error)
	ListByRoaster(roasterID string) ([]*entity.RoasterInventory, error)
	Update(id string, u entity.InventoryUpdate) error
	Delete(id string) error
}
