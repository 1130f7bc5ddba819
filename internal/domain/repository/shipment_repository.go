package repository

import "github.com/equitycoffee/equity-coffee-api/internal/domain/entity"

// ShipmentFilter filtros opcionales para listar embarques.
type ShipmentFilter struct {
	ContractID string
	Status     string
}

// ShipmentRepository define el puerto de persistencia para Shipment.
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	List(f ShipmentFilter) ([]*entity.Shipment, error)
}
