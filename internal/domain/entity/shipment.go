package entity

import "time"

// Estado inicial de un embarque.
const ShipmentStatusBooked = "booked"

// Shipment es el registro logístico del movimiento físico de un contrato.
type Shipment struct {
	ID              string
	ContractID      string
	Reference       string
	OriginPort      *string
	DestinationPort *string
	ContainerNumber *string
	VesselName      *string
	Carrier         *string
	ETD             *time.Time
	ETA             *time.Time
	Status          string
	TrackingURL     *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
