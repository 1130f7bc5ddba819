package dto

import "time"

// CreateShipmentRequest body camelCase para POST /api/logistics/shipments.
// ETD/ETA llegan como fecha ISO o vacío.
type CreateShipmentRequest struct {
	ContractID      string     `json:"contractId" validate:"required,uuid"`
	Reference       string     `json:"reference" validate:"required"`
	OriginPort      *string    `json:"originPort"`
	DestinationPort *string    `json:"destinationPort"`
	ContainerNumber *string    `json:"containerNumber"`
	VesselName      *string    `json:"vesselName"`
	Carrier         *string    `json:"carrier"`
	ETD             *time.Time `json:"etd"`
	ETA             *time.Time `json:"eta"`
	Status          *string    `json:"status"`
	TrackingURL     *string    `json:"trackingUrl"`
	Notes           *string    `json:"notes"`
}

// ShipmentResponse fila de embarque (snake_case).
type ShipmentResponse struct {
	ID              string     `json:"id"`
	ContractID      string     `json:"contract_id"`
	Reference       string     `json:"reference"`
	OriginPort      *string    `json:"origin_port"`
	DestinationPort *string    `json:"destination_port"`
	ContainerNumber *string    `json:"container_number"`
	VesselName      *string    `json:"vessel_name"`
	Carrier         *string    `json:"carrier"`
	ETD             *time.Time `json:"etd"`
	ETA             *time.Time `json:"eta"`
	Status          string     `json:"status"`
	TrackingURL     *string    `json:"tracking_url"`
	Notes           *string    `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ShipmentEnvelope envoltura {shipment: ...}.
type ShipmentEnvelope struct {
	Shipment ShipmentResponse `json:"shipment"`
}

// ShipmentListEnvelope envoltura {shipments: [...]}.
type ShipmentListEnvelope struct {
	Shipments []ShipmentResponse `json:"shipments"`
}
