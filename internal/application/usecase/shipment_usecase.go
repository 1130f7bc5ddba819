package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/domain"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

// ShipmentUseCase casos de uso de embarques logísticos.
type ShipmentUseCase struct {
	shipmentRepo repository.ShipmentRepository
	contractRepo repository.ContractRepository
}

// NewShipmentUseCase construye el caso de uso de embarques.
func NewShipmentUseCase(shipmentRepo repository.ShipmentRepository, contractRepo repository.ContractRepository) *ShipmentUseCase {
	return &ShipmentUseCase{shipmentRepo: shipmentRepo, contractRepo: contractRepo}
}

// Create registra un embarque sobre un contrato existente. El estado llega
// del caller o arranca en booked.
func (uc *ShipmentUseCase) Create(in dto.CreateShipmentRequest) (*dto.ShipmentEnvelope, error) {
	contract, err := uc.contractRepo.GetByID(in.ContractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	shipment := &entity.Shipment{
		ID:              uuid.New().String(),
		ContractID:      in.ContractID,
		Reference:       in.Reference,
		OriginPort:      in.OriginPort,
		DestinationPort: in.DestinationPort,
		ContainerNumber: in.ContainerNumber,
		VesselName:      in.VesselName,
		Carrier:         in.Carrier,
		ETD:             in.ETD,
		ETA:             in.ETA,
		Status:          entity.ShipmentStatusBooked,
		TrackingURL:     in.TrackingURL,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.Status != nil && *in.Status != "" {
		shipment.Status = *in.Status
	}

	if err := uc.shipmentRepo.Create(shipment); err != nil {
		return nil, err
	}
	return &dto.ShipmentEnvelope{Shipment: *toShipmentResponse(shipment)}, nil
}

// List devuelve embarques filtrados por contrato y/o estado.
func (uc *ShipmentUseCase) List(f repository.ShipmentFilter) (*dto.ShipmentListEnvelope, error) {
	shipments, err := uc.shipmentRepo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, *toShipmentResponse(s))
	}
	return &dto.ShipmentListEnvelope{Shipments: out}, nil
}

func toShipmentResponse(s *entity.Shipment) *dto.ShipmentResponse {
	return &dto.ShipmentResponse{
		ID:              s.ID,
		ContractID:      s.ContractID,
		Reference:       s.Reference,
		OriginPort:      s.OriginPort,
		DestinationPort: s.DestinationPort,
		ContainerNumber: s.ContainerNumber,
		VesselName:      s.VesselName,
		Carrier:         s.Carrier,
		ETD:             s.ETD,
		ETA:             s.ETA,
		Status:          s.Status,
		TrackingURL:     s.TrackingURL,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
