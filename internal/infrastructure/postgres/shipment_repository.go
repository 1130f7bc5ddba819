package postgres

import (
	"context"
	"fmt"

	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación del puerto ShipmentRepository sobre PostgreSQL.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador de persistencia para embarques. Pasar pool o tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

const shipmentColumns = `id, contract_id, reference, origin_port, destination_port, container_number,
		vessel_name, carrier, etd, eta, status, tracking_url, notes, created_at, updated_at`

// Create persiste un nuevo embarque.
func (r *ShipmentRepo) Create(s *entity.Shipment) error {
	query := `
		INSERT INTO shipments (id, contract_id, reference, origin_port, destination_port, container_number,
			vessel_name, carrier, etd, eta, status, tracking_url, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ContractID, s.Reference, s.OriginPort, s.DestinationPort, s.ContainerNumber,
		s.VesselName, s.Carrier, s.ETD, s.ETA, s.Status, s.TrackingURL, s.Notes,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// List lista embarques con filtros opcionales (contract, status).
func (r *ShipmentRepo) List(f repository.ShipmentFilter) ([]*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE 1=1`
	var params []any
	if f.ContractID != "" {
		params = append(params, f.ContractID)
		query += fmt.Sprintf(" AND contract_id = $%d", len(params))
	}
	if f.Status != "" {
		params = append(params, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(params))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, params...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(
			&s.ID, &s.ContractID, &s.Reference, &s.OriginPort, &s.DestinationPort, &s.ContainerNumber,
			&s.VesselName, &s.Carrier, &s.ETD, &s.ETA, &s.Status, &s.TrackingURL, &s.Notes,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
