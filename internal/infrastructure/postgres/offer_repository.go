package postgres

import (
	"context"
	"fmt"

	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

// OfferRepo implementación del puerto OfferRepository sobre PostgreSQL.
type OfferRepo struct {
	q Querier
}

// NewOfferRepository construye el adaptador de persistencia para ofertas. Pasar pool o tx (Querier).
func NewOfferRepository(q Querier) *OfferRepo {
	return &OfferRepo{q: q}
}

const offerColumns = `id, lot_id, buyer_id, price_per_kg, currency, incoterm, message, status, created_at, updated_at`

// Create persiste una nueva oferta.
func (r *OfferRepo) Create(offer *entity.Offer) error {
	query := `
		INSERT INTO offers (id, lot_id, buyer_id, price_per_kg, currency, incoterm, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		offer.ID, offer.LotID, offer.BuyerID, offer.PricePerKg, offer.Currency,
		offer.Incoterm, offer.Message, offer.Status, offer.CreatedAt, offer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// List lista ofertas con filtros opcionales (lot, buyer, status).
func (r *OfferRepo) List(f repository.OfferFilter) ([]*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE 1=1`
	var params []any
	if f.LotID != "" {
		params = append(params, f.LotID)
		query += fmt.Sprintf(" AND lot_id = $%d", len(params))
	}
	if f.BuyerID != "" {
		params = append(params, f.BuyerID)
		query += fmt.Sprintf(" AND buyer_id = $%d", len(params))
	}
	if f.Status != "" {
		params = append(params, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(params))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, params...)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Offer
	for rows.Next() {
		var o entity.Offer
		if err := rows.Scan(
			&o.ID, &o.LotID, &o.BuyerID, &o.PricePerKg, &o.Currency,
			&o.Incoterm, &o.Message, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
