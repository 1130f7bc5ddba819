package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación del puerto LotRepository sobre PostgreSQL.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de persistencia para lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, farmer_id, lot_name, crop_year, country, region, altitude_meters,
		grade, certification, process, variety, harvest_month, ready_location,
		tasting_notes, bags_available, bag_size_kg, cup_score, price_per_kg, currency,
		status, visibility, created_at, updated_at`

// Create persiste un nuevo lote.
func (r *LotRepo) Create(lot *entity.CoffeeLot) error {
	query := `
		INSERT INTO coffee_lots (id, farmer_id, lot_name, crop_year, country, region, altitude_meters,
			grade, certification, process, variety, harvest_month, ready_location,
			tasting_notes, bags_available, bag_size_kg, cup_score, price_per_kg, currency,
			status, visibility, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.FarmerID, lot.LotName, lot.CropYear, lot.Country, lot.Region, lot.AltitudeMeters,
		lot.Grade, lot.Certification, lot.Process, lot.Variety, lot.HarvestMonth, lot.ReadyLocation,
		lot.TastingNotes, lot.BagsAvailable, lot.BagSizeKg, lot.CupScore, lot.PricePerKg, lot.Currency,
		lot.Status, lot.Visibility, lot.CreatedAt, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(id string) (*entity.CoffeeLot, error) {
	query := `SELECT ` + lotColumns + ` FROM coffee_lots WHERE id = $1`
	var l entity.CoffeeLot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.FarmerID, &l.LotName, &l.CropYear, &l.Country, &l.Region, &l.AltitudeMeters,
		&l.Grade, &l.Certification, &l.Process, &l.Variety, &l.HarvestMonth, &l.ReadyLocation,
		&l.TastingNotes, &l.BagsAvailable, &l.BagSizeKg, &l.CupScore, &l.PricePerKg, &l.Currency,
		&l.Status, &l.Visibility, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// List lista lotes con filtros opcionales: cada filtro es una cláusula AND
// con su parámetro posicional.
func (r *LotRepo) List(f repository.LotFilter) ([]*entity.CoffeeLot, error) {
	query := `SELECT ` + lotColumns + ` FROM coffee_lots WHERE 1=1`
	var params []any
	if f.FarmerID != "" {
		params = append(params, f.FarmerID)
		query += fmt.Sprintf(" AND farmer_id = $%d", len(params))
	}
	if f.Status != "" {
		params = append(params, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(params))
	}
	query += " ORDER BY created_at DESC NULLS LAST"

	rows, err := r.q.Query(context.Background(), query, params...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.CoffeeLot
	for rows.Next() {
		var l entity.CoffeeLot
		if err := rows.Scan(
			&l.ID, &l.FarmerID, &l.LotName, &l.CropYear, &l.Country, &l.Region, &l.AltitudeMeters,
			&l.Grade, &l.Certification, &l.Process, &l.Variety, &l.HarvestMonth, &l.ReadyLocation,
			&l.TastingNotes, &l.BagsAvailable, &l.BagSizeKg, &l.CupScore, &l.PricePerKg, &l.Currency,
			&l.Status, &l.Visibility, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update aplica un UPDATE parcial. Las columnas salen de la allow-list de
// abajo (el camino legacy que aceptaba claves arbitrarias del body quedó
// cerrado). Sin campos presentes no se emite UPDATE.
func (r *LotRepo) Update(id string, u entity.LotUpdate) error {
	var b UpdateBuilder
	if u.LotName != nil {
		b.Set("lot_name", *u.LotName)
	}
	if u.CropYear != nil {
		b.Set("crop_year", *u.CropYear)
	}
	if u.Country != nil {
		b.Set("country", *u.Country)
	}
	if u.Region != nil {
		b.Set("region", *u.Region)
	}
	if u.AltitudeMeters != nil {
		b.Set("altitude_meters", *u.AltitudeMeters)
	}
	if u.Grade != nil {
		b.Set("grade", *u.Grade)
	}
	if u.Certification != nil {
		b.Set("certification", *u.Certification)
	}
	if u.Process != nil {
		b.Set("process", *u.Process)
	}
	if u.Variety != nil {
		b.Set("variety", *u.Variety)
	}
	if u.HarvestMonth != nil {
		b.Set("harvest_month", *u.HarvestMonth)
	}
	if u.ReadyLocation != nil {
		b.Set("ready_location", *u.ReadyLocation)
	}
	if u.TastingNotes != nil {
		b.Set("tasting_notes", *u.TastingNotes)
	}
	if u.BagsAvailable != nil {
		b.Set("bags_available", *u.BagsAvailable)
	}
	if u.BagSizeKg != nil {
		b.Set("bag_size_kg", *u.BagSizeKg)
	}
	if u.CupScore != nil {
		b.Set("cup_score", *u.CupScore)
	}
	if u.PricePerKg != nil {
		b.Set("price_per_kg", *u.PricePerKg)
	}
	if u.Currency != nil {
		b.Set("currency", *u.Currency)
	}
	if u.Visibility != nil {
		b.Set("visibility", *u.Visibility)
	}
	if u.Status != nil {
		b.Set("status", *u.Status)
	}
	if b.Empty() {
		return nil
	}

	clause, params := b.Clause(2)
	query := fmt.Sprintf(
		`UPDATE coffee_lots SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, clause)
	args := append([]any{id}, params...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("update lot: %w", err)
	}
	return nil
}

// Delete elimina un lote por ID.
func (r *LotRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM coffee_lots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lot: %w", err)
	}
	return nil
}

// Marketplace lista los lotes publicados y públicos con los datos del
// caficultor resueltos por join. Los filtros opcionales se agregan como AND.
func (r *LotRepo) Marketplace(f repository.MarketplaceFilter) ([]*entity.MarketplaceLot, error) {
	query := `
		SELECT cl.id, cl.farmer_id, cl.lot_name, cl.crop_year, cl.country, cl.region, cl.altitude_meters,
			cl.grade, cl.certification, cl.process, cl.variety, cl.harvest_month, cl.ready_location,
			cl.tasting_notes, cl.bags_available, cl.bag_size_kg, cl.cup_score, cl.price_per_kg, cl.currency,
			cl.status, cl.visibility, cl.created_at, cl.updated_at,
			u.company_name, u.first_name, u.last_name, u.country
		FROM coffee_lots cl
		JOIN users u ON u.id = cl.farmer_id
		WHERE cl.status = 'published' AND cl.visibility = 'public'`
	var params []any
	if f.Country != "" {
		params = append(params, f.Country)
		query += fmt.Sprintf(" AND cl.country = $%d", len(params))
	}
	if f.MinScore != nil {
		params = append(params, *f.MinScore)
		query += fmt.Sprintf(" AND cl.cup_score >= $%d", len(params))
	}
	if f.MaxPrice != nil {
		params = append(params, *f.MaxPrice)
		query += fmt.Sprintf(" AND (cl.price_per_kg IS NULL OR cl.price_per_kg <= $%d)", len(params))
	}
	query += " ORDER BY cl.created_at DESC NULLS LAST"

	rows, err := r.q.Query(context.Background(), query, params...)
	if err != nil {
		return nil, fmt.Errorf("marketplace lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.MarketplaceLot
	for rows.Next() {
		var m entity.MarketplaceLot
		if err := rows.Scan(
			&m.ID, &m.FarmerID, &m.LotName, &m.CropYear, &m.Country, &m.Region, &m.AltitudeMeters,
			&m.Grade, &m.Certification, &m.Process, &m.Variety, &m.HarvestMonth, &m.ReadyLocation,
			&m.TastingNotes, &m.BagsAvailable, &m.BagSizeKg, &m.CupScore, &m.PricePerKg, &m.Currency,
			&m.Status, &m.Visibility, &m.CreatedAt, &m.UpdatedAt,
			&m.FarmerCompany, &m.FarmerFirstName, &m.FarmerLastName, &m.FarmerCountry,
		); err != nil {
			return nil, fmt.Errorf("scan marketplace lot: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
