package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para inventario de tostador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, roaster_id, contract_id, lot_id, current_bags, bag_size_kg, location, notes, created_at, updated_at`

// Create persiste un nuevo renglón de inventario.
func (r *InventoryRepo) Create(item *entity.RoasterInventory) error {
	query := `
		INSERT INTO roaster_inventory (id, roaster_id, contract_id, lot_id, current_bags, bag_size_kg, location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.RoasterID, item.ContractID, item.LotID, item.CurrentBags,
		item.BagSizeKg, item.Location, item.Notes, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene un renglón por ID.
func (r *InventoryRepo) GetByID(id string) (*entity.RoasterInventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM roaster_inventory WHERE id = $1`
	var it entity.RoasterInventory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.RoasterID, &it.ContractID, &it.LotID, &it.CurrentBags,
		&it.BagSizeKg, &it.Location, &it.Notes, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &it, nil
}

// ListByRoaster lista el inventario del tostador.
func (r *InventoryRepo) ListByRoaster(roasterID string) ([]*entity.RoasterInventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM roaster_inventory WHERE roaster_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, roasterID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.RoasterInventory
	for rows.Next() {
		var it entity.RoasterInventory
		if err := rows.Scan(
			&it.ID, &it.RoasterID, &it.ContractID, &it.LotID, &it.CurrentBags,
			&it.BagSizeKg, &it.Location, &it.Notes, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update aplica un UPDATE parcial sobre la allow-list de inventario.
// Sin campos presentes no se emite UPDATE.
func (r *InventoryRepo) Update(id string, u entity.InventoryUpdate) error {
	var b UpdateBuilder
	if u.CurrentBags != nil {
		b.Set("current_bags", *u.CurrentBags)
	}
	if u.Location != nil {
		b.Set("location", *u.Location)
	}
	if u.Notes != nil {
		b.Set("notes", *u.Notes)
	}
	if b.Empty() {
		return nil
	}

	clause, params := b.Clause(2)
	query := fmt.Sprintf(
		`UPDATE roaster_inventory SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, clause)
	args := append([]any{id}, params...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// Delete elimina un renglón por ID.
func (r *InventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roaster_inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}
