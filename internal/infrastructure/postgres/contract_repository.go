package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/equitycoffee/equity-coffee-api/internal/domain"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación del puerto ContractRepository sobre PostgreSQL.
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador de persistencia para contratos. Pasar pool o tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, contract_number, lot_id, farmer_id, buyer_id, quantity_bags,
		bag_size_kg, price_per_kg, currency, total_value, status, contract_date, notes,
		created_at, updated_at`

// Create persiste un nuevo contrato (total_value ya calculado por el use case).
func (r *ContractRepo) Create(contract *entity.Contract) error {
	query := `
		INSERT INTO contracts (id, contract_number, lot_id, farmer_id, buyer_id, quantity_bags,
			bag_size_kg, price_per_kg, currency, total_value, status, contract_date, notes,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.ContractNumber, contract.LotID, contract.FarmerID, contract.BuyerID,
		contract.QuantityBags, contract.BagSizeKg, contract.PricePerKg, contract.Currency,
		contract.TotalValue, contract.Status, contract.ContractDate, contract.Notes,
		contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // contract_number repetido
		}
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID.
func (r *ContractRepo) GetByID(id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	var c entity.Contract
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ContractNumber, &c.LotID, &c.FarmerID, &c.BuyerID, &c.QuantityBags,
		&c.BagSizeKg, &c.PricePerKg, &c.Currency, &c.TotalValue, &c.Status, &c.ContractDate,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return &c, nil
}

// ListByBuyer lista los contratos del comprador, con filtro opcional de estado.
func (r *ContractRepo) ListByBuyer(buyerID, status string) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE buyer_id = $1`
	params := []any{buyerID}
	if status != "" {
		params = append(params, status)
		query += fmt.Sprintf(" AND status = $%d", len(params))
	}
	query += " ORDER BY contract_date DESC"

	rows, err := r.q.Query(context.Background(), query, params...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(
			&c.ID, &c.ContractNumber, &c.LotID, &c.FarmerID, &c.BuyerID, &c.QuantityBags,
			&c.BagSizeKg, &c.PricePerKg, &c.Currency, &c.TotalValue, &c.Status, &c.ContractDate,
			&c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update aplica un UPDATE parcial sobre la allow-list fija de contratos.
// Sin campos presentes no se emite UPDATE.
func (r *ContractRepo) Update(id string, u entity.ContractUpdate) error {
	var b UpdateBuilder
	if u.Status != nil {
		b.Set("status", *u.Status)
	}
	if u.Notes != nil {
		b.Set("notes", *u.Notes)
	}
	if u.QuantityBags != nil {
		b.Set("quantity_bags", *u.QuantityBags)
	}
	if u.PricePerKg != nil {
		b.Set("price_per_kg", *u.PricePerKg)
	}
	if b.Empty() {
		return nil
	}

	clause, params := b.Clause(2)
	query := fmt.Sprintf(
		`UPDATE contracts SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, clause)
	args := append([]any{id}, params...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	return nil
}
