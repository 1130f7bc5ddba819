package postgres

import (
	"context"
	"fmt"

	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador de persistencia para mensajes de contacto. Pasar pool o tx (Querier).
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create persiste un mensaje entrante.
func (r *ContactRepo) Create(msg *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, reason, phone, message, ip, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		msg.ID, msg.Name, msg.Email, msg.Reason, msg.Phone, msg.Message,
		msg.IP, msg.UserAgent, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// ListRecent lista los mensajes más recientes (solo lectura admin).
func (r *ContactRepo) ListRecent(limit int) ([]*entity.ContactMessage, error) {
	query := `
		SELECT id, name, email, reason, phone, message, ip, user_agent, created_at
		FROM contact_messages ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContactMessage
	for rows.Next() {
		var m entity.ContactMessage
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Reason, &m.Phone, &m.Message,
			&m.IP, &m.UserAgent, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
