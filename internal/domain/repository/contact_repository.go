package repository

import "github.com/equitycoffee/equity-coffee-api/internal/domain/entity"

// ContactRepository define el puerto de persistencia para ContactMessage.
type ContactRepository interface {
	Create(msg *entity.ContactMessage) error
	ListRecent(limit int) ([]*entity.ContactMessage, error)
}
