package repository

import "github.com/equitycoffee/equity-coffee-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	UpdatePassword(id, passwordHash string) error
	TouchLastLogin(id string) error
}
