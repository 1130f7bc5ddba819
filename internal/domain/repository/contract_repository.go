package repository

import "github.com/equitycoffee/equity-coffee-api/internal/domain/entity"

// ContractRepository define el puerto de persistencia para Contract.
type ContractRepository interface {
	Create(contract *entity.Contract) error
	GetByID(id string) (*entity.Contract, error)
	ListByBuyer(buyerID, status string) ([]*entity.Contract, error)
	Update(id string, u entity.ContractUpdate) error
}
