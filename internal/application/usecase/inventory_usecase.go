package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/domain"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

// InventoryUseCase casos de uso del inventario del tostador.
type InventoryUseCase struct {
	inventoryRepo repository.InventoryRepository
	contractRepo  repository.ContractRepository
}

// NewInventoryUseCase construye el caso de uso de inventario.
func NewInventoryUseCase(inventoryRepo repository.InventoryRepository, contractRepo repository.ContractRepository) *InventoryUseCase {
	return &InventoryUseCase{inventoryRepo: inventoryRepo, contractRepo: contractRepo}
}

// Create registra un renglón de inventario ligado a un contrato existente.
// El tamaño de saco hereda el default de producto si no viene en el payload.
func (uc *InventoryUseCase) Create(roasterID string, in dto.CreateInventoryRequest) (*dto.InventoryEnvelope, error) {
	contract, err := uc.contractRepo.GetByID(in.ContractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	item := &entity.RoasterInventory{
		ID:          uuid.New().String(),
		RoasterID:   roasterID,
		ContractID:  in.ContractID,
		LotID:       in.LotID,
		CurrentBags: *in.CurrentBags,
		BagSizeKg:   defaultBagSizeKg,
		Location:    in.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.BagSizeKg != nil {
		item.BagSizeKg = *in.BagSizeKg
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}

	if err := uc.inventoryRepo.Create(item); err != nil {
		return nil, err
	}
	return &dto.InventoryEnvelope{
		Message:   "Inventory created",
		Inventory: *toInventoryResponse(item),
	}, nil
}

// List devuelve el inventario completo del tostador.
func (uc *InventoryUseCase) List(roasterID string) (*dto.InventoryListEnvelope, error) {
	items, err := uc.inventoryRepo.ListByRoaster(roasterID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toInventoryResponse(item))
	}
	return &dto.InventoryListEnvelope{Inventory: out}, nil
}

// Update aplica un UPDATE parcial sobre un renglón propio.
func (uc *InventoryUseCase) Update(roasterID, callerRole, itemID string, in dto.UpdateInventoryRequest) (*dto.InventoryEnvelope, error) {
	if _, err := uc.requireRoaster(roasterID, callerRole, itemID); err != nil {
		return nil, err
	}

	u := entity.InventoryUpdate{
		CurrentBags: in.CurrentBags,
		Location:    in.Location,
		Notes:       in.Notes,
	}
	if !u.Empty() {
		if err := uc.inventoryRepo.Update(itemID, u); err != nil {
			return nil, err
		}
	}

	item, err := uc.inventoryRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.InventoryEnvelope{Inventory: *toInventoryResponse(item)}, nil
}

// Delete elimina un renglón propio y confirma con el id borrado.
func (uc *InventoryUseCase) Delete(roasterID, callerRole, itemID string) (*dto.InventoryDeletedResponse, error) {
	if _, err := uc.requireRoaster(roasterID, callerRole, itemID); err != nil {
		return nil, err
	}
	if err := uc.inventoryRepo.Delete(itemID); err != nil {
		return nil, err
	}
	return &dto.InventoryDeletedResponse{
		Message:   "Inventory deleted",
		DeletedID: itemID,
	}, nil
}

// requireRoaster resuelve el renglón y verifica propiedad: primero existencia
// (404), después dueño (403). Admin pasa siempre.
func (uc *InventoryUseCase) requireRoaster(roasterID, callerRole, itemID string) (*entity.RoasterInventory, error) {
	item, err := uc.inventoryRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if callerRole != entity.RoleAdmin && item.RoasterID != roasterID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}

func toInventoryResponse(item *entity.RoasterInventory) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:          item.ID,
		RoasterID:   item.RoasterID,
		ContractID:  item.ContractID,
		LotID:       item.LotID,
		CurrentBags: item.CurrentBags,
		BagSizeKg:   item.BagSizeKg,
		Location:    item.Location,
		Notes:       item.Notes,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
