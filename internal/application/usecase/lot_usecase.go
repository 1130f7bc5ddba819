package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/domain"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

// Defaults de un lote recién creado.
var (
	defaultBagSizeKg = decimal.NewFromInt(60)
	defaultCurrency  = "USD"
)

// LotUseCase casos de uso de lotes del caficultor.
type LotUseCase struct {
	lotRepo repository.LotRepository
}

// NewLotUseCase construye el caso de uso de lotes.
func NewLotUseCase(lotRepo repository.LotRepository) *LotUseCase {
	return &LotUseCase{lotRepo: lotRepo}
}

// List devuelve los lotes del caller. Un admin puede pasar farmerID para ver
// los de otro caficultor, o vacío para ver todos; cualquier otro rol queda
// anclado a sus propios lotes.
func (uc *LotUseCase) List(callerID, callerRole, farmerID, status string) (*dto.LotListEnvelope, error) {
	f := repository.LotFilter{Status: status}
	if callerRole == entity.RoleAdmin {
		f.FarmerID = farmerID
	} else {
		f.FarmerID = callerID
	}

	lots, err := uc.lotRepo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LotResponse, 0, len(lots))
	for _, lot := range lots {
		out = append(out, *toLotResponse(lot))
	}
	return &dto.LotListEnvelope{Lots: out}, nil
}

// Get devuelve un lote del caller (o cualquiera, si es admin).
func (uc *LotUseCase) Get(callerID, callerRole, lotID string) (*dto.LotEnvelope, error) {
	lot, err := uc.requireOwner(callerID, callerRole, lotID)
	if err != nil {
		return nil, err
	}
	return &dto.LotEnvelope{Lot: *toLotResponse(lot)}, nil
}

// Create registra un lote nuevo con defaults de producto: draft, visible,
// saco de 60 kg en USD. Solo un admin puede crear a nombre de otro caficultor.
func (uc *LotUseCase) Create(callerID, callerRole string, in dto.CreateLotRequest) (*dto.LotEnvelope, error) {
	farmerID := callerID
	if callerRole == entity.RoleAdmin && in.FarmerID != nil && *in.FarmerID != "" {
		farmerID = *in.FarmerID
	}

	now := time.Now()
	lot := &entity.CoffeeLot{
		ID:             uuid.New().String(),
		FarmerID:       farmerID,
		LotName:        in.LotName,
		CropYear:       in.CropYear,
		Country:        in.Country,
		Region:         in.Region,
		AltitudeMeters: in.AltitudeMeters,
		Grade:          in.Grade,
		Certification:  in.Certification,
		Process:        in.Process,
		Variety:        in.Variety,
		HarvestMonth:   in.HarvestMonth,
		ReadyLocation:  in.ReadyLocation,
		TastingNotes:   in.TastingNotes,
		BagSizeKg:      defaultBagSizeKg,
		CupScore:       in.CupScore,
		PricePerKg:     in.PricePerKg,
		Currency:       defaultCurrency,
		Status:         entity.LotStatusDraft,
		Visibility:     entity.VisibilityPublic,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.BagsAvailable != nil {
		lot.BagsAvailable = *in.BagsAvailable
	}
	if in.BagSizeKg != nil {
		lot.BagSizeKg = *in.BagSizeKg
	}
	if in.Currency != nil && *in.Currency != "" {
		lot.Currency = *in.Currency
	}
	if in.Visibility != nil && *in.Visibility != "" {
		lot.Visibility = *in.Visibility
	}

	if err := uc.lotRepo.Create(lot); err != nil {
		return nil, err
	}
	return &dto.LotEnvelope{Lot: *toLotResponse(lot)}, nil
}

// Update aplica un UPDATE parcial sobre un lote propio. Un payload sin campos
// reconocidos devuelve el lote actual sin tocar la base.
func (uc *LotUseCase) Update(callerID, callerRole, lotID string, in dto.UpdateLotRequest) (*dto.LotEnvelope, error) {
	if _, err := uc.requireOwner(callerID, callerRole, lotID); err != nil {
		return nil, err
	}

	u := entity.LotUpdate{
		LotName:        in.LotName,
		CropYear:       in.CropYear,
		Country:        in.Country,
		Region:         in.Region,
		AltitudeMeters: in.AltitudeMeters,
		Grade:          in.Grade,
		Certification:  in.Certification,
		Process:        in.Process,
		Variety:        in.Variety,
		HarvestMonth:   in.HarvestMonth,
		ReadyLocation:  in.ReadyLocation,
		TastingNotes:   in.TastingNotes,
		BagsAvailable:  in.BagsAvailable,
		BagSizeKg:      in.BagSizeKg,
		CupScore:       in.CupScore,
		PricePerKg:     in.PricePerKg,
		Currency:       in.Currency,
		Visibility:     in.Visibility,
		Status:         in.Status,
	}
	if !u.Empty() {
		if err := uc.lotRepo.Update(lotID, u); err != nil {
			return nil, err
		}
	}

	lot, err := uc.lotRepo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.LotEnvelope{Lot: *toLotResponse(lot)}, nil
}

// Delete elimina un lote propio.
func (uc *LotUseCase) Delete(callerID, callerRole, lotID string) error {
	if _, err := uc.requireOwner(callerID, callerRole, lotID); err != nil {
		return err
	}
	return uc.lotRepo.Delete(lotID)
}

// SetStatus cambia solo el estado de un lote propio. No se valida la
// transición: cualquier estado del enum es alcanzable desde cualquier otro.
func (uc *LotUseCase) SetStatus(callerID, callerRole, lotID, status string) (*dto.LotEnvelope, error) {
	switch status {
	case entity.LotStatusDraft, entity.LotStatusPublished, entity.LotStatusHidden,
		entity.LotStatusBooked, entity.LotStatusSold:
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.Update(callerID, callerRole, lotID, dto.UpdateLotRequest{Status: &status})
}

// requireOwner resuelve el lote y verifica propiedad: primero existencia
// (404), después dueño (403). Admin pasa siempre. Chequeo y mutación no
// comparten transacción; la carrera con un delete concurrente se tolera.
func (uc *LotUseCase) requireOwner(callerID, callerRole, lotID string) (*entity.CoffeeLot, error) {
	lot, err := uc.lotRepo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	if callerRole != entity.RoleAdmin && lot.FarmerID != callerID {
		return nil, domain.ErrForbidden
	}
	return lot, nil
}

func toLotResponse(lot *entity.CoffeeLot) *dto.LotResponse {
	return &dto.LotResponse{
		ID:             lot.ID,
		FarmerID:       lot.FarmerID,
		LotName:        lot.LotName,
		CropYear:       lot.CropYear,
		Country:        lot.Country,
		Region:         lot.Region,
		AltitudeMeters: lot.AltitudeMeters,
		Grade:          lot.Grade,
		Certification:  lot.Certification,
		Process:        lot.Process,
		Variety:        lot.Variety,
		HarvestMonth:   lot.HarvestMonth,
		ReadyLocation:  lot.ReadyLocation,
		TastingNotes:   lot.TastingNotes,
		BagsAvailable:  lot.BagsAvailable,
		BagSizeKg:      lot.BagSizeKg,
		CupScore:       lot.CupScore,
		PricePerKg:     lot.PricePerKg,
		Currency:       lot.Currency,
		Status:         lot.Status,
		Visibility:     lot.Visibility,
		CreatedAt:      lot.CreatedAt,
		UpdatedAt:      lot.UpdatedAt,
	}
}
