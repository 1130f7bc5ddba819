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

// ContractPDFGenerator genera la confirmación de contrato en PDF.
// La implementación vive en infrastructure/pdf.
type ContractPDFGenerator interface {
	ContractConfirmation(contract *entity.Contract, lot *entity.CoffeeLot) ([]byte, error)
}

// ContractUseCase casos de uso de contratos del comprador (tostador/trader).
type ContractUseCase struct {
	contractRepo repository.ContractRepository
	lotRepo      repository.LotRepository
	pdf          ContractPDFGenerator
}

// NewContractUseCase construye el caso de uso de contratos.
func NewContractUseCase(contractRepo repository.ContractRepository, lotRepo repository.LotRepository, pdf ContractPDFGenerator) *ContractUseCase {
	return &ContractUseCase{contractRepo: contractRepo, lotRepo: lotRepo, pdf: pdf}
}

// Create registra un contrato pending. El valor total se fija aquí, en el
// momento de la escritura: quantity_bags × bag_size_kg × price_per_kg.
// Número de contrato repetido: ErrDuplicate.
func (uc *ContractUseCase) Create(buyerID string, in dto.CreateContractRequest) (*dto.ContractEnvelope, error) {
	lot, err := uc.lotRepo.GetByID(in.LotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}

	bagSize := defaultBagSizeKg
	if in.BagSizeKg != nil {
		bagSize = *in.BagSizeKg
	}
	qty := *in.QuantityBags
	price := *in.PricePerKg
	total := decimal.NewFromInt(int64(qty)).Mul(bagSize).Mul(price)

	now := time.Now()
	contract := &entity.Contract{
		ID:             uuid.New().String(),
		ContractNumber: in.ContractNumber,
		LotID:          in.LotID,
		FarmerID:       in.FarmerID,
		BuyerID:        buyerID,
		QuantityBags:   qty,
		BagSizeKg:      bagSize,
		PricePerKg:     price,
		Currency:       defaultCurrency,
		TotalValue:     total,
		Status:         entity.ContractStatusPending,
		ContractDate:   now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Currency != nil && *in.Currency != "" {
		contract.Currency = *in.Currency
	}
	if in.Notes != nil {
		contract.Notes = *in.Notes
	}

	if err := uc.contractRepo.Create(contract); err != nil {
		return nil, err
	}
	return &dto.ContractEnvelope{
		Message:  "Contract created",
		Contract: *toContractResponse(contract),
	}, nil
}

// List devuelve los contratos del comprador, con filtro opcional de estado.
func (uc *ContractUseCase) List(buyerID, status string) (*dto.ContractListEnvelope, error) {
	contracts, err := uc.contractRepo.ListByBuyer(buyerID, status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, *toContractResponse(c))
	}
	return &dto.ContractListEnvelope{Contracts: out}, nil
}

// Update aplica un UPDATE parcial sobre un contrato del comprador. El valor
// total NO se recalcula al cambiar cantidad o precio: queda el del momento
// de la creación.
func (uc *ContractUseCase) Update(buyerID, callerRole, contractID string, in dto.UpdateContractRequest) (*dto.ContractEnvelope, error) {
	if _, err := uc.requireBuyer(buyerID, callerRole, contractID); err != nil {
		return nil, err
	}

	u := entity.ContractUpdate{
		Status:       in.Status,
		Notes:        in.Notes,
		QuantityBags: in.QuantityBags,
		PricePerKg:   in.PricePerKg,
	}
	if !u.Empty() {
		if err := uc.contractRepo.Update(contractID, u); err != nil {
			return nil, err
		}
	}

	contract, err := uc.contractRepo.GetByID(contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ContractEnvelope{Contract: *toContractResponse(contract)}, nil
}

// ConfirmationPDF genera la confirmación imprimible de un contrato del
// comprador, con los datos del lote si todavía existe.
func (uc *ContractUseCase) ConfirmationPDF(buyerID, callerRole, contractID string) ([]byte, error) {
	contract, err := uc.requireBuyer(buyerID, callerRole, contractID)
	if err != nil {
		return nil, err
	}
	// El lote puede haber sido eliminado después de firmar; el PDF sale
	// igual con los datos congelados en el contrato.
	lot, err := uc.lotRepo.GetByID(contract.LotID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.ContractConfirmation(contract, lot)
}

// requireBuyer resuelve el contrato y verifica propiedad: primero existencia
// (404), después comprador (403). Admin pasa siempre.
func (uc *ContractUseCase) requireBuyer(buyerID, callerRole, contractID string) (*entity.Contract, error) {
	contract, err := uc.contractRepo.GetByID(contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	if callerRole != entity.RoleAdmin && contract.BuyerID != buyerID {
		return nil, domain.ErrForbidden
	}
	return contract, nil
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	return &dto.ContractResponse{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		LotID:          c.LotID,
		FarmerID:       c.FarmerID,
		BuyerID:        c.BuyerID,
		QuantityBags:   c.QuantityBags,
		BagSizeKg:      c.BagSizeKg,
		PricePerKg:     c.PricePerKg,
		Currency:       c.Currency,
		TotalValue:     c.TotalValue,
		Status:         c.Status,
		ContractDate:   c.ContractDate,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
