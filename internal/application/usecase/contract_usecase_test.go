package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/domain"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeContractRepo struct {
	byID        map[string]*entity.Contract
	updateCalls int
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{byID: make(map[string]*entity.Contract)}
}

func (r *fakeContractRepo) Create(contract *entity.Contract) error {
	for _, c := range r.byID {
		if c.ContractNumber == contract.ContractNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *contract
	r.byID[contract.ID] = &cp
	return nil
}

func (r *fakeContractRepo) GetByID(id string) (*entity.Contract, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContractRepo) ListByBuyer(buyerID, status string) ([]*entity.Contract, error) {
	var out []*entity.Contract
	for _, c := range r.byID {
		if c.BuyerID != buyerID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeContractRepo) Update(id string, u entity.ContractUpdate) error {
	r.updateCalls++
	c, ok := r.byID[id]
	if !ok {
		return nil
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.Notes != nil {
		c.Notes = *u.Notes
	}
	if u.QuantityBags != nil {
		c.QuantityBags = *u.QuantityBags
	}
	if u.PricePerKg != nil {
		c.PricePerKg = *u.PricePerKg
	}
	return nil
}

type fakePDFGenerator struct {
	calls   int
	lastLot *entity.CoffeeLot
}

func (g *fakePDFGenerator) ContractConfirmation(contract *entity.Contract, lot *entity.CoffeeLot) ([]byte, error) {
	g.calls++
	g.lastLot = lot
	return []byte("%PDF-" + contract.ContractNumber), nil
}

func buildContractUC(t *testing.T) (*ContractUseCase, *fakeContractRepo, *fakeLotRepo, string, *fakePDFGenerator) {
	t.Helper()
	contractRepo := newFakeContractRepo()
	lotRepo := newFakeLotRepo()
	pdfGen := &fakePDFGenerator{}
	uc := NewContractUseCase(contractRepo, lotRepo, pdfGen)

	lotUC := NewLotUseCase(lotRepo)
	created, err := lotUC.Create("farmer-1", "farmer", createLotReq())
	require.NoError(t, err)
	return uc, contractRepo, lotRepo, created.Lot.ID, pdfGen
}

func createContractReq(lotID string) dto.CreateContractRequest {
	qty := 10
	price := decimal.RequireFromString("4.50")
	return dto.CreateContractRequest{
		ContractNumber: "EC-2026-001",
		LotID:          lotID,
		FarmerID:       "farmer-1",
		QuantityBags:   &qty,
		PricePerKg:     &price,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestContractCreate_CalculaTotalEnServidor(t *testing.T) {
	uc, _, _, lotID, _ := buildContractUC(t)

	out, err := uc.Create("roaster-1", createContractReq(lotID))
	require.NoError(t, err)

	// 10 sacos × 60 kg × 4.50 = 2700
	assert.True(t, decimal.RequireFromString("2700").Equal(out.Contract.TotalValue),
		"total_value = quantity_bags × bag_size_kg × price_per_kg, esperado 2700, fue %s", out.Contract.TotalValue)
	assert.Equal(t, "pending", out.Contract.Status)
	assert.Equal(t, "USD", out.Contract.Currency)
	assert.Equal(t, "roaster-1", out.Contract.BuyerID)
}

func TestContractCreate_RespetaBagSizeDelPayload(t *testing.T) {
	uc, _, _, lotID, _ := buildContractUC(t)

	in := createContractReq(lotID)
	bagSize := decimal.RequireFromString("35")
	in.BagSizeKg = &bagSize

	out, err := uc.Create("roaster-1", in)
	require.NoError(t, err)

	// 10 × 35 × 4.50 = 1575
	assert.True(t, decimal.RequireFromString("1575").Equal(out.Contract.TotalValue))
}

func TestContractCreate_LoteInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _, _, _ := buildContractUC(t)

	_, err := uc.Create("roaster-1", createContractReq("no-existe"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContractCreate_NumeroRepetido_RetornaDuplicado(t *testing.T) {
	uc, _, _, lotID, _ := buildContractUC(t)

	_, err := uc.Create("roaster-1", createContractReq(lotID))
	require.NoError(t, err)

	_, err = uc.Create("roaster-2", createContractReq(lotID))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: existencia antes que ownership; total congelado
// ──────────────────────────────────────────────────────────────────────────────

func TestContractUpdate_ContratoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _, _, _ := buildContractUC(t)

	status := "confirmed"
	_, err := uc.Update("roaster-1", "roaster", "no-existe", dto.UpdateContractRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContractUpdate_OtroComprador_RetornaForbidden(t *testing.T) {
	uc, _, _, lotID, _ := buildContractUC(t)

	created, err := uc.Create("roaster-1", createContractReq(lotID))
	require.NoError(t, err)

	status := "confirmed"
	_, err = uc.Update("roaster-2", "roaster", created.Contract.ID, dto.UpdateContractRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestContractUpdate_PayloadVacio_NoEmiteUpdate(t *testing.T) {
	uc, contractRepo, _, lotID, _ := buildContractUC(t)

	created, err := uc.Create("roaster-1", createContractReq(lotID))
	require.NoError(t, err)

	out, err := uc.Update("roaster-1", "roaster", created.Contract.ID, dto.UpdateContractRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, contractRepo.updateCalls)
	assert.Equal(t, created.Contract.ID, out.Contract.ID)
}

func TestContractUpdate_TotalNoSeRecalcula(t *testing.T) {
	uc, _, _, lotID, _ := buildContractUC(t)

	created, err := uc.Create("roaster-1", createContractReq(lotID))
	require.NoError(t, err)

	qty := 99
	out, err := uc.Update("roaster-1", "roaster", created.Contract.ID, dto.UpdateContractRequest{QuantityBags: &qty})
	require.NoError(t, err)

	assert.Equal(t, 99, out.Contract.QuantityBags)
	assert.True(t, created.Contract.TotalValue.Equal(out.Contract.TotalValue),
		"el total queda fijado al momento de la creación")
}

// ──────────────────────────────────────────────────────────────────────────────
// List / PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestContractList_SoloDelComprador(t *testing.T) {
	uc, _, _, lotID, _ := buildContractUC(t)

	_, err := uc.Create("roaster-1", createContractReq(lotID))
	require.NoError(t, err)

	in := createContractReq(lotID)
	in.ContractNumber = "EC-2026-002"
	_, err = uc.Create("roaster-2", in)
	require.NoError(t, err)

	out, err := uc.List("roaster-1", "")
	require.NoError(t, err)
	require.Len(t, out.Contracts, 1)
	assert.Equal(t, "roaster-1", out.Contracts[0].BuyerID)
}

func TestContractPDF_GeneraParaElComprador(t *testing.T) {
	uc, _, _, lotID, pdfGen := buildContractUC(t)

	created, err := uc.Create("roaster-1", createContractReq(lotID))
	require.NoError(t, err)

	pdfBytes, err := uc.ConfirmationPDF("roaster-1", "roaster", created.Contract.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, 1, pdfGen.calls)
	require.NotNil(t, pdfGen.lastLot, "el generador debe recibir el lote si existe")
	assert.Equal(t, lotID, pdfGen.lastLot.ID)
}

func TestContractPDF_LoteBorrado_SaleIgual(t *testing.T) {
	uc, _, lotRepo, lotID, pdfGen := buildContractUC(t)

	created, err := uc.Create("roaster-1", createContractReq(lotID))
	require.NoError(t, err)

	require.NoError(t, lotRepo.Delete(lotID))

	pdfBytes, err := uc.ConfirmationPDF("roaster-1", "roaster", created.Contract.ID)
	require.NoError(t, err, "el PDF sale con los datos congelados aunque el lote ya no exista")
	assert.NotEmpty(t, pdfBytes)
	assert.Nil(t, pdfGen.lastLot)
}

func TestContractPDF_OtroComprador_RetornaForbidden(t *testing.T) {
	uc, _, _, lotID, _ := buildContractUC(t)

	created, err := uc.Create("roaster-1", createContractReq(lotID))
	require.NoError(t, err)

	_, err = uc.ConfirmationPDF("roaster-2", "roaster", created.Contract.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
