package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/domain"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de LotRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeLotRepo struct {
	byID        map[string]*entity.CoffeeLot
	updateCalls int
}

func newFakeLotRepo() *fakeLotRepo {
	return &fakeLotRepo{byID: make(map[string]*entity.CoffeeLot)}
}

func (r *fakeLotRepo) Create(lot *entity.CoffeeLot) error {
	cp := *lot
	r.byID[lot.ID] = &cp
	return nil
}

func (r *fakeLotRepo) GetByID(id string) (*entity.CoffeeLot, error) {
	lot, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *lot
	return &cp, nil
}

func (r *fakeLotRepo) List(f repository.LotFilter) ([]*entity.CoffeeLot, error) {
	var out []*entity.CoffeeLot
	for _, lot := range r.byID {
		if f.FarmerID != "" && lot.FarmerID != f.FarmerID {
			continue
		}
		if f.Status != "" && lot.Status != f.Status {
			continue
		}
		cp := *lot
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeLotRepo) Update(id string, u entity.LotUpdate) error {
	r.updateCalls++
	lot, ok := r.byID[id]
	if !ok {
		return nil
	}
	if u.LotName != nil {
		lot.LotName = *u.LotName
	}
	if u.Status != nil {
		lot.Status = *u.Status
	}
	if u.BagsAvailable != nil {
		lot.BagsAvailable = *u.BagsAvailable
	}
	if u.PricePerKg != nil {
		lot.PricePerKg = u.PricePerKg
	}
	return nil
}

func (r *fakeLotRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeLotRepo) Marketplace(f repository.MarketplaceFilter) ([]*entity.MarketplaceLot, error) {
	var out []*entity.MarketplaceLot
	for _, lot := range r.byID {
		if lot.Status != entity.LotStatusPublished || lot.Visibility != entity.VisibilityPublic {
			continue
		}
		if f.Country != "" && lot.Country != f.Country {
			continue
		}
		cp := *lot
		out = append(out, &entity.MarketplaceLot{CoffeeLot: cp})
	}
	return out, nil
}

func createLotReq() dto.CreateLotRequest {
	return dto.CreateLotRequest{
		LotName:  "Finca La Esperanza 2026",
		CropYear: 2026,
		Country:  "Colombia",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestLotCreate_AplicaDefaultsDeProducto(t *testing.T) {
	uc := NewLotUseCase(newFakeLotRepo())

	out, err := uc.Create("farmer-1", "farmer", createLotReq())
	require.NoError(t, err)

	assert.NotEmpty(t, out.Lot.ID)
	assert.Equal(t, "farmer-1", out.Lot.FarmerID)
	assert.Equal(t, "draft", out.Lot.Status)
	assert.Equal(t, "public", out.Lot.Visibility)
	assert.Equal(t, "USD", out.Lot.Currency)
	assert.True(t, decimal.NewFromInt(60).Equal(out.Lot.BagSizeKg), "tamaño de saco default 60 kg")
	assert.Equal(t, 0, out.Lot.BagsAvailable)
}

func TestLotCreate_AdminPuedeCrearParaOtroCaficultor(t *testing.T) {
	uc := NewLotUseCase(newFakeLotRepo())

	otro := "farmer-9"
	in := createLotReq()
	in.FarmerID = &otro

	out, err := uc.Create("admin-1", "admin", in)
	require.NoError(t, err)
	assert.Equal(t, "farmer-9", out.Lot.FarmerID)
}

func TestLotCreate_NoAdminIgnoraFarmerIDDelPayload(t *testing.T) {
	uc := NewLotUseCase(newFakeLotRepo())

	otro := "farmer-9"
	in := createLotReq()
	in.FarmerID = &otro

	out, err := uc.Create("farmer-1", "farmer", in)
	require.NoError(t, err)
	assert.Equal(t, "farmer-1", out.Lot.FarmerID,
		"un caficultor no puede crear lotes a nombre de otro")
}

func TestLotCreate_RoundTripConGet(t *testing.T) {
	repo := newFakeLotRepo()
	uc := NewLotUseCase(repo)

	score := decimal.RequireFromString("86.50")
	in := createLotReq()
	in.CupScore = &score

	created, err := uc.Create("farmer-1", "farmer", in)
	require.NoError(t, err)

	got, err := uc.Get("farmer-1", "farmer", created.Lot.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Lot.LotName, got.Lot.LotName)
	assert.Equal(t, created.Lot.CropYear, got.Lot.CropYear)
	require.NotNil(t, got.Lot.CupScore)
	assert.True(t, score.Equal(*got.Lot.CupScore))
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad: existencia antes que ownership
// ──────────────────────────────────────────────────────────────────────────────

func TestLotUpdate_LoteInexistente_RetornaNotFound(t *testing.T) {
	uc := NewLotUseCase(newFakeLotRepo())

	name := "Nuevo nombre"
	_, err := uc.Update("farmer-1", "farmer", "no-existe", dto.UpdateLotRequest{LotName: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLotUpdate_OtroDueno_RetornaForbidden(t *testing.T) {
	repo := newFakeLotRepo()
	uc := NewLotUseCase(repo)

	created, err := uc.Create("farmer-1", "farmer", createLotReq())
	require.NoError(t, err)

	name := "Nuevo nombre"
	_, err = uc.Update("farmer-2", "farmer", created.Lot.ID, dto.UpdateLotRequest{LotName: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLotUpdate_AdminPuedeEditarLoteAjeno(t *testing.T) {
	repo := newFakeLotRepo()
	uc := NewLotUseCase(repo)

	created, err := uc.Create("farmer-1", "farmer", createLotReq())
	require.NoError(t, err)

	name := "Editado por admin"
	out, err := uc.Update("admin-1", "admin", created.Lot.ID, dto.UpdateLotRequest{LotName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Editado por admin", out.Lot.LotName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad: payload sin campos reconocidos es no-op exitoso
// ──────────────────────────────────────────────────────────────────────────────

func TestLotUpdate_PayloadVacio_NoEmiteUpdate(t *testing.T) {
	repo := newFakeLotRepo()
	uc := NewLotUseCase(repo)

	created, err := uc.Create("farmer-1", "farmer", createLotReq())
	require.NoError(t, err)

	out, err := uc.Update("farmer-1", "farmer", created.Lot.ID, dto.UpdateLotRequest{})
	require.NoError(t, err, "un payload vacío debe reportar éxito")
	assert.Equal(t, 0, repo.updateCalls, "no debe llegar ningún UPDATE al repositorio")
	assert.Equal(t, created.Lot.LotName, out.Lot.LotName, "debe devolver la fila actual intacta")
}

// ──────────────────────────────────────────────────────────────────────────────
// SetStatus / Delete / List
// ──────────────────────────────────────────────────────────────────────────────

func TestLotSetStatus_PublicaYDespublica(t *testing.T) {
	repo := newFakeLotRepo()
	uc := NewLotUseCase(repo)

	created, err := uc.Create("farmer-1", "farmer", createLotReq())
	require.NoError(t, err)

	out, err := uc.SetStatus("farmer-1", "farmer", created.Lot.ID, "published")
	require.NoError(t, err)
	assert.Equal(t, "published", out.Lot.Status)

	out, err = uc.SetStatus("farmer-1", "farmer", created.Lot.ID, "draft")
	require.NoError(t, err)
	assert.Equal(t, "draft", out.Lot.Status)
}

func TestLotSetStatus_EstadoFueraDelEnum_RetornaValidacion(t *testing.T) {
	repo := newFakeLotRepo()
	uc := NewLotUseCase(repo)

	created, err := uc.Create("farmer-1", "farmer", createLotReq())
	require.NoError(t, err)

	_, err = uc.SetStatus("farmer-1", "farmer", created.Lot.ID, "volando")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLotDelete_OtroDueno_RetornaForbidden(t *testing.T) {
	repo := newFakeLotRepo()
	uc := NewLotUseCase(repo)

	created, err := uc.Create("farmer-1", "farmer", createLotReq())
	require.NoError(t, err)

	err = uc.Delete("farmer-2", "farmer", created.Lot.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El lote sigue existiendo.
	got, err := uc.Get("farmer-1", "farmer", created.Lot.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Lot.ID, got.Lot.ID)
}

func TestLotList_NoAdminQuedaAncladoASusLotes(t *testing.T) {
	repo := newFakeLotRepo()
	uc := NewLotUseCase(repo)

	_, err := uc.Create("farmer-1", "farmer", createLotReq())
	require.NoError(t, err)
	_, err = uc.Create("farmer-2", "farmer", createLotReq())
	require.NoError(t, err)

	// Aunque pida los lotes de otro, un farmer solo ve los propios.
	out, err := uc.List("farmer-1", "farmer", "farmer-2", "")
	require.NoError(t, err)
	require.Len(t, out.Lots, 1)
	assert.Equal(t, "farmer-1", out.Lots[0].FarmerID)
}

func TestLotList_AdminFiltraPorCaficultor(t *testing.T) {
	repo := newFakeLotRepo()
	uc := NewLotUseCase(repo)

	_, err := uc.Create("farmer-1", "farmer", createLotReq())
	require.NoError(t, err)
	_, err = uc.Create("farmer-2", "farmer", createLotReq())
	require.NoError(t, err)

	out, err := uc.List("admin-1", "admin", "farmer-2", "")
	require.NoError(t, err)
	require.Len(t, out.Lots, 1)
	assert.Equal(t, "farmer-2", out.Lots[0].FarmerID)

	// Sin filtro, el admin ve todo.
	out, err = uc.List("admin-1", "admin", "", "")
	require.NoError(t, err)
	assert.Len(t, out.Lots, 2)
}
