package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

// Solo los lotes published+public aparecen en el catálogo, con o sin filtros.
func TestMarketplaceList_SoloPublicadosYPublicos(t *testing.T) {
	lotRepo := newFakeLotRepo()
	lotUC := NewLotUseCase(lotRepo)
	uc := NewMarketplaceUseCase(lotRepo)

	publicado, err := lotUC.Create("farmer-1", "farmer", createLotReq())
	require.NoError(t, err)
	_, err = lotUC.SetStatus("farmer-1", "farmer", publicado.Lot.ID, "published")
	require.NoError(t, err)

	// Este queda en draft: no debe salir.
	_, err = lotUC.Create("farmer-1", "farmer", createLotReq())
	require.NoError(t, err)

	out, err := uc.List(repository.MarketplaceFilter{})
	require.NoError(t, err)
	require.Len(t, out.Lots, 1)
	assert.Equal(t, publicado.Lot.ID, out.Lots[0].ID)
	assert.Equal(t, "published", out.Lots[0].Status)

	// Filtro de país que no coincide: lista vacía, no error.
	out, err = uc.List(repository.MarketplaceFilter{Country: "Kenya"})
	require.NoError(t, err)
	assert.Empty(t, out.Lots)

	// Filtro de país que coincide.
	out, err = uc.List(repository.MarketplaceFilter{Country: "Colombia"})
	require.NoError(t, err)
	assert.Len(t, out.Lots, 1)
}
