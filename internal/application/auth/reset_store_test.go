package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Un token guardado se consume una sola vez.
func TestMemoryResetStore_ConsumeEsDeUnSoloUso(t *testing.T) {
	s := NewMemoryResetStore()
	s.Save("tok-1", "user-1", time.Minute)

	userID, ok := s.Consume("tok-1")
	require.True(t, ok)
	assert.Equal(t, "user-1", userID)

	// Segundo consumo: el token ya no existe.
	_, ok = s.Consume("tok-1")
	assert.False(t, ok)
}

// Token desconocido: ok=false sin panic.
func TestMemoryResetStore_TokenDesconocido(t *testing.T) {
	s := NewMemoryResetStore()
	_, ok := s.Consume("no-existe")
	assert.False(t, ok)
}

// Token vencido: aunque el timer de expulsión no haya corrido todavía,
// Consume valida la expiración y lo rechaza.
func TestMemoryResetStore_TokenExpirado(t *testing.T) {
	s := NewMemoryResetStore()
	s.Save("tok-exp", "user-1", -time.Second)

	_, ok := s.Consume("tok-exp")
	assert.False(t, ok)
}

// Tokens distintos no interfieren entre sí.
func TestMemoryResetStore_TokensIndependientes(t *testing.T) {
	s := NewMemoryResetStore()
	s.Save("tok-a", "user-a", time.Minute)
	s.Save("tok-b", "user-b", time.Minute)

	userID, ok := s.Consume("tok-b")
	require.True(t, ok)
	assert.Equal(t, "user-b", userID)

	userID, ok = s.Consume("tok-a")
	require.True(t, ok)
	assert.Equal(t, "user-a", userID)
}
