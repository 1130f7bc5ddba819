package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sin asignaciones el builder debe reportarse vacío: el caller no emite UPDATE.
func TestUpdateBuilder_SinCampos_EsEmpty(t *testing.T) {
	var b UpdateBuilder
	assert.True(t, b.Empty())

	clause, params := b.Clause(2)
	assert.Empty(t, clause)
	assert.Empty(t, params)
}

// Las asignaciones conservan el orden de registro y numeran desde start.
func TestUpdateBuilder_OrdenYPosiciones(t *testing.T) {
	var b UpdateBuilder
	b.Set("status", "published")
	b.Set("bags_available", 120)
	b.Set("notes", nil)
	require.False(t, b.Empty())

	clause, params := b.Clause(2)
	assert.Equal(t, "status = $2, bags_available = $3, notes = $4", clause)
	require.Len(t, params, 3)
	assert.Equal(t, "published", params[0])
	assert.Equal(t, 120, params[1])
	assert.Nil(t, params[2])
}

// start=1 genera posiciones desde $1 (UPDATE sin id reservado).
func TestUpdateBuilder_StartEnUno(t *testing.T) {
	var b UpdateBuilder
	b.Set("current_bags", 8)

	clause, params := b.Clause(1)
	assert.Equal(t, "current_bags = $1", clause)
	assert.Equal(t, []any{8}, params)
}
