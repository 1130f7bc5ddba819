package postgres

import (
	"fmt"
	"strings"
)

// UpdateBuilder acumula asignaciones `columna = $n` para un UPDATE parcial.
// Las columnas provienen siempre de la allow-list fija de cada repositorio
// (llamadas explícitas a Set), nunca de claves del request, y los valores
// viajan como parámetros posicionales: nada se interpola en el SQL.
type UpdateBuilder struct {
	columns []string
	params  []any
}

// Set agrega la asignación de una columna con su valor.
func (b *UpdateBuilder) Set(column string, value any) {
	b.columns = append(b.columns, column)
	b.params = append(b.params, value)
}

// Empty indica que no se registró ninguna asignación: el caller debe
// reportar éxito sin emitir UPDATE (un SET vacío sería SQL malformado).
func (b *UpdateBuilder) Empty() bool {
	return len(b.columns) == 0
}

// Clause arma el fragmento `col1 = $start, col2 = $start+1, ...` y devuelve
// los parámetros en el mismo orden. start permite reservar posiciones
// previas (típicamente $1 para el id del WHERE).
func (b *UpdateBuilder) Clause(start int) (string, []any) {
	parts := make([]string, 0, len(b.columns))
	for i, col := range b.columns {
		parts = append(parts, fmt.Sprintf("%s = $%d", col, start+i))
	}
	return strings.Join(parts, ", "), b.params
}
