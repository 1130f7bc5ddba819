package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/equitycoffee/equity-coffee-api/pkg/logger"
)

type traceStartKey struct{}

// QueryLogger registra texto, duración y filas de cada consulta vía zerolog.
// Es observabilidad pura: nunca altera el resultado de la consulta. En
// configuración de test el logger descarta la salida.
type QueryLogger struct {
	log *logger.Logger
}

// NewQueryLogger construye el tracer de consultas.
func NewQueryLogger(log *logger.Logger) *QueryLogger {
	return &QueryLogger{log: log}
}

var _ pgx.QueryTracer = (*QueryLogger)(nil)

// TraceQueryStart guarda el instante de inicio en el contexto.
func (t *QueryLogger) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceStartKey{}, time.Now())
}

// TraceQueryEnd emite la métrica de la consulta terminada.
func (t *QueryLogger) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(traceStartKey{}).(time.Time)
	if !ok {
		return
	}
	ev := t.log.Debug().
		Dur("duration", time.Since(start)).
		Int64("rows", data.CommandTag.RowsAffected())
	if data.Err != nil {
		ev = ev.Err(data.Err)
	}
	ev.Msg("consulta DB")
}
