package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type slowQueryStartKey struct{}

// slowQueryTracer logs a warning for every query that runs longer than threshold.
type slowQueryTracer struct {
	threshold time.Duration
	log       *zerolog.Logger
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryStartKey{}, time.Now())
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(slowQueryStartKey{}).(time.Time)
	if !ok {
		return
	}

	elapsed := time.Since(start)
	if elapsed < t.threshold {
		return
	}

	t.log.Warn().
		Dur("duration", elapsed).
		Dur("threshold", t.threshold).
		Str("command", data.CommandTag.String()).
		AnErr("query_error", data.Err).
		Msg("slow query")
}
