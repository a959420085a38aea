package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestQueryTracer(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tracer := QueryTracer{Provider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))}

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: selectCustomer})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("boom")})

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "pgx.query", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("db.operation", "SELECT"))
	assert.Equal(t, codes.Error, ended[0].Status().Code)
}

func TestQueryTracer_EndWithoutStart(t *testing.T) {
	assert.NotPanics(t, func() {
		QueryTracer{}.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	})
}

func TestTruncateSQL(t *testing.T) {
	long := strings.Repeat("x", 400)
	assert.Len(t, truncateSQL(long), 303)
	assert.Equal(t, "SELECT 1", truncateSQL("SELECT 1"))
}
