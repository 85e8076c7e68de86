package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/packsync/internal/adapters/telemetry"
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/core/ports"
	"go.trai.ch/packsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func attrMap(kvs []attribute.KeyValue) map[string]any {
	out := make(map[string]any, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value.AsInterface()
	}
	return out
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracer(tp, "test", nil)

	_, span := tracer.Start(context.Background(), "eslint@9.0.0",
		ports.WithAttribute(ports.AttrPackage, "eslint"),
		ports.WithAttribute(ports.AttrManager, domain.ManagerNPM),
	)
	span.SetAttribute(ports.AttrOutcome, domain.OutcomeSucceeded)
	span.SetAttribute("attempt", 1)
	span.SetAttribute("latest", true)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "eslint", attrs[ports.AttrPackage])
	assert.Equal(t, "npm", attrs[ports.AttrManager])
	assert.Equal(t, "succeeded", attrs[ports.AttrOutcome])
	assert.Equal(t, int64(1), attrs["attempt"])
	assert.Equal(t, true, attrs["latest"])
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracer(tp, "test", nil)

	_, span := tracer.Start(context.Background(), "bad@1.0.0")
	span.RecordError(errors.New("exit status 1"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "exit status 1", spans[0].Status().Description)
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr, tp := setupRecorder(t)
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().OnPlanEmit([]string{"a@1", "b@2"}, 1).Times(2)

	tracer := telemetry.NewOTelTracer(tp, "test", renderer)

	tracer.EmitPlan(context.Background(), []string{"a@1", "b@2"}, 1)
	assert.Empty(t, sr.Ended(), "no span in context means no event")

	ctx, span := tp.Tracer("test").Start(context.Background(), "restore")
	tracer.EmitPlan(ctx, []string{"a@1", "b@2"}, 1)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "plan_emitted", spans[0].Events()[0].Name)
}
