package telemetry_test

import (
	"errors"
	"testing"

	"github.com/FilipeBeck/pipe-builder/internal/adapters/telemetry"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports/mocks"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/mock/gomock"
)

func TestBridge_ReportsSpanLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Debug(gomock.Cond(func(msg string) bool { return msg == "pipeline css started" })),
		log.EXPECT().Debug(gomock.Any()),
	)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(log)))
	defer tp.Shutdown(t.Context()) //nolint:errcheck // Best effort shutdown in test

	tracer := telemetry.NewOTelTracerFrom(tp, "test")
	_, span := tracer.Start(t.Context(), "css")
	span.End()
}

func TestBridge_ReportsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Debug(gomock.Any())
	log.EXPECT().Warn(gomock.Any())

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(log)))
	defer tp.Shutdown(t.Context()) //nolint:errcheck // Best effort shutdown in test

	tracer := telemetry.NewOTelTracerFrom(tp, "test")
	_, span := tracer.Start(t.Context(), "ts")
	span.RecordError(errors.New("exit status 2"))
	span.End()
}

func TestBridge_NilLogger(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	defer tp.Shutdown(t.Context()) //nolint:errcheck // Best effort shutdown in test

	_, span := telemetry.NewOTelTracerFrom(tp, "test").Start(t.Context(), "x")
	span.End()
}

func TestSetup(t *testing.T) {
	tp := telemetry.Setup(telemetry.NewBridge(nil))
	defer tp.Shutdown(t.Context()) //nolint:errcheck // Best effort shutdown in test

	_, span := telemetry.NewOTelTracer("test").Start(t.Context(), "global")
	span.End()
}
