package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	staffdomain "github.com/cornerstore/cornerstore-api/internal/domains/staff/domain"
	staffports "github.com/cornerstore/cornerstore-api/internal/domains/staff/ports"
)

const tracerName = "github.com/cornerstore/cornerstore-api/internal/domains/staff/adapters/observability/service"

// Service decorates the staff service with tracing, logging, and metrics.
type Service struct {
	inner   staffports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core staff service.
func New(inner staffports.Service, opts ...Option) staffports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) CreateCashier(ctx context.Context, cashier *staffdomain.Cashier) (*staffdomain.Cashier, error) {
	ctx, span := s.tracer.Start(ctx, "StaffService.CreateCashier")
	defer span.End()

	s.logInfo(ctx, "creating cashier", slog.String("cashier.name", cashier.FullName()))
	result, err := s.inner.CreateCashier(ctx, cashier)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create cashier")
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "cashier created", slog.Int64("cashier.id", result.ID))
	return result, nil
}

func (s *Service) GetCashierByID(ctx context.Context, id int64) (*staffdomain.Cashier, error) {
	ctx, span := s.tracer.Start(ctx, "StaffService.GetCashierByID", trace.WithAttributes(attribute.Int64("cashier.id", id)))
	defer span.End()

	result, err := s.inner.GetCashierByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load cashier", slog.Int64("cashier.id", id))
	}
	return result, nil
}

func (s *Service) ListCashiers(ctx context.Context) ([]*staffdomain.Cashier, error) {
	ctx, span := s.tracer.Start(ctx, "StaffService.ListCashiers")
	defer span.End()

	result, err := s.inner.ListCashiers(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list cashiers")
	}
	span.SetAttributes(attribute.Int("cashier.count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	cashiersCreated metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	cashiersCreated, _ := m.Int64Counter("staff.service.cashiers_created", metric.WithDescription("Number of cashiers created"))
	return serviceMetrics{cashiersCreated: cashiersCreated}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.cashiersCreated != nil {
		m.cashiersCreated.Add(ctx, 1)
	}
}

var _ staffports.Service = (*Service)(nil)
