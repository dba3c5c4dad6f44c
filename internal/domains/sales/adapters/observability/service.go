package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	salestypes "github.com/cornerstore/cornerstore-api/internal/domains/sales/application/types"
	salesports "github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"
)

const tracerName = "github.com/cornerstore/cornerstore-api/internal/domains/sales/adapters/observability/service"

// Service decorates the sales service with tracing, logging, and metrics.
type Service struct {
	inner   salesports.Service
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

// New wraps the core sales service.
func New(inner salesports.Service, opts ...Option) salesports.Service {
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

func (s *Service) PlaceOrder(ctx context.Context, draft salestypes.OrderDraft) (*salestypes.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.PlaceOrder",
		trace.WithAttributes(attribute.Int64("order.cashier_id", draft.CashierID), attribute.Int("order.line_count", len(draft.Lines))))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.Int64("order.cashier_id", draft.CashierID))
	result, err := s.inner.PlaceOrder(ctx, draft)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order", slog.Int64("order.cashier_id", draft.CashierID))
	}
	s.metrics.recordPlaced(ctx)
	s.logInfo(ctx, "order placed", slog.Int64("order.id", result.Order.ID), slog.String("order.total", result.Total().String()))
	return result, nil
}

func (s *Service) GetOrderDetail(ctx context.Context, id int64) (*salestypes.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.GetOrderDetail", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrderDetail(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context, day *time.Time) ([]*salestypes.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.ListOrders")
	defer span.End()

	if day != nil {
		span.SetAttributes(attribute.String("order.date", day.Format("2006-01-02")))
	}
	result, err := s.inner.ListOrders(ctx, day)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

func (s *Service) ListOrdersByCashier(ctx context.Context, cashierID int64) ([]*salestypes.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.ListOrdersByCashier", trace.WithAttributes(attribute.Int64("cashier.id", cashierID)))
	defer span.End()

	result, err := s.inner.ListOrdersByCashier(ctx, cashierID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders by cashier", slog.Int64("cashier.id", cashierID))
	}
	return result, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "SalesService.DeleteOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.Int64("order.id", id))
	if err := s.inner.DeleteOrder(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.Int64("order.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "order deleted", slog.Int64("order.id", id))
	return nil
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
	ordersPlaced  metric.Int64Counter
	ordersDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersPlaced, _ := m.Int64Counter("sales.service.orders_placed", metric.WithDescription("Number of orders placed"))
	ordersDeleted, _ := m.Int64Counter("sales.service.orders_deleted", metric.WithDescription("Number of orders deleted"))
	return serviceMetrics{ordersPlaced: ordersPlaced, ordersDeleted: ordersDeleted}
}

func (m serviceMetrics) recordPlaced(ctx context.Context) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.ordersDeleted != nil {
		m.ordersDeleted.Add(ctx, 1)
	}
}

var _ salesports.Service = (*Service)(nil)
