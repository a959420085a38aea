// Package checkout implements the purchase flow around the pricing core:
// resolve customer and cart, check stock, price the cart, authorize payment,
// deduct stock, and compensate the payment when the deduction fails.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/application/dto"
	"github.com/hapkiduki/checkout-go/internal/application/port"
	"github.com/hapkiduki/checkout-go/internal/domain/domainerror"
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
	"github.com/hapkiduki/checkout-go/internal/domain/pricing"
	"github.com/hapkiduki/checkout-go/internal/domain/repository"
)

// Outcome messages returned to clients.
const (
	MsgPurchaseCompleted    = "purchase completed successfully"
	MsgOutOfStock           = "items out of stock"
	MsgPaymentNotAuthorized = "payment not authorized"
	MsgStockDeductionFailed = "error deducting stock"
)

// Metric names recorded by the service.
const (
	MetricFinalizeTotal    = "checkout_finalize_total"
	MetricFinalizeDuration = "checkout_finalize_duration_seconds"
	MetricOrderTotal       = "checkout_order_total"
)

// DefaultCancelTimeout bounds the compensating payment cancel.
const DefaultCancelTimeout = 5 * time.Second

// Option configures optional collaborators of the Service.
type Option func(*Service)

// WithMetrics records checkout metrics through m.
func WithMetrics(m port.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer wraps checkout operations in spans from t.
func WithTracer(t port.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithCancelTimeout bounds the compensating payment cancel, which runs
// detached from the request context.
func WithCancelTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.cancelTimeout = d
		}
	}
}

// Service orchestrates checkout.
type Service struct {
	customers repository.CustomerRepository
	carts     repository.CartRepository
	stock     port.StockGateway
	payments  port.PaymentGateway
	calc      *pricing.Calculator
	log       port.Logger
	metrics   port.Metrics
	tracer    port.Tracer

	cancelTimeout time.Duration
}

// NewService creates a checkout Service.
//
// Parameters:
//   - customers: customer lookup
//   - carts: cart lookup
//   - stock: external inventory service
//   - payments: external payment service
//   - calc: pricing engine
//   - log: logger
//   - opts: optional metrics and tracing
//
// Returns:
//   - *Service: the checkout service
func NewService(
	customers repository.CustomerRepository,
	carts repository.CartRepository,
	stock port.StockGateway,
	payments port.PaymentGateway,
	calc *pricing.Calculator,
	log port.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		customers: customers,
		carts:     carts,
		stock:     stock,
		payments:  payments,
		calc:      calc,
		log:       log,
		metrics:   nopMetrics{},
		tracer:    nopTracer{},

		cancelTimeout: DefaultCancelTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FinalizePurchase charges the customer for the cart and deducts its stock.
//
// Parameters:
//   - ctx: request context
//   - cartID: the cart to purchase
//   - customerID: the cart's owner
//
// Returns:
//   - *dto.PurchaseResult: the successful outcome
//   - error: a not-found repository error, a domainerror failure, or an
//     infrastructure error
func (s *Service) FinalizePurchase(ctx context.Context, cartID, customerID uuid.UUID) (_ *dto.PurchaseResult, err error) {
	start := time.Now()
	ctx, span := s.tracer.StartSpan(ctx, "checkout.FinalizePurchase")
	defer span.End()
	span.SetAttribute("cart_id", cartID.String())
	span.SetAttribute("customer_id", customerID.String())

	log := s.log.WithContext(ctx).With("cart_id", cartID.String(), "customer_id", customerID.String())

	defer func() {
		tags := map[string]string{"outcome": outcome(err)}
		s.metrics.Counter(MetricFinalizeTotal, 1, tags)
		s.metrics.Timing(MetricFinalizeDuration, time.Since(start), tags)
		if err != nil {
			span.SetError(err)
			log.Warn("Purchase failed", "outcome", tags["outcome"], "error", err)
		}
	}()

	customer, cart, err := s.load(ctx, cartID, customerID)
	if err != nil {
		return nil, err
	}

	productIDs, quantities := cart.ProductIDs(), cart.Quantities()

	availability, err := s.stock.CheckAvailability(ctx, productIDs, quantities)
	if err != nil {
		return nil, fmt.Errorf("check stock availability: %w", err)
	}
	if !availability.Available {
		log.Info("Items out of stock", "unavailable", availability.Unavailable)
		return nil, domainerror.Conflict(MsgOutOfStock)
	}

	total, err := s.calc.ComputeTotal(cart, customer.Region, customer.Tier)
	if err != nil {
		return nil, err
	}
	s.metrics.Histogram(MetricOrderTotal, total.Amount.InexactFloat64(), map[string]string{"region": string(customer.Region)})
	span.SetAttribute("order_total", total.Amount.String())

	auth, err := s.payments.Authorize(ctx, customer.ID, total.Amount)
	if err != nil {
		return nil, fmt.Errorf("authorize payment: %w", err)
	}
	if !auth.Authorized {
		return nil, domainerror.Conflict(MsgPaymentNotAuthorized)
	}
	log = log.With("transaction_id", auth.TransactionID)

	deducted, err := s.stock.Deduct(ctx, productIDs, quantities)
	if err != nil || !deducted {
		s.cancelPayment(ctx, log, customer.ID, auth.TransactionID)
		if err != nil {
			return nil, fmt.Errorf("deduct stock: %w", err)
		}
		return nil, domainerror.Conflict(MsgStockDeductionFailed)
	}

	log.Info("Purchase completed", "total", total.String())

	return &dto.PurchaseResult{
		Success:       true,
		TransactionID: auth.TransactionID,
		Message:       MsgPurchaseCompleted,
	}, nil
}

// cancelPayment voids an authorization after a failed deduction. The request
// context may already be done at this point, so the cancel keeps its values
// but gets its own deadline.
func (s *Service) cancelPayment(ctx context.Context, log port.Logger, customerID uuid.UUID, transactionID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cancelTimeout)
	defer cancel()

	if err := s.payments.Cancel(ctx, customerID, transactionID); err != nil {
		log.Error("Payment cancellation failed", "error", err)
		return
	}
	log.Info("Payment cancelled after stock deduction failure")
}

// Quote prices a stored cart without touching stock or payment.
//
// Parameters:
//   - ctx: request context
//   - cartID: the cart to price
//   - customerID: the cart's owner
//
// Returns:
//   - *dto.QuoteResult: the pricing breakdown
//   - error: a not-found repository error or a domainerror failure
func (s *Service) Quote(ctx context.Context, cartID, customerID uuid.UUID) (*dto.QuoteResult, error) {
	ctx, span := s.tracer.StartSpan(ctx, "checkout.Quote")
	defer span.End()

	customer, cart, err := s.load(ctx, cartID, customerID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	breakdown, err := s.calc.Quote(cart, customer.Region, customer.Tier)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	return &dto.QuoteResult{
		CartID:     cart.ID,
		CustomerID: customer.ID,
		Region:     customer.Region,
		Tier:       customer.Tier,
		Breakdown:  breakdown,
	}, nil
}

func (s *Service) load(ctx context.Context, cartID, customerID uuid.UUID) (*entity.Customer, *entity.Cart, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, nil, fmt.Errorf("find customer %s: %w", customerID, err)
	}
	cart, err := s.carts.GetByIDAndCustomer(ctx, cartID, customer.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("find cart %s: %w", cartID, err)
	}
	return customer, cart, nil
}

// outcome labels err for metrics.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case domainerror.IsInvalidInput(err):
		return "invalid_input"
	case repository.IsNotFoundError(err):
		return "not_found"
	case domainerror.IsConflict(err):
		var de *domainerror.Error
		if errors.As(err, &de) {
			if label, ok := conflictLabels[de.Message]; ok {
				return label
			}
		}
		return "conflict"
	default:
		return "error"
	}
}

var conflictLabels = map[string]string{
	MsgOutOfStock:           "out_of_stock",
	MsgPaymentNotAuthorized: "payment_declined",
	MsgStockDeductionFailed: "stock_deduction_failed",
}

type nopMetrics struct{}

func (nopMetrics) Counter(string, float64, map[string]string) {}

func (nopMetrics) Histogram(string, float64, map[string]string) {}

func (nopMetrics) Timing(string, time.Duration, map[string]string) {}

type nopTracer struct{}

func (nopTracer) StartSpan(ctx context.Context, _ string) (context.Context, port.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End() {}

func (nopSpan) SetAttribute(string, any) {}

func (nopSpan) SetError(error) {}
