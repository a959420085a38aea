package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/application/port"
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type customerRepoMock struct{ mock.Mock }

func (m *customerRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

type cartRepoMock struct{ mock.Mock }

func (m *cartRepoMock) GetByIDAndCustomer(ctx context.Context, cartID, customerID uuid.UUID) (*entity.Cart, error) {
	args := m.Called(ctx, cartID, customerID)
	c, _ := args.Get(0).(*entity.Cart)
	return c, args.Error(1)
}

type stockMock struct{ mock.Mock }

func (m *stockMock) CheckAvailability(ctx context.Context, ids []uuid.UUID, qtys []int64) (port.Availability, error) {
	args := m.Called(ctx, ids, qtys)
	return args.Get(0).(port.Availability), args.Error(1)
}

func (m *stockMock) Deduct(ctx context.Context, ids []uuid.UUID, qtys []int64) (bool, error) {
	args := m.Called(ctx, ids, qtys)
	return args.Bool(0), args.Error(1)
}

type paymentMock struct{ mock.Mock }

func (m *paymentMock) Authorize(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal) (port.Authorization, error) {
	args := m.Called(ctx, customerID, amount)
	return args.Get(0).(port.Authorization), args.Error(1)
}

func (m *paymentMock) Cancel(ctx context.Context, customerID uuid.UUID, transactionID string) error {
	return m.Called(ctx, customerID, transactionID).Error(0)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

func (nopLogger) Info(string, ...any) {}

func (nopLogger) Warn(string, ...any) {}

func (nopLogger) Error(string, ...any) {}

func (l nopLogger) With(...any) port.Logger { return l }

func (l nopLogger) WithContext(context.Context) port.Logger { return l }

// recordingMetrics keeps every counter increment keyed by name and outcome.
type recordingMetrics struct {
	mu       sync.Mutex
	counters map[string]float64
	observed []float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counters: make(map[string]float64)}
}

func (r *recordingMetrics) Counter(name string, value float64, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name+"/"+tags["outcome"]] += value
}

func (r *recordingMetrics) Histogram(_ string, value float64, _ map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observed = append(r.observed, value)
}

func (r *recordingMetrics) Timing(string, time.Duration, map[string]string) {}
