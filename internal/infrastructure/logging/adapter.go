// Package logging adapts pkg/logger to the application logger port.
package logging

import (
	"context"

	"github.com/hapkiduki/checkout-go/internal/application/port"
	"github.com/hapkiduki/checkout-go/pkg/logger"
)

// Adapter adapts the logger.Logger to the port.Logger interface.
type Adapter struct {
	*logger.Logger
}

// NewAdapter wraps l as a port.Logger.
func NewAdapter(l *logger.Logger) *Adapter {
	return &Adapter{l}
}

// With implements port.Logger.
func (a *Adapter) With(keysAndValues ...any) port.Logger {
	return &Adapter{a.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (a *Adapter) WithContext(ctx context.Context) port.Logger {
	return &Adapter{a.Logger.WithContext(ctx)}
}

var _ port.Logger = (*Adapter)(nil)
