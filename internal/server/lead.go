package server

import (
	"context"

	"go.uber.org/zap"

	"github.com/marketwise/savings-calculator/internal/domain"
)

// LeadDispatcher hands a captured lead to a downstream system (CRM, queue,
// mailer). Dispatch must be safe for concurrent use.
type LeadDispatcher interface {
	Dispatch(ctx context.Context, lead domain.Lead) error
}

// DispatcherFunc adapts a function to the LeadDispatcher interface.
type DispatcherFunc func(ctx context.Context, lead domain.Lead) error

func (f DispatcherFunc) Dispatch(ctx context.Context, lead domain.Lead) error { return f(ctx, lead) }

// LogDispatcher records leads in the structured log. It is the default when
// no external lead sink is configured.
type LogDispatcher struct {
	logger *zap.Logger
}

// NewLogDispatcher builds a dispatcher that logs each lead.
func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(_ context.Context, lead domain.Lead) error {
	fields := []zap.Field{
		zap.String("lead_id", lead.ID),
		zap.String("email", lead.Email),
		zap.String("company", lead.Company),
	}
	if lead.Result != nil {
		fields = append(fields,
			zap.String("industry", lead.Result.Industry),
			zap.String("savings_monthly", lead.Result.Savings.Monthly.String()),
		)
	}
	d.logger.Info("lead captured", fields...)
	return nil
}
