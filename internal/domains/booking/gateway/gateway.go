package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"grandresort/config"
	"grandresort/infras/otel"
	"grandresort/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SettlementRequest is the charge handed to the payment provider.
type SettlementRequest struct {
	DraftID string
	Method  string
	Amount  decimal.Decimal
}

// Gateway settles a wizard payment. The production integration is pending a
// provider contract; until then the simulated implementation stands in so
// the confirmation flow is exercised end to end.
type Gateway interface {
	Settle(ctx context.Context, req SettlementRequest) error
}

type simulatedGateway struct {
	cfg  *config.Config
	otel otel.Otel
}

func NewSimulated(cfg *config.Config, otel otel.Otel) Gateway {
	return &simulatedGateway{
		cfg:  cfg,
		otel: otel,
	}
}

// Settle waits out the configured settlement delay and approves the charge.
// It honors context cancellation so an abandoned request does not hold the
// draft's settlement lock.
func (g *simulatedGateway) Settle(ctx context.Context, req SettlementRequest) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Settle")
	defer scope.End()
	defer scope.TraceIfError(err)

	delay := time.Duration(g.cfg.Booking.SettleDelaySeconds) * time.Second

	select {
	case <-ctx.Done():
		return fmt.Errorf("settlement interrupted: %w", ctx.Err())
	case <-time.After(delay):
	}

	log.Info().
		Str("draftID", req.DraftID).
		Str("method", req.Method).
		Str("amount", req.Amount.String()).
		Msg("payment settled")

	return nil
}
