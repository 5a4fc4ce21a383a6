package usecase

import (
	"context"
	"errors"
	"log/slog"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
)

// FulfillmentUseCase applies decoded payment events to orders.
type FulfillmentUseCase struct {
	orders repository.OrderRepository
	logger *slog.Logger
}

// NewFulfillmentUseCase constructs FulfillmentUseCase.
func NewFulfillmentUseCase(orders repository.OrderRepository, logger *slog.Logger) *FulfillmentUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &FulfillmentUseCase{orders: orders, logger: logger}
}

// Reconcile routes the event by variant. Only a completed checkout mutates state;
// every other event is acknowledged as ignored.
func (u *FulfillmentUseCase) Reconcile(ctx context.Context, event model.PaymentEvent) (*model.Outcome, error) {
	switch ev := event.(type) {
	case model.CheckoutCompleted:
		return u.fulfill(ctx, ev)
	case model.RecognizedEvent, model.UnrecognizedEvent:
		u.logger.DebugContext(ctx, "payment event ignored",
			slog.String("event_id", ev.EventID()),
			slog.String("event_type", string(ev.Type())),
		)
		return &model.Outcome{
			EventID:   ev.EventID(),
			EventType: ev.Type(),
			Action:    model.OutcomeIgnored,
		}, nil
	default:
		return &model.Outcome{Action: model.OutcomeIgnored}, nil
	}
}

func (u *FulfillmentUseCase) fulfill(ctx context.Context, ev model.CheckoutCompleted) (*model.Outcome, error) {
	details := model.PaymentDetails{Address: NormalizeAddress(ev.Session.Address)}
	if ev.Session.Phone != nil {
		details.Phone = *ev.Session.Phone
	}

	result, err := u.orders.Fulfill(ctx, ev.OrderID, details)
	if err != nil {
		reason := domainErrors.ReasonStorage
		if errors.Is(err, domainErrors.ErrNotFound) {
			reason = domainErrors.ReasonOrderNotFound
		}
		u.logger.ErrorContext(ctx, "order reconciliation failed",
			slog.String("event_id", ev.ID),
			slog.String("order_id", ev.OrderID),
			slog.String("reason", string(reason)),
			slog.Any("error", err),
		)
		return nil, &domainErrors.ReconcileError{Reason: reason, OrderID: ev.OrderID, Err: err}
	}

	outcome := &model.Outcome{
		EventID:   ev.ID,
		EventType: ev.Type(),
		Action:    model.OutcomeFulfilled,
		OrderID:   result.OrderID,
		ItemCount: len(result.ProductIDs),
	}
	if result.AlreadyPaid {
		outcome.Action = model.OutcomeAlreadyFulfilled
	}

	u.logger.InfoContext(ctx, "order reconciled",
		slog.String("event_id", ev.ID),
		slog.String("order_id", outcome.OrderID),
		slog.String("action", string(outcome.Action)),
		slog.Int("item_count", outcome.ItemCount),
		slog.Int64("archived_products", result.Archived),
	)
	return outcome, nil
}
