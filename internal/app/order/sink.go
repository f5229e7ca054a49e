package order

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
	"github.com/fullstep/storefront-cart/internal/models/m_outbox"
	"github.com/fullstep/storefront-cart/internal/pkg/committer"
	"github.com/fullstep/storefront-cart/internal/pkg/logger"
)

// Committer applies a collection of mutations atomically. Kept as an
// interface so the sink can be exercised without a live Spanner client.
type Committer interface {
	Apply(ctx context.Context, plan *committer.Plan) error
}

// OrderMutator builds the order insert mutation; it never applies it.
type OrderMutator interface {
	InsertMut(o *domain.Order, linesPayload string) *spanner.Mutation
}

// OutboxMutator builds the outbox insert mutation; it never applies it.
type OutboxMutator interface {
	InsertMut(e *OutboxEvent) *spanner.Mutation
}

// SpannerSink records orders through the transactional outbox: the order
// row and its order.placed event land in a single commit.
type SpannerSink struct {
	orders    OrderMutator
	outbox    OutboxMutator
	committer Committer
	log       *logger.Logger
}

func NewSpannerSink(orders OrderMutator, outbox OutboxMutator, cm Committer, log *logger.Logger) *SpannerSink {
	return &SpannerSink{orders: orders, outbox: outbox, committer: cm, log: log}
}

func (s *SpannerSink) Record(ctx context.Context, o *domain.Order) error {
	linesPayload, err := MarshalOrderLines(o.Lines)
	if err != nil {
		return err
	}
	eventPayload, err := MarshalOrderPlacedPayload(o)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(s.orders.InsertMut(o, linesPayload))
	plan.Add(s.outbox.InsertMut(&OutboxEvent{
		EventID:      uuid.New().String(),
		EventType:    m_outbox.EventTypeOrderPlaced,
		AggregateID:  o.OrderID,
		PayloadJSON:  eventPayload,
		Status:       m_outbox.StatusPending,
		CreatedAtUTC: o.PlacedAt.UTC(),
	}))

	if err := s.committer.Apply(ctx, plan); err != nil {
		return err
	}
	s.log.Info("order recorded", "order_id", o.OrderID, "items", o.ItemCount)
	return nil
}

// LogSink is the non-Spanner fallback. It logs the completed order and
// nothing else; useful for local runs against the in-memory store.
type LogSink struct {
	log *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Record(ctx context.Context, o *domain.Order) error {
	s.log.Info("order completed",
		"order_id", o.OrderID,
		"items", o.ItemCount,
		"total", o.Total.String(),
	)
	return nil
}
