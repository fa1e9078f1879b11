package service

import (
	"context"
	"fmt"
	"time"

	"github.com/medisupply/medisupply/internal/core/logger"
	"github.com/medisupply/medisupply/internal/core/port"
)

// ProcessedEvent marks one consumed broker event as applied.
type ProcessedEvent struct {
	EventType string    `json:"event_type"`
	AppliedAt time.Time `json:"applied_at"`
}

// EventDedup guards the consumer against redeliveries. The broker gives
// at-least-once delivery, so the same event id can arrive more than once;
// the first claim wins and later deliveries are acked without re-applying.
type EventDedup struct {
	cache port.CachePort[ProcessedEvent]
	ttl   time.Duration
}

func NewEventDedup(cache port.CachePort[ProcessedEvent], ttl time.Duration) *EventDedup {
	return &EventDedup{cache: cache, ttl: ttl}
}

func dedupKey(eventID string) string {
	return fmt.Sprintf("event:processed:%s", eventID)
}

// Claim returns true when this delivery is the first one for the event id.
// A false return means the event was already applied and the delivery should
// be acked without side effects. An error means the dedup store is
// unreachable; the caller nacks so the broker redelivers later.
func (s *EventDedup) Claim(ctx context.Context, eventID, eventType string) (bool, error) {
	claimed, err := s.cache.SetNX(ctx, dedupKey(eventID), &ProcessedEvent{
		EventType: eventType,
		AppliedAt: time.Now(),
	}, s.ttl)
	if err != nil {
		return false, fmt.Errorf("event dedup claim failed: %w", err)
	}
	return claimed, nil
}

// Release undoes a claim after a failed apply so the redelivery gets a fresh
// attempt instead of being treated as a duplicate.
func (s *EventDedup) Release(ctx context.Context, eventID string) {
	if err := s.cache.Del(ctx, dedupKey(eventID)); err != nil {
		logger.Error(ctx, "event dedup: release failed", err, map[string]any{
			"event_id": eventID,
		})
	}
}
