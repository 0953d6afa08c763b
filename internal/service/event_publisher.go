package service

import (
	"context"

	"journeyai-be/pkg/events"
)

// IEventPublisher pushes domain events onto the external bus.
// Publishing is best effort: failures are logged, never surfaced to callers.
type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}
