package port

import "context"

// EventPublisher publishes domain events. Publishing is best effort: callers
// log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}
