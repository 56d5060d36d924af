package ports

import "context"

const (
	// EventStyleLoaded is emitted once a style document has been loaded and built.
	EventStyleLoaded = "style.loaded"
	// EventBatchStarted is emitted before a batch render begins.
	EventBatchStarted = "batch.started"
	// EventPartRendered is emitted when a part preview has been written.
	EventPartRendered = "part.rendered"
	// EventPartFailed is emitted when a part preview could not be produced.
	EventPartFailed = "part.failed"
	// EventBatchCompleted is emitted after every part of a batch has finished.
	EventBatchCompleted = "batch.completed"

	// EventAny subscribes a handler to every event type.
	EventAny = "*"
)

// DomainEvent represents a significant occurrence within the application
// layer. Events carry structured payloads that subscribers can use for
// logging or progress reporting.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Publish blocks
// until all handlers run. Implementations must be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}
