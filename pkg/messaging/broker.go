package messaging

import (
	"context"
)

// Broker is a closeable publisher. Consumers of the published events run
// out of process, so no subscribe side is exposed here.
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Close() error
}

// Publisher is the producer-side subset of Broker.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}

// Event is the envelope published on appointment lifecycle changes.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
