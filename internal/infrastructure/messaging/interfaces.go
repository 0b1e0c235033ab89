// Package messaging defines interfaces for real-time change notification.
package messaging

import "time"

// Change describes one committed mutation to a catalog table.
type Change struct {
	Table string    `json:"table"`
	Op    string    `json:"op"` // insert, update, delete
	RowID string    `json:"row_id,omitempty"`
	At    time.Time `json:"at"`
}

const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// ChangePublisher is the write side of the bus, held by the services layer.
type ChangePublisher interface {
	Publish(change Change)
}

// ChangeSubscriber is the read side, held by the SSE and websocket handlers.
// The returned cancel func MUST be called when the consumer goes away;
// abandoned subscriptions are how fan-out buses leak.
type ChangeSubscriber interface {
	Subscribe(tables ...string) (<-chan Change, func())
}

// ChangeBroker is both halves together.
type ChangeBroker interface {
	ChangePublisher
	ChangeSubscriber
}
