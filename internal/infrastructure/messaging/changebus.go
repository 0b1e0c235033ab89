// Package messaging provides the in-process change bus that fans table
// mutations out to SSE and websocket consumers.
package messaging

import (
	"sync"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
)

// WildcardTable subscribes a consumer to every table.
const WildcardTable = "*"

type subscriber struct {
	ch     chan Change
	tables map[string]bool
}

// ChangeBus is a table-keyed pub/sub hub. Channels are buffered and sends
// never block: a consumer that stops draining loses messages rather than
// stalling publishers.
type ChangeBus struct {
	mu      sync.Mutex
	subs    map[int]*subscriber
	nextID  int
	buffer  int
	logger  *logging.ChanneledLogger
	dropped int64
}

func NewChangeBus(buffer int, logger *logging.ChanneledLogger) *ChangeBus {
	if buffer <= 0 {
		buffer = 16
	}
	return &ChangeBus{
		subs:   make(map[int]*subscriber),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a consumer for the named tables (or everything, via
// WildcardTable / no arguments). The cancel func is idempotent and closes
// the channel so range loops terminate.
func (b *ChangeBus) Subscribe(tables ...string) (<-chan Change, func()) {
	tableSet := make(map[string]bool, len(tables))
	for _, table := range tables {
		if table != "" {
			tableSet[table] = true
		}
	}
	if len(tableSet) == 0 {
		tableSet[WildcardTable] = true
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	sub := &subscriber{ch: make(chan Change, b.buffer), tables: tableSet}
	b.subs[id] = sub
	count := len(b.subs)
	b.mu.Unlock()

	b.logger.SSE().Debug("Change subscriber registered", "id", id, "tables", tables, "active", count)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub.ch)
			}
			remaining := len(b.subs)
			b.mu.Unlock()
			b.logger.SSE().Debug("Change subscriber unregistered", "id", id, "active", remaining)
		})
	}
	return sub.ch, cancel
}

// Publish delivers a change to every subscriber watching its table.
func (b *ChangeBus) Publish(change Change) {
	if change.At.IsZero() {
		change.At = time.Now().UTC()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for id, sub := range b.subs {
		if !sub.tables[change.Table] && !sub.tables[WildcardTable] {
			continue
		}
		select {
		case sub.ch <- change:
		default:
			b.dropped++
			b.logger.SSE().Warn("Change channel full, message dropped",
				"subscriber", id, "table", change.Table, "op", change.Op)
		}
	}
}

// SubscriberCount reports the number of live subscriptions.
func (b *ChangeBus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// DroppedCount reports how many messages were discarded on full channels.
func (b *ChangeBus) DroppedCount() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}
