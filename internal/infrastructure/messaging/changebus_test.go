package messaging

import (
	"log/slog"
	"testing"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
)

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		DefaultLevel: slog.LevelError + 4,
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return logger
}

func receiveChange(t *testing.T, ch <-chan Change) Change {
	t.Helper()
	select {
	case change := <-ch:
		return change
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for change")
		return Change{}
	}
}

func TestChangeBus_PublishToSubscribedTable(t *testing.T) {
	bus := NewChangeBus(4, testLogger(t))

	changes, cancel := bus.Subscribe("journeys")
	defer cancel()

	bus.Publish(Change{Table: "journeys", Op: OpInsert, RowID: "j1"})

	got := receiveChange(t, changes)
	if got.Table != "journeys" || got.Op != OpInsert || got.RowID != "j1" {
		t.Fatalf("unexpected change: %+v", got)
	}
	if got.At.IsZero() {
		t.Fatal("publish should stamp the event time")
	}
}

func TestChangeBus_TableFiltering(t *testing.T) {
	bus := NewChangeBus(4, testLogger(t))

	changes, cancel := bus.Subscribe("enquiries")
	defer cancel()

	bus.Publish(Change{Table: "journeys", Op: OpUpdate, RowID: "j1"})
	bus.Publish(Change{Table: "enquiries", Op: OpInsert, RowID: "e1"})

	got := receiveChange(t, changes)
	if got.Table != "enquiries" {
		t.Fatalf("expected only enquiries events, got %+v", got)
	}
	select {
	case extra := <-changes:
		t.Fatalf("unexpected extra change: %+v", extra)
	default:
	}
}

func TestChangeBus_WildcardSubscription(t *testing.T) {
	bus := NewChangeBus(4, testLogger(t))

	changes, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(Change{Table: "destinations", Op: OpDelete, RowID: "d1"})

	got := receiveChange(t, changes)
	if got.Table != "destinations" {
		t.Fatalf("wildcard subscriber missed event: %+v", got)
	}
}

func TestChangeBus_MultipleSubscribersSameTable(t *testing.T) {
	bus := NewChangeBus(4, testLogger(t))

	first, cancelFirst := bus.Subscribe("posts")
	defer cancelFirst()
	second, cancelSecond := bus.Subscribe("posts")
	defer cancelSecond()

	bus.Publish(Change{Table: "posts", Op: OpInsert, RowID: "p1"})

	if got := receiveChange(t, first); got.RowID != "p1" {
		t.Fatalf("first subscriber got %+v", got)
	}
	if got := receiveChange(t, second); got.RowID != "p1" {
		t.Fatalf("second subscriber got %+v", got)
	}
}

func TestChangeBus_CancelClosesChannelAndIsIdempotent(t *testing.T) {
	bus := NewChangeBus(4, testLogger(t))

	changes, cancel := bus.Subscribe("journeys")

	cancel()
	cancel() // second call must be a no-op

	if _, open := <-changes; open {
		t.Fatal("expected channel to be closed after cancel")
	}
	if count := bus.SubscriberCount(); count != 0 {
		t.Fatalf("expected 0 subscribers after cancel, got %d", count)
	}

	// Publishing after cancel must not panic.
	bus.Publish(Change{Table: "journeys", Op: OpUpdate, RowID: "j2"})
}

func TestChangeBus_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := NewChangeBus(1, testLogger(t))

	_, cancel := bus.Subscribe("journeys")
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			bus.Publish(Change{Table: "journeys", Op: OpInsert, RowID: "j"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	if bus.DroppedCount() == 0 {
		t.Fatal("expected dropped events to be counted")
	}
}
