package bus

import (
	"errors"
	"testing"
	"time"
)

type testObserver struct {
	publishCount   int
	deliveredCount int
	lastErr        error
}

func (o *testObserver) OnPublish(_ string, _ Event) {
	o.publishCount++
}

func (o *testObserver) OnDelivered(_ string, handlers int, err error, _ time.Duration) {
	o.deliveredCount += handlers
	o.lastErr = err
}

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got Event
	_, err := b.Subscribe("job.traced", func(e Event) error {
		got = e
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err = b.Publish(NewEvent("job.traced", "runner", 123)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got == nil || got.Data() != 123 || got.Source() != "runner" {
		t.Fatalf("handler not called with the event: %#v", got)
	}
	if got.Timestamp().IsZero() {
		t.Fatal("event has no timestamp")
	}
}

func TestPublishOnlyMatchingType(t *testing.T) {
	b := New()
	traced, failed := 0, 0
	_, _ = b.Subscribe("job.traced", func(Event) error { traced++; return nil })
	_, _ = b.Subscribe("job.failed", func(Event) error { failed++; return nil })

	_ = b.Publish(NewEvent("job.traced", "src", nil))
	_ = b.Publish(NewEvent("unknown", "src", nil))
	if traced != 1 || failed != 0 {
		t.Fatalf("routing failed: %d %d", traced, failed)
	}
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	e1, e2 := errors.New("first"), errors.New("second")
	_, _ = b.Subscribe("x", func(Event) error { return e1 })
	_, _ = b.Subscribe("x", func(Event) error { return e2 })

	err := b.Publish(NewEvent("x", "src", nil))
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Fatalf("expected both errors, got %v", err)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	calls := 0
	sub, _ := b.Subscribe("x", func(Event) error { calls++; return nil })
	if !sub.IsActive() || sub.EventType() != "x" || sub.ID() == "" {
		t.Fatalf("unexpected subscription state: %v %q %q", sub.IsActive(), sub.EventType(), sub.ID())
	}

	if err := b.Unsubscribe(sub); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	_ = sub.Cancel()
	_ = b.Unsubscribe(nil)
	_ = b.Publish(NewEvent("x", "src", nil))

	if calls != 0 || sub.IsActive() {
		t.Fatalf("cancelled handler still active: calls=%d", calls)
	}

	if _, err := b.Subscribe("x", nil); err == nil {
		t.Fatal("nil handler accepted")
	}
}

func TestObserverMetricsOptional(t *testing.T) {
	b := New()
	// without observer, publish counters stay zero despite activity
	_, _ = b.Subscribe("e", func(Event) error { return nil })
	_ = b.Publish(NewEvent("e", "s", nil))
	m := b.GetMetrics()
	if m.Published != 0 || m.DeliveredHandlers != 0 {
		t.Fatalf("metrics should be zero without observers: %+v", m)
	}
	if m.SubscribersActive != 1 {
		t.Fatalf("expected one active subscriber, got %d", m.SubscribersActive)
	}

	obs := &testObserver{}
	b.AddObserver(obs)
	_ = b.Publish(NewEvent("e", "s", nil))
	m2 := b.GetMetrics()
	if m2.Published != 1 || m2.DeliveredHandlers != 1 {
		t.Fatalf("metrics should update with observer: %+v", m2)
	}
	if obs.publishCount != 1 || obs.deliveredCount != 1 {
		t.Fatalf("observer not called: %+v", obs)
	}

	b.RemoveObserver(obs)
	_ = b.Publish(NewEvent("e", "s", nil))
	if obs.publishCount != 1 {
		t.Fatalf("removed observer still notified: %+v", obs)
	}
}
