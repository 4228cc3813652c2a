package trace

import (
	"time"

	"github.com/zeusync/voxkit/internal/core/events/bus"
	"github.com/zeusync/voxkit/internal/core/observability/log"
)

var _ bus.EventBusObserver = (*deliveryLog)(nil)

// deliveryLog reports every event delivery at debug level. Registering it also
// turns on the bus counters that Run adds to its summary.
type deliveryLog struct {
	log log.Log
}

func (d *deliveryLog) OnPublish(string, bus.Event) {}

func (d *deliveryLog) OnDelivered(eventType string, handlers int, err error, took time.Duration) {
	fields := []log.Field{
		log.String("event", eventType),
		log.Int("handlers", handlers),
		log.Duration("took", took),
	}
	if err != nil {
		fields = append(fields, log.Error(err))
	}
	d.log.Debug("event delivered", fields...)
}
