package audit

import (
	"sync"

	"github.com/rs/zerolog"
)

type Event struct {
	UserID   *int64
	Action   string
	Entity   string
	EntityID *int64
	Metadata any
}

// Dispatcher hands events to a single worker. It never blocks the caller:
// when the queue is full the event is dropped.
type Dispatcher struct {
	sink  Sink
	log   zerolog.Logger
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Record(ev); err != nil {
			d.log.Warn().Err(err).Str("action", ev.Action).Msg("audit error")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	defer func() {
		// Dispatch after Close is dropped.
		_ = recover()
	}()
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains queued events and stops the worker.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}

func ID(v int64) *int64 {
	return &v
}
