package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cashu-wallet-service/internal/core/domain"

	"github.com/rs/zerolog"
)

// EventObserver drains the engine's event stream on a dedicated goroutine,
// logging every event and fanning it out to subscribers. It never mutates
// wallet state; its main consumer besides the log is test synchronization
// against background processing.
type EventObserver struct {
	log zerolog.Logger

	mu     sync.Mutex
	nextID int
	subs   map[domain.EventKind]map[int]func(domain.Event)
	done   chan struct{}
}

// NewEventObserver creates a new EventObserver.
func NewEventObserver(log zerolog.Logger) *EventObserver {
	return &EventObserver{
		log:  log,
		subs: make(map[domain.EventKind]map[int]func(domain.Event)),
		done: make(chan struct{}),
	}
}

// Run consumes events until the channel is closed or ctx is cancelled.
// Intended to run as `go observer.Run(ctx, engine.Events())`.
func (o *EventObserver) Run(ctx context.Context, events <-chan domain.Event) {
	defer close(o.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			o.dispatch(ev)
		}
	}
}

// Done is closed once Run has returned.
func (o *EventObserver) Done() <-chan struct{} {
	return o.done
}

// Subscribe registers a fire-and-forget callback for one event kind and
// returns an unsubscribe func. Callbacks run on the observer goroutine and
// must not block.
func (o *EventObserver) Subscribe(kind domain.EventKind, fn func(domain.Event)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++
	if o.subs[kind] == nil {
		o.subs[kind] = make(map[int]func(domain.Event))
	}
	o.subs[kind][id] = fn

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subs[kind], id)
	}
}

// WaitFor blocks until an event of the given kind matching the predicate
// arrives, the timeout elapses, or ctx is cancelled. A nil predicate matches
// any event of the kind.
func (o *EventObserver) WaitFor(ctx context.Context, kind domain.EventKind, pred func(domain.Event) bool, timeout time.Duration) (*domain.Event, error) {
	matched := make(chan domain.Event, 1)
	unsubscribe := o.Subscribe(kind, func(ev domain.Event) {
		if pred != nil && !pred(ev) {
			return
		}
		select {
		case matched <- ev:
		default:
		}
	})
	defer unsubscribe()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-matched:
		return &ev, nil
	case <-timer.C:
		return nil, fmt.Errorf("timed out after %s waiting for %s event", timeout, kind)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (o *EventObserver) dispatch(ev domain.Event) {
	o.log.Info().
		Str("event", string(ev.Kind)).
		Time("at", ev.At).
		Str("mint_url", ev.MintURL).
		Str("quote_id", ev.QuoteID).
		Uint64("amount", ev.Amount).
		Msg("wallet event")

	o.mu.Lock()
	fns := make([]func(domain.Event), 0, len(o.subs[ev.Kind]))
	for _, fn := range o.subs[ev.Kind] {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
