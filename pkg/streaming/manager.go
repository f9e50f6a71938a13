// Package streaming buffers, transforms, filters, and delivers lifecycle
// events to subscribers.
package streaming

import (
	"log/slog"
	"sync"
	"time"

	"github.com/loom-agents/loom/pkg/models"
)

// Transformer rewrites or filters events before delivery. Transformers are
// pure values: a name for removal, an optional filter predicate, and an
// optional transform.
type Transformer struct {
	Name string
	// Filter drops the event when it returns false. Nil keeps everything.
	Filter func(event models.Event) bool
	// Transform rewrites the event. A transform error never aborts the
	// emitter: it is logged and the original event is forwarded unchanged.
	Transform func(event models.Event) (models.Event, error)
}

// SubscriberFunc receives a delivered batch. Batches hold one event when
// buffering is disabled.
type SubscriberFunc func(events []models.Event)

// Options configures a Manager.
type Options struct {
	// BufferSize > 1 enables batching: events queue until the buffer fills
	// or FlushInterval elapses after the first buffered event.
	BufferSize    int
	FlushInterval time.Duration
}

// Manager applies the transformer chain and delivers events to the
// subscriber set.
//
// Ordering contract: within a single thread ID, events are delivered in
// emission order — Emit and Flush are mutually exclusive for the same
// buffer and delivery happens under the same serialisation. Across thread
// IDs no ordering is guaranteed.
type Manager struct {
	mu           sync.Mutex
	transformers []Transformer
	subscribers  map[string]SubscriberFunc
	opts         Options
	buffer       []models.Event
	flushTimer   *time.Timer
	logger       *slog.Logger
}

// NewManager creates a streaming manager.
func NewManager(opts Options) *Manager {
	return &Manager{
		subscribers: make(map[string]SubscriberFunc),
		opts:        opts,
		logger:      slog.Default(),
	}
}

// AddTransformer appends a transformer; the chain runs in insertion order.
func (m *Manager) AddTransformer(t Transformer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transformers = append(m.transformers, t)
}

// RemoveTransformer removes the named transformer. Unknown names are a
// no-op.
func (m *Manager) RemoveTransformer(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.transformers {
		if t.Name == name {
			m.transformers = append(m.transformers[:i], m.transformers[i+1:]...)
			return
		}
	}
}

// Subscribe registers a subscriber under a name, replacing any previous
// registration of that name.
func (m *Manager) Subscribe(name string, fn SubscriberFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers[name] = fn
}

// Unsubscribe removes a subscriber.
func (m *Manager) Unsubscribe(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subscribers, name)
}

// Emit runs the event through the transformer chain and either delivers it
// immediately or buffers it for a batched flush.
func (m *Manager) Emit(event models.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	transformed, dropped := m.applyTransformers(event)
	if dropped {
		return
	}

	if m.opts.BufferSize <= 1 {
		m.deliverLocked([]models.Event{transformed})
		return
	}

	m.buffer = append(m.buffer, transformed)
	if len(m.buffer) >= m.opts.BufferSize {
		m.flushLocked()
		return
	}
	if m.flushTimer == nil {
		m.flushTimer = time.AfterFunc(m.opts.FlushInterval, m.Flush)
	}
}

// Flush delivers any buffered events as a single batch and clears the
// flush timer. Safe to call at any time, including from the timer.
func (m *Manager) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushLocked()
}

// applyTransformers runs the chain in order. Caller holds m.mu.
func (m *Manager) applyTransformers(event models.Event) (models.Event, bool) {
	for _, t := range m.transformers {
		if t.Filter != nil && !t.Filter(event) {
			return event, true
		}
		if t.Transform == nil {
			continue
		}
		transformed, err := t.Transform(event)
		if err != nil {
			m.logger.Warn("Event transformer failed, forwarding original",
				"transformer", t.Name, "event_type", event.Type, "error", err)
			continue
		}
		event = transformed
	}
	return event, false
}

// flushLocked delivers the buffer and stops the timer. Caller holds m.mu.
func (m *Manager) flushLocked() {
	if m.flushTimer != nil {
		m.flushTimer.Stop()
		m.flushTimer = nil
	}
	if len(m.buffer) == 0 {
		return
	}
	batch := m.buffer
	m.buffer = nil
	m.deliverLocked(batch)
}

// deliverLocked fans a batch out to every subscriber. Caller holds m.mu —
// delivery under the lock is what guarantees per-thread emission order.
func (m *Manager) deliverLocked(batch []models.Event) {
	for name, fn := range m.subscribers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					m.logger.Error("Subscriber panicked",
						"subscriber", name, "panic", r)
				}
			}()
			fn(batch)
		}()
	}
}
