package events

// Handler processes specific event types within a context T
// Collaborators implement this interface to receive routed events
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ctx T, event GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function and a type list to Handler
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, event GameEvent)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, event GameEvent) { h.Fn(ctx, event) }
func (h HandlerFunc[T]) EventTypes() []EventType            { return h.Types }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Context T is passed to handlers (typically the read-only simulation view)
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *EventQueue
	batch    []GameEvent // Reused between dispatches
}

// NewRouter creates a router attached to the given queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue and hands each cue to its handlers in
// registration order; returns the number of cues drained
func (r *Router[T]) DispatchAll(ctx T) int {
	r.batch = r.queue.Drain(r.batch[:0])
	for i := range r.batch {
		ev := r.batch[i]
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	n := len(r.batch)
	clear(r.batch)
	return n
}

// RegisterFunc is Register for a bare function
func (r *Router[T]) RegisterFunc(fn func(ctx T, event GameEvent), types ...EventType) {
	r.Register(HandlerFunc[T]{Types: types, Fn: fn})
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
