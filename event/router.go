package event

// Handler consumes routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously at the end of the tick that produced it
	HandleEvent(ev Event)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches queued events to registered handlers
// Single-threaded dispatch; handlers run in registration order
type Router struct {
	handlers map[EventType][]Handler
	queue    *Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *Queue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order
// Returns the number of events consumed, routed or not
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
