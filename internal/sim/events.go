package sim

import "github.com/go-gl/mathgl/mgl64"

// EventType names a signal raised by Simulation.Step.
type EventType uint8

const (
	EventImpact EventType = iota
	EventDriftStart
	EventDriftStop

	eventTypeCount
)

func (t EventType) String() string {
	switch t {
	case EventImpact:
		return "impact"
	case EventDriftStart:
		return "drift_start"
	case EventDriftStop:
		return "drift_stop"
	}
	return "unknown"
}

// Event carries the vehicle state at the tick the signal was raised.
// Speed is the post-damping speed for EventImpact.
type Event struct {
	Type     EventType
	Tick     uint64
	Position mgl64.Vec3
	Speed    float64
}

type EventHandler func(Event)

type subscriber struct {
	id int
	fn EventHandler
}

// EventBus fans simulation signals out to the host (audio, backdrop).
// Handlers run synchronously on the goroutine calling Step, in the order
// they subscribed, and must not block or call Step.
type EventBus struct {
	subs   [eventTypeCount][]subscriber
	nextID int
}

func NewEventBus() *EventBus { return &EventBus{} }

// Subscribe registers fn for t. The returned cancel removes it; calling
// cancel more than once is harmless.
func (b *EventBus) Subscribe(t EventType, fn EventHandler) (cancel func()) {
	if t >= eventTypeCount || fn == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs[t] = append(b.subs[t], subscriber{id: id, fn: fn})
	return func() {
		list := b.subs[t]
		for i, s := range list {
			if s.id == id {
				b.subs[t] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

func (b *EventBus) Emit(e Event) {
	if e.Type >= eventTypeCount {
		return
	}
	for _, s := range b.subs[e.Type] {
		s.fn(e)
	}
}
