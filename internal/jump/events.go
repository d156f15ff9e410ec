package jump

import "github.com/go-gl/mathgl/mgl64"

type EventType int

const (
	EventRoundStarted EventType = iota
	EventChargeStarted
	EventJumped
	EventLanded
	EventPlatformSpawned
	EventGameOver
)

type Event struct {
	Type     EventType
	Position mgl64.Vec3 // agent or platform position, by type
	Velocity mgl64.Vec3 // launch velocity for EventJumped

	Score     int
	Reward    int
	Precise   bool
	Precision float64
	Reason    string // why the round ended
}

type EventHandler func(Event)

// EventBus fans gameplay events out to cosmetic listeners. Handlers run
// synchronously on the tick goroutine and must not call back into Game.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
