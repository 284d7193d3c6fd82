package sim

// EventKind names an event type.
type EventKind string

const (
	KindRestock          EventKind = "restock"
	KindFixEquipment     EventKind = "fix_equipment"
	KindDestroyEquipment EventKind = "destroy_equipment"
)

// Event is something that happened during a frame.
// It is a sealed interface; only this package implements it.
type Event interface {
	Kind() EventKind
	simEvent()
}

// RestockEvent is emitted when the player refills repair kits at the van.
type RestockEvent struct {
	Kits int
}

// FixEquipmentEvent is emitted when a broken unit is repaired.
type FixEquipmentEvent struct {
	Equipment EquipmentSnapshot
}

// DestroyEquipmentEvent is emitted when a working unit fails.
type DestroyEquipmentEvent struct {
	Equipment EquipmentSnapshot
}

func (RestockEvent) Kind() EventKind          { return KindRestock }
func (FixEquipmentEvent) Kind() EventKind     { return KindFixEquipment }
func (DestroyEquipmentEvent) Kind() EventKind { return KindDestroyEquipment }

func (RestockEvent) simEvent()          {}
func (FixEquipmentEvent) simEvent()     {}
func (DestroyEquipmentEvent) simEvent() {}

// EventQueue is a FIFO of events with a single consumer.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Pop removes and returns the oldest event.
func (q *EventQueue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = nil
	}
	return e, true
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain removes and returns all pending events, oldest first.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}
