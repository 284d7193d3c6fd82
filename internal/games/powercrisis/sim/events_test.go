package sim

import "testing"

func TestEventQueueFIFO(t *testing.T) {
	var q EventQueue

	q.Push(RestockEvent{Kits: 5})
	q.Push(DestroyEquipmentEvent{Equipment: EquipmentSnapshot{Index: 1, Broken: true}})
	q.Push(FixEquipmentEvent{Equipment: EquipmentSnapshot{Index: 1}})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	expected := []EventKind{KindRestock, KindDestroyEquipment, KindFixEquipment}
	for i, kind := range expected {
		e, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() %d returned nothing", i)
		}
		if e.Kind() != kind {
			t.Errorf("event %d kind = %s, expected %s", i, e.Kind(), kind)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Error("queue should be empty")
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(RestockEvent{Kits: 1})
	q.Push(RestockEvent{Kits: 2})

	events := q.Drain()
	if len(events) != 2 || events[0].(RestockEvent).Kits != 1 {
		t.Errorf("Drain() = %v", events)
	}
	if q.Len() != 0 {
		t.Error("Drain should empty the queue")
	}
	if len(q.Drain()) != 0 {
		t.Error("second Drain should return nothing")
	}
}
