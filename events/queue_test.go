package events

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/zombie-conga/parameter"
)

// TestEventQueueBasic tests basic push and consume operations
func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	event1 := GameEvent{Type: EventCatCaptured, Payload: "test1", Frame: 1, Timestamp: 10 * time.Millisecond}
	event2 := GameEvent{Type: EventEnemyHit, Payload: "test2", Frame: 2, Timestamp: 20 * time.Millisecond}
	event3 := GameEvent{Type: EventRoundEnded, Payload: "test3", Frame: 3, Timestamp: 30 * time.Millisecond}

	eq.Push(event1)
	eq.Push(event2)
	eq.Push(event3)

	if eq.Len() != 3 {
		t.Errorf("Expected length 3 before consume, got %d", eq.Len())
	}

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}

	// Verify events are in FIFO order
	if events[0].Type != EventCatCaptured || events[0].Payload != "test1" {
		t.Errorf("Event 1 mismatch: got type=%v, payload=%v", events[0].Type, events[0].Payload)
	}
	if events[1].Type != EventEnemyHit || events[1].Payload != "test2" {
		t.Errorf("Event 2 mismatch: got type=%v, payload=%v", events[1].Type, events[1].Payload)
	}
	if events[2].Type != EventRoundEnded || events[2].Payload != "test3" {
		t.Errorf("Event 3 mismatch: got type=%v, payload=%v", events[2].Type, events[2].Payload)
	}

	if events2 := eq.Consume(); len(events2) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(events2))
	}
}

// TestEventQueueConcurrent tests concurrent push operations from multiple goroutines
func TestEventQueueConcurrent(t *testing.T) {
	eq := NewEventQueue()
	numGoroutines := 10
	eventsPerGoroutine := 10
	totalEvents := numGoroutines * eventsPerGoroutine

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				eq.Push(GameEvent{
					Type:    EventCatCaptured,
					Payload: goroutineID*100 + j,
					Frame:   int64(j),
				})
			}
		}(i)
	}

	wg.Wait()

	events := eq.Consume()
	if len(events) != totalEvents {
		t.Errorf("Expected %d events, got %d", totalEvents, len(events))
	}

	seen := make(map[int]bool)
	for _, event := range events {
		payload := event.Payload.(int)
		if seen[payload] {
			t.Errorf("Duplicate payload found: %d", payload)
		}
		seen[payload] = true
	}

	if eq.Len() != 0 {
		t.Errorf("Expected queue to be empty, got length %d", eq.Len())
	}
}

// TestEventQueueOverflow tests behavior when pushing more events than buffer size
func TestEventQueueOverflow(t *testing.T) {
	eq := NewEventQueue()
	total := parameter.EventQueueSize + 44

	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventCatCaptured, Payload: i, Frame: int64(i)})
	}

	events := eq.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}

	// Oldest events are overwritten, newest survive
	if first := events[0].Payload.(int); first != 44 {
		t.Errorf("Expected first payload 44, got %d", first)
	}
	if last := events[len(events)-1].Payload.(int); last != total-1 {
		t.Errorf("Expected last payload %d, got %d", total-1, last)
	}

	for i := 1; i < len(events); i++ {
		prev := events[i-1].Payload.(int)
		curr := events[i].Payload.(int)
		if curr != prev+1 {
			t.Errorf("Events not sequential: events[%d]=%d, events[%d]=%d", i-1, prev, i, curr)
		}
	}

	if eq.Dropped() != 44 {
		t.Errorf("Expected 44 dropped, got %d", eq.Dropped())
	}
}

func TestEventQueueDrainReusesBuffer(t *testing.T) {
	eq := NewEventQueue()
	buf := make([]GameEvent, 0, 8)

	eq.Push(GameEvent{Type: EventPursuitStart})
	eq.Push(GameEvent{Type: EventPursuitStop})
	buf = eq.Drain(buf[:0])
	if len(buf) != 2 || cap(buf) != 8 {
		t.Fatalf("Expected 2 events in the original buffer, got len=%d cap=%d", len(buf), cap(buf))
	}

	buf = eq.Drain(buf[:0])
	if len(buf) != 0 {
		t.Errorf("Expected empty drain, got %d", len(buf))
	}
	if eq.Consume() != nil {
		t.Error("Expected nil from Consume on an empty queue")
	}
}

type recordingHandler struct {
	types []EventType
	got   []EventType
}

func (h *recordingHandler) HandleEvent(ctx *int, event GameEvent) {
	*ctx++
	h.got = append(h.got, event.Type)
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

// TestRouterDispatch tests routing by type in FIFO order
func TestRouterDispatch(t *testing.T) {
	eq := NewEventQueue()
	router := NewRouter[*int](eq)

	audio := &recordingHandler{types: []EventType{EventCatCaptured, EventEnemyHit}}
	scene := &recordingHandler{types: []EventType{EventRoundEnded}}
	router.Register(audio)
	router.Register(scene)

	var fn []EventType
	router.RegisterFunc(func(_ *int, ev GameEvent) { fn = append(fn, ev.Type) }, EventEnemyHit)

	if router.HandlerCount(EventEnemyHit) != 2 {
		t.Errorf("Expected 2 handlers for EnemyHit, got %d", router.HandlerCount(EventEnemyHit))
	}
	if router.HasHandlers(EventCatExpired) {
		t.Error("Expected no handlers for CatExpired")
	}

	eq.Push(GameEvent{Type: EventEnemyHit})
	eq.Push(GameEvent{Type: EventCatExpired})
	eq.Push(GameEvent{Type: EventCatCaptured})
	eq.Push(GameEvent{Type: EventRoundEnded})

	calls := 0
	if n := router.DispatchAll(&calls); n != 4 {
		t.Errorf("Expected 4 events consumed, got %d", n)
	}

	if len(audio.got) != 2 || audio.got[0] != EventEnemyHit || audio.got[1] != EventCatCaptured {
		t.Errorf("Audio handler got %v", audio.got)
	}
	if len(scene.got) != 1 || scene.got[0] != EventRoundEnded {
		t.Errorf("Scene handler got %v", scene.got)
	}
	if len(fn) != 1 {
		t.Errorf("Func handler got %v", fn)
	}
	if calls != 3 {
		t.Errorf("Expected 3 context mutations, got %d", calls)
	}

	if n := router.DispatchAll(&calls); n != 0 {
		t.Errorf("Expected empty dispatch, got %d", n)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventRoundEnded.String() != "RoundEnded" {
		t.Errorf("Expected RoundEnded, got %s", EventRoundEnded.String())
	}
	if EventType(99).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", EventType(99).String())
	}
}
