package minigolf

import (
	"testing"

	"github.com/akmonengine/minigolf/actor"
	"github.com/akmonengine/minigolf/constraint"
	"github.com/go-gl/mathgl/mgl64"
)

// createTestBall creates a ball for event testing, moving or at rest
func createTestBall(t *testing.T, moving bool) *actor.Object {
	t.Helper()

	ball, err := actor.NewBall("ball", actor.Point(0, 0.1, 0), 0.1, 0.2)
	if err != nil {
		t.Fatalf("NewBall() error = %v", err)
	}
	if moving {
		ball.Body.SetVelocity(actor.Direction(1, 0, 0))
	}
	return ball
}

// createTestContact creates a ContactConstraint for testing
func createTestContact(ball, obstacle *actor.Object, response constraint.Response) *constraint.ContactConstraint {
	return &constraint.ContactConstraint{
		Ball:     ball,
		Obstacle: obstacle,
		Normal:   actor.Up,
		Response: response,
	}
}

type eventCapture struct {
	events []Event
}

func (ec *eventCapture) capture(event Event) {
	ec.events = append(ec.events, event)
}

func (ec *eventCapture) reset() {
	ec.events = ec.events[:0]
}

func (ec *eventCapture) count() int {
	return len(ec.events)
}

func (ec *eventCapture) countType(eventType EventType) int {
	n := 0
	for _, e := range ec.events {
		if e.Type() == eventType {
			n++
		}
	}
	return n
}

func (ec *eventCapture) hasEventType(eventType EventType) bool {
	return ec.countType(eventType) > 0
}

func subscribeAll(events *Events, capture *eventCapture) {
	for t := TRIGGER_ENTER; t <= ON_MOVE; t++ {
		events.Subscribe(t, capture.capture)
	}
}

// =============================================================================
// Subscribe and Listeners Tests
// =============================================================================

func TestEvents_Subscribe(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}

	events.Subscribe(COLLISION_ENTER, capture.capture)

	if len(events.listeners[COLLISION_ENTER]) != 1 {
		t.Errorf("Expected 1 listener for COLLISION_ENTER, got %d", len(events.listeners[COLLISION_ENTER]))
	}
}

func TestEvents_MultipleListeners(t *testing.T) {
	events := NewEvents()
	first := &eventCapture{}
	second := &eventCapture{}

	events.Subscribe(OUT_OF_BOUNDS, first.capture)
	events.Subscribe(OUT_OF_BOUNDS, second.capture)

	ball := createTestBall(t, true)
	events.emitOutOfBounds(ball, nil)
	events.flush()

	if first.count() != 1 || second.count() != 1 {
		t.Errorf("Expected both listeners to receive 1 event, got %d and %d", first.count(), second.count())
	}
}

func TestEventType_String(t *testing.T) {
	tests := []struct {
		eventType EventType
		expected  string
	}{
		{TRIGGER_ENTER, "trigger_enter"},
		{COLLISION_EXIT, "collision_exit"},
		{HOLE_SUNK, "hole_sunk"},
		{OUT_OF_BOUNDS, "out_of_bounds"},
		{ON_REST, "on_rest"},
		{ON_MOVE, "on_move"},
		{EventType(200), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.eventType.String(); got != tt.expected {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.eventType, got, tt.expected)
		}
	}
}

// =============================================================================
// Collision Events Tests
// =============================================================================

func TestEvents_CollisionEnterStayExit(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	ball := createTestBall(t, true)
	wall := actor.NewPlane("wall", actor.Point(1, 0, 0), actor.Direction(-1, 0, 0))

	// Frame 1: Enter
	events.recordContacts([]*constraint.ContactConstraint{createTestContact(ball, wall, constraint.ResponseBounce)})
	events.flush()
	if capture.count() != 1 || !capture.hasEventType(COLLISION_ENTER) {
		t.Fatalf("Expected a single COLLISION_ENTER, got %v", capture.events)
	}
	enter := capture.events[0].(CollisionEnterEvent)
	if enter.Ball != ball || enter.Obstacle != wall {
		t.Errorf("CollisionEnterEvent carries the wrong objects")
	}

	// Frame 2: Stay
	capture.reset()
	events.recordContacts([]*constraint.ContactConstraint{createTestContact(ball, wall, constraint.ResponseBounce)})
	events.flush()
	if capture.count() != 1 || !capture.hasEventType(COLLISION_STAY) {
		t.Fatalf("Expected a single COLLISION_STAY, got %v", capture.events)
	}

	// Frame 3: Exit
	capture.reset()
	events.flush()
	if capture.count() != 1 || !capture.hasEventType(COLLISION_EXIT) {
		t.Fatalf("Expected a single COLLISION_EXIT, got %v", capture.events)
	}

	// Frame 4: nothing
	capture.reset()
	events.flush()
	if capture.count() != 0 {
		t.Errorf("Expected no events once the pair is gone, got %v", capture.events)
	}
}

func TestEvents_CollisionStay_RestingBall(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(COLLISION_STAY, capture.capture)

	ball := createTestBall(t, false)
	floor := actor.NewPlane("floor", actor.Point(0, 0, 0), actor.Up)

	for i := 0; i < 3; i++ {
		events.recordContacts([]*constraint.ContactConstraint{createTestContact(ball, floor, constraint.ResponseBounce)})
		events.flush()
	}

	if capture.count() != 0 {
		t.Errorf("Expected no COLLISION_STAY for a resting ball, got %d", capture.count())
	}
}

// =============================================================================
// Trigger Events Tests
// =============================================================================

func TestEvents_HoleIsTrigger(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	ball := createTestBall(t, true)
	hole := actor.NewHole("hole", actor.Point(0, -0.5, 0), 0.25, 1)

	events.recordContacts([]*constraint.ContactConstraint{createTestContact(ball, hole, constraint.ResponseRelease)})
	events.flush()
	if capture.count() != 1 || !capture.hasEventType(TRIGGER_ENTER) {
		t.Fatalf("Expected a single TRIGGER_ENTER, got %v", capture.events)
	}

	capture.reset()
	events.recordContacts([]*constraint.ContactConstraint{createTestContact(ball, hole, constraint.ResponseRelease)})
	events.flush()
	if capture.count() != 1 || !capture.hasEventType(TRIGGER_STAY) {
		t.Fatalf("Expected a single TRIGGER_STAY, got %v", capture.events)
	}

	capture.reset()
	events.flush()
	if capture.count() != 1 || !capture.hasEventType(TRIGGER_EXIT) {
		t.Fatalf("Expected a single TRIGGER_EXIT, got %v", capture.events)
	}
}

func TestEvents_HoleSunkOnce(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(HOLE_SUNK, capture.capture)

	ball := createTestBall(t, true)
	hole := actor.NewHole("hole", actor.Point(0, -0.5, 0), 0.25, 1)

	// Falling through the column does not sink the ball
	events.recordContacts([]*constraint.ContactConstraint{createTestContact(ball, hole, constraint.ResponseRelease)})
	events.flush()
	if capture.count() != 0 {
		t.Fatalf("Expected no HOLE_SUNK before reaching the bottom, got %d", capture.count())
	}

	// Bouncing on the bottom, several frames in a row
	for i := 0; i < 5; i++ {
		events.recordContacts([]*constraint.ContactConstraint{createTestContact(ball, hole, constraint.ResponseBounce)})
		events.flush()
	}
	if capture.count() != 1 {
		t.Fatalf("Expected exactly 1 HOLE_SUNK, got %d", capture.count())
	}
	sunk := capture.events[0].(HoleSunkEvent)
	if sunk.Ball != ball || sunk.Hole != hole {
		t.Errorf("HoleSunkEvent carries the wrong objects")
	}

	// Leaving and coming back sinks the ball again
	events.flush()
	events.recordContacts([]*constraint.ContactConstraint{createTestContact(ball, hole, constraint.ResponseBounce)})
	events.flush()
	if capture.count() != 2 {
		t.Errorf("Expected a second HOLE_SUNK after the pair exited, got %d", capture.count())
	}
}

// =============================================================================
// Rest/Move Events Tests
// =============================================================================

func TestEvents_RestAndMove(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	ball := createTestBall(t, true)

	// First frame only records the state
	events.processRestEvents(ball)
	events.flush()
	if capture.count() != 0 {
		t.Fatalf("Expected no event on the first frame, got %v", capture.events)
	}

	ball.Body.ResetVelocity()
	events.processRestEvents(ball)
	events.flush()
	if capture.count() != 1 || !capture.hasEventType(ON_REST) {
		t.Fatalf("Expected ON_REST, got %v", capture.events)
	}

	// Still resting: no duplicate
	capture.reset()
	events.processRestEvents(ball)
	events.flush()
	if capture.count() != 0 {
		t.Fatalf("Expected no event while resting, got %v", capture.events)
	}

	ball.Body.SetVelocity(actor.Direction(0, 0, 2))
	events.processRestEvents(ball)
	events.flush()
	if capture.count() != 1 || !capture.hasEventType(ON_MOVE) {
		t.Fatalf("Expected ON_MOVE, got %v", capture.events)
	}
}

// =============================================================================
// Buffer Tests
// =============================================================================

func TestEvents_OutOfBounds(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(OUT_OF_BOUNDS, capture.capture)

	ball := createTestBall(t, true)
	box := actor.NewBox("hazard", actor.Point(2, 0.5, 0), 1, 1, 1)

	events.emitOutOfBounds(ball, box)
	events.emitOutOfBounds(ball, nil)
	events.flush()

	if capture.count() != 2 {
		t.Fatalf("Expected 2 OUT_OF_BOUNDS, got %d", capture.count())
	}
	if capture.events[0].(OutOfBoundsEvent).Obstacle != box {
		t.Errorf("First OutOfBoundsEvent should name the box")
	}
	if capture.events[1].(OutOfBoundsEvent).Obstacle != nil {
		t.Errorf("Second OutOfBoundsEvent should have no obstacle")
	}
}

func TestEvents_Flush_ClearsBuffer(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(OUT_OF_BOUNDS, capture.capture)

	events.emitOutOfBounds(createTestBall(t, true), nil)
	events.flush()
	events.flush()

	if capture.count() != 1 {
		t.Errorf("Expected the buffer to be cleared after flush, got %d events", capture.count())
	}
	if len(events.buffer) != 0 {
		t.Errorf("Expected empty buffer, got %d", len(events.buffer))
	}
}

func TestEvents_NoListeners(t *testing.T) {
	events := NewEvents()

	ball := createTestBall(t, true)
	hole := actor.NewHole("hole", mgl64.Vec4{0, -0.5, 0, 1}, 0.25, 1)
	events.recordContacts([]*constraint.ContactConstraint{createTestContact(ball, hole, constraint.ResponseBounce)})
	events.emitOutOfBounds(ball, nil)

	// Should not panic
	events.flush()
}

func TestEvents_Forget(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	ball := createTestBall(t, true)
	wall := actor.NewPlane("wall", actor.Point(1, 0, 0), actor.Direction(-1, 0, 0))

	events.recordContacts([]*constraint.ContactConstraint{createTestContact(ball, wall, constraint.ResponseBounce)})
	events.flush()

	capture.reset()
	events.forget(wall)
	events.flush()

	if capture.count() != 0 {
		t.Errorf("Expected no COLLISION_EXIT for a forgotten obstacle, got %v", capture.events)
	}
}
