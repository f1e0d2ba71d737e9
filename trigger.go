package minigolf

import (
	"github.com/akmonengine/minigolf/actor"
	"github.com/akmonengine/minigolf/constraint"
)

const (
	TRIGGER_ENTER EventType = iota
	COLLISION_ENTER
	TRIGGER_STAY
	COLLISION_STAY
	TRIGGER_EXIT
	COLLISION_EXIT
	HOLE_SUNK
	OUT_OF_BOUNDS
	ON_REST
	ON_MOVE
)

// pairKey identifies a ball touching an obstacle. The ball is always first.
type pairKey struct {
	ball     *actor.Object
	obstacle *actor.Object
}

// isTrigger reports whether a pair raises trigger events instead of collision events.
// Holes are the only triggers of a course.
func (p pairKey) isTrigger() bool {
	return p.obstacle.Shape == actor.ShapeTypeCylinder
}

type EventType uint8

func (t EventType) String() string {
	switch t {
	case TRIGGER_ENTER:
		return "trigger_enter"
	case COLLISION_ENTER:
		return "collision_enter"
	case TRIGGER_STAY:
		return "trigger_stay"
	case COLLISION_STAY:
		return "collision_stay"
	case TRIGGER_EXIT:
		return "trigger_exit"
	case COLLISION_EXIT:
		return "collision_exit"
	case HOLE_SUNK:
		return "hole_sunk"
	case OUT_OF_BOUNDS:
		return "out_of_bounds"
	case ON_REST:
		return "on_rest"
	case ON_MOVE:
		return "on_move"
	default:
		return "unknown"
	}
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Trigger events
type TriggerEnterEvent struct {
	Ball     *actor.Object
	Obstacle *actor.Object
}

func (e TriggerEnterEvent) Type() EventType { return TRIGGER_ENTER }

type TriggerStayEvent struct {
	Ball     *actor.Object
	Obstacle *actor.Object
}

func (e TriggerStayEvent) Type() EventType { return TRIGGER_STAY }

type TriggerExitEvent struct {
	Ball     *actor.Object
	Obstacle *actor.Object
}

func (e TriggerExitEvent) Type() EventType { return TRIGGER_EXIT }

// Collision events
type CollisionEnterEvent struct {
	Ball     *actor.Object
	Obstacle *actor.Object
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	Ball     *actor.Object
	Obstacle *actor.Object
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	Ball     *actor.Object
	Obstacle *actor.Object
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// HoleSunkEvent is sent once when the ball lands on the bottom of a hole.
type HoleSunkEvent struct {
	Ball *actor.Object
	Hole *actor.Object
}

func (e HoleSunkEvent) Type() EventType { return HOLE_SUNK }

// OutOfBoundsEvent is sent when the ball was put back at the recovery point.
// Obstacle is the box touched, or nil when the ball left the course bounds.
type OutOfBoundsEvent struct {
	Ball     *actor.Object
	Obstacle *actor.Object
}

func (e OutOfBoundsEvent) Type() EventType { return OUT_OF_BOUNDS }

// Rest/Move events
type RestEvent struct {
	Ball *actor.Object
}

func (e RestEvent) Type() EventType { return ON_REST }

type MoveEvent struct {
	Ball *actor.Object
}

func (e MoveEvent) Type() EventType { return ON_MOVE }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Contact tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool

	// Holes already sunk while their trigger pair is active
	sunk map[pairKey]bool

	restStates map[*actor.Object]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 64),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
		sunk:                make(map[pairKey]bool),
		restStates:          make(map[*actor.Object]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordContacts marks the pairs in contact this frame. A bounce on the
// bottom of a hole sinks the ball.
func (e *Events) recordContacts(constraints []*constraint.ContactConstraint) {
	for _, c := range constraints {
		pair := pairKey{ball: c.Ball, obstacle: c.Obstacle}
		e.currentActivePairs[pair] = true

		if pair.isTrigger() && c.Response == constraint.ResponseBounce && !e.sunk[pair] {
			e.sunk[pair] = true
			e.buffer = append(e.buffer, HoleSunkEvent{Ball: c.Ball, Hole: c.Obstacle})
		}
	}
}

// emitOutOfBounds emits an out of bounds event (called after a recovery)
func (e *Events) emitOutOfBounds(ball, obstacle *actor.Object) {
	e.buffer = append(e.buffer, OutOfBoundsEvent{Ball: ball, Obstacle: obstacle})
}

// forget drops every pair involving obstacle, without Exit events.
func (e *Events) forget(obstacle *actor.Object) {
	for _, pairs := range []map[pairKey]bool{e.previousActivePairs, e.currentActivePairs, e.sunk} {
		for pair := range pairs {
			if pair.obstacle == obstacle {
				delete(pairs, pair)
			}
		}
	}
}

// processContactEvents compares current and previous pairs to detect Enter/Stay/Exit
func (e *Events) processContactEvents() {
	// Detect Enter and Stay events
	for pair := range e.currentActivePairs {
		isTrigger := pair.isTrigger()

		if e.previousActivePairs[pair] {
			// Skip if the ball is resting, to avoid spamming events
			if pair.ball.Body.IsResting() {
				continue
			}

			if isTrigger {
				e.buffer = append(e.buffer, TriggerStayEvent{Ball: pair.ball, Obstacle: pair.obstacle})
			} else {
				e.buffer = append(e.buffer, CollisionStayEvent{Ball: pair.ball, Obstacle: pair.obstacle})
			}
		} else {
			if isTrigger {
				e.buffer = append(e.buffer, TriggerEnterEvent{Ball: pair.ball, Obstacle: pair.obstacle})
			} else {
				e.buffer = append(e.buffer, CollisionEnterEvent{Ball: pair.ball, Obstacle: pair.obstacle})
			}
		}
	}

	// Detect Exit events
	for pair := range e.previousActivePairs {
		if e.currentActivePairs[pair] {
			continue
		}

		if pair.isTrigger() {
			delete(e.sunk, pair)
			e.buffer = append(e.buffer, TriggerExitEvent{Ball: pair.ball, Obstacle: pair.obstacle})
		} else {
			e.buffer = append(e.buffer, CollisionExitEvent{Ball: pair.ball, Obstacle: pair.obstacle})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

func (e *Events) processRestEvents(ball *actor.Object) {
	resting := ball.Body.IsResting()

	trackedState, exists := e.restStates[ball]
	if !exists {
		e.restStates[ball] = resting
		return
	}

	if !trackedState && resting {
		e.buffer = append(e.buffer, RestEvent{Ball: ball})
	} else if trackedState && !resting {
		e.buffer = append(e.buffer, MoveEvent{Ball: ball})
	}
	e.restStates[ball] = resting
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processContactEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
