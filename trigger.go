package scenekit

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
	SELECTED
	DESELECTED
	DRAG_START
	DRAG_END
)

type pairKey struct {
	idA uint64
	idB uint64
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(objectA, objectB *Object) pairKey {
	if objectB.ID < objectA.ID {
		objectA, objectB = objectB, objectA
	}

	return pairKey{idA: objectA.ID, idB: objectB.ID}
}

type activePair struct {
	objectA *Object
	objectB *Object
}

type EventType uint8

func (t EventType) String() string {
	switch t {
	case COLLISION_ENTER:
		return "collision_enter"
	case COLLISION_STAY:
		return "collision_stay"
	case COLLISION_EXIT:
		return "collision_exit"
	case SELECTED:
		return "selected"
	case DESELECTED:
		return "deselected"
	case DRAG_START:
		return "drag_start"
	case DRAG_END:
		return "drag_end"
	default:
		return "unknown"
	}
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Collision events
type CollisionEnterEvent struct {
	ObjectA *Object
	ObjectB *Object
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	ObjectA *Object
	ObjectB *Object
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	ObjectA *Object
	ObjectB *Object
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// Selection events
type SelectEvent struct {
	Object *Object
}

func (e SelectEvent) Type() EventType { return SELECTED }

type DeselectEvent struct {
	Object *Object
}

func (e DeselectEvent) Type() EventType { return DESELECTED }

// Gizmo events
type DragStartEvent struct {
	Object *Object
	Axis   int
}

func (e DragStartEvent) Type() EventType { return DRAG_START }

type DragEndEvent struct {
	Object *Object
	Axis   int
}

func (e DragEndEvent) Type() EventType { return DRAG_END }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Collision tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]activePair
	currentActivePairs  map[pairKey]activePair
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 64),
		previousActivePairs: make(map[pairKey]activePair),
		currentActivePairs:  make(map[pairKey]activePair),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordCollisions registers the pairs overlapping during the current frame
func (e *Events) recordCollisions(pairs []CollisionPair) {
	if e.currentActivePairs == nil {
		e.currentActivePairs = make(map[pairKey]activePair)
		e.previousActivePairs = make(map[pairKey]activePair)
	}

	for _, p := range pairs {
		e.currentActivePairs[makePairKey(p.ObjectA, p.ObjectB)] = activePair{objectA: p.ObjectA, objectB: p.ObjectB}
	}
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// forget drops every tracked pair involving the object, so that a removed
// object never produces an exit event.
func (e *Events) forget(id uint64) {
	for pair := range e.previousActivePairs {
		if pair.idA == id || pair.idB == id {
			delete(e.previousActivePairs, pair)
		}
	}
	for pair := range e.currentActivePairs {
		if pair.idA == id || pair.idB == id {
			delete(e.currentActivePairs, pair)
		}
	}
}

// processCollisionEvents compares current and previous pairs to detect Enter/Stay/Exit
// Should be called once per frame, after the collision sweep
func (e *Events) processCollisionEvents() {
	for key, pair := range e.currentActivePairs {
		if _, ok := e.previousActivePairs[key]; ok {
			e.emit(CollisionStayEvent{ObjectA: pair.objectA, ObjectB: pair.objectB})
		} else {
			e.emit(CollisionEnterEvent{ObjectA: pair.objectA, ObjectB: pair.objectB})
		}
	}

	for key, pair := range e.previousActivePairs {
		if _, ok := e.currentActivePairs[key]; !ok {
			e.emit(CollisionExitEvent{ObjectA: pair.objectA, ObjectB: pair.objectB})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
