package engine

import (
	"reflect"
	"sync"

	"github.com/lixenwraith/personform/core"
)

// World contains all entities, their components, resources and event streams
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Resources holds singleton state shared between systems
	Resources *ResourceStore

	stores      map[reflect.Type]AnyStore
	storeOrder  []AnyStore
	streams     map[reflect.Type]anyStream
	streamOrder []anyStream

	commands *Commands
	schedule *Schedule
}

// NewWorld creates an empty world with a time resource
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		stores:       make(map[reflect.Type]AnyStore),
		streams:      make(map[reflect.Type]anyStream),
	}
	w.commands = newCommands(w)
	w.schedule = newSchedule(w)
	AddResource(w.Resources, &TimeResource{})
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.RLock()
	stores := make([]AnyStore, len(w.storeOrder))
	copy(stores, w.storeOrder)
	w.mu.RUnlock()

	for _, s := range stores {
		s.RemoveEntity(e)
	}
}

// Alive reports whether any store holds a component for the entity
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, s := range w.storeOrder {
		if s.HasEntity(e) {
			return true
		}
	}
	return false
}

// Commands returns the deferred command buffer applied at the next flush
func (w *World) Commands() *Commands {
	return w.commands
}


// FrameNumber returns the index of the frame being processed
func (w *World) FrameNumber() int64 {
	return MustGetResource[*TimeResource](w.Resources).FrameNumber
}

// GetStore returns the store for component type T, creating it on first use
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()

	w.mu.RLock()
	s, ok := w.stores[t]
	w.mu.RUnlock()
	if ok {
		return s.(*Store[T])
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	store := NewStore[T]()
	w.stores[t] = store
	w.storeOrder = append(w.storeOrder, store)
	return store
}

// updateStreams advances every declared event stream by one frame
func (w *World) updateStreams() {
	w.mu.RLock()
	streams := make([]anyStream, len(w.streamOrder))
	copy(streams, w.streamOrder)
	w.mu.RUnlock()

	for _, s := range streams {
		s.update()
	}
}
