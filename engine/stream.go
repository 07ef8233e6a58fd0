package engine

import (
	"reflect"
	"sync"
)

// anyStream is the type-erased view World uses to advance every stream once per frame
type anyStream interface {
	update()
	Len() int
}

// Stream is a typed, double-buffered event channel
//
// Retention:
//   - Events sent during frame N are readable until the end of frame N+1
//   - Each Reader keeps its own cursor, so every consumer observes every event once
//   - A reader that falls behind by more than two frames silently skips dropped events
//
// Thread-Safety: Send may be called from any goroutine; readers belong to one system
type Stream[T any] struct {
	mu           sync.Mutex
	older        []T
	current      []T
	olderStart   uint64 // Sequence number of older[0]
	currentStart uint64 // Sequence number of current[0]
	next         uint64 // Sequence number assigned to the next Send
}

// NewStream creates an empty stream
func NewStream[T any]() *Stream[T] {
	return &Stream[T]{}
}

// Send appends an event to the current frame buffer
func (s *Stream[T]) Send(ev T) {
	s.mu.Lock()
	s.current = append(s.current, ev)
	s.next++
	s.mu.Unlock()
}

// SendBatch appends events in order
func (s *Stream[T]) SendBatch(evs ...T) {
	s.mu.Lock()
	s.current = append(s.current, evs...)
	s.next += uint64(len(evs))
	s.mu.Unlock()
}

// Len returns the number of retained events
func (s *Stream[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.older) + len(s.current)
}

// Clear drops all retained events; readers skip past them
func (s *Stream[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.older = s.older[:0]
	s.current = s.current[:0]
	s.olderStart = s.next
	s.currentStart = s.next
}

// update swaps buffers, dropping events older than one full frame
// Called by World at the start of every frame
func (s *Stream[T]) update() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.older)
	s.older, s.current = s.current, s.older[:0]
	s.olderStart = s.currentStart
	s.currentStart = s.next
}

// Reader returns an independent cursor positioned at the oldest retained event
func (s *Stream[T]) Reader() *Reader[T] {
	return &Reader[T]{stream: s}
}

// Reader consumes events from a Stream in emission order
type Reader[T any] struct {
	stream *Stream[T]
	cursor uint64
}

// Read drains every event this reader has not seen yet, in FIFO order
func (r *Reader[T]) Read() []T {
	s := r.stream
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.cursor < s.olderStart {
		r.cursor = s.olderStart
	}
	if r.cursor >= s.next {
		return nil
	}

	result := make([]T, 0, s.next-r.cursor)
	if r.cursor < s.currentStart {
		result = append(result, s.older[r.cursor-s.olderStart:]...)
		r.cursor = s.currentStart
	}
	result = append(result, s.current[r.cursor-s.currentStart:]...)
	r.cursor = s.next
	return result
}

// Len returns the number of unread events
func (r *Reader[T]) Len() int {
	s := r.stream
	s.mu.Lock()
	defer s.mu.Unlock()

	cursor := max(r.cursor, s.olderStart)
	return int(s.next - cursor)
}

// IsEmpty reports whether Read would return nothing
func (r *Reader[T]) IsEmpty() bool {
	return r.Len() == 0
}

// AddEvent declares a stream for T on the world, returning the existing one if already declared
func AddEvent[T any](w *World) *Stream[T] {
	w.mu.Lock()
	defer w.mu.Unlock()

	t := reflect.TypeFor[T]()
	if existing, ok := w.streams[t]; ok {
		return existing.(*Stream[T])
	}
	s := NewStream[T]()
	w.streams[t] = s
	w.streamOrder = append(w.streamOrder, s)
	return s
}

// Events returns the declared stream for T, panicking if it was never declared
func Events[T any](w *World) *Stream[T] {
	s, ok := LookupEvents[T](w)
	if !ok {
		panic("Event stream not declared: " + reflect.TypeFor[T]().String())
	}
	return s
}

// LookupEvents returns the declared stream for T if any
func LookupEvents[T any](w *World) (*Stream[T], bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s, ok := w.streams[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return s.(*Stream[T]), true
}
