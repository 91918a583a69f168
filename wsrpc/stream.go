package wsrpc

import "sync"

// defaultStreamBuffer is the per-subscriber channel capacity.
const defaultStreamBuffer = 64

// stream is an append-only broadcast primitive: every published value is
// delivered to every current subscriber. It is safe for concurrent publish
// and subscribe without external locking.
//
// A subscriber that stops draining its channel has its oldest undelivered
// values dropped rather than stalling the publisher, which keeps one slow
// observer from blocking the shared connection read loop.
type stream[T any] struct {
	mu     sync.Mutex
	subs   map[uint64]chan T
	nextID uint64
	buffer int
}

func newStream[T any](buffer int) *stream[T] {
	if buffer <= 0 {
		buffer = defaultStreamBuffer
	}

	return &stream[T]{
		subs:   make(map[uint64]chan T),
		buffer: buffer,
	}
}

// publish delivers v to every current subscriber.
func (s *stream[T]) publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs {
		deliver(ch, v)
	}
}

// deliver sends v on ch, evicting the oldest buffered value when full.
func deliver[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}

// subscribe registers a new observer and returns its channel along with a
// cancel function that releases the subscription. The channel is never
// closed; after cancel it simply stops receiving values.
func (s *stream[T]) subscribe() (<-chan T, func()) {
	return s.subscribeWith()
}

// subscribeWith registers a new observer whose channel is pre-loaded with the
// given replay values before any concurrent publish can reach it.
func (s *stream[T]) subscribeWith(replay ...T) (<-chan T, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	buffer := s.buffer
	if len(replay) > buffer {
		buffer = len(replay)
	}

	ch := make(chan T, buffer)
	for _, v := range replay {
		ch <- v
	}

	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}

	return ch, cancel
}
