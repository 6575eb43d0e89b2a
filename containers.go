package main

// Fixed-capacity containers backing the stores and trackers. A full
// container rejects the insert and reports false; it never grows and
// never errors.

type boundedStack[T any] struct {
	items    []T
	capacity int
}

func newBoundedStack[T any](capacity int) *boundedStack[T] {
	return &boundedStack[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

func (s *boundedStack[T]) Push(v T) bool {
	if len(s.items) >= s.capacity {
		return false
	}
	s.items = append(s.items, v)
	return true
}

func (s *boundedStack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return v, true
}

func (s *boundedStack[T]) Len() int {
	return len(s.items)
}

func (s *boundedStack[T]) Reset() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}

// ringQueue is a FIFO over a fixed ring buffer.
type ringQueue[T any] struct {
	buf  []T
	head int
	size int
}

func newRingQueue[T any](capacity int) *ringQueue[T] {
	return &ringQueue[T]{buf: make([]T, capacity)}
}

func (q *ringQueue[T]) Enqueue(v T) bool {
	if q.size >= len(q.buf) {
		return false
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
	return true
}

func (q *ringQueue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}

func (q *ringQueue[T]) Len() int {
	return q.size
}

func (q *ringQueue[T]) Cap() int {
	return len(q.buf)
}

// Each visits entries front to back without consuming them.
func (q *ringQueue[T]) Each(fn func(T)) {
	for i := 0; i < q.size; i++ {
		fn(q.buf[(q.head+i)%len(q.buf)])
	}
}
