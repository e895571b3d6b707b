package event

// Queue is a double-buffered event queue. An event stays readable during the
// tick it was sent in and the following one; Update must be called exactly
// once per tick. Every Reader sees each event at most once.
type Queue[T any] struct {
	older []record[T]
	newer []record[T]
	next  uint64
}

type record[T any] struct {
	id    uint64
	event T
}

// Reader keeps the read position of one consumer.
type Reader[T any] struct {
	queue  *Queue[T]
	cursor uint64
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Send appends an event.
func (q *Queue[T]) Send(ev T) {
	q.newer = append(q.newer, record[T]{id: q.next, event: ev})
	q.next++
}

// Update drops events sent before the previous tick.
func (q *Queue[T]) Update() {
	q.older, q.newer = q.newer, q.older[:0]
}

// Len returns the number of buffered events.
func (q *Queue[T]) Len() int {
	return len(q.older) + len(q.newer)
}

// NewReader returns a reader that will see every event still buffered.
func (q *Queue[T]) NewReader() *Reader[T] {
	return &Reader[T]{queue: q}
}

// Read returns the unread events in send order and marks them as read.
func (r *Reader[T]) Read() []T {
	var out []T
	for _, buf := range [2][]record[T]{r.queue.older, r.queue.newer} {
		for _, rec := range buf {
			if rec.id >= r.cursor {
				out = append(out, rec.event)
			}
		}
	}
	r.cursor = r.queue.next
	return out
}

// Skip marks every buffered event as read.
func (r *Reader[T]) Skip() {
	r.cursor = r.queue.next
}
