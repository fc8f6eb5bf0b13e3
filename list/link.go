package list

// Link is an intrusive list link. Records embed one Link per list they can join.
//
// A Link never owns the record it is embedded in.
type Link[T any] struct {
	next, prev *Link[T]
	owner      *T
}

// Next returns the link after e. It returns nil for the tail sentinel.
func (e *Link[T]) Next() *Link[T] {
	return e.next
}

// Prev returns the link before e. It returns nil for the head sentinel.
func (e *Link[T]) Prev() *Link[T] {
	return e.prev
}

// Entry returns the record that embeds e or nil if e is a sentinel.
func (e *Link[T]) Entry() *T {
	return e.owner
}

// Linked reports whether e is on a list. A link that was never inserted or
// has been removed is not linked.
func (e *Link[T]) Linked() bool {
	return e.next != nil
}

// Remove unlinks e from the list it is in and returns the link that followed it.
// e must be a live element, not a sentinel.
func (e *Link[T]) Remove() *Link[T] {
	next := e.next
	e.unlink()
	return next
}

// link inserts s before this link.
func (e *Link[T]) link(s *Link[T]) {
	p := e.prev
	s.prev = p
	s.next = e
	p.next = s
	e.prev = s
}

// unlink unlinks this link.
func (e *Link[T]) unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
}
