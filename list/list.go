/*
Package list implements an intrusive doubly linked list.

Records embed a Link for every list they may join and each List is
initialized with an accessor that selects the embedded Link it threads
through. A single record can therefore be on several lists at once.

	type student struct {
		name   string
		byName list.Link[student]
		byGPA  list.Link[student]
	}

	names := list.New(func(s *student) *list.Link[student] { return &s.byName })

	for e := names.Begin(); e != names.End(); e = e.Next() {
		s := e.Entry()
		// ...
	}

The list never allocates and never checks caller contracts: popping an empty
list, removing a detached link or using a list before Init is undefined.
A List is not safe for concurrent use.
*/
package list

import "iter"

// Less reports whether a orders before b. It must be a strict weak ordering.
type Less[T any] func(a, b *T) bool

// List is an intrusive doubly linked list bounded by head and tail sentinels.
//
// A List must be initialized with Init or New and must not be copied afterwards.
type List[T any] struct {
	head  Link[T]
	tail  Link[T]
	field func(*T) *Link[T]
}

// New creates an empty list threading records through the link returned by field.
func New[T any](field func(*T) *Link[T]) *List[T] {
	return new(List[T]).Init(field)
}

// Init initializes or clears list l. Elements of a non-empty list are orphaned.
func (l *List[T]) Init(field func(*T) *Link[T]) *List[T] {
	l.head = Link[T]{next: &l.tail}
	l.tail = Link[T]{prev: &l.head}
	l.field = field
	return l
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.head.next == &l.tail
}

// Len returns the number of elements in the list.
//
// The list keeps no counter, Len walks every element.
func (l *List[T]) Len() int {
	n := 0
	for e := l.head.next; e != &l.tail; e = e.next {
		n++
	}
	return n
}

// Begin returns the first link of the list or End() if the list is empty.
func (l *List[T]) Begin() *Link[T] {
	return l.head.next
}

// End returns the tail sentinel. It is an iteration boundary, its Entry is nil.
func (l *List[T]) End() *Link[T] {
	return &l.tail
}

// RBegin returns the last link of the list or REnd() if the list is empty.
func (l *List[T]) RBegin() *Link[T] {
	return l.tail.prev
}

// REnd returns the head sentinel.
func (l *List[T]) REnd() *Link[T] {
	return &l.head
}

// Front returns the first record or nil.
func (l *List[T]) Front() *T {
	return l.head.next.owner
}

// Back returns the last record or nil.
func (l *List[T]) Back() *T {
	return l.tail.prev.owner
}

// InsertBefore inserts v immediately before mark.
// mark must be a link of list l or End().
func (l *List[T]) InsertBefore(mark *Link[T], v *T) {
	e := l.field(v)
	e.owner = v
	mark.link(e)
}

// PushFront inserts v at the front of list l.
func (l *List[T]) PushFront(v *T) {
	l.InsertBefore(l.head.next, v)
}

// PushBack inserts v at the back of list l.
func (l *List[T]) PushBack(v *T) {
	l.InsertBefore(&l.tail, v)
}

// InsertOrdered inserts v before the first element that v orders before.
// Equal elements keep their insertion order.
func (l *List[T]) InsertOrdered(v *T, less Less[T]) {
	e := l.head.next
	for ; e != &l.tail; e = e.next {
		if less(v, e.owner) {
			break
		}
	}
	l.InsertBefore(e, v)
}

// Remove removes v from list l and returns the link that followed it.
func (l *List[T]) Remove(v *T) *Link[T] {
	return l.field(v).Remove()
}

// PopFront removes and returns the first record. The list must not be empty.
func (l *List[T]) PopFront() *T {
	e := l.head.next
	e.unlink()
	return e.owner
}

// PopBack removes and returns the last record. The list must not be empty.
func (l *List[T]) PopBack() *T {
	e := l.tail.prev
	e.unlink()
	return e.owner
}

// Do calls function f on each record of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[T]) Do(f func(v *T) bool) {
	for e := l.head.next; e != &l.tail; e = e.next {
		if !f(e.owner) {
			return
		}
	}
}

// All returns an iterator over the records in forward order.
// The current record may be removed during iteration.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for e := l.head.next; e != &l.tail; {
			next := e.next
			if !yield(e.owner) {
				return
			}
			e = next
		}
	}
}

// Backward returns an iterator over the records in reverse order.
// The current record may be removed during iteration.
func (l *List[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for e := l.tail.prev; e != &l.head; {
			prev := e.prev
			if !yield(e.owner) {
				return
			}
			e = prev
		}
	}
}
