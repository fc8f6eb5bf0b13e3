package list

// Sort sorts the list in place. The sort is stable.
//
// Sort is a natural merge sort: it merges adjacent ascending runs until one run
// remains, relinking the existing links.
func (l *List[T]) Sort(less Less[T]) {
	for {
		runs := 0

		for a0 := l.head.next; a0 != &l.tail; {
			runs++

			a1b0 := l.runEnd(a0, less)
			if a1b0 == &l.tail {
				break
			}

			b1 := l.runEnd(a1b0, less)
			merge(a0, a1b0, b1, less)
			a0 = b1
		}

		if runs <= 1 {
			return
		}
	}
}

// runEnd returns the link after the ascending run that starts at a.
func (l *List[T]) runEnd(a *Link[T], less Less[T]) *Link[T] {
	for a = a.next; a != &l.tail && !less(a.owner, a.prev.owner); a = a.next {
	}
	return a
}

// merge merges the adjacent runs [a0, a1b0) and [a1b0, b1) into [a0, b1).
func merge[T any](a0, a1b0, b1 *Link[T], less Less[T]) {
	for a0 != a1b0 && a1b0 != b1 {
		if !less(a1b0.owner, a0.owner) {
			a0 = a0.next
			continue
		}

		first := a1b0
		for a1b0 = a1b0.next; a1b0 != b1 && less(a1b0.owner, a0.owner); a1b0 = a1b0.next {
		}
		Splice(a0, first, a1b0)
	}
}

// Splice moves the links [first, last) before mark.
// The moved links may come from another list that threads the same link field.
func Splice[T any](mark, first, last *Link[T]) {
	if first == last {
		return
	}
	last = last.prev

	first.prev.next = last.next
	last.next.prev = first.prev

	first.prev = mark.prev
	last.next = mark
	mark.prev.next = first
	mark.prev = last
}

// Reverse reverses the order of the list.
func (l *List[T]) Reverse() {
	if l.Empty() {
		return
	}

	for e := l.head.next; e != &l.tail; e = e.prev {
		e.next, e.prev = e.prev, e.next
	}

	l.head.next, l.tail.prev = l.tail.prev, l.head.next
	l.head.next.prev, l.tail.prev.next = l.tail.prev.next, l.head.next.prev
}

// Unique removes all but the first of each run of adjacent equal records.
// Removed records are appended to duplicates unless it is nil.
// duplicates must thread the same link field as l.
func (l *List[T]) Unique(duplicates *List[T], less Less[T]) {
	if l.Empty() {
		return
	}

	for e := l.head.next; e.next != &l.tail; {
		next := e.next
		if !less(e.owner, next.owner) && !less(next.owner, e.owner) {
			next.unlink()
			if duplicates != nil {
				duplicates.tail.link(next)
			}
			continue
		}
		e = next
	}
}
