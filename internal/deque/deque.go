// Package deque provides a growable FIFO queue backed by a ring buffer.
package deque

// Deque is a first-in-first-out queue. It grows as needed.
type Deque[E any] struct {
	elems      []E
	start, end int
	n          int
}

// New returns a new Deque with room for size elements before growing.
func New[E any](size int) *Deque[E] {
	if size < 1 {
		size = 1
	}
	return &Deque[E]{elems: make([]E, size)}
}

// Push appends an element at the back.
func (d *Deque[E]) Push(elem E) {
	if d.n == len(d.elems) {
		d.grow()
	}
	d.elems[d.end] = elem
	d.end++
	d.end %= len(d.elems)
	d.n++
}

// Pop removes and returns the front element. It must not be called on an
// empty deque.
func (d *Deque[E]) Pop() E {
	var zero E
	e := d.elems[d.start]
	d.elems[d.start] = zero
	d.start++
	d.start %= len(d.elems)
	d.n--
	return e
}

// Empty reports whether the deque has no elements.
func (d *Deque[E]) Empty() bool {
	return d.n == 0
}

// Len returns the number of queued elements.
func (d *Deque[E]) Len() int {
	return d.n
}

func (d *Deque[E]) grow() {
	elems := make([]E, 2*len(d.elems))
	for i := 0; i < d.n; i++ {
		elems[i] = d.elems[(d.start+i)%len(d.elems)]
	}
	d.elems = elems
	d.start = 0
	d.end = d.n
}
