// Package index provides an ordered map keyed by canonical clause forms.
package index

type color int8

const (
	red color = iota
	black
)

// Map is a map from string keys to values, backed by a red-black tree whose
// nodes live in an internal slice. Insertion follows the functional
// red-black tree from Purely Functional Data Structures by Okasaki.
// Iteration with All visits keys in sorted order, which keeps clause
// listings deterministic.
type Map[V any] struct {
	nodes []node[V]
	root  int
}

type node[V any] struct {
	color       color
	left, right int
	key         string
	value       V
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{root: -1}
}

// Len returns the number of keys.
func (t *Map[V]) Len() int {
	n := 0
	t.All(func(string, V) bool { n++; return true })
	return n
}

// Set stores a pair of key and value, replacing any previous value.
func (t *Map[V]) Set(key string, value V) {
	id := t.insert(t.root, key, value)
	if n := t.nodes[id]; n.color == red {
		id = t.add(node[V]{color: black, left: n.left, right: n.right, key: n.key, value: n.value})
	}
	t.root = id
}

// Get returns the value stored for key.
func (t *Map[V]) Get(key string) (V, bool) {
	var zero V
	id := t.root
	for id >= 0 {
		n := t.nodes[id]
		switch {
		case key < n.key:
			id = n.left
		case key > n.key:
			id = n.right
		default:
			return n.value, true
		}
	}
	return zero, false
}

// All calls f for each key and value in key order, stopping early if f
// returns false.
func (t *Map[V]) All(f func(key string, value V) bool) {
	t.walk(t.root, f)
}

func (t *Map[V]) walk(id int, f func(key string, value V) bool) bool {
	if id < 0 {
		return true
	}
	n := t.nodes[id]
	if !t.walk(n.left, f) {
		return false
	}
	if !f(n.key, n.value) {
		return false
	}
	return t.walk(n.right, f)
}

func (t *Map[V]) insert(id int, key string, value V) int {
	if id < 0 {
		return t.add(node[V]{color: red, left: -1, right: -1, key: key, value: value})
	}
	switch n := t.nodes[id]; {
	case key < n.key:
		l := t.insert(n.left, key, value)
		return t.balance(t.add(node[V]{color: n.color, left: l, right: n.right, key: n.key, value: n.value}))
	case key > n.key:
		r := t.insert(n.right, key, value)
		return t.balance(t.add(node[V]{color: n.color, left: n.left, right: r, key: n.key, value: n.value}))
	default:
		return t.add(node[V]{color: n.color, left: n.left, right: n.right, key: key, value: value})
	}
}

func (t *Map[V]) balance(id int) int {
	var (
		a, b, c, d int
		x, y, z    node[V]
	)
	switch n := t.nodes[id]; {
	case n.left >= 0 && t.nodes[n.left].color == red:
		switch l := t.nodes[n.left]; {
		case l.left >= 0 && t.nodes[l.left].color == red:
			ll := t.nodes[l.left]
			a, b, c, d = ll.left, ll.right, l.right, n.right
			x, y, z = ll, l, n
		case l.right >= 0 && t.nodes[l.right].color == red:
			lr := t.nodes[l.right]
			a, b, c, d = l.left, lr.left, lr.right, n.right
			x, y, z = l, lr, n
		default:
			return id
		}
	case n.right >= 0 && t.nodes[n.right].color == red:
		switch r := t.nodes[n.right]; {
		case r.left >= 0 && t.nodes[r.left].color == red:
			rl := t.nodes[r.left]
			a, b, c, d = n.left, rl.left, rl.right, r.right
			x, y, z = n, rl, r
		case r.right >= 0 && t.nodes[r.right].color == red:
			rr := t.nodes[r.right]
			a, b, c, d = n.left, r.left, rr.left, rr.right
			x, y, z = n, r, rr
		default:
			return id
		}
	default:
		return id
	}
	l := t.add(node[V]{color: black, left: a, right: b, key: x.key, value: x.value})
	r := t.add(node[V]{color: black, left: c, right: d, key: z.key, value: z.value})
	return t.add(node[V]{color: red, left: l, right: r, key: y.key, value: y.value})
}

func (t *Map[V]) add(n node[V]) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}
