package grid

// Vector is an ordered 1-D run of cells, typically a row, a column or a tile edge.
type Vector[T comparable] []T

// Reverse returns a reversed copy of v.
func (v Vector[T]) Reverse() Vector[T] {
	out := make(Vector[T], len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}

	return out
}

// Equal reports whether v and o hold the same cells in the same order.
func (v Vector[T]) Equal(o Vector[T]) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}

	return true
}

// EqualEitherWay reports whether v equals o as given or reversed.
func (v Vector[T]) EqualEitherWay(o Vector[T]) bool {
	if len(v) != len(o) {
		return false
	}
	n := len(v)
	forward, backward := true, true
	for i := 0; i < n && (forward || backward); i++ {
		if v[i] != o[i] {
			forward = false
		}
		if v[i] != o[n-1-i] {
			backward = false
		}
	}

	return forward || backward
}
