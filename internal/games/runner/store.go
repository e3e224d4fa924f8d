package runner

// ID identifies an entity for its whole lifetime within one session.
type ID uint64

type slot[T any] struct {
	id      ID
	removed bool
	val     T
}

// Store is an insertion-ordered entity collection with mark-and-compact
// removal. Rules mark entities during a scan; marked entities are skipped
// by every later scan and physically dropped by Compact.
type Store[T any] struct {
	slots  []slot[T]
	nextID ID
	marked int
}

// NewStore creates an empty store with room for n entities.
func NewStore[T any](n int) *Store[T] {
	return &Store[T]{slots: make([]slot[T], 0, n)}
}

// Add appends an entity and returns its ID.
func (s *Store[T]) Add(v T) ID {
	s.nextID++
	s.slots = append(s.slots, slot[T]{id: s.nextID, val: v})
	return s.nextID
}

// MarkRemoved flags the entity for removal. It returns false when the ID
// is unknown or already marked, so each entity is removed at most once.
func (s *Store[T]) MarkRemoved(id ID) bool {
	for i := range s.slots {
		if s.slots[i].id != id {
			continue
		}
		if s.slots[i].removed {
			return false
		}
		s.slots[i].removed = true
		s.marked++
		return true
	}
	return false
}

// Removed reports whether the entity is marked.
func (s *Store[T]) Removed(id ID) bool {
	for i := range s.slots {
		if s.slots[i].id == id {
			return s.slots[i].removed
		}
	}
	return false
}

// Each visits live entities in insertion order. The pointer is valid only
// during the callback. Entities marked mid-scan are skipped when reached.
func (s *Store[T]) Each(fn func(id ID, v *T)) {
	for i := range s.slots {
		if s.slots[i].removed {
			continue
		}
		fn(s.slots[i].id, &s.slots[i].val)
	}
}

// Compact drops marked entities, preserving the order of the rest.
// Returns the number dropped.
func (s *Store[T]) Compact() int {
	if s.marked == 0 {
		return 0
	}
	kept := s.slots[:0]
	for _, sl := range s.slots {
		if !sl.removed {
			kept = append(kept, sl)
		}
	}
	// Release dropped values for the GC.
	var zero slot[T]
	for i := len(kept); i < len(s.slots); i++ {
		s.slots[i] = zero
	}
	n := s.marked
	s.slots = kept
	s.marked = 0
	return n
}

// Len returns the number of live (unmarked) entities.
func (s *Store[T]) Len() int {
	return len(s.slots) - s.marked
}

// Items returns a copy of the live entities in insertion order.
func (s *Store[T]) Items() []T {
	out := make([]T, 0, s.Len())
	for _, sl := range s.slots {
		if !sl.removed {
			out = append(out, sl.val)
		}
	}
	return out
}

// Clear removes every entity. IDs keep increasing across clears.
func (s *Store[T]) Clear() {
	clear(s.slots)
	s.slots = s.slots[:0]
	s.marked = 0
}
