package solver

// ClauseRef is a stable handle to a clause living in the arena. Handles,
// not pointers, are what the trail, watch lists, and proof ids store, so
// that the moving garbage collector in reduce.go can relocate clauses
// without chasing down every reference individually (spec.md §3, §9).
type ClauseRef int32

// nilRef is the reserved "no clause" handle, used for decision/unit
// reasons (mirrors the teacher's `reason []*Clause` nil entries).
const nilRef ClauseRef = -1

// arena owns every clause's backing storage. It is a handle-indexed slice
// rather than the reference implementation's packed byte buffer: spec.md
// §9 asks only that reasons be handles rewritten in a single GC pass, not
// that storage be byte-packed, and a byte arena is not an idiomatic Go
// data structure for variable-length records containing pointers to
// sub-slices. See DESIGN.md's "Arena representation" Open Question entry.
type arena struct {
	clauses []Clause
	free    []ClauseRef // recycled slots between moving-GC passes
	nextID  uint64
}

func newArena() *arena {
	return &arena{nextID: 1}
}

// alloc installs a new clause and returns its handle.
func (a *arena) alloc(lits []Literal, redundant bool) ClauseRef {
	c := Clause{
		id:       a.nextID,
		literals: append([]Literal(nil), lits...),
		prevPos:  2,
	}
	a.nextID++
	if redundant {
		c.set(csRedundant)
	}

	if n := len(a.free); n > 0 {
		ref := a.free[n-1]
		a.free = a.free[:n-1]
		a.clauses[ref] = c
		return ref
	}

	a.clauses = append(a.clauses, c)
	return ClauseRef(len(a.clauses) - 1)
}

func (a *arena) get(ref ClauseRef) *Clause {
	if ref == nilRef {
		return nil
	}
	return &a.clauses[ref]
}

// release marks a slot as free for reuse by a future alloc. It must only
// be called once every watch/reason/proof reference to ref has been
// dropped (reduce.go's moving GC enforces this ordering).
func (a *arena) release(ref ClauseRef) {
	a.clauses[ref] = Clause{}
	a.clauses[ref].set(csDeleted)
	a.free = append(a.free, ref)
}

// compact performs the moving-GC pass described in spec.md §4.5 step 4:
// it rewrites the arena keeping only clauses for which keep(ref) is true,
// returns the old->new handle remap so callers can rewrite watches and
// reasons, and clears the free list (everything is now dense again).
func (a *arena) compact(keep func(ClauseRef) bool) map[ClauseRef]ClauseRef {
	remap := make(map[ClauseRef]ClauseRef, len(a.clauses))
	newClauses := make([]Clause, 0, len(a.clauses))
	for ref := range a.clauses {
		r := ClauseRef(ref)
		c := &a.clauses[ref]
		if c.has(csDeleted) || !keep(r) {
			continue
		}
		newRef := ClauseRef(len(newClauses))
		newClauses = append(newClauses, *c)
		remap[r] = newRef
	}
	a.clauses = newClauses
	a.free = a.free[:0]
	return remap
}

func (a *arena) len() int { return len(a.clauses) }
