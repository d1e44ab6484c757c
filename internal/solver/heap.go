package solver

import "github.com/rhartert/yagh"

// scoreHeap implements the VSIDS-style scored decision heuristic used in
// "stable" mode (spec.md §4.3). Grounded on the teacher's
// internal/sat/ordering.go, which already wires github.com/rhartert/yagh
// as a binary heap keyed by negated score (so Pop returns the maximum).
type scoreHeap struct {
	vd    *varData
	order *yagh.IntMap[float64]

	scoreInc   float64
	scoreDecay float64
}

func newScoreHeap(vd *varData, decay float64) *scoreHeap {
	return &scoreHeap{
		vd:         vd,
		order:      yagh.New[float64](0),
		scoreInc:   1,
		scoreDecay: decay,
	}
}

func (h *scoreHeap) AddVar(v Var) {
	h.order.GrowBy(1)
	h.order.Put(int(v), -h.vd.activity[v])
}

// Reinsert adds v back to the heap of decision candidates; called when v
// becomes unassigned (e.g. on backtrack).
func (h *scoreHeap) Reinsert(v Var) {
	h.order.Put(int(v), -h.vd.activity[v])
}

// Decay slightly decreases every score's relative weight by inflating the
// bump increment (spec.md §4.3's "periodic rescaling").
func (h *scoreHeap) Decay() {
	h.scoreInc /= h.scoreDecay
	if h.scoreInc > 1e100 {
		h.rescale()
	}
}

// Bump increases v's activity score and reorders the heap accordingly.
func (h *scoreHeap) Bump(v Var) {
	newScore := h.vd.activity[v] + h.scoreInc
	h.vd.activity[v] = newScore
	if h.order.Contains(int(v)) {
		h.order.Put(int(v), -newScore)
	}
	if newScore > 1e100 {
		h.rescale()
	}
}

func (h *scoreHeap) rescale() {
	h.scoreInc *= 1e-100
	for v := range h.vd.activity {
		newScore := h.vd.activity[v] * 1e-100
		h.vd.activity[v] = newScore
		if h.order.Contains(v) {
			h.order.Put(v, -newScore)
		}
	}
}

// PeekMax returns the variable NextDecision would return, reinserting it
// so the heap's state is otherwise unchanged. Stale (assigned/inactive)
// entries encountered along the way are discarded permanently, same as
// NextDecision. Used by restart's reuse-trail heuristic.
func (h *scoreHeap) PeekMax() Var {
	for {
		next, ok := h.order.Pop()
		if !ok {
			return noVar
		}
		v := Var(next.Elem)
		if h.vd.isAssigned(v) || !h.vd.isActive(v) {
			continue
		}
		h.order.Put(int(v), -h.vd.activity[v])
		return v
	}
}

// NextDecision pops the highest-activity variable, discarding stale
// entries for variables that became assigned since they were last pushed
// (lazy update, as spec.md §3 describes for the score heap).
func (h *scoreHeap) NextDecision() Var {
	for {
		next, ok := h.order.Pop()
		if !ok {
			return noVar
		}
		v := Var(next.Elem)
		if !h.vd.isAssigned(v) && h.vd.isActive(v) {
			return v
		}
	}
}
