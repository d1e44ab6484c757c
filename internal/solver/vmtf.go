package solver

// vmtfQueue implements the "variable move to front" decision heuristic
// used in "focused" mode (spec.md §4.3/§9). It is a doubly-linked list of
// all variables ordered by recency of bumping: `head` is the
// most-recently-bumped (highest priority) variable, reached from any
// position by walking `prev`; `tail` is the least recently bumped.
//
// `cursor` caches the last known position of an unassigned variable so
// that NextDecision doesn't have to rescan from head every call: deciding
// walks from cursor towards tail (via `next`) until an unassigned variable
// is found; unassigning a variable during backtrack pulls cursor back
// towards head whenever the newly-freed variable is more important
// (higher timestamp) than whatever cursor currently points at.
//
// No pack file implements VMTF (the teacher's ordering.go only has the
// scored heap); this is written from spec.md's description, in the
// method-naming style of the teacher's own ordering.go (Bump/NextDecision/
// Unassigned/PeekMax).
type vmtfQueue struct {
	vd      *varData
	head    Var
	tail    Var
	cursor  Var
	stamp   int64
	hasVars bool
}

const noVar Var = -1

func newVMTFQueue(vd *varData) *vmtfQueue {
	return &vmtfQueue{vd: vd, head: noVar, tail: noVar, cursor: noVar}
}

// AddVar links a newly created variable at the head of the queue (most
// recently declared variables are searched first until anything gets
// bumped).
func (q *vmtfQueue) AddVar(v Var) {
	q.vd.vmtfPrev[v] = noVar
	q.vd.vmtfNext[v] = q.head
	if q.head != noVar {
		q.vd.vmtfPrev[q.head] = v
	}
	q.head = v
	if !q.hasVars {
		q.tail = v
		q.hasVars = true
	}
	q.stamp++
	q.vd.vmtfStamp[v] = q.stamp
	q.cursor = v
}

func (q *vmtfQueue) unlink(v Var) {
	p, n := q.vd.vmtfPrev[v], q.vd.vmtfNext[v]
	if p != noVar {
		q.vd.vmtfNext[p] = n
	} else {
		q.head = n
	}
	if n != noVar {
		q.vd.vmtfPrev[n] = p
	} else {
		q.tail = p
	}
}

// Bump moves v to the head of the queue and refreshes its timestamp.
func (q *vmtfQueue) Bump(v Var) {
	if q.head == v {
		q.stamp++
		q.vd.vmtfStamp[v] = q.stamp
		return
	}
	q.unlink(v)
	q.vd.vmtfPrev[v] = noVar
	q.vd.vmtfNext[v] = q.head
	if q.head != noVar {
		q.vd.vmtfPrev[q.head] = v
	}
	q.head = v
	if q.tail == noVar {
		q.tail = v
	}
	q.stamp++
	q.vd.vmtfStamp[v] = q.stamp
}

// Unassigned notifies the queue that v has just been unassigned (e.g. by
// backtrack). If v is more important than the current cursor, the cursor
// is pulled back to v so the next decision doesn't miss it.
func (q *vmtfQueue) Unassigned(v Var) {
	if q.cursor == noVar || q.vd.vmtfStamp[v] > q.vd.vmtfStamp[q.cursor] {
		q.cursor = v
	}
}

// NextDecision walks from the cursor towards the tail until it finds an
// unassigned variable, returning it with its saved/target/initial phase
// applied by the caller. It updates the cursor to the variable returned.
func (q *vmtfQueue) NextDecision() Var {
	v := q.cursor
	for v != noVar && (q.vd.isAssigned(v) || !q.vd.isActive(v)) {
		v = q.vd.vmtfNext[v]
	}
	q.cursor = v
	return v
}

// PeekMax returns the variable NextDecision would return, without
// advancing the cursor. Used by restart's reuse-trail heuristic.
func (q *vmtfQueue) PeekMax() Var {
	v := q.cursor
	for v != noVar && (q.vd.isAssigned(v) || !q.vd.isActive(v)) {
		v = q.vd.vmtfNext[v]
	}
	return v
}

func (vd *varData) isAssigned(v Var) bool {
	return vd.value[PositiveLiteral(v)] != Unknown
}
