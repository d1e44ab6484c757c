package solver

// assign installs lit as true at the current decision level, recording
// its reason clause (nilRef for a decision or a unit clause) and
// enqueuing it on the propagation queue. Mirrors the teacher's
// internal/sat/solver.go enqueue step, generalized to also record
// trail position (needed by minimization) and fix the variable's
// status at level 0 (spec.md §3: "fixed ⇒ level 0 assignment").
func (s *Solver) assign(lit Literal, reason ClauseRef) {
	v := lit.Var()
	val := Lift(lit.IsPositive())
	s.vd.value[lit] = True
	s.vd.value[lit.Opposite()] = False

	level := s.decisionLevel()
	s.vd.level[v] = int32(level)
	s.vd.reason[v] = reason
	s.vd.trailPos[v] = int32(len(s.tr.lits))
	if s.opts.PhaseSaving {
		s.vd.savedPh[v] = val
	}
	if level == 0 {
		s.vd.status[v] = statusFixed
	}

	s.tr.push(lit)
	s.propQ.Push(lit)
}

// unassign clears v's value and bookkeeping, returning it to the
// decision heuristics (spec.md §4.4's backtrack).
func (s *Solver) unassign(v Var) {
	s.vd.value[PositiveLiteral(v)] = Unknown
	s.vd.value[NegativeLiteral(v)] = Unknown
	s.vd.level[v] = -1
	s.vd.reason[v] = nilRef
	s.vd.trailPos[v] = -1

	s.vmtf.Unassigned(v)
	s.heap.Reinsert(v)
}
