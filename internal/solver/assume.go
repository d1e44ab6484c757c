package solver

// Assume queues extLit as a temporary unit for the next solve() call,
// freezing its variable against elimination (external API's
// assume(lit), spec.md §4.7). Deliberate duplicate or clashing
// assumptions are not rejected here: a repeated literal is silently a
// no-op once decideNext reaches it (already true), and a clashing pair
// is caught by failing() the same way propagation-derived failure is.
func (s *Solver) Assume(extLit int) {
	lit := s.internalize(extLit)
	v := lit.Var()
	s.vd.freezeCnt[v]++
	s.vd.setFlag(v, flagAssumed)
	s.assumptions = append(s.assumptions, lit)
}

// releaseAssumptions un-freezes and un-marks every variable referenced
// by this solve's assumption stack, then clears the stack so the next
// solve() call starts from none, per spec.md §4.7's "per-solve".
func (s *Solver) releaseAssumptions() {
	for _, lit := range s.assumptions {
		v := lit.Var()
		if s.vd.freezeCnt[v] > 0 {
			s.vd.freezeCnt[v]--
		}
		s.vd.clearFlag(v, flagAssumed)
	}
	s.assumptions = s.assumptions[:0]
	s.nextAssumption = 0
}

// failing implements spec.md §4.7's failed-assumption core extraction.
// lit is the assumption literal just found already false. The clashing-
// pair shortcut and the no-minimization BFS both follow CaDiCaL's own
// failing() (original_source/src/assume.cpp), including its documented
// limitation of not minimizing the extracted core.
func (s *Solver) failing(lit Literal) {
	v := lit.Var()
	s.vd.setFlag(v, flagFailed)

	if s.vd.level[v] == 0 {
		s.finishFailing()
		return
	}

	if s.vd.reason[v] == nilRef {
		// lit's negation is itself an earlier assumption decision still on
		// the trail: a direct two-assumption clash, no BFS needed.
		s.vd.setFlag(lit.Opposite().Var(), flagFailed)
		s.finishFailing()
		return
	}

	s.seen.Clear()
	start := lit.Opposite() // the literal that is actually true on the trail
	queue := []Literal{start}
	s.seen.Add(int(start.Var()))

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cv := cur.Var()
		if s.vd.level[cv] == 0 {
			continue
		}
		reason := s.vd.reason[cv]
		if reason == nilRef {
			// cur is a decision; while assumptions remain pending, every
			// decision is an assumption literal, so it belongs in the core.
			s.vd.setFlag(cv, flagFailed)
			continue
		}
		for _, rl := range s.arena.get(reason).literals {
			rv := rl.Var()
			if rv == cv || s.seen.Contains(int(rv)) {
				continue
			}
			s.seen.Add(int(rv))
			queue = append(queue, rl.Opposite())
		}
	}
	s.finishFailing()
}

// finishFailing installs the negation of the collected failed-assumption
// literals as a new clause of the formula (spec.md §4.7: "store its
// negation as a clause") and reports it to the proof tracer.
func (s *Solver) finishFailing() {
	var core []Literal
	for _, a := range s.assumptions {
		if s.vd.hasFlag(a.Var(), flagFailed) {
			core = append(core, a.Opposite())
		}
	}
	s.backtrack(0)
	if len(core) > 0 {
		s.newClause(core, false)
	}
	s.unsatAssumptions = true
}
