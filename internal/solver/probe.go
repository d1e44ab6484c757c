package solver

// probe performs failed-literal probing (spec.md §4.8 step 9): each
// unassigned candidate literal is assumed at a fresh trial level and
// propagated; a conflict proves the literal can never hold, so its
// negation is forced as a permanent level-0 fact. Grounded on
// CaDiCaL's probe.cpp for the probe/backtrack/re-propagate shape
// (probe.cpp itself only schedules the pass; the underlying trial
// propagation is the same technique vivify.cpp and transred.cpp use,
// shared here with vivify.go/cover.go's trial-assignment pattern).
// Hyper-binary resolution on the probe's implication chain is left out
// per spec.md §1's "thin collaborator" scope for simplifier internals.
func (ctx *simplifyContext) probe() {
	s := ctx.s
	if s.decisionLevel() != 0 {
		return
	}
	limit := s.simplifyConfig.ProbeMaxCands
	tried := 0

	for v := Var(0); int(v) < s.vd.numVars(); v++ {
		if s.unsat {
			return
		}
		if !s.vd.isActive(v) || s.vd.val(PositiveLiteral(v)) != Unknown {
			continue
		}
		if limit > 0 && tried >= limit {
			break
		}
		tried++
		if ctx.probeLiteral(PositiveLiteral(v)) {
			s.stats.FailedLiteralsFound++
		}
	}
}

// probeLiteral trial-assumes l; if propagation conflicts, ¬l is forced
// as a level-0 fact (and the trial itself is rewound either way).
func (ctx *simplifyContext) probeLiteral(l Literal) bool {
	s := ctx.s
	s.tr.openLevel(l)
	s.assign(l, nilRef)
	ok := s.propagate()
	s.conflict = nilRef
	s.backtrack(0)
	if ok {
		return false
	}

	failed := l.Opposite()
	switch s.vd.val(failed) {
	case Unknown:
		s.assign(failed, nilRef)
		if !s.propagate() {
			s.conflict = nilRef
			s.unsat = true
		}
	case False:
		s.unsat = true
	}
	return true
}
