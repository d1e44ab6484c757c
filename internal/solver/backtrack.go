package solver

// backtrack pops the trail back to the start of level+1, unassigning each
// literal above it and restoring the decision heuristics' view of them
// (spec.md §4.4). target==s.decisionLevel() is a no-op.
func (s *Solver) backtrack(target int) {
	if target >= s.decisionLevel() {
		return
	}
	begin := s.tr.levelBegin(target + 1)
	for i := len(s.tr.lits) - 1; i >= begin; i-- {
		v := s.tr.lits[i].Var()
		s.unassign(v)
	}
	s.tr.truncate(begin)
	s.tr.popLevels(target)
	s.conflict = nilRef
	s.propQ.Clear()
	// Assumptions decided on the popped levels must be decided again;
	// decideNext skips the ones that are still true on the trail.
	s.nextAssumption = 0
}

// reuseTrailLevel finds the highest decision level whose decision
// variable the current heuristic would still pick first, so a restart
// can avoid throwing away a useful prefix of decisions (spec.md §4.4's
// "reuse trail"). Returns 0 (full restart) if nothing qualifies.
func (s *Solver) reuseTrailLevel() int {
	if s.decisionLevel() == 0 {
		return 0
	}
	var best Var
	if s.stable {
		best = s.heap.PeekMax()
	} else {
		best = s.vmtf.PeekMax()
	}
	if best == noVar {
		return 0
	}
	bestPriority := s.decisionPriority(best)

	level := 0
	for l := 1; l <= s.decisionLevel(); l++ {
		dv := s.tr.decisionAt(l)
		if dv == nilLit {
			continue
		}
		if s.decisionPriority(dv.Var()) < bestPriority {
			break
		}
		level = l
	}
	return level
}

// decisionPriority is the metric the active heuristic ranks variables
// by: VMTF's bump timestamp in focused mode, activity score in stable
// mode.
func (s *Solver) decisionPriority(v Var) float64 {
	if s.stable {
		return s.vd.activity[v]
	}
	return float64(s.vd.vmtfStamp[v])
}
