package solver

// decideNext implements one decision step of the search driver (spec.md
// §4.6): assumptions are consumed first, in the order assume() queued
// them, before the active heuristic picks a free variable. Returns
// false when an assumption conflicts with the current trail; failing()
// has already run and populated the failed-assumption flags in that
// case.
func (s *Solver) decideNext() bool {
	for s.nextAssumption < len(s.assumptions) {
		lit := s.assumptions[s.nextAssumption]
		s.nextAssumption++
		switch s.vd.val(lit) {
		case True:
			continue // already forced true by propagation, no new level
		case False:
			s.failing(lit)
			return false
		}
		s.tr.openLevel(lit)
		s.vd.setFlag(lit.Var(), flagAssumed)
		s.assign(lit, nilRef)
		return true
	}

	v := s.nextDecisionVar()
	if v == noVar {
		return true // nothing left to decide: caller checks satisfaction
	}
	lit := s.phaseLiteral(v)
	s.tr.openLevel(lit)
	s.assign(lit, nilRef)
	s.stats.Decisions++
	return true
}

func (s *Solver) nextDecisionVar() Var {
	if s.stable {
		return s.heap.NextDecision()
	}
	return s.vmtf.NextDecision()
}

// phaseLiteral picks which polarity of v to decide, per spec.md §4.3:
// target phase during stabilization, else the saved phase, else a fresh
// random choice for a variable that has never been assigned.
func (s *Solver) phaseLiteral(v Var) Literal {
	ph := s.vd.savedPh[v]
	if s.stable && s.vd.targetPh[v] != Unknown {
		ph = s.vd.targetPh[v]
	}
	if ph == Unknown {
		ph = Lift(s.rng.Intn(2) == 0)
	}
	if ph == True {
		return PositiveLiteral(v)
	}
	return NegativeLiteral(v)
}

// fullyAssigned reports whether every active variable has a value,
// the search driver's signal that the current trail is a full model.
func (s *Solver) fullyAssigned() bool {
	for v := Var(0); int(v) < s.vd.numVars(); v++ {
		if !s.vd.isActive(v) {
			continue
		}
		if s.vd.val(PositiveLiteral(v)) == Unknown {
			return false
		}
	}
	return true
}
