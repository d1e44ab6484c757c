package solver

// rephaseDue reports whether the search driver should run a rephase
// before the next decision, gated by its own conflict counter
// independently of restarts and stabilization (spec.md §4.6's
// "propagated --limits hit--> (restart | reduce | rephase | simplify)").
func (s *Solver) rephaseDue() bool {
	return s.opts.Rephase && s.stats.Conflicts >= s.rephaseLimit
}

// scheduleRephase runs a rephase and schedules the next one.
func (s *Solver) scheduleRephase() {
	s.rephaseTarget()
	s.rephaseLimit = s.stats.Conflicts + s.rephaseInc
	s.rephaseInc = int64(float64(s.rephaseInc) * s.opts.ReduceGrowth)
}

// rephaseTarget resets every variable's saved phase according to the
// rotating 4-way schedule CaDiCaL uses (original_source/src/
// rephase.cpp): original (leave as-is), flip (invert every saved
// phase), inverted (force all false), random (reseed from the PRNG).
// CaDiCaL's fifth and sixth slots, best and walk, depend on a
// local-search walker this core does not implement; the rotation never
// reaches either, a deliberate scope decision (DESIGN.md).
func (s *Solver) rephaseTarget() {
	if !s.opts.Rephase {
		return
	}
	s.rephases++
	s.stats.Rephases++

	target := RephaseTarget(s.rephases % 4)
	switch target {
	case RephaseOriginal:
		// leave savedPh untouched
	case RephaseFlip:
		for v := Var(0); int(v) < s.vd.numVars(); v++ {
			if s.vd.savedPh[v] != Unknown {
				s.vd.savedPh[v] = s.vd.savedPh[v].Opposite()
			}
		}
	case RephaseInverted:
		for v := Var(0); int(v) < s.vd.numVars(); v++ {
			s.vd.savedPh[v] = False
		}
	case RephaseRandom:
		for v := Var(0); int(v) < s.vd.numVars(); v++ {
			s.vd.savedPh[v] = Lift(s.rng.Intn(2) == 0)
		}
	}
}

// rephaseOnImprovement copies the current saved phases into the target
// phase table whenever the trail grows past its best recorded length,
// so stable-mode decisions can be biased towards the best assignment
// seen so far (spec.md §4.3's "best_phase (after improvement)").
func (s *Solver) rephaseOnImprovement() {
	if len(s.tr.lits) <= s.bestTrailLen {
		return
	}
	s.bestTrailLen = len(s.tr.lits)
	for v := Var(0); int(v) < s.vd.numVars(); v++ {
		if s.vd.isAssigned(v) {
			s.vd.bestPh[v] = s.vd.value[PositiveLiteral(v)]
			s.vd.targetPh[v] = s.vd.bestPh[v]
		}
	}
}
