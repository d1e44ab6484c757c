package solver

import "sort"

// analyzeConflict derives the first-UIP learned clause from s.conflict,
// bumps variable/clause activity along the way, backtracks to the
// asserting level, and installs the learned clause. Grounded on the
// teacher's internal/sat/solver.go `analyze` UIP loop shape, extended
// with minimization and glue computation per spec.md §4.2 (no pack file
// implements minimization or shrink; CaDiCaL's original_source/src/
// shrink.cpp's "group by level, local UIP per block" idea informed the
// minimize step below, scaled down to single-pass reason-chain
// minimization rather than full per-block shrinking).
func (s *Solver) analyzeConflict() {
	s.stats.Conflicts++

	cl := s.conflictLevel()
	if cl == 0 {
		s.unsat = true
		s.tracer.ReportStatus(int(StatusUnsat))
		return
	}

	// Under chronological backtracking the trail can be out of level
	// order, so the conflicting clause's highest level may trail the
	// current decision level; when the gap is large, backtracking one
	// level below the conflict is cheaper than deriving and learning a
	// clause that would not even assert at the true conflict level
	// (spec.md §4.2's "backtrack to conflict-level−1 instead, without
	// learning").
	if s.opts.ChronoBacktrack && cl < s.decisionLevel() && s.decisionLevel()-cl > s.opts.ChronoThreshold {
		s.stats.ChronoBacktrack++
		s.backtrack(cl - 1)
		return
	}

	s.seen.Clear()
	learned := []Literal{nilLit} // slot 0 reserved for the UIP literal
	pending := 0
	trailIdx := len(s.tr.lits) - 1
	var uip Literal = nilLit

	analyzeReasonLits(s, s.arena.get(s.conflict).literals, &pending, &learned, nil)

	for {
		for trailIdx >= 0 && !s.seen.Contains(int(s.tr.lits[trailIdx].Var())) {
			trailIdx--
		}
		lit := s.tr.lits[trailIdx]
		trailIdx--
		v := lit.Var()
		pending--

		if pending == 0 {
			uip = lit.Opposite()
			break
		}

		reason := s.vd.reason[v]
		if reason != nilRef {
			s.bumpClauseActivity(reason)
			analyzeReasonLits(s, s.arena.get(reason).literals, &pending, &learned, &lit)
		}
	}

	learned[0] = uip
	s.bumpClauseActivity(s.conflict)

	learned = s.minimize(learned)

	glue := s.computeGlue(learned)
	backtrackLevel := s.secondHighestLevel(learned)

	s.backtrack(backtrackLevel)
	s.jumpEMA.update(float64(s.decisionLevel() - backtrackLevel))
	s.sizeEMA.update(float64(len(learned)))
	s.levelEMA.update(float64(backtrackLevel))
	s.fastGlue.update(float64(glue))
	s.slowGlue.update(float64(glue))

	// Antecedent ids for LRAT/FRAT are intentionally not threaded through
	// analysis: this core's proof tracers emit DRAT-style "the clause
	// follows by RUP" records, which checkers can verify without an
	// explicit antecedent list. See DESIGN.md's proof tracing entry.
	s.addLearnedClause(learned, glue, nil)
	s.conflict = nilRef
	s.rephaseOnImprovement()
}

// analyzeReasonLits folds one reason clause's literals into the
// seen/pending bookkeeping, skipping the literal that triggered this
// reason (nil for the original conflicting clause) and literals already
// at level 0 (they need no further resolution, matching the teacher's
// own level-0 shortcut).
func analyzeReasonLits(s *Solver, lits []Literal, pending *int, learned *[]Literal, skip *Literal) {
	for _, l := range lits {
		if skip != nil && l == *skip {
			continue
		}
		v := l.Var()
		if s.seen.Contains(int(v)) {
			continue
		}
		if s.vd.level[v] == 0 {
			s.seen.Add(int(v))
			continue // level-0 falsified literals are never added to learned
		}
		s.seen.Add(int(v))
		s.bumpVar(v)
		if int(s.vd.level[v]) == s.decisionLevel() {
			*pending++
		} else {
			*learned = append(*learned, l)
		}
	}
}

// minimize drops literals from learned (after slot 0) whose entire
// reason chain is already subsumed by other literals in the clause,
// memoized via the poison/removable flags (spec.md §4.2).
func (s *Solver) minimize(learned []Literal) []Literal {
	s.tmpAnalyzed = s.tmpAnalyzed[:0]
	keep := learned[:1]
	for _, l := range learned[1:] {
		if s.isRedundantLiteral(l) {
			continue
		}
		keep = append(keep, l)
	}
	for _, v := range s.tmpAnalyzed {
		s.vd.clearFlag(v, flagPoison)
		s.vd.clearFlag(v, flagRemovable)
	}
	return keep
}

// isRedundantLiteral reports whether l's reason chain is entirely
// composed of literals already seen in the learned clause, i.e. l can be
// dropped without weakening the clause. Every variable whose poison/
// removable flag gets set is recorded in s.tmpAnalyzed so minimize can
// clear it afterward instead of leaking stale memoization into the next
// conflict's analysis.
func (s *Solver) isRedundantLiteral(l Literal) bool {
	v := l.Var()
	if s.vd.level[v] == 0 {
		return true
	}
	if s.vd.hasFlag(v, flagPoison) {
		return false
	}
	if s.vd.hasFlag(v, flagRemovable) {
		return true
	}
	reason := s.vd.reason[v]
	if reason == nilRef {
		s.vd.setFlag(v, flagPoison)
		s.tmpAnalyzed = append(s.tmpAnalyzed, v)
		return false
	}
	for _, rl := range s.arena.get(reason).literals {
		rv := rl.Var()
		if rv == v {
			continue
		}
		if s.seen.Contains(int(rv)) {
			continue
		}
		if s.vd.level[rv] == 0 {
			continue
		}
		if !s.isRedundantLiteral(rl) {
			s.vd.setFlag(v, flagPoison)
			s.tmpAnalyzed = append(s.tmpAnalyzed, v)
			return false
		}
	}
	s.vd.setFlag(v, flagRemovable)
	s.tmpAnalyzed = append(s.tmpAnalyzed, v)
	return true
}

// conflictLevel is the highest assignment level among the conflicting
// clause's literals, the "true conflict level" spec.md §4.2 refers to
// when chronological backtracking has left the trail out of level
// order.
func (s *Solver) conflictLevel() int {
	max := 0
	for _, l := range s.arena.get(s.conflict).literals {
		if lv := int(s.vd.level[l.Var()]); lv > max {
			max = lv
		}
	}
	return max
}

// computeGlue is the number of distinct decision levels among learned's
// literals (spec.md §4.2's LBD).
func (s *Solver) computeGlue(learned []Literal) int {
	levels := map[int32]struct{}{}
	for _, l := range learned {
		levels[s.vd.level[l.Var()]] = struct{}{}
	}
	return len(levels)
}

// secondHighestLevel returns the backtrack level: the second-highest
// assignment level among learned's literals, or 0 if learned is a unit
// (spec.md §4.2).
func (s *Solver) secondHighestLevel(learned []Literal) int {
	if len(learned) == 1 {
		return 0
	}
	levels := make([]int, 0, len(learned)-1)
	for _, l := range learned[1:] {
		levels = append(levels, int(s.vd.level[l.Var()]))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))
	return levels[0]
}

func (s *Solver) bumpVar(v Var) {
	if s.stable {
		s.heap.Bump(v)
	} else {
		s.vmtf.Bump(v)
	}
}

func (s *Solver) bumpClauseActivity(ref ClauseRef) {
	if ref == nilRef {
		return
	}
	c := s.arena.get(ref)
	if !c.isRedundant() {
		return
	}
	c.activity += s.clauseInc
	c.lastUsed = s.stats.Conflicts
	s.recordGlueUsage(int(c.glue))
	if c.activity > 1e100 {
		s.rescaleClauseActivity()
	}
}

func (s *Solver) rescaleClauseActivity() {
	for i := range s.arena.clauses {
		s.arena.clauses[i].activity *= 1e-100
	}
	s.clauseInc *= 1e-100
}
