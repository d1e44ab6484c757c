package solver

// reduceDue reports whether the clause database manager should run
// before the next decision (spec.md §4.5's reduce counter).
func (s *Solver) reduceDue() bool {
	return s.stats.Conflicts >= s.reduceLimit
}

// reduce runs the five-step clause database manager spec.md §4.5
// describes, generalizing the teacher's internal/sat/solver.go
// ReduceDB (which only dropped half the learned clauses by activity)
// into tier-aware retention plus a moving-GC arena compaction.
func (s *Solver) reduce() {
	s.stats.Reduces++
	s.recomputeTier()

	protected := s.protectReasons()
	s.markUseless(protected)
	s.flushGarbage()
	s.compactArena()

	s.reduceLimit = s.stats.Conflicts + s.reduceInc
	s.reduceInc = int64(float64(s.reduceInc) * s.opts.ReduceGrowth)
}

// protectReasons marks every clause currently a propagation reason so
// markUseless never discards a clause the trail still depends on.
func (s *Solver) protectReasons() map[ClauseRef]bool {
	protected := map[ClauseRef]bool{}
	for v := Var(0); int(v) < s.vd.numVars(); v++ {
		if r := s.vd.reason[v]; r != nilRef {
			protected[r] = true
		}
	}
	return protected
}

// markUseless marks tier-3 clauses not recently used as garbage, and
// tier-2 clauses past the protect-recent-age threshold likewise; tier-1
// (core) clauses are always kept (spec.md §4.5 step 2).
func (s *Solver) markUseless(protected map[ClauseRef]bool) {
	mode := 0
	if s.stable {
		mode = 1
	}
	for ref := range s.arena.clauses {
		r := ClauseRef(ref)
		c := s.arena.get(r)
		if c.has(csGarbage) || c.has(csDeleted) || !c.isRedundant() || protected[r] {
			continue
		}
		tier := c.Tier(s.tier1[mode], s.tier2[mode])
		age := s.stats.Conflicts - c.lastUsed
		switch tier {
		case 2:
			if age > s.opts.ProtectRecentAge/2 {
				s.deleteClause(r)
			}
		case 1:
			if age > s.opts.ProtectRecentAge {
				s.deleteClause(r)
			}
		}
	}
}

// flushGarbage removes watch-list entries pointing at garbage clauses
// (spec.md §4.5 step 3). Every watch list is scanned and filtered in
// place; this runs before the moving GC, which depends on no stale
// watcher referencing a clause about to move.
func (s *Solver) flushGarbage() {
	for lit := 0; lit < len(s.watches.lists); lit++ {
		list := s.watches.lists[lit]
		j := 0
		for i := range list {
			c := s.arena.get(list[i].clause)
			if c.has(csGarbage) {
				continue
			}
			list[j] = list[i]
			j++
		}
		s.watches.lists[lit] = list[:j]
	}
}

// compactArena performs the moving-GC pass of spec.md §4.5 step 4: every
// surviving clause is copied into a dense new backing slice and every
// reason/watch handle is rewritten to match.
func (s *Solver) compactArena() {
	keep := func(ref ClauseRef) bool {
		c := s.arena.get(ref)
		return !c.has(csGarbage)
	}
	remap := s.arena.compact(keep)

	for v := Var(0); int(v) < s.vd.numVars(); v++ {
		if r := s.vd.reason[v]; r != nilRef {
			if nr, ok := remap[r]; ok {
				s.vd.reason[v] = nr
			}
		}
	}
	for lit := 0; lit < len(s.watches.lists); lit++ {
		list := s.watches.lists[lit]
		for i := range list {
			if nr, ok := remap[list[i].clause]; ok {
				list[i].clause = nr
			}
		}
	}
	newLearnts := s.learnts[:0]
	for _, ref := range s.learnts {
		if nr, ok := remap[ref]; ok {
			newLearnts = append(newLearnts, nr)
		}
	}
	s.learnts = newLearnts
	newConstraints := s.constraints[:0]
	for _, ref := range s.constraints {
		if nr, ok := remap[ref]; ok {
			newConstraints = append(newConstraints, nr)
		}
	}
	s.constraints = newConstraints
}

// recomputeTier implements the doubling reschedule and 50th/90th
// percentile glue-usage split CaDiCaL's original_source/src/tier.cpp
// computes, faithfully reproduced since spec.md §9 names this formula
// as a "don't guess" ambiguity.
func (s *Solver) recomputeTier() {
	if !s.opts.RecomputeTier {
		return
	}
	if s.stats.Conflicts < s.tierRecompAt {
		return
	}
	s.stats.TierRecomputed++
	s.tierRuns++

	delta := int64(1) << 16
	if s.tierRuns < 16 {
		delta = int64(1) << uint(s.tierRuns)
	}
	s.tierRecompAt = s.stats.Conflicts + delta

	mode := 0
	if s.stable {
		mode = 1
	}
	used := s.tierUsed[mode]
	var total int64
	for _, u := range used {
		total += u
	}
	if total == 0 {
		s.tier1[mode] = s.opts.Tier1Glue
		s.tier2[mode] = s.opts.Tier2Glue
		return
	}

	tier1Limit := total * 50 / 100
	tier2Limit := total * 90 / 100
	var accumulated int64
	for glue, u := range used {
		accumulated += u
		if accumulated <= tier1Limit {
			s.tier1[mode] = glue
		}
		if accumulated >= tier2Limit {
			s.tier2[mode] = glue
			break
		}
	}
}

// recordGlueUsage feeds one learned clause's glue into the histogram
// recomputeTier consumes; called whenever a redundant clause is used as
// a propagation reason (its lastUsed epoch refreshed), matching
// CaDiCaL's stats.used[stable][glue] counters.
func (s *Solver) recordGlueUsage(glue int) {
	mode := 0
	if s.stable {
		mode = 1
	}
	for len(s.tierUsed[mode]) <= glue {
		s.tierUsed[mode] = append(s.tierUsed[mode], 0)
	}
	s.tierUsed[mode][glue]++
}
