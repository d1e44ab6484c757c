package solver

// propagate drains the propagation queue; for each newly-true literal
// `lit` it walks watches[lit] (every clause watching `lit` because the
// clause wants to know when `lit`'s negation becomes false — install.go's
// watchClause registers a clause under Opposite(watched_literal)) and
// restores the two-watched-literal invariant clause by clause. Grounded
// on the teacher's
// internal/sat/solver.go:Propagate loop shape, merged with the
// position-saving resume the teacher's unfinished top-level
// sat/clauses.go:Propagate rewrite introduced (clause.prevPos), per
// spec.md §4.1.
//
// Returns true if the queue drained with no conflict; false if a
// conflict was found, in which case s.conflict names the clause.
func (s *Solver) propagate() bool {
	for !s.propQ.IsEmpty() {
		lit := s.propQ.Pop()
		s.stats.Propagations++
		falseLit := lit.Opposite()

		ws := s.watches.get(lit)
		keep := ws[:0]
		ok := true

	watchLoop:
		for i := 0; i < len(ws); i++ {
			w := ws[i]
			c := s.arena.get(w.clause)
			if c.has(csGarbage) {
				continue
			}

			if s.vd.val(w.blocker) == True {
				keep = append(keep, w)
				continue
			}

			// Ensure falseLit occupies slot 1 so lits[0] is the "other"
			// candidate watch, matching spec.md §4.1's contract.
			if c.literals[0] == falseLit {
				c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
			}
			other := c.literals[0]
			if other != w.blocker && s.vd.val(other) == True {
				keep = append(keep, watcher{clause: w.clause, blocker: other})
				continue
			}

			n := len(c.literals)
			pos := int(c.prevPos)
			if pos < 2 || pos >= n {
				pos = 2
			}
			for k := 0; k < n-2; k++ {
				idx := pos + k
				if idx >= n {
					idx -= n - 2
				}
				cand := c.literals[idx]
				if s.vd.val(cand) != False {
					c.literals[1], c.literals[idx] = c.literals[idx], c.literals[1]
					c.prevPos = int32(idx)
					s.watches.watch(w.clause, c.literals[1].Opposite(), other)
					continue watchLoop
				}
			}

			// No replacement found: clause is unit or conflicting on `other`.
			keep = append(keep, watcher{clause: w.clause, blocker: other})
			if s.vd.val(other) == False {
				s.conflict = w.clause
				// copy remaining untouched watches so the list stays valid
				for j := i + 1; j < len(ws); j++ {
					keep = append(keep, ws[j])
				}
				ok = false
				break watchLoop
			}
			s.assign(other, w.clause)
		}

		s.watches.set(lit, keep)
		if !ok {
			s.propQ.Clear()
			return false
		}
	}
	return true
}
