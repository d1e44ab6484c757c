package solver

// blockedClauseElimination removes clauses blocked on one of their own
// literals (BCE, spec.md §4.8 step 8): a clause C is blocked on pivot
// ∈ C if every clause D containing ¬pivot resolves with C on pivot to
// a tautology. Grounded directly on CaDiCaL's block.cpp
// (block_clause_on_literal's mark/scan-for-clash loop), kept as a
// single pass over occurrence lists rather than its priority-queue
// scheduling, per spec.md §1's "thin collaborator" scope for
// simplifier internals.
func (ctx *simplifyContext) blockedClauseElimination() {
	s := ctx.s
	if ctx.occs == nil {
		return
	}

	for ref := range s.arena.clauses {
		r := ClauseRef(ref)
		c := s.arena.get(r)
		if c.has(csGarbage) || c.has(csDeleted) || c.isRedundant() || c.size() == 0 {
			continue
		}

		marks := make(map[Literal]bool, c.size())
		for _, l := range c.literals {
			marks[l] = true
		}

		for _, pivot := range c.literals {
			if s.isFrozen(pivot.Var()) || !s.vd.isActive(pivot.Var()) {
				continue // a fixed variable's unit is not in the occurrence lists
			}
			if ctx.blockedOn(r, pivot, marks) {
				others := literalsExcept(c.literals, pivot)
				s.extStack.push(pivot, others)
				ctx.markGarbage(r)
				s.stats.BlockedClausesFound++
				break
			}
		}
	}
}

// blockedOn reports whether c is blocked on pivot: every irredundant,
// non-garbage clause containing ¬pivot either is already satisfied (and
// gets collected as garbage along the way) or clashes with some literal
// of c, making its resolvent with c tautological.
func (ctx *simplifyContext) blockedOn(ref ClauseRef, pivot Literal, marks map[Literal]bool) bool {
	s := ctx.s
	negOccs := ctx.occs.of(pivot.Opposite())
	if len(negOccs) == 0 {
		return true
	}

	for _, dref := range negOccs {
		if dref == ref {
			continue
		}
		d := s.arena.get(dref)
		if d.has(csGarbage) || d.has(csDeleted) || d.isRedundant() {
			continue
		}

		satisfied, clash := false, false
		for _, l := range d.literals {
			if l == pivot.Opposite() {
				continue
			}
			switch s.vd.val(l) {
			case True:
				satisfied = true
			case False:
				continue
			default:
				if marks[l.Opposite()] {
					clash = true
				}
			}
			if satisfied || clash {
				break
			}
		}

		if satisfied {
			ctx.markGarbage(dref)
			continue
		}
		if !clash {
			return false
		}
	}
	return true
}
