package solver

// coverEliminate implements a simplified covered clause elimination
// (CCE, spec.md §4.8 step 6). For each candidate clause C, the
// negation of every literal in C is assumed via trial propagation
// (asymmetric literal addition); any literal e newly forced true whose
// variable is not already in C is then checked for covered literal
// addition: if every clause resolving on ¬e is already satisfied by
// the trial assignment, C is blocked on e and can be removed, with e
// recorded as the extension-stack witness. Grounded on CaDiCaL's
// cover.cpp in spirit (ALA via propagation, CLA via occurrence-list
// resolution candidates), reduced to a single ALA pass followed by one
// CLA check per newly forced literal instead of its iterated
// fixed-point loop, matching spec.md §1's "thin collaborator" scope
// for simplifier internals.
func (ctx *simplifyContext) coverEliminate() {
	s := ctx.s
	if ctx.occs == nil || s.decisionLevel() != 0 {
		return
	}
	limit := s.simplifyConfig.SubsumeMaxSize

	for ref := range s.arena.clauses {
		r := ClauseRef(ref)
		c := s.arena.get(r)
		if c.has(csGarbage) || c.has(csDeleted) || c.isRedundant() || c.size() < 2 {
			continue
		}
		if limit > 0 && c.size() > limit {
			continue
		}
		ctx.tryCover(r)
	}
}

func (ctx *simplifyContext) tryCover(ref ClauseRef) {
	s := ctx.s
	c := s.arena.get(ref)
	original := append([]Literal(nil), c.literals...)
	inClause := make(map[Var]bool, len(original))
	for _, l := range original {
		inClause[l.Var()] = true
	}

	start := len(s.tr.lits)
	s.tr.openLevel(nilLit)
	conflict := false
	for _, l := range original {
		if s.vd.val(l.Opposite()) == True {
			continue
		}
		if s.vd.val(l) == True {
			// clause already forced true; not eligible for elimination here.
			s.backtrack(0)
			return
		}
		s.assign(l.Opposite(), nilRef)
		if !s.propagate() {
			conflict = true
			s.conflict = nilRef
			break
		}
	}

	if conflict {
		s.backtrack(0)
		return
	}

	witness := nilLit
	for i := start; i < len(s.tr.lits); i++ {
		e := s.tr.lits[i]
		if inClause[e.Var()] {
			continue
		}
		if ctx.resolutionCandidatesSatisfied(e) {
			witness = e.Opposite()
			break
		}
	}

	s.backtrack(0)

	if witness == nilLit {
		return
	}
	ctx.markEliminatedClause(ref, witness, original)
	s.stats.CoveredClausesFound++
}

// resolutionCandidatesSatisfied reports whether every clause containing
// ¬e (i.e., every clause that would be a resolution candidate when e is
// added to the extended clause) is already satisfied by the current
// trial assignment, the CLA blocking condition.
func (ctx *simplifyContext) resolutionCandidatesSatisfied(e Literal) bool {
	s := ctx.s
	for _, ref := range ctx.occs.of(e.Opposite()) {
		d := s.arena.get(ref)
		if d.has(csGarbage) || d.has(csDeleted) {
			continue
		}
		satisfied := false
		for _, l := range d.literals {
			if s.vd.val(l) == True {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// markEliminatedClause removes a blocked/covered clause, pushing an
// extension-stack entry so model reconstruction can satisfy it via
// witness if nothing else in the original clause already does.
func (ctx *simplifyContext) markEliminatedClause(ref ClauseRef, witness Literal, lits []Literal) {
	ctx.s.extStack.push(witness, lits)
	ctx.markGarbage(ref)
}
