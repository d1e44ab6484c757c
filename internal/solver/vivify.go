package solver

// vivify strengthens clauses via trial propagation (spec.md §4.8 step
// 5): for each candidate clause, the negation of its literals is
// assumed one at a time at fresh decision levels; if propagation
// conflicts before every literal has been assumed, the clause can be
// shrunk to the literals tried so far, since their disjunction alone
// is already implied. Grounded on CaDiCaL's vivify.cpp in spirit
// (trial propagation over sorted candidates), simplified to a single
// pass over irredundant clauses up to VivifyMaxSize rather than its
// priority-queue scheduling, per spec.md §1's "thin collaborator"
// scope for simplifier internals.
func (ctx *simplifyContext) vivify() {
	s := ctx.s
	if s.decisionLevel() != 0 {
		return
	}
	limit := s.simplifyConfig.VivifyMaxSize

	for ref := range s.arena.clauses {
		r := ClauseRef(ref)
		c := s.arena.get(r)
		if c.has(csGarbage) || c.has(csDeleted) || c.isRedundant() || c.size() < 2 {
			continue
		}
		if limit > 0 && c.size() > limit {
			continue
		}
		ctx.vivifyClause(r)
	}
}

// vivifyClause trial-assumes ¬lits one at a time, backtracking to
// level 0 before returning regardless of outcome.
func (ctx *simplifyContext) vivifyClause(ref ClauseRef) {
	s := ctx.s
	c := s.arena.get(ref)
	lits := append([]Literal(nil), c.literals...)

	tried := make([]Literal, 0, len(lits))
	strengthened := false

	for _, l := range lits {
		switch s.vd.val(l) {
		case True:
			// l already holds at level 0: the clause is satisfied forever.
			// A value implied at a trial level (for instance by this clause
			// itself) leaves the clause unchanged.
			atRoot := s.vd.level[l.Var()] == 0
			s.backtrack(0)
			if atRoot {
				ctx.markGarbage(ref)
			}
			return
		case False:
			// ¬l already implied: l contributes nothing, drop it.
			strengthened = true
			continue
		}

		tried = append(tried, l)
		s.tr.openLevel(l.Opposite())
		s.assign(l.Opposite(), nilRef)
		ok := s.propagate()
		s.conflict = nilRef
		if !ok {
			strengthened = true
			break
		}
	}

	s.backtrack(0)

	if !strengthened || len(tried) == len(lits) {
		return
	}
	switch len(tried) {
	case 0:
		// every literal was already falsified: the clause is forced empty.
		ctx.markGarbage(ref)
		s.unsat = true
	case 1:
		// shrunk to a unit: units are never stored in the arena, matching
		// install.go's newClause short-circuit for size-1 clauses.
		ctx.markGarbage(ref)
		lit := tried[0]
		switch s.vd.val(lit) {
		case Unknown:
			s.assign(lit, nilRef)
		case False:
			s.unsat = true
		}
	default:
		ctx.rewriteClauseLiterals(ref, tried)
	}
	s.stats.ClausesVivified++
}

// rewriteClauseLiterals replaces a clause's literal set in place,
// keeping occurrence lists and watches consistent, mirroring
// subsume.go's strengthen but for an arbitrary new literal set rather
// than dropping exactly one literal.
func (ctx *simplifyContext) rewriteClauseLiterals(ref ClauseRef, newLits []Literal) {
	s := ctx.s
	c := s.arena.get(ref)

	watchesLive := ctx.occs == nil || !ctx.occs.isWatchesDisconnected()
	if ctx.occs != nil {
		ctx.occs.remove(ref, c.literals)
	}
	if watchesLive && c.size() >= 2 {
		s.unwatchClause(ref)
	}

	c.literals = append(c.literals[:0], newLits...)

	if watchesLive && c.size() >= 2 {
		s.watchClause(ref)
	}
	if ctx.occs != nil {
		ctx.occs.add(ref, c.literals)
	}
	s.tracer.AddDerivedClause(c.id, s.externalize(c.literals), nil)
}
