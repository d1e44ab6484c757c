package solver

// subsume performs forward subsumption and self-subsuming resolution
// over the occurrence lists (spec.md §4.8 step 4): for every clause C,
// any other clause D with C ⊆ D is redundant and removed; if C agrees
// with D except for exactly one literal l where D holds ¬l, D is
// strengthened by dropping ¬l (self-subsuming resolution). Grounded on
// CaDiCaL's subsume.cpp in spirit (occurrence-list forward subsumption
// keyed on the rarest literal), simplified to a single non-iterating
// pass per spec.md §1's "thin collaborator" scope for simplifier
// internals.
func (ctx *simplifyContext) subsume() {
	s := ctx.s
	if ctx.occs == nil {
		return
	}
	limit := s.simplifyConfig.SubsumeMaxSize

	for ref := range s.arena.clauses {
		r := ClauseRef(ref)
		c := s.arena.get(r)
		if c.has(csGarbage) || c.has(csDeleted) || c.size() == 0 {
			continue
		}
		if limit > 0 && c.size() > limit {
			continue
		}
		ctx.subsumeWith(r, c)
	}
}

// subsumeWith tries clause c (at ref r) as the subsuming/strengthening
// side against every clause sharing its rarest literal.
func (ctx *simplifyContext) subsumeWith(r ClauseRef, c *Clause) {
	s := ctx.s

	pivot := c.literals[0]
	for _, l := range c.literals[1:] {
		if len(ctx.occs.of(l)) < len(ctx.occs.of(pivot)) {
			pivot = l
		}
	}

	candidates := append([]ClauseRef(nil), ctx.occs.of(pivot)...)
	for _, d := range candidates {
		if d == r {
			continue
		}
		dc := s.arena.get(d)
		if dc.has(csGarbage) || dc.has(csDeleted) || dc.size() < c.size() {
			continue
		}
		full, removeLit, self := subsumptionRelation(c.literals, dc.literals)
		switch {
		case full:
			if c.isRedundant() && !dc.isRedundant() {
				// c takes d's place in the irredundant formula.
				c.clear(csRedundant)
			}
			ctx.markGarbage(d)
			s.stats.ClausesSubsumed++
		case self:
			ctx.strengthen(d, removeLit)
			s.stats.ClausesStrengthened++
		}
	}
}

// subsumptionRelation compares literal sets a (the candidate subsumer)
// and b (the candidate subsumed clause, |b| >= |a|). It reports full
// subsumption when a ⊆ b, or self-subsumption when a agrees with b
// except that exactly one literal l of a has ¬l (not l) present in b —
// in which case removeLit is ¬l, the literal that can be dropped from b.
func subsumptionRelation(a, b []Literal) (fullSub bool, removeLit Literal, selfSub bool) {
	bset := make(map[Literal]bool, len(b))
	for _, l := range b {
		bset[l] = true
	}

	foundFlip := false
	var flip Literal
	for _, l := range a {
		if bset[l] {
			continue
		}
		if !foundFlip && bset[l.Opposite()] {
			foundFlip = true
			flip = l.Opposite()
			continue
		}
		return false, 0, false
	}

	if !foundFlip {
		return true, 0, false
	}
	return false, flip, true
}

// strengthen removes lit from the clause at ref, keeping occurrence
// lists and watches consistent, and reports the shrunk clause to the
// proof as a newly derived clause (the original is implicitly
// superseded since its id now covers the shorter form).
func (ctx *simplifyContext) strengthen(ref ClauseRef, lit Literal) {
	s := ctx.s
	c := s.arena.get(ref)

	watchesLive := ctx.occs == nil || !ctx.occs.isWatchesDisconnected()
	if ctx.occs != nil {
		ctx.occs.remove(ref, c.literals)
	}
	if watchesLive && c.size() >= 2 {
		s.unwatchClause(ref)
	}

	kept := c.literals[:0]
	for _, l := range c.literals {
		if l != lit {
			kept = append(kept, l)
		}
	}
	c.literals = kept

	if watchesLive && c.size() >= 2 {
		s.watchClause(ref)
	}
	if ctx.occs != nil {
		ctx.occs.add(ref, c.literals)
	}
	s.tracer.AddDerivedClause(c.id, s.externalize(c.literals), nil)

	if c.size() == 1 {
		// Units are never stored in the arena (see newClause): the
		// remaining literal is assigned at level 0 instead.
		unit := c.literals[0]
		ctx.markGarbage(ref)
		switch s.vd.val(unit) {
		case Unknown:
			s.assign(unit, nilRef)
		case False:
			s.unsat = true
		}
	}
}
