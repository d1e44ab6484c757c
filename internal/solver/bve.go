package solver

// eliminateVariables performs bounded variable elimination (BVE,
// spec.md §4.8 step 7): for each active, non-frozen variable v, every
// pair of clauses containing v and ¬v is resolved; if the number of
// non-tautological resolvents does not exceed the number of clauses
// being removed (and no resolvent grows past ElimBound), v is
// eliminated — its clauses are replaced by their resolvents and an
// extension-stack witness records how to recover v's value in the
// final model. Grounded on CaDiCaL's elim.cpp (have_tautological_
// resolvent's single-pivot marking trick, resolvents_are_bounded's
// count comparison), simplified to recompute resolvents directly
// rather than elim.cpp's incremental scoring/scheduling, per spec.md
// §1's "thin collaborator" scope for simplifier internals.
func (ctx *simplifyContext) eliminateVariables() {
	s := ctx.s
	if ctx.occs == nil {
		return
	}
	bound := s.simplifyConfig.ElimBound

	for v := Var(0); int(v) < s.vd.numVars(); v++ {
		if !s.vd.isActive(v) || s.isFrozen(v) {
			continue
		}
		ctx.tryEliminate(v, bound)
	}
}

func (ctx *simplifyContext) tryEliminate(v Var, bound int) {
	s := ctx.s
	pos := append([]ClauseRef(nil), ctx.occs.of(PositiveLiteral(v))...)
	neg := append([]ClauseRef(nil), ctx.occs.of(NegativeLiteral(v))...)
	pos = liveClauses(s, pos)
	neg = liveClauses(s, neg)

	if len(pos) == 0 && len(neg) == 0 {
		return
	}
	if len(pos) == 0 || len(neg) == 0 {
		ctx.eliminatePureLiteral(v, pos, neg)
		return
	}

	var resolvents [][]Literal
	removed := len(pos) + len(neg)
	for _, cref := range pos {
		c := s.arena.get(cref)
		for _, dref := range neg {
			d := s.arena.get(dref)
			res, tautological := resolveOn(v, c.literals, d.literals)
			if tautological {
				continue
			}
			if bound > 0 && len(res) > bound {
				return // resolvent too large, abandon elimination of v
			}
			resolvents = append(resolvents, res)
			if len(resolvents) > removed {
				return // exceeds the bounded-variable-elimination budget
			}
		}
	}

	for _, cref := range pos {
		c := s.arena.get(cref)
		others := literalsExcept(c.literals, PositiveLiteral(v))
		s.extStack.push(PositiveLiteral(v), others)
		ctx.markGarbage(cref)
	}
	for _, dref := range neg {
		ctx.markGarbage(dref)
	}
	s.vd.status[v] = statusEliminated
	s.stats.VariablesEliminated++

	for _, res := range resolvents {
		if _, ok := ctx.addClause(res); !ok {
			s.unsat = true
		}
	}
}

// eliminatePureLiteral handles the degenerate case where v appears with
// only one polarity: it is a pure literal and every clause containing
// it can be removed outright, with v forced to that polarity in the
// final model.
func (ctx *simplifyContext) eliminatePureLiteral(v Var, pos, neg []ClauseRef) {
	s := ctx.s
	witness := PositiveLiteral(v)
	clauses := pos
	if len(pos) == 0 {
		witness = NegativeLiteral(v)
		clauses = neg
	}
	for _, ref := range clauses {
		c := s.arena.get(ref)
		others := literalsExcept(c.literals, witness)
		s.extStack.push(witness, others)
		ctx.markGarbage(ref)
	}
	s.vd.status[v] = statusEliminated
	s.stats.VariablesEliminated++
}

func liveClauses(s *Solver, refs []ClauseRef) []ClauseRef {
	out := refs[:0]
	for _, r := range refs {
		c := s.arena.get(r)
		if !c.has(csGarbage) && !c.has(csDeleted) {
			out = append(out, r)
		}
	}
	return out
}

func literalsExcept(lits []Literal, skip Literal) []Literal {
	out := make([]Literal, 0, len(lits)-1)
	for _, l := range lits {
		if l != skip {
			out = append(out, l)
		}
	}
	return out
}

// resolveOn resolves clauses c and d on variable v, returning their
// resolvent and whether it is tautological (contains some literal and
// its negation besides the pivot), mirroring elim.cpp's
// have_tautological_resolvent + resolve_clauses combined into one pass.
func resolveOn(v Var, c, d []Literal) (resolvent []Literal, tautological bool) {
	pos, neg := PositiveLiteral(v), NegativeLiteral(v)
	marks := make(map[Literal]bool, len(c))
	for _, l := range c {
		if l == pos || l == neg {
			continue
		}
		marks[l] = true
	}

	out := make([]Literal, 0, len(c)+len(d)-2)
	for _, l := range c {
		if l != pos && l != neg {
			out = append(out, l)
		}
	}
	for _, l := range d {
		if l == pos || l == neg {
			continue
		}
		if marks[l.Opposite()] {
			return nil, true
		}
		if !marks[l] {
			out = append(out, l)
			marks[l] = true
		}
	}
	return out, false
}
