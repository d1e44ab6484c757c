package solver

// autarkyReduce removes clauses satisfied by a pure-literal autarky
// (spec.md §4.8 step 10, explicitly optional): a variable whose
// negation never occurs in any surviving clause (redundant ones
// included) can be
// fixed to satisfy every clause it still touches, and those clauses
// dropped outright. This is the pure-literal rule, the simplest
// nontrivial case of the general autarky CaDiCaL's autarky.cpp finds
// by shrinking a full phase assignment down to a sub-autarky; the full
// search is out of scope here per spec.md §1's "thin collaborator"
// scope for simplifier internals; [DESIGN.md: autarky scope].
func (ctx *simplifyContext) autarkyReduce() {
	s := ctx.s
	if !s.simplifyConfig.Autarky || ctx.occs == nil {
		return
	}

	for v := Var(0); int(v) < s.vd.numVars(); v++ {
		if !s.vd.isActive(v) || s.isFrozen(v) {
			continue
		}
		posLive := anyLiveClause(s, ctx.occs.of(PositiveLiteral(v)))
		negLive := anyLiveClause(s, ctx.occs.of(NegativeLiteral(v)))
		switch {
		case posLive && !negLive:
			ctx.removePureLiteral(v, PositiveLiteral(v))
		case negLive && !posLive:
			ctx.removePureLiteral(v, NegativeLiteral(v))
		}
	}
}

func anyLiveClause(s *Solver, refs []ClauseRef) bool {
	for _, ref := range refs {
		c := s.arena.get(ref)
		if !c.has(csGarbage) && !c.has(csDeleted) {
			return true
		}
	}
	return false
}

// removePureLiteral drops every surviving clause containing lit,
// recording each as an extension-stack block witnessed by lit.
func (ctx *simplifyContext) removePureLiteral(v Var, lit Literal) {
	s := ctx.s
	refs := append([]ClauseRef(nil), ctx.occs.of(lit)...)
	for _, ref := range refs {
		c := s.arena.get(ref)
		if c.has(csGarbage) || c.has(csDeleted) {
			continue
		}
		others := literalsExcept(c.literals, lit)
		s.extStack.push(lit, others)
		ctx.markGarbage(ref)
	}
	s.vd.status[v] = statusEliminated
	s.stats.AutarkyRemovals++
}
