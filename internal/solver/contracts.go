package solver

// SimplifyConfig mirrors the subset of Options that gates which
// simplifiers the orchestrator runs each round, copied out at
// construction time so toggling it mid-round never changes behavior
// partway through a pass (spec.md §4.8).
type SimplifyConfig struct {
	Subsumption   bool
	Vivification  bool
	VariableElim  bool
	Probing       bool
	TransitiveRed bool
	Decompose     bool
	BlockedClause bool
	CoveredClause bool
	Autarky       bool

	ElimBound      int
	SubsumeMaxSize int
	VivifyMaxSize  int
	ProbeMaxCands  int
}

func DefaultSimplifyConfig(o Options) SimplifyConfig {
	return SimplifyConfig{
		Subsumption:    o.EnableSubsumption,
		Vivification:   o.EnableVivification,
		VariableElim:   o.EnableVariableElim,
		Probing:        o.EnableProbing,
		TransitiveRed:  o.EnableTransitiveRed,
		Decompose:      o.EnableDecompose,
		BlockedClause:  o.EnableBlockedClauseEl,
		CoveredClause:  o.EnableCoveredClauseEl,
		Autarky:        o.EnableAutarky,
		ElimBound:      o.ElimBound,
		SubsumeMaxSize: o.SubsumeMaxSize,
		VivifyMaxSize:  o.VivifyMaxSize,
		ProbeMaxCands:  o.ProbeMaxCandidates,
	}
}

// simplifyContext is the contract exposed to every concrete simplifier
// (spec.md §4.8's "Contract exposed to each simplifier" list). It wraps
// *Solver instead of defining a separate narrow interface per
// simplifier: the pack's precedent for "a scheduler and a fixed,
// known set of collaborators" (spec.md §9's tagged-union guidance)
// argues for one shared concrete struct rather than nine bespoke Go
// interfaces that would all end up needing the same handful of methods
// anyway.
type simplifyContext struct {
	s    *Solver
	occs *occurrenceLists
}

// addClause implements "new_resolved_irredundant_clause": allocate,
// update occurrences if built, notify the proof, return the handle.
func (ctx *simplifyContext) addClause(lits []Literal) (ClauseRef, bool) {
	ref, ok := ctx.s.newClause(lits, false)
	if ok && ref != nilRef {
		if ctx.occs != nil && ctx.occs.isWatchesDisconnected() {
			// newClause watched it; reconnectWatches watches it again.
			ctx.s.unwatchClause(ref)
		}
		c := ctx.s.arena.get(ref)
		ctx.s.tracer.AddDerivedClause(c.id, ctx.s.externalize(c.literals), nil)
		if ctx.occs != nil {
			ctx.occs.add(ref, c.literals)
		}
	}
	return ref, ok
}

// markGarbage implements "mark_garbage": unwatch (if watched),
// decrement occurrence counts if lists exist, and report the deletion.
// Callers that eliminate a clause push its extension-stack entry
// themselves.
func (ctx *simplifyContext) markGarbage(ref ClauseRef) {
	c := ctx.s.arena.get(ref)
	if c.has(csGarbage) {
		return
	}
	if ctx.occs != nil {
		ctx.occs.remove(ref, c.literals)
	}
	watchesLive := ctx.occs == nil || !ctx.occs.isWatchesDisconnected()
	if watchesLive && c.size() >= 2 {
		ctx.s.unwatchClause(ref)
	}
	c.set(csGarbage)
	ctx.s.tracer.DeleteClause(c.id, ctx.s.externalize(c.literals))
	ctx.s.stats.DeletedClauses++
}

// markEliminated records v as eliminated, disabling it for future
// decisions/propagations/new clauses, and pushes the clauses that
// justified its removal onto the extension stack for witness
// reconstruction (spec.md §4.8 / §3's extension stack).
func (ctx *simplifyContext) markEliminated(v Var, witness Literal, justifying []Literal) {
	ctx.s.vd.status[v] = statusEliminated
	ctx.s.extStack.push(witness, justifying)
	ctx.s.stats.VariablesEliminated++
}

// markSubstituted records v as replaced by an equivalent literal
// (decompose.go's SCC substitution); the extension stack entry restores
// v's value from its representative's at model-extension time.
func (ctx *simplifyContext) markSubstituted(v Var, representative Literal) {
	ctx.s.vd.status[v] = statusSubstituted
	ctx.s.extStack.push(PositiveLiteral(v), []Literal{representative.Opposite(), PositiveLiteral(v).Opposite()})
	ctx.s.extStack.push(NegativeLiteral(v), []Literal{representative, NegativeLiteral(v).Opposite()})
	ctx.s.stats.EquivalentLiterals++
}
