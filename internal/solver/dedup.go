package solver

// dedupeBinaries marks duplicate binary clauses as garbage, the
// orchestrator's first simplification step (spec.md §4.8 step 1). Two
// binary clauses are duplicates if they contain the same unordered
// literal pair.
func (ctx *simplifyContext) dedupeBinaries() {
	seen := map[[2]Literal]bool{}
	for ref := range ctx.s.arena.clauses {
		r := ClauseRef(ref)
		c := ctx.s.arena.get(r)
		if c.has(csGarbage) || c.has(csDeleted) || c.size() != 2 {
			continue
		}
		a, b := c.literals[0], c.literals[1]
		if a > b {
			a, b = b, a
		}
		key := [2]Literal{a, b}
		if seen[key] {
			ctx.markGarbage(r)
			continue
		}
		seen[key] = true
	}
}
