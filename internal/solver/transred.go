package solver

// transitiveReduction removes redundant edges from the binary
// implication graph (BIG) formed by binary clauses: an edge u -> v is
// redundant if v is reachable from u through some other path. Grounded
// on CaDiCaL's original_source/src/transred.cpp in spirit (BIG +
// per-source reachability), scaled down to a bounded DFS instead of
// its SCC-aware iterative traversal, which is an acceptable
// simplification since the core spec treats simplifier internals as
// thin collaborators (spec.md §1).
func (ctx *simplifyContext) transitiveReduction() {
	s := ctx.s
	big := buildBIG(s)

	for u := range big {
		for _, edge := range big[u] {
			v := edge.to
			if reachableWithout(s, big, u, v, edge.ref) {
				ctx.markGarbage(edge.ref)
			}
		}
	}
}

type bigEdge struct {
	to  Literal
	ref ClauseRef
}

// buildBIG returns, for each literal u, the list of literals v such that
// a binary clause {¬u, v} makes u -> v an implication edge.
func buildBIG(s *Solver) map[Literal][]bigEdge {
	big := map[Literal][]bigEdge{}
	for ref := range s.arena.clauses {
		r := ClauseRef(ref)
		c := s.arena.get(r)
		if c.has(csGarbage) || c.has(csDeleted) || c.size() != 2 {
			continue
		}
		a, b := c.literals[0], c.literals[1]
		big[a.Opposite()] = append(big[a.Opposite()], bigEdge{to: b, ref: r})
		big[b.Opposite()] = append(big[b.Opposite()], bigEdge{to: a, ref: r})
	}
	return big
}

// reachableWithout reports whether target is reachable from start using
// only edges of live irredundant clauses other than skip, via a
// DFS that gives up (reporting false) once maxVisited literals have been
// reached, to keep this a cheap inprocessing pass rather than an
// exhaustive search.
func reachableWithout(s *Solver, big map[Literal][]bigEdge, start, target Literal, skip ClauseRef) bool {
	const maxVisited = 4096
	visited := map[Literal]bool{start: true}
	stack := []Literal{start}
	for len(stack) > 0 && len(visited) < maxVisited {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range big[u] {
			if e.ref == skip {
				continue // ignore both edges of the clause being tested
			}
			if c := s.arena.get(e.ref); c.isGarbage() || c.isRedundant() {
				continue // removed earlier in this pass, or may be reduced away
			}
			if e.to == target {
				return true
			}
			if !visited[e.to] {
				visited[e.to] = true
				stack = append(stack, e.to)
			}
		}
	}
	return false
}
