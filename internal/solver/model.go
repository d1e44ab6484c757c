package solver

// extendModel reconstructs truth values for every variable removed by
// substitution or elimination (spec.md §3's extension stack), writing
// the result, including witness flips of variables the search assigned,
// directly into vd.value so Val() keeps working unmodified once search
// reports satisfiable.
func (s *Solver) extendModel() {
	n := s.vd.numVars()
	model := make([]bool, n)
	known := make([]bool, n)

	for v := Var(0); int(v) < n; v++ {
		if s.vd.isAssigned(v) {
			model[v] = s.vd.val(PositiveLiteral(v)) == True
			known[v] = true
		}
	}

	s.extStack.extend(model, known)

	for v := Var(0); int(v) < n; v++ {
		if !known[v] {
			continue
		}
		val := Lift(model[v])
		s.vd.value[PositiveLiteral(v)] = val
		s.vd.value[NegativeLiteral(v)] = val.Opposite()
	}
}
