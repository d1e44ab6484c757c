package solver

// controlFrame records, for one decision level, the literal that was
// decided (nilLit at level 0, or for a trial level opened without a
// decision, as cover.go's is) and the trail index at which the level
// began (spec.md §3: "control[l] maps each decision level to (decision
// literal, trail index at entry)").
type controlFrame struct {
	decision Literal
	begin    int32
}

const nilLit Literal = -1

// trail is the ordered assignment log plus the control stack, generalizing
// the teacher's separate `trail []Literal` / `trailLim []int` fields
// (internal/sat/solver.go) into one structure that also remembers the
// decision literal per level, which the teacher never needed since it had
// no chronological backtracking or assumptions.
type trail struct {
	lits    []Literal
	control []controlFrame
}

func newTrail() *trail {
	return &trail{control: []controlFrame{{decision: nilLit, begin: 0}}}
}

func (t *trail) level() int { return len(t.control) - 1 }

func (t *trail) push(l Literal) {
	t.lits = append(t.lits, l)
}

// openLevel begins a new decision level with the given decision literal
// (nilLit if the level has no decision literal, as for cover.go's trial
// level; an assumption that is already implied opens no level).
func (t *trail) openLevel(decision Literal) {
	t.control = append(t.control, controlFrame{decision: decision, begin: int32(len(t.lits))})
}

// levelBegin returns the trail index at which level l started.
func (t *trail) levelBegin(l int) int {
	return int(t.control[l].begin)
}

func (t *trail) decisionAt(l int) Literal {
	return t.control[l].decision
}

// truncate drops every trail entry from index i onward (popLevels drops
// the control frames), used by backtrack after literals have been
// individually unassigned by the caller.
func (t *trail) truncate(i int) {
	t.lits = t.lits[:i]
}

func (t *trail) popLevels(toLevel int) {
	t.control = t.control[:toLevel+1]
}
