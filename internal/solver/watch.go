package solver

// watcher is one entry in a literal's watch list: a clause that must be
// re-inspected when that literal is falsified, plus a cached blocking
// literal that lets propagate skip loading the clause entirely when the
// blocker is already true (spec.md §4.1). Grounded on the teacher's
// internal/sat/solver.go `watcher` struct.
type watcher struct {
	clause  ClauseRef
	blocker Literal
}

// watchLists owns watches[lit] for every literal code, generalizing the
// teacher's `watchers [][]watcher` field.
type watchLists struct {
	lists [][]watcher
}

func newWatchLists() *watchLists {
	return &watchLists{}
}

func (w *watchLists) addVar() {
	w.lists = append(w.lists, nil, nil)
}

func (w *watchLists) watch(ref ClauseRef, on Literal, blocker Literal) {
	w.lists[on] = append(w.lists[on], watcher{clause: ref, blocker: blocker})
}

// unwatch removes every watcher pointing at ref from on's list. Clause
// removal is rare enough (reduce, simplify) that a linear scan here is
// fine, matching the teacher's internal/sat/solver.go:Unwatch.
func (w *watchLists) unwatch(ref ClauseRef, on Literal) {
	list := w.lists[on]
	j := 0
	for i := range list {
		if list[i].clause != ref {
			list[j] = list[i]
			j++
		}
	}
	w.lists[on] = list[:j]
}

func (w *watchLists) get(l Literal) []watcher { return w.lists[l] }
func (w *watchLists) set(l Literal, ws []watcher) { w.lists[l] = ws }
