// Package proof implements the proof-tracer abstraction spec.md §4.9
// describes: a narrow observer interface (original clause, derived
// clause, deletion, in-place weakening, status, flush), of which the
// solver core calls AddDerivedClause, DeleteClause and ReportStatus,
// plus concrete tracers emitting DRAT, LRAT, FRAT, and VeriPB
// formats. Grounded in shape (a minimal Tracer interface plus a
// no-op default, composable fan-out) on the operator-framework
// dependency solver's tracer.go, generalized from its single Trace(p)
// hook to the multi-event hook set a clausal proof format needs.
package proof

// Tracer receives proof events from the solver core. Every method has a
// default no-op meaning: a solver with no tracer attached pays only the
// cost of an interface call, never of formatting or I/O.
type Tracer interface {
	// AddOriginalClause records one clause of the input formula, in the
	// order add() installed it. id is stable for the clause's lifetime.
	AddOriginalClause(id uint64, lits []int32)

	// AddDerivedClause records a clause learned or produced by
	// inprocessing, together with the antecedent ids that justify it
	// (empty for clauses derived without a checkable antecedent, e.g.
	// from a format that does not require one).
	AddDerivedClause(id uint64, lits []int32, antecedents []uint64)

	// DeleteClause records that id is no longer needed to justify the
	// remainder of the proof (garbage collection, subsumption, reduce).
	DeleteClause(id uint64, lits []int32)

	// WeakenClause records a literal removed from a clause in place
	// rather than a full delete+add pair. The solver core does not call
	// it; it reports strengthened clauses through AddDerivedClause.
	WeakenClause(id uint64, lits []int32)

	// ReportStatus records the final or intermediate solver status: 10
	// for satisfiable, 20 for unsat, 0 for unknown/interrupted.
	ReportStatus(status int)

	// Flush writes out buffered output, if any. The solver core never
	// calls it.
	Flush() error
}

// Composite fans every event out to each of its members, in order. A
// nil or empty Composite is itself a valid no-op Tracer.
type Composite []Tracer

func (c Composite) AddOriginalClause(id uint64, lits []int32) {
	for _, t := range c {
		t.AddOriginalClause(id, lits)
	}
}

func (c Composite) AddDerivedClause(id uint64, lits []int32, antecedents []uint64) {
	for _, t := range c {
		t.AddDerivedClause(id, lits, antecedents)
	}
}

func (c Composite) DeleteClause(id uint64, lits []int32) {
	for _, t := range c {
		t.DeleteClause(id, lits)
	}
}

func (c Composite) WeakenClause(id uint64, lits []int32) {
	for _, t := range c {
		t.WeakenClause(id, lits)
	}
}

func (c Composite) ReportStatus(status int) {
	for _, t := range c {
		t.ReportStatus(status)
	}
}

func (c Composite) Flush() error {
	for _, t := range c {
		if err := t.Flush(); err != nil {
			return err
		}
	}
	return nil
}
