package solver

// Stats exposes the running counters callers can inspect between solves.
// Named in the SolverStatistics convention xDarkicex-logic/sat/types.go
// uses for its own solver statistics struct (not the teacher, which only
// tracked three public counters directly on Solver) -- see DESIGN.md.
type Stats struct {
	Decisions       int64
	Propagations    int64
	Conflicts       int64
	Restarts        int64
	Rephases        int64
	Reduces         int64
	SimplifyRounds  int64
	LearnedClauses  int64
	DeletedClauses  int64
	GlueClauses     int64
	ChronoBacktrack int64

	ClausesSubsumed     int64
	ClausesStrengthened int64
	ClausesVivified     int64
	VariablesEliminated int64
	FailedLiteralsFound int64
	BlockedClausesFound int64
	CoveredClausesFound int64
	EquivalentLiterals  int64
	AutarkyRemovals     int64

	TierRecomputed int64
}
