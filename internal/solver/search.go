package solver

import "time"

// Solve runs the top-level search state machine (spec.md §4.6) to
// completion, an interruption, or a terminal result: 10 (satisfiable),
// 20 (unsatisfiable), or 0 (interrupted, resumable by calling Solve
// again). Grounded on the teacher's internal/sat/solver.go Solve loop
// shape (propagate/analyze/decide), extended with the restart/reduce/
// rephase/simplify scheduling points and assumption handling spec.md
// §4.6/§4.7 add.
func (s *Solver) Solve() Status {
	s.startTime = time.Now()
	s.terminate = false
	s.clearFailedFlags()
	s.unsatAssumptions = false
	s.nextAssumption = 0
	// Drop the previous call's decisions, so that while assumptions are
	// pending every decision on the trail is one of this call's.
	s.backtrack(0)

	if s.unsat {
		s.releaseAssumptions()
		return StatusUnsat
	}

	status := s.search()

	if status == StatusSatisfiable {
		s.extendModel()
	}
	s.releaseAssumptions()
	return status
}

func (s *Solver) clearFailedFlags() {
	for v := Var(0); int(v) < s.vd.numVars(); v++ {
		s.vd.clearFlag(v, flagFailed)
	}
}

// search is the inner loop: propagate, then on conflict analyze/learn
// or declare unsat, otherwise run any due maintenance phase before
// making (or consuming) the next decision.
func (s *Solver) search() Status {
	for {
		if s.shouldTerminate() {
			return StatusUnknown
		}

		if !s.propagate() {
			if s.decisionLevel() == 0 {
				s.unsat = true
				s.tracer.ReportStatus(int(StatusUnsat))
				return StatusUnsat
			}
			s.analyzeConflict()
			if s.unsat {
				return StatusUnsat
			}
			continue
		}

		if s.fullyAssigned() && s.nextAssumption >= len(s.assumptions) {
			return StatusSatisfiable
		}

		if s.restartDue() {
			s.restart()
			continue
		}

		if s.decisionLevel() == 0 {
			if s.reduceDue() {
				s.reduce()
				continue
			}
			if s.rephaseDue() {
				s.scheduleRephase()
				continue
			}
			if s.simplifyDue() {
				s.simplify()
				if s.unsat {
					return StatusUnsat
				}
				continue
			}
		}

		s.maybeStabilize()

		if !s.decideNext() {
			return StatusUnsat
		}
	}
}
