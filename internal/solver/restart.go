package solver

import "math"

// lubyState drives the Luby-sequence restart schedule used in focused
// mode: conflict counts between restarts follow 1,1,2,1,1,2,4,... times
// a configured unit, the classic restart sequence MiniSAT-family
// solvers use. Grounded on spec.md §4.4/§9 ("Luby-style restarts"); no
// pack file implements Luby directly, so the recurrence is taken
// straight from its standard definition.
type lubyState struct {
	unit  int64
	index int64
}

func newLubyState(unit int64) lubyState {
	if unit <= 0 {
		unit = 1
	}
	return lubyState{unit: unit, index: 1}
}

// luby computes the i-th term of the Luby sequence (1-indexed).
func luby(i int64) int64 {
	k := int64(1)
	for k < i+1 {
		k *= 2
	}
	if i == k-1 {
		return k / 2
	}
	return luby(i - k/2 + 1)
}

func (l *lubyState) next() int64 {
	v := luby(l.index) * l.unit
	l.index++
	return v
}

// reluctantState is CaDiCaL's "reluctant doubling" schedule used in
// stable mode: like Luby but computed iteratively with two counters
// instead of recursion, and capped at a configured limit so stable mode
// does not go arbitrarily long between restarts. Grounded on
// original_source/src/reluctant.hpp's u/v counter recurrence.
type reluctantState struct {
	unit  int64
	limit int64
	u, v  int64
}

func newReluctantState(unit, limit int64) reluctantState {
	if unit <= 0 {
		unit = 1
	}
	return reluctantState{unit: unit, limit: limit, u: 1, v: 1}
}

func (r *reluctantState) next() int64 {
	if (r.u & -r.u) == r.v {
		r.u++
		r.v = 1
	} else {
		r.v *= 2
	}
	period := r.v * r.unit
	if r.limit > 0 && period > r.limit {
		period = r.limit
	}
	return period
}

// restartDue reports whether the search driver should restart before the
// next decision (spec.md §4.4): in focused mode, the fast glue EMA must
// exceed margin*slow glue EMA and a Luby-scheduled conflict budget must
// have elapsed; in stable mode, only the reluctant-doubling schedule
// gates it (CaDiCaL does not use the glue EMA trigger once stabilized).
func (s *Solver) restartDue() bool {
	if s.stats.Conflicts < s.nextRestartAt {
		return false
	}
	if s.stable {
		return true
	}
	return s.fastGlue.val() > s.opts.RestartMargin*s.slowGlue.val()
}

// restart unwinds the trail to the reuse-trail level (or 0) and
// schedules the next restart opportunity.
func (s *Solver) restart() {
	level := s.reuseTrailLevel()
	s.backtrack(level)
	s.stats.Restarts++
	if s.stable {
		s.nextRestartAt = s.stats.Conflicts + s.reluctant.next()
	} else {
		s.nextRestartAt = s.stats.Conflicts + s.luby.next()
	}
}

// maybeStabilize toggles between focused and stable mode on the
// geometrically growing schedule spec.md §4.4 describes, switching
// which decision heuristic and restart schedule are active.
func (s *Solver) maybeStabilize() {
	if s.stats.Conflicts < s.nextStabilize {
		return
	}
	s.stable = !s.stable
	s.stabilizePhase++
	interval := float64(s.opts.StabilizeInterval) * math.Pow(s.opts.StabilizeGrowth, float64(s.stabilizePhase))
	s.nextStabilize = s.stats.Conflicts + int64(interval)
	if s.stable {
		s.rephaseTarget()
	}
}
