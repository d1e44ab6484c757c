// Package solver implements the core of an incremental CDCL SAT solver
// with inprocessing: clause/variable storage, two-watched-literal BCP,
// first-UIP conflict analysis, VMTF/scored-heap decision heuristics,
// restart and reduce policies, assumption handling, and an inprocessing
// orchestrator that schedules a set of simplifiers between search rounds.
package solver

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/solvekit/cdcl/internal/proof"
)

// Status mirrors the external API's solve() return convention (spec.md §6).
type Status int

const (
	StatusUnknown     Status = 0
	StatusSatisfiable Status = 10
	StatusUnsat       Status = 20
)

func (s Status) String() string {
	switch s {
	case StatusSatisfiable:
		return "SATISFIABLE"
	case StatusUnsat:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Solver is the whole engine: one value owns every mutable data structure
// (arena, watches, trail, heuristics, limits) with no package-level
// mutable state, per spec.md §9.
type Solver struct {
	opts Options
	rng  *rand.Rand

	vd      *varData
	arena   *arena
	watches *watchLists
	tr      *trail
	propQ   *ringQueue[Literal]
	seen    *resetSet

	vmtf *vmtfQueue
	heap *scoreHeap

	e2i map[int]Var
	i2e []int

	constraints []ClauseRef
	learnts     []ClauseRef

	conflict ClauseRef

	// Clause currently being built by Add.
	building []Literal

	unsat            bool
	unsatAssumptions bool

	stable bool // focused (VMTF) vs stable (scored heap) mode

	// Restart/stabilization state.
	fastGlue, slowGlue ema
	trailEMA           ema
	jumpEMA            ema
	sizeEMA            ema
	levelEMA           ema
	luby               lubyState
	reluctant          reluctantState
	stabilizePhase     int64
	nextStabilize      int64
	nextRestartAt      int64

	// Reduce / tier state.
	reduceLimit  int64
	reduceInc    int64
	tier1        [2]int // indexed by stable(0/1)
	tier2        [2]int
	tierUsed     [2][]int64
	tierRecompAt int64
	tierRuns     int64

	// Rephase state.
	rephaseLimit int64
	rephaseInc   int64
	rephases     int64
	bestTrailLen int

	// Simplify scheduling.
	lastSimplifyConflicts int64
	simplifyConfig        SimplifyConfig

	assumptions   []Literal
	nextAssumption int

	extStack extensionStack

	clauseInc   float64
	clauseDecay float64
	varInc      float64

	startTime time.Time
	terminate bool
	termFunc  func() bool

	tracer proof.Tracer

	stats Stats

	models [][]bool

	// Scratch buffers reused across calls to avoid per-call allocation,
	// following the teacher's tmpWatchers/tmpLearnts/tmpReason convention.
	tmpWatchers []watcher
	tmpLearnts  []Literal
	tmpReason   []Literal
	tmpAnalyzed []Var
}

// NewSolver creates an empty solver configured with opts.
func NewSolver(opts Options) *Solver {
	vd := newVarData()
	if opts.Logger == nil {
		opts.Logger = DefaultOptions.Logger
	}
	s := &Solver{
		opts:        opts,
		rng:         rand.New(rand.NewSource(int64(opts.Seed) + 1)),
		vd:          vd,
		arena:       newArena(),
		watches:     newWatchLists(),
		tr:          newTrail(),
		propQ:       newRingQueue[Literal](128),
		seen:        &resetSet{},
		e2i:         map[int]Var{},
		conflict:    nilRef,
		clauseInc:   1,
		clauseDecay: opts.ClauseDecay,
		varInc:      1,
		tracer:      proof.Composite{}, // no-op by default
	}
	s.vmtf = newVMTFQueue(vd)
	s.heap = newScoreHeap(vd, opts.VarDecay)
	s.fastGlue = newEMA(opts.EMAFastGlueAlpha)
	s.slowGlue = newEMA(opts.EMASlowGlueAlpha)
	s.trailEMA = newEMA(opts.EMATrailAlpha)
	s.jumpEMA = newEMA(opts.EMAJumpAlpha)
	s.sizeEMA = newEMA(opts.EMASizeAlpha)
	s.levelEMA = newEMA(opts.EMALevelAlpha)
	s.luby = newLubyState(opts.LubyUnit)
	s.reluctant = newReluctantState(opts.ReluctantUnit, opts.ReluctantLimit)
	s.reduceLimit = opts.ReduceInitial
	s.reduceInc = opts.ReduceIncrement
	s.tier1 = [2]int{opts.Tier1Glue, opts.Tier1Glue}
	s.tier2 = [2]int{opts.Tier2Glue, opts.Tier2Glue}
	s.tierUsed = [2][]int64{make([]int64, 64), make([]int64, 64)}
	s.tierRecompAt = 1
	s.rephaseLimit = opts.RephaseInitial
	s.rephaseInc = opts.RephaseInc
	s.nextStabilize = opts.StabilizeInterval
	s.simplifyConfig = DefaultSimplifyConfig(opts)
	return s
}

// NewDefaultSolver returns a solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// SetTracer attaches a proof observer (spec.md §4.9); passing nil detaches
// tracing.
func (s *Solver) SetTracer(t proof.Tracer) {
	if t == nil {
		t = proof.Composite{}
	}
	s.tracer = t
}

// SetOption configures one knob by name (external API set_option).
func (s *Solver) SetOption(name string, value float64) error {
	return s.opts.SetOption(name, value)
}

func (s *Solver) decisionLevel() int { return s.tr.level() }

// internalize maps an external (DIMACS-style, signed, non-zero) literal to
// its internal code, creating the variable lazily on first reference
// (spec.md §6's e2i/i2e table, stable across the solver's lifetime).
func (s *Solver) internalize(extLit int) Literal {
	extVar := extLit
	neg := extLit < 0
	if neg {
		extVar = -extLit
	}
	v, ok := s.e2i[extVar]
	if !ok {
		v = s.addVariable()
		s.e2i[extVar] = v
		for len(s.i2e) <= int(v) {
			s.i2e = append(s.i2e, 0)
		}
		s.i2e[v] = extVar
	}
	return externalLiteral(v, neg)
}

func (s *Solver) addVariable() Var {
	v := s.vd.addVar()
	s.watches.addVar()
	s.seen.Expand()
	s.vmtf.AddVar(v)
	s.heap.AddVar(v)

	phase := s.opts.InitPhase
	if phase == Unknown {
		phase = Lift(s.rng.Intn(2) == 0)
	}
	s.vd.savedPh[v] = phase
	return v
}

// NumVariables returns the number of distinct variables referenced so far.
func (s *Solver) NumVariables() int { return s.vd.numVars() }

// NumAssigns returns the current trail length.
func (s *Solver) NumAssigns() int { return len(s.tr.lits) }

// Stats returns a copy of the running counters.
func (s *Solver) Stats() Stats { return s.stats }

// Add appends an external literal to the clause under construction;
// lit == 0 terminates and installs the clause (external API's add(lit)).
func (s *Solver) Add(extLit int) error {
	if extLit == 0 {
		lits := s.building
		s.building = nil
		return s.addOriginalClause(lits)
	}
	s.building = append(s.building, s.internalize(extLit))
	return nil
}

func (s *Solver) addOriginalClause(lits []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("cdcl: original clauses can only be added at decision level 0")
	}
	ref, ok := s.newClause(lits, false)
	if !ok {
		s.unsat = true
		s.tracer.ReportStatus(int(StatusUnsat))
		return nil
	}
	if ref != nilRef {
		s.constraints = append(s.constraints, ref)
	}
	return nil
}

// Freeze protects a variable from elimination/substitution, reference
// counted so matching Melt calls are required to lift the protection
// (external API's freeze(lit)/melt(lit)).
func (s *Solver) Freeze(extLit int) {
	l := s.internalize(extLit)
	s.vd.freezeCnt[l.Var()]++
}

// Melt releases one freeze reference on a variable.
func (s *Solver) Melt(extLit int) {
	l := s.internalize(extLit)
	v := l.Var()
	if s.vd.freezeCnt[v] > 0 {
		s.vd.freezeCnt[v]--
	}
}

func (s *Solver) isFrozen(v Var) bool { return s.vd.freezeCnt[v] > 0 }

// Terminate requests an asynchronous stop; safe to call from another
// goroutine (spec.md §5).
func (s *Solver) Terminate() { s.terminate = true }

// SetTerminator installs an additional caller-supplied callback polled at
// coarse intervals during long loops (propagate/analyze/BVE/vivify).
func (s *Solver) SetTerminator(f func() bool) { s.termFunc = f }

func (s *Solver) shouldTerminate() bool {
	if s.terminate {
		return true
	}
	if s.termFunc != nil && s.termFunc() {
		return true
	}
	if s.opts.MaxConflicts >= 0 && s.stats.Conflicts >= s.opts.MaxConflicts {
		return true
	}
	if s.opts.MaxDecisions >= 0 && s.stats.Decisions >= s.opts.MaxDecisions {
		return true
	}
	if s.opts.Timeout >= 0 && time.Since(s.startTime) >= s.opts.Timeout {
		return true
	}
	return false
}

// Val reports the external literal's truth value: returns extLit if true,
// -extLit if false. Undefined outside a SAT result (spec.md §6).
func (s *Solver) Val(extLit int) int {
	extVar := extLit
	neg := extLit < 0
	if neg {
		extVar = -extLit
	}
	v, ok := s.e2i[extVar]
	if !ok {
		return extLit
	}
	val := s.vd.val(externalLiteral(v, neg))
	if val == True {
		return extLit
	}
	return -extLit
}

// Failed reports whether extLit was part of the failed-assumption core
// after an UNSAT result under assumptions (spec.md §6).
func (s *Solver) Failed(extLit int) bool {
	l := s.internalize(extLit)
	return s.vd.hasFlag(l.Var(), flagFailed)
}
