package solver

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// RephaseTarget names one of the rotating rephase schedule slots (see
// original_source/src/rephase.cpp). The schedule cycles through
// Original, Flip, Inverted and Random; Best and Walk are defined but
// never used, since this core has no local-search walker and no option
// selects a target.
type RephaseTarget int

const (
	RephaseOriginal RephaseTarget = iota
	RephaseFlip
	RephaseInverted
	RephaseRandom
	RephaseBest
	RephaseWalk
)

// Options bundles every tunable knob exposed by set_option (spec.md §6).
// It generalizes the teacher's flat Options/DefaultOptions pattern
// (internal/sat/solver.go) across every subsystem this core adds.
type Options struct {
	// Variable/clause activity bumping.
	VarDecay    float64
	ClauseDecay float64
	PhaseSaving bool
	InitPhase   LBool // True/False/Unknown(random) initial phase

	// Restart policy.
	RestartMargin     float64 // fast EMA must exceed margin * slow EMA
	EMAFastGlueAlpha  float64
	EMASlowGlueAlpha  float64
	EMATrailAlpha     float64
	EMAJumpAlpha      float64
	EMASizeAlpha      float64
	EMALevelAlpha     float64
	LubyUnit          int64
	ReluctantUnit     int64
	ReluctantLimit    int64
	StabilizeInterval int64 // conflicts before first mode switch
	StabilizeGrowth   float64

	// Clause database / reduce.
	Tier1Glue        int
	Tier2Glue        int
	RecomputeTier    bool
	ReduceInitial    int64
	ReduceIncrement  int64
	ReduceGrowth     float64
	ProtectRecentAge int64

	// Rephase.
	Rephase        bool
	RephaseInitial int64
	RephaseInc     int64

	// Chronological backtracking.
	ChronoBacktrack bool
	ChronoThreshold int // only chronological when level gap exceeds this

	// Inprocessing / simplification.
	SimplifyInterval      int64 // conflicts between simplify rounds
	EnableSubsumption     bool
	EnableVivification    bool
	EnableVariableElim    bool
	EnableProbing         bool
	EnableTransitiveRed   bool
	EnableDecompose       bool
	EnableBlockedClauseEl bool
	EnableCoveredClauseEl bool
	EnableAutarky         bool
	ElimBound             int // max resolvent size allowed when eliminating a var (0: no limit)
	SubsumeMaxSize        int
	VivifyMaxSize         int
	ProbeMaxCandidates    int

	// Resource limits.
	MaxConflicts int64
	MaxDecisions int64
	Timeout      time.Duration
	Seed         uint64

	// Ambient stack.
	Logger hclog.Logger
}

// DefaultOptions mirrors the defaults CaDiCaL documents for the knobs this
// core exposes (spec.md §9: "tunable knobs with documented defaults but no
// mathematical necessity").
var DefaultOptions = Options{
	VarDecay:    0.95,
	ClauseDecay: 0.999,
	PhaseSaving: true,
	InitPhase:   Unknown,

	RestartMargin:     1.25,
	EMAFastGlueAlpha:  1.0 / 16,
	EMASlowGlueAlpha:  1.0 / 16384,
	EMATrailAlpha:     1.0 / 32,
	EMAJumpAlpha:      1.0 / 32,
	EMASizeAlpha:      1.0 / 32,
	EMALevelAlpha:     1.0 / 32,
	LubyUnit:          128,
	ReluctantUnit:     1024,
	ReluctantLimit:    1 << 20,
	StabilizeInterval: 1000,
	StabilizeGrowth:   1.1,

	Tier1Glue:        2,
	Tier2Glue:        6,
	RecomputeTier:    true,
	ReduceInitial:    2000,
	ReduceIncrement:  300,
	ReduceGrowth:     1.1,
	ProtectRecentAge: 10000,

	Rephase:        true,
	RephaseInitial: 1000,
	RephaseInc:     1000,

	ChronoBacktrack: true,
	ChronoThreshold: 100,

	SimplifyInterval:      5000,
	EnableSubsumption:     true,
	EnableVivification:    true,
	EnableVariableElim:    true,
	EnableProbing:         true,
	EnableTransitiveRed:   true,
	EnableDecompose:       true,
	EnableBlockedClauseEl: false,
	EnableCoveredClauseEl: false,
	EnableAutarky:         false,
	ElimBound:             16,
	SubsumeMaxSize:        1000,
	VivifyMaxSize:         100,
	ProbeMaxCandidates:    4000,

	MaxConflicts: -1,
	MaxDecisions: -1,
	Timeout:      -1,
	Seed:         0,

	Logger: hclog.NewNullLogger(),
}

// SetOption configures a single named knob, matching the external API's
// set_option(name, value). It returns an error for an unknown name;
// ApplyPreset collects the errors of several calls into one via
// go-multierror instead of stopping at the first bad name.
func (o *Options) SetOption(name string, value float64) error {
	switch name {
	case "var_decay":
		o.VarDecay = value
	case "clause_decay":
		o.ClauseDecay = value
	case "phase_saving":
		o.PhaseSaving = value != 0
	case "restart_margin":
		o.RestartMargin = value
	case "tier1_glue":
		o.Tier1Glue = int(value)
	case "tier2_glue":
		o.Tier2Glue = int(value)
	case "chrono":
		o.ChronoBacktrack = value != 0
	case "elim":
		o.EnableVariableElim = value != 0
	case "subsume":
		o.EnableSubsumption = value != 0
	case "vivify":
		o.EnableVivification = value != 0
	case "probe":
		o.EnableProbing = value != 0
	case "transred":
		o.EnableTransitiveRed = value != 0
	case "decompose":
		o.EnableDecompose = value != 0
	case "block":
		o.EnableBlockedClauseEl = value != 0
	case "cover":
		o.EnableCoveredClauseEl = value != 0
	case "autarky":
		o.EnableAutarky = value != 0
	case "seed":
		o.Seed = uint64(value)
	case "max_conflicts":
		o.MaxConflicts = int64(value)
	default:
		return fmt.Errorf("set_option: unknown option %q", name)
	}
	return nil
}

// ApplyPreset sets several options at once, reporting every invalid name
// rather than bailing out on the first.
func (o *Options) ApplyPreset(values map[string]float64) error {
	var errs error
	for name, v := range values {
		if err := o.SetOption(name, v); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}
