package solver

// ema is an exponential moving average with the warm-up schedule CaDiCaL
// uses (original_source/src/ema.cpp): beta starts at 1 and is halved every
// `2*(period+1)-1` updates until it drops to the configured alpha, instead
// of jumping straight to alpha on the first sample. This converges faster
// during the first few hundred updates than a plain fixed-alpha EMA, which
// matters for restart/tier decisions made early in the search.
//
// The teacher has no EMA of its own; its own in-progress rewrite at
// top-level sat/avg.go had a much simpler two-state (uninitialized/alpha)
// average, which this supersedes per DESIGN.md.
type ema struct {
	value  float64
	alpha  float64
	beta   float64
	period int64
	wait   int64
}

func newEMA(alpha float64) ema {
	return ema{alpha: alpha, beta: 1}
}

func (e *ema) update(y float64) {
	e.value += e.beta * (y - e.value)
	if e.beta <= e.alpha || e.wait > 0 {
		e.wait--
		return
	}
	e.period = 2*(e.period+1) - 1
	e.wait = e.period
	e.beta *= 0.5
	if e.beta < e.alpha {
		e.beta = e.alpha
	}
}

func (e *ema) val() float64 { return e.value }
