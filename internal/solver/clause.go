package solver

import "strings"

// clauseStatus packs the boolean flags spec.md §3 assigns to a clause into
// one word, following the bitmask convention the teacher's own in-progress
// rewrite used (top-level sat/clauses.go's statusDeleted/statusLearnt/
// statusProtected), extended with the remaining flags spec.md names.
type clauseStatus uint16

const (
	csRedundant clauseStatus = 1 << iota
	csKeep
	csGarbage
	csHyper
	csMoved
	csGate
	csTransreduced
	csCovered
	csEnqueued
	csFrozen
	csInstantiated
	csDeleted
)

// Clause is a disjunction of literals stored in the arena. Binary clauses
// (size 2) are the common case and are never special-cased structurally,
// unlike some solvers that inline them into the watch list; this core
// keeps one representation for simplicity; reduce.go's compaction copies
// surviving clauses into a dense slice in their existing order.
type Clause struct {
	id       uint64
	literals []Literal
	status   clauseStatus
	glue     int32 // LBD, computed at learning time
	activity float64
	lastUsed int64 // conflict epoch this clause was last a propagation reason
	prevPos  int32 // position-saving cursor for replacement-watch search (Gent's trick)
}

func (c *Clause) size() int { return len(c.literals) }

func (c *Clause) has(flag clauseStatus) bool { return c.status&flag != 0 }
func (c *Clause) set(flag clauseStatus)      { c.status |= flag }
func (c *Clause) clear(flag clauseStatus)    { c.status &^= flag }

func (c *Clause) isRedundant() bool { return c.has(csRedundant) }
func (c *Clause) isGarbage() bool   { return c.has(csGarbage) }

// Tier classifies a redundant clause into core/mid/local by glue,
// following the 0/1/2 convention this core borrows (naming only) from
// xDarkicex-logic/sat/types.go's Clause.Tier.
func (c *Clause) Tier(tier1, tier2 int) int {
	switch {
	case int(c.glue) <= tier1:
		return 0
	case int(c.glue) <= tier2:
		return 1
	default:
		return 2
	}
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	var sb strings.Builder
	sb.WriteString("Clause[")
	for i, l := range c.literals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
