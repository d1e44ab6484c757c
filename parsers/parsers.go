// Package parsers is the thin outward-facing entry point for loading a
// plain DIMACS CNF file into a solver, kept from the teacher's top-level
// parsers package and its use of the external github.com/rhartert/dimacs
// streaming builder. Incremental ICNF files with assumption lines go
// through internal/dimacs instead (see its Load), since rhartert/dimacs'
// Builder interface has no hook for the "a ..." extension.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	extdimacs "github.com/rhartert/dimacs"
)

// CNFSolver is the surface parsers needs from a solver to load a
// conjunctive-normal-form instance: declare clauses by external literal,
// 0-terminated. internal/solver.Solver satisfies this directly.
type CNFSolver interface {
	Add(extLit int) error
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses the DIMACS CNF file at filename and loads its clauses
// into solver via the external streaming builder.
func LoadDIMACS(filename string, gzipped bool, solver CNFSolver) error {
	r, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{solver: solver}
	return extdimacs.ReadBuilder(r, b)
}

// builder adapts a CNFSolver to extdimacs.Builder.
type builder struct {
	solver  CNFSolver
	current []int
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	for _, l := range tmpClause {
		if err := b.solver.Add(l); err != nil {
			return err
		}
	}
	return b.solver.Add(0)
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// ReadModels returns the list of models (if any) contained in the given
// reference solution file, for comparing against a solver's own witness
// in tests.
func ReadModels(filename string) ([][]bool, error) {
	r, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
