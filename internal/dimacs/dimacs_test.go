package dimacs_test

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/solvekit/cdcl/internal/dimacs"
)

// recorder is a minimal dimacs.Instance that records what it was told
// instead of solving anything, so these tests can assert on parsing
// behaviour in isolation from internal/solver.
type recorder struct {
	clauses     [][]int
	assumptions []int
	building    []int
}

func (r *recorder) Add(extLit int) error {
	if extLit == 0 {
		r.clauses = append(r.clauses, r.building)
		r.building = nil
		return nil
	}
	r.building = append(r.building, extLit)
	return nil
}

func (r *recorder) Assume(extLit int) {
	r.assumptions = append(r.assumptions, extLit)
}

func TestLoadReaderParsesClauses(t *testing.T) {
	const cnf = `c a comment line
p cnf 3 2
1 -2 0
c another comment
-3 2 1 0
`
	r := &recorder{}
	stats, err := dimacs.LoadReader(strings.NewReader(cnf), r)
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if stats.Variables != 3 || stats.Clauses != 2 {
		t.Fatalf("stats = %+v, want {Variables:3 Clauses:2 ...}", stats)
	}
	want := [][]int{{1, -2}, {-3, 2, 1}}
	if diff := cmp.Diff(want, r.clauses); diff != "" {
		t.Fatalf("clauses mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadReaderParsesAssumptions(t *testing.T) {
	const icnf = `p cnf 2 1
1 2 0
a 1 -2 0
`
	r := &recorder{}
	stats, err := dimacs.LoadReader(strings.NewReader(icnf), r)
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if stats.Assumptions != 2 {
		t.Fatalf("Assumptions = %d, want 2", stats.Assumptions)
	}
	if diff := cmp.Diff([]int{1, -2}, r.assumptions); diff != "" {
		t.Fatalf("assumptions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]int{{1, 2}}, r.clauses); diff != "" {
		t.Fatalf("clauses mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadReaderRejectsMissingHeader(t *testing.T) {
	r := &recorder{}
	_, err := dimacs.LoadReader(strings.NewReader("1 2 0\n"), r)
	if err == nil {
		t.Fatal("expected an error for a clause line before the header")
	}
}

func TestLoadReaderRejectsBadHeader(t *testing.T) {
	r := &recorder{}
	_, err := dimacs.LoadReader(strings.NewReader("p wcnf 1 1\n1 0\n"), r)
	if err == nil {
		t.Fatal("expected an error for a non-cnf header")
	}
}

func TestParseModelsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/models.txt"
	if err := os.WriteFile(path, []byte("1 -2 3 0\n-1 -2 -3 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	models, err := dimacs.ParseModels(path)
	if err != nil {
		t.Fatalf("ParseModels: %v", err)
	}
	want := [][]bool{{true, false, true}, {false, false, false}}
	if diff := cmp.Diff(want, models); diff != "" {
		t.Fatalf("models mismatch (-want +got):\n%s", diff)
	}
}
