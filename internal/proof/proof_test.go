package proof_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/solvekit/cdcl/internal/proof"
)

func TestDratTracerEmitsAddAndDeleteLines(t *testing.T) {
	var buf bytes.Buffer
	tr := proof.NewDratTracer(&buf)

	tr.AddDerivedClause(1, []int32{1, -2}, nil)
	tr.DeleteClause(1, []int32{1, -2})
	if err := tr.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "1 -2 0\n") {
		t.Errorf("missing addition line, got:\n%s", got)
	}
	if !strings.Contains(got, "d 1 -2 0\n") {
		t.Errorf("missing deletion line, got:\n%s", got)
	}
}

func TestLratTracerIncludesAntecedents(t *testing.T) {
	var buf bytes.Buffer
	tr := proof.NewLratTracer(&buf)

	tr.AddDerivedClause(3, []int32{1, 2}, []uint64{1, 2})
	if err := tr.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, "3 1 2 0 1 2 0") {
		t.Errorf("got %q, want a line starting with \"3 1 2 0 1 2 0\"", got)
	}
}

func TestCompositeFansOutToEveryMember(t *testing.T) {
	var a, b bytes.Buffer
	c := proof.Composite{proof.NewDratTracer(&a), proof.NewDratTracer(&b)}

	c.AddDerivedClause(1, []int32{5}, nil)
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if a.String() != b.String() {
		t.Fatalf("composite members diverged: %q vs %q", a.String(), b.String())
	}
	if !strings.Contains(a.String(), "5 0") {
		t.Errorf("expected clause to reach both members, got %q", a.String())
	}
}

func TestEmptyCompositeIsANoOpTracer(t *testing.T) {
	var c proof.Composite
	// Must not panic with zero members.
	c.AddOriginalClause(1, []int32{1})
	c.AddDerivedClause(2, []int32{1, 2}, nil)
	c.DeleteClause(1, []int32{1})
	c.WeakenClause(2, []int32{1})
	c.ReportStatus(10)
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush on empty composite: %v", err)
	}
}
