package solver

import "testing"

func TestLiteralEncodingAndOpposite(t *testing.T) {
	v := Var(3)
	p := PositiveLiteral(v)
	n := NegativeLiteral(v)

	if !p.IsPositive() {
		t.Errorf("PositiveLiteral(%d).IsPositive() = false, want true", v)
	}
	if n.IsPositive() {
		t.Errorf("NegativeLiteral(%d).IsPositive() = true, want false", v)
	}
	if p.Var() != v || n.Var() != v {
		t.Errorf("Var() round-trip broken: p.Var()=%d n.Var()=%d, want %d", p.Var(), n.Var(), v)
	}
	if p.Opposite() != n || n.Opposite() != p {
		t.Errorf("Opposite() is not an involution pairing p and n")
	}
	if p.Opposite().Opposite() != p {
		t.Errorf("Opposite() is not its own inverse")
	}
}

func TestLBoolOppositeAndLift(t *testing.T) {
	if Lift(true) != True || Lift(false) != False {
		t.Fatalf("Lift mismatched True/False constants")
	}
	if True.Opposite() != False || False.Opposite() != True {
		t.Fatalf("Opposite() should swap True/False")
	}
	if Unknown.Opposite() != Unknown {
		t.Fatalf("Unknown must be its own Opposite()")
	}
}
