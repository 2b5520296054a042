package geom

import (
	"math"
	"testing"
)

func TestLerpEndpoints(t *testing.T) {
	a := P2(-1, -1)
	b := P2(1, 1)
	if got := a.Lerp(b, 0); got != a {
		t.Fatalf("lerp t=0: got %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("lerp t=1: got %v, want %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid.X != 0 || mid.Y != 0 {
		t.Fatalf("lerp midpoint: got %v, want origin", mid)
	}
}

func TestDist(t *testing.T) {
	if d := P3(0, 0, 0).Dist(P3(1, 2, 2)); math.Abs(d-3) > 1e-12 {
		t.Fatalf("dist: got %v, want 3", d)
	}
}

func TestAddScale(t *testing.T) {
	p := P1(0.5).Add(P1(0.25)).Scale(2)
	if p.X != 1.5 || p.Y != 0 || p.Z != 0 {
		t.Fatalf("add/scale: got %v", p)
	}
}
