package layout

import (
	"math"
	"testing"

	"github.com/strandkit/strandkit/internal/geom"
)

func TestLineInclusiveEndpoints(t *testing.T) {
	l, err := New(1, 5, Line{Start: geom.P1(-1), End: geom.P1(1), N: 5})
	if err != nil {
		t.Fatal(err)
	}
	pts := l.Points()
	if pts[0].X != -1 || pts[4].X != 1 {
		t.Fatalf("endpoints: got %v .. %v", pts[0], pts[4])
	}
	if pts[2].X != 0 {
		t.Fatalf("midpoint: got %v", pts[2])
	}
}

func TestLineSinglePixel(t *testing.T) {
	l, err := New(1, 1, Line{Start: geom.P1(0.25), End: geom.P1(1), N: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Points()[0]; got != geom.P1(0.25) {
		t.Fatalf("single-pixel line: got %v, want start", got)
	}
}

func TestGridSerpentine(t *testing.T) {
	// 2 rows x 3 cols from (-1,-1), row axis toward (-1,1), col axis
	// toward (1,-1). Row 0 runs left to right, row 1 right to left.
	g := Grid{
		Start:      geom.P2(-1, -1),
		RowEnd:     geom.P2(-1, 1),
		ColEnd:     geom.P2(1, -1),
		Rows:       2,
		Cols:       3,
		Serpentine: true,
	}
	l, err := New(2, 6, g)
	if err != nil {
		t.Fatal(err)
	}
	pts := l.Points()
	want := []geom.Point{
		geom.P2(-1, -1), geom.P2(0, -1), geom.P2(1, -1),
		geom.P2(1, 1), geom.P2(0, 1), geom.P2(-1, 1),
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("pixel %d: got %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestGridForwardWithoutSerpentine(t *testing.T) {
	g := Grid{
		Start:  geom.P2(0, 0),
		RowEnd: geom.P2(0, 1),
		ColEnd: geom.P2(1, 0),
		Rows:   3,
		Cols:   2,
	}
	l, err := New(2, 6, g)
	if err != nil {
		t.Fatal(err)
	}
	pts := l.Points()
	for r := 0; r < 3; r++ {
		if pts[r*2].X > pts[r*2+1].X {
			t.Fatalf("row %d not forward: %v, %v", r, pts[r*2], pts[r*2+1])
		}
	}
}

func TestArcFullCircleNoDuplicate(t *testing.T) {
	l, err := New(2, 4, Arc{Center: geom.P2(0, 0), Radius: 1, From: 0, To: 2 * math.Pi, N: 4})
	if err != nil {
		t.Fatal(err)
	}
	pts := l.Points()
	// Quarter steps: (1,0), (0,1), (-1,0), (0,-1).
	if math.Abs(pts[0].X-1) > 1e-12 || math.Abs(pts[0].Y) > 1e-12 {
		t.Fatalf("arc[0]: got %v", pts[0])
	}
	if math.Abs(pts[1].Y-1) > 1e-12 {
		t.Fatalf("arc[1]: got %v", pts[1])
	}
	if pts[0].Dist(pts[3]) < 1e-9 {
		t.Fatalf("full-circle arc duplicated first point")
	}
}

func TestShapesConcatenateInOrder(t *testing.T) {
	l, err := New(2, 5,
		Point{At: geom.P2(0, 0), N: 2},
		PointList{geom.P2(1, 0), geom.P2(2, 0), geom.P2(3, 0)},
	)
	if err != nil {
		t.Fatal(err)
	}
	pts := l.Points()
	if pts[0] != pts[1] || pts[0] != geom.P2(0, 0) {
		t.Fatalf("point shape: got %v %v", pts[0], pts[1])
	}
	if pts[4] != geom.P2(3, 0) {
		t.Fatalf("point list order: got %v", pts[4])
	}
}

func TestCountMismatchIsError(t *testing.T) {
	if _, err := New(1, 10, Line{Start: geom.P1(0), End: geom.P1(1), N: 5}); err == nil {
		t.Fatal("expected error on pixel count mismatch")
	}
	if _, err := New(1, 0); err == nil {
		t.Fatal("expected error on zero pixel count")
	}
	if _, err := New(1, 1, Line{Start: geom.P1(0), End: geom.P1(1), N: 0}, Point{At: geom.P1(0), N: 1}); err == nil {
		t.Fatal("expected error on empty shape")
	}
	if _, err := New(4, 1, Point{At: geom.P1(0), N: 1}); err == nil {
		t.Fatal("expected error on bad dims")
	}
}
