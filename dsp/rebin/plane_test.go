package rebin

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/cwbudde/algo-rebin/internal/testutil"
)

func noisePlane(t testing.TB, seed int64, rows, cols int) *Plane {
	t.Helper()
	p, err := NewPlane(rows, cols)
	if err != nil {
		t.Fatalf("NewPlane() error = %v", err)
	}
	copy(p.Data, testutil.DeterministicNoise(seed, 1, len(p.Data)))
	return p
}

func TestRebin2DUniformDownsize(t *testing.T) {
	p, err := NewPlaneFrom([][]float64{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	})
	if err != nil {
		t.Fatalf("NewPlaneFrom() error = %v", err)
	}

	res, err := Rebin2D(p, Shape{Cols: 2, Rows: 2})
	if err != nil {
		t.Fatalf("Rebin2D() error = %v", err)
	}
	if res.Rows != 2 || res.Cols != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", res.Rows, res.Cols)
	}
	testutil.RequireSliceEqual(t, res.Data, []float64{1, 1, 1, 1})
}

func TestRebin2DSameShapeIsNoOp(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {5, 7}, {16, 3}} {
		p := noisePlane(t, 13, dims[0], dims[1])
		res, err := Rebin2D(p, p.Shape())
		if err != nil {
			t.Fatalf("%v: Rebin2D() error = %v", dims, err)
		}
		testutil.RequireSliceEqual(t, res.Data, p.Data)
	}
}

func TestRebin2DBlockMeans(t *testing.T) {
	// 4 rows x 6 cols holding r*6+c, shrunk to 2 rows x 3 cols: every output
	// pixel is the mean of a 2x2 block.
	p, err := NewPlane(4, 6)
	if err != nil {
		t.Fatalf("NewPlane() error = %v", err)
	}
	for r := range 4 {
		for c := range 6 {
			p.Set(r, c, float64(r*6+c))
		}
	}

	res, err := Rebin2D(p, Shape{Cols: 3, Rows: 2})
	if err != nil {
		t.Fatalf("Rebin2D() error = %v", err)
	}
	if res.Rows != 2 || res.Cols != 3 {
		t.Fatalf("shape = %dx%d, want 2 rows x 3 cols", res.Rows, res.Cols)
	}

	want := make([]float64, 0, 6)
	for r := range 2 {
		for c := range 3 {
			sum := p.At(2*r, 2*c) + p.At(2*r, 2*c+1) + p.At(2*r+1, 2*c) + p.At(2*r+1, 2*c+1)
			want = append(want, sum/4)
		}
	}
	testutil.RequireSliceEqual(t, res.Data, want)
}

func TestRebin2DFluxConservation(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		shape      Shape
	}{
		{name: "integer shrink", rows: 6, cols: 9, shape: Shape{Cols: 3, Rows: 3}},
		{name: "fractional shrink", rows: 10, cols: 10, shape: Shape{Cols: 4, Rows: 4}},
		{name: "mixed", rows: 7, cols: 12, shape: Shape{Cols: 5, Rows: 9}},
		{name: "enlarge", rows: 4, cols: 4, shape: Shape{Cols: 6, Rows: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := noisePlane(t, 17, tt.rows, tt.cols)
			for i := range p.Data {
				p.Data[i] += 2
			}

			res, err := Rebin2D(p, tt.shape)
			if err != nil {
				t.Fatalf("Rebin2D() error = %v", err)
			}
			if res.Rows != tt.shape.Rows || res.Cols != tt.shape.Cols {
				t.Fatalf("shape = %dx%d, want %dx%d", res.Rows, res.Cols, tt.shape.Rows, tt.shape.Cols)
			}

			area := float64(tt.rows) / float64(tt.shape.Rows) * float64(tt.cols) / float64(tt.shape.Cols)
			want := p.Sum()
			testutil.RequireNearlyEqual(t, res.Sum()*area, want, 1e-12*math.Abs(want))
		})
	}
}

func TestRebin2DUniformStaysUniform(t *testing.T) {
	p, err := NewPlane(2, 2)
	if err != nil {
		t.Fatalf("NewPlane() error = %v", err)
	}
	copy(p.Data, testutil.Constant(0.75, 4))

	for _, s := range []Shape{{Cols: 3, Rows: 5}, {Cols: 1, Rows: 1}, {Cols: 7, Rows: 2}} {
		res, err := Rebin2D(p, s)
		if err != nil {
			t.Fatalf("%v: Rebin2D() error = %v", s, err)
		}
		testutil.RequireSliceNearlyEqual(t, res.Data, testutil.Constant(0.75, s.Cols*s.Rows), 1e-12)
	}
}

func TestRebin2DWorkersMatchSerial(t *testing.T) {
	p := noisePlane(t, 5, 33, 47)
	orig := slices.Clone(p.Data)

	for _, s := range []Shape{{Cols: 10, Rows: 7}, {Cols: 90, Rows: 61}} {
		serial, err := Rebin2D(p, s)
		if err != nil {
			t.Fatalf("Rebin2D() error = %v", err)
		}
		parallel, err := Rebin2D(p, s, WithWorkers(6))
		if err != nil {
			t.Fatalf("Rebin2D() error = %v", err)
		}
		testutil.RequireSliceEqual(t, parallel.Data, serial.Data)
	}

	testutil.RequireSliceEqual(t, p.Data, orig)
}

func TestRebin2DObserver(t *testing.T) {
	p := noisePlane(t, 1, 8, 8)
	counts := map[Stage]int{}

	obs := ObserverFunc(func(stage Stage, done, total int) {
		counts[stage]++
		if done != counts[stage] {
			t.Fatalf("%v: done = %d, want %d", stage, done, counts[stage])
		}
	})

	if _, err := Rebin2D(p, Shape{Cols: 3, Rows: 5}, WithObserver(obs)); err != nil {
		t.Fatalf("Rebin2D() error = %v", err)
	}
	if counts[StageRows] != 5 || counts[StageColumns] != 3 || len(counts) != 2 {
		t.Fatalf("counts = %v, want rows=5 columns=3", counts)
	}
}

func TestRebin2DValidation(t *testing.T) {
	p := noisePlane(t, 1, 3, 3)

	tests := []struct {
		name  string
		plane *Plane
		shape Shape
		want  error
	}{
		{name: "zero cols", plane: p, shape: Shape{Cols: 0, Rows: 2}, want: ErrInvalidShape},
		{name: "negative rows", plane: p, shape: Shape{Cols: 2, Rows: -1}, want: ErrInvalidShape},
		{name: "nil plane", plane: nil, shape: Shape{Cols: 2, Rows: 2}, want: ErrInvalidShape},
		{name: "data mismatch", plane: &Plane{Rows: 2, Cols: 2, Data: []float64{1, 2, 3}}, shape: Shape{Cols: 1, Rows: 1}, want: ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rebin2D(tt.plane, tt.shape)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if got != nil {
				t.Fatal("got partial result")
			}
		})
	}
}

func TestNewPlaneFromRagged(t *testing.T) {
	if _, err := NewPlaneFrom([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("error = %v, want ErrShapeMismatch", err)
	}
	if _, err := NewPlaneFrom(nil); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("error = %v, want ErrInvalidShape", err)
	}
}

func TestTranspose(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6} // 2x3
	dst := make([]float64, 6)
	transpose(dst, src, 2, 3)
	testutil.RequireSliceEqual(t, dst, []float64{1, 4, 2, 5, 3, 6})
}
