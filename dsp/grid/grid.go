package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidGrid indicates a grid that is too short, non-finite or not
	// strictly increasing.
	ErrInvalidGrid = errors.New("grid: invalid grid")
	// ErrLengthMismatch indicates values whose length differs from the grid.
	ErrLengthMismatch = errors.New("grid: values length does not match grid")
)

// Grid holds sample centres along one axis in increasing order.
type Grid []float64

// Len returns the number of samples.
func (g Grid) Len() int { return len(g) }

// Step returns the spacing g[i+1]-g[i].
func (g Grid) Step(i int) float64 { return g[i+1] - g[i] }

// Equal reports whether g and other hold exactly the same coordinates.
func (g Grid) Equal(other Grid) bool {
	return floats.Equal(g, other)
}

// Validate checks that g has at least two finite, strictly increasing samples.
func (g Grid) Validate() error {
	if len(g) < 2 {
		return fmt.Errorf("%w: length %d, need at least 2", ErrInvalidGrid, len(g))
	}

	for i, x := range g {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: non-finite value %v at %d", ErrInvalidGrid, x, i)
		}

		if i > 0 && x <= g[i-1] {
			return fmt.Errorf("%w: not strictly increasing at %d (%v <= %v)", ErrInvalidGrid, i, x, g[i-1])
		}
	}

	return nil
}

// Linspace returns n evenly spaced samples covering [start, stop] inclusive.
func Linspace(start, stop float64, n int) (Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: length %d, need at least 2", ErrInvalidGrid, n)
	}

	if !(stop > start) {
		return nil, fmt.Errorf("%w: stop %v must exceed start %v", ErrInvalidGrid, stop, start)
	}

	g := Grid(floats.Span(make([]float64, n), start, stop))
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Uniform returns n samples start, start+step, start+2*step, ...
func Uniform(start, step float64, n int) (Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: length %d, need at least 2", ErrInvalidGrid, n)
	}

	if !(step > 0) {
		return nil, fmt.Errorf("%w: step must be > 0: %v", ErrInvalidGrid, step)
	}

	g := make(Grid, n)
	for i := range g {
		g[i] = start + float64(i)*step
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}
