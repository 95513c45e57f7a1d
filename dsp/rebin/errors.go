package rebin

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-rebin/dsp/grid"
)

var (
	// ErrInvalidGrid indicates a grid shorter than two samples or not strictly
	// increasing. It is the same value as [grid.ErrInvalidGrid].
	ErrInvalidGrid = grid.ErrInvalidGrid
	// ErrShapeMismatch indicates data whose extent disagrees with its grid or
	// declared dimensions.
	ErrShapeMismatch = errors.New("rebin: shape mismatch")
	// ErrInvalidShape indicates a non-positive dimension.
	ErrInvalidShape = errors.New("rebin: invalid shape")
)

func validateGrids(out, in grid.Grid) (*grid.Indexer, error) {
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("rebin: output grid: %w", err)
	}

	ix, err := grid.NewIndexer(in)
	if err != nil {
		return nil, fmt.Errorf("rebin: input grid: %w", err)
	}

	return ix, nil
}

func validateShape(s Shape) error {
	if s.Cols <= 0 || s.Rows <= 0 {
		return fmt.Errorf("%w: output shape %dx%d (cols x rows) must be positive", ErrInvalidShape, s.Cols, s.Rows)
	}
	return nil
}
