package rebin

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-rebin/dsp/grid"
)

// Series pairs a grid with one value per grid sample.
type Series struct {
	Grid   grid.Grid
	Values []float64
}

// Validate checks the grid and that Values matches its length.
func (s Series) Validate() error {
	if err := s.Grid.Validate(); err != nil {
		return err
	}
	if len(s.Values) != len(s.Grid) {
		return fmt.Errorf("%w: %d values for grid of %d", ErrShapeMismatch, len(s.Values), len(s.Grid))
	}
	return nil
}

// Shape is a 2D output size given as (cols, rows).
type Shape struct {
	Cols int
	Rows int
}

// Cube is a 3D array addressed as (band, row, col), stored band-major so that
// every band is one contiguous row-major plane.
type Cube struct {
	Bands int
	Rows  int
	Cols  int
	Data  []float64
}

// NewCube returns a zeroed cube.
func NewCube(bands, rows, cols int) (*Cube, error) {
	if bands <= 0 || rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: cube %dx%dx%d", ErrInvalidShape, bands, rows, cols)
	}
	return &Cube{Bands: bands, Rows: rows, Cols: cols, Data: make([]float64, bands*rows*cols)}, nil
}

// Validate checks dimensions against the data length.
func (c *Cube) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil cube", ErrInvalidShape)
	}
	if c.Bands <= 0 || c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: cube %dx%dx%d", ErrInvalidShape, c.Bands, c.Rows, c.Cols)
	}
	if want := c.Bands * c.Rows * c.Cols; len(c.Data) != want {
		return fmt.Errorf("%w: cube %dx%dx%d holds %d values, want %d",
			ErrShapeMismatch, c.Bands, c.Rows, c.Cols, len(c.Data), want)
	}
	return nil
}

// PlaneSize returns Rows*Cols.
func (c *Cube) PlaneSize() int { return c.Rows * c.Cols }

// Slab returns band k as a row-major plane sharing the cube's storage.
func (c *Cube) Slab(k int) []float64 {
	n := c.PlaneSize()
	return c.Data[k*n : (k+1)*n]
}

// At returns the value at (band, row, col).
func (c *Cube) At(band, row, col int) float64 {
	return c.Data[(band*c.Rows+row)*c.Cols+col]
}

// Set stores v at (band, row, col).
func (c *Cube) Set(band, row, col int, v float64) {
	c.Data[(band*c.Rows+row)*c.Cols+col] = v
}

// Spectrum returns a copy of the values along the band axis at (row, col).
func (c *Cube) Spectrum(row, col int) []float64 {
	out := make([]float64, c.Bands)
	off := row*c.Cols + col
	n := c.PlaneSize()
	for k := range out {
		out[k] = c.Data[k*n+off]
	}
	return out
}

func (c *Cube) clone() *Cube {
	return &Cube{Bands: c.Bands, Rows: c.Rows, Cols: c.Cols, Data: slices.Clone(c.Data)}
}

// Plane is a row-major 2D array without coordinates.
type Plane struct {
	Rows int
	Cols int
	Data []float64
}

// NewPlane returns a zeroed plane.
func NewPlane(rows, cols int) (*Plane, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: plane %dx%d", ErrInvalidShape, rows, cols)
	}
	return &Plane{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}, nil
}

// NewPlaneFrom copies rows into a new plane. All rows must have equal length.
func NewPlaneFrom(rows [][]float64) (*Plane, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty plane", ErrInvalidShape)
	}

	p := &Plane{Rows: len(rows), Cols: len(rows[0]), Data: make([]float64, 0, len(rows)*len(rows[0]))}
	for i, r := range rows {
		if len(r) != p.Cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShapeMismatch, i, len(r), p.Cols)
		}
		p.Data = append(p.Data, r...)
	}

	return p, nil
}

// Validate checks dimensions against the data length.
func (p *Plane) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil plane", ErrInvalidShape)
	}
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: plane %dx%d", ErrInvalidShape, p.Rows, p.Cols)
	}
	if len(p.Data) != p.Rows*p.Cols {
		return fmt.Errorf("%w: plane %dx%d holds %d values", ErrShapeMismatch, p.Rows, p.Cols, len(p.Data))
	}
	return nil
}

// Shape returns the plane size as (cols, rows).
func (p *Plane) Shape() Shape { return Shape{Cols: p.Cols, Rows: p.Rows} }

// At returns the value at (row, col).
func (p *Plane) At(row, col int) float64 { return p.Data[row*p.Cols+col] }

// Set stores v at (row, col).
func (p *Plane) Set(row, col int, v float64) { p.Data[row*p.Cols+col] = v }

// Row returns row i sharing the plane's storage.
func (p *Plane) Row(i int) []float64 { return p.Data[i*p.Cols : (i+1)*p.Cols] }

// Sum returns the sum of all values.
func (p *Plane) Sum() float64 { return floats.Sum(p.Data) }

// transpose writes the cols x rows transpose of src (rows x cols) into dst.
func transpose(dst, src []float64, rows, cols int) {
	for r := range rows {
		row := src[r*cols : (r+1)*cols]
		for c, v := range row {
			dst[c*rows+r] = v
		}
	}
}
