// Package grid provides coordinate grids for flux-conserving rebinning.
//
// A [Grid] is an ordered sequence of sample centres along one axis. Grids must
// hold at least two strictly increasing, finite values; [Grid.Validate]
// reports violations wrapped in [ErrInvalidGrid].
//
// Besides the constructors [Linspace] and [Uniform], the package offers the
// two lookups the rebinners are built on:
//
//   - [Indexer] maps coordinates onto fractional index space of a grid
//     (coordinate -> index by linear interpolation, clamped to the grid ends).
//   - [Linear] evaluates a sampled series at arbitrary coordinates by linear
//     interpolation, holding the edge values outside the grid.
//
// Spacing is probed locally ([Indexer.SpacingNear]); grids need not be
// uniform, but callers that compare spacings from a single probe assume the
// grid is locally uniform near that probe.
package grid
