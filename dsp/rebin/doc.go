// Package rebin resamples sampled signals onto new grids while conserving
// integrated flux instead of point values.
//
// Three entry points share one box-integration kernel:
//
//   - [Rebin1D] resamples a series from one [grid.Grid] onto another.
//   - [RebinCubeAxis0] applies the same rule along the spectral (first) axis
//     of a [Cube], operating on whole spatial planes at once.
//   - [Rebin2D] resizes a [Plane] to an arbitrary [Shape] with two separable
//     box passes, normalised once by the input-pixel area of an output pixel.
//
// # Regimes
//
// The 1D and cube rebinners compare the first output spacing with the input
// spacing near the first output coordinate ([SelectRegime]):
//
//   - finer output: linear interpolation, holding the edge values outside the
//     input range ([RegimeInterpolate]);
//   - equal or coarser output: box integration ([RegimeBox]). Every output bin
//     spans the index interval between consecutive left edges
//     out[i]-dx/2 mapped onto input index space; full pixels are summed, the
//     excluded fractions of the two edge pixels subtracted, and the sum
//     divided by the bin width in index units.
//
// The decision uses a single spacing probe, so for non-uniform grids callers
// must ensure the grids are locally uniform near their start. Use
// [WithRegime] to force a regime.
//
// # Edges
//
// The last output bin assumes the width of the one before it. Bins reaching
// past the last input pixel clamp their stop pixel and extrapolate its value,
// and bins lying wholly outside the input take the nearest edge value, so
// conservation only holds away from the domain ends.
//
// # Concurrency
//
// All entry points are pure: inputs are never modified and results are
// freshly allocated. [WithWorkers] spreads output bins across goroutines;
// [WithObserver] reports progress once per output bin, plane or line.
package rebin
