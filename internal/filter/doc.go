// Package filter implements the pixel engines behind the editing operations.
//
// It provides three families of full-frame transforms over a [raster.Buffer]:
//
//   - Convolution with a square [Kernel] and edge-clamped sampling, in a
//     clamped variant for blurs and a recentered variant for edge kernels
//   - Order-statistic filters ([Rank]) over a sliding window of in-bounds
//     neighbours, and block flattening ([Tile])
//   - Affine colour transforms ([ColourMatrix])
//
// Every function returns a new buffer and leaves its input untouched.
// Convolution and rank filters split rows across the shared worker pool;
// results do not depend on how rows are split.
package filter
