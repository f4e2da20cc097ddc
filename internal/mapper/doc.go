// Package mapper finds the pixels of an image that match a target color.
//
// A pixel matches when each of its three channels differs from the target by
// at most the tolerance:
//
//	|pixel.R - target.R| <= tolerance &&
//	|pixel.G - target.G| <= tolerance &&
//	|pixel.B - target.B| <= tolerance
//
// A tolerance of 0 therefore requires exact equality, a difference of exactly
// the tolerance still matches, and a negative tolerance matches nothing.
//
// Results come in three views of the same classification:
//
//   - Classify: a single-channel mask, 255 on match and 0 elsewhere
//   - Locate: per pixel, the linear index of a match or NoMatch
//   - RowPoints: per row, the column of the leftmost match or NoMatch
package mapper
