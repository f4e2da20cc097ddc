// Package imaging provides the image plumbing around color compositing.
//
// It decodes frames from disk, caches them for repeated single-image
// operations, samples pixel colors so a target color can be chosen, and
// encodes masks and composites for output. All operations work with standard
// Go image.Image types and use a coordinate system where (0,0) is at the
// top-left corner, X increases rightward, and Y increases downward.
//
// # Color Representation
//
// Colors are 8-bit non-premultiplied components in the order the Go decoders
// produce them (red, green, blue). Alpha is reported but never matched on.
//
// # Regions
//
// CropRegion and NamedRegion narrow an image to a rectangle or a named part
// of it, and Zoom enlarges the result with nearest-neighbor sampling so a
// small light source can be inspected without blurring its mask.
//
// # Output Formats
//
// Save picks the encoder from the destination extension. PNG and BMP keep
// 0/255 mask values exact; JPEG is accepted but lossy.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual image operations
// are stateless.
package imaging
