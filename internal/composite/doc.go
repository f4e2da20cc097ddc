// Package composite merges the color masks of an image sequence into a
// single image.
//
// A pixel of the composite is 255 when it matched in at least one image of
// the sequence and 0 otherwise. Images are pulled from a Source one at a
// time, so memory holds one decoded image, one mask and the composite.
//
//	m := mapper.New(mapper.Config{Target: target, Tolerance: 20})
//	out, ok, err := composite.New(m, logger).Merge(src)
//	if err != nil {
//	    return err
//	}
//	if !ok {
//	    // the source was empty; there is nothing to write
//	}
package composite
