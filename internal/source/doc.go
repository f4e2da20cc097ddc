// Package source discovers the frames to composite.
//
// Scan lists the regular files of a directory whose extension (the text after
// the last dot, compared case-sensitively) is allowed, and returns a Dir that
// decodes them lazily in filename order. Scan fails with ErrSourceNotFound
// before anything is decoded when the directory is missing, and with
// ErrNoImages when nothing qualifies.
package source
