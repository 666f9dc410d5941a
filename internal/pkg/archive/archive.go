package archive

import "time"

// File is one rendered report ready for bundling.
type File struct {
	Name    string
	Content []byte
}

// Bundler packs a set of rendered reports into one container so the report
// layout and the container format can evolve independently.
type Bundler interface {
	// Bundle packs the files into a single container. Entries are written in
	// lexical name order with modTime as the entry timestamp, so the same
	// input bundles to the same bytes.
	Bundle(files []File, modTime time.Time) ([]byte, error)

	// Ext returns the container file extension, including the dot
	Ext() string
}
