// Package splice locates and replaces a marker-bounded region of text.
package splice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMarkerNotFound is returned when any of the three anchors cannot be
// located in the expected order. No write happens after this error.
var ErrMarkerNotFound = errors.New("marker not found")

// Anchors for the feed-list region in news.service.ts.
const (
	DefaultStartMarker = "  // Human Side of Tech & Leadership"
	DefaultEndMarker   = `url: "https://lilianweng.github.io/index.xml",`
	DefaultCloseDelim  = "},"
)

// Markers are the literal substrings that bound the region to replace.
// They are search anchors, not semantic tokens.
type Markers struct {
	Start string
	End   string
	Close string
}

// DefaultMarkers returns the anchors for the feed-list region.
func DefaultMarkers() Markers {
	return Markers{
		Start: DefaultStartMarker,
		End:   DefaultEndMarker,
		Close: DefaultCloseDelim,
	}
}

// Region is a half-open byte range [Start, End) into the source text.
type Region struct {
	Start int
	End   int
}

// Locate finds the region bounded by m: the first occurrence of the start
// marker, the first occurrence of the end marker at or after it, and the
// first occurrence of the close delimiter at or after that. The region
// ends immediately after the close delimiter.
func Locate(content string, m Markers) (Region, error) {
	start := strings.Index(content, m.Start)
	if start < 0 {
		return Region{}, fmt.Errorf("%w: start marker %q", ErrMarkerNotFound, m.Start)
	}

	end := strings.Index(content[start:], m.End)
	if end < 0 {
		return Region{}, fmt.Errorf("%w: end marker %q", ErrMarkerNotFound, m.End)
	}
	end += start

	closing := strings.Index(content[end:], m.Close)
	if closing < 0 {
		return Region{}, fmt.Errorf("%w: closing delimiter %q", ErrMarkerNotFound, m.Close)
	}
	closing += end

	return Region{Start: start, End: closing + len(m.Close)}, nil
}

// Extract returns the bounded region of content.
func (r Region) Extract(content string) string {
	return content[r.Start:r.End]
}

// Splice returns content with the region replaced by block.
func Splice(content string, r Region, block string) string {
	return content[:r.Start] + block + content[r.End:]
}
