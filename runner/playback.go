package runner

import (
	"iter"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// FrameKind tells a renderer how to paint a Frame.
type FrameKind int

const (
	FrameVisit FrameKind = iota
	FramePath
)

// Frame is one cell to paint at At, measured from the start of playback.
type Frame struct {
	Kind FrameKind
	Cell grid.Coord
	At   time.Duration
}

// Playback yields the visited cells and then the path cells of res, one
// frame every speed, skipping start and end. Frame i (over both lists,
// start and end included in the count) is due at i*speed.
func Playback(res search.Result, start, end grid.Coord, speed time.Duration) iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		emit := func(kind FrameKind, cs []grid.Coord, offset int) bool {
			for i, c := range cs {
				if c == start || c == end {
					continue
				}
				if !yield(Frame{Kind: kind, Cell: c, At: time.Duration(offset+i) * speed}) {
					return false
				}
			}
			return true
		}
		if emit(FrameVisit, res.Visited, 0) {
			emit(FramePath, res.Path, len(res.Visited))
		}
	}
}
