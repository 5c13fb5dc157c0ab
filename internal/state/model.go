package state

import "image/color"

type Point struct{ X, Y float32 }

// Segment is one straight piece of a stroke, from the trail anchor to the
// latest pointer sample.
type Segment struct {
	From, To Point
}

type Composite int

const (
	// SourceOver paints the stroke color over the existing pixels.
	SourceOver Composite = iota
	// DestinationOut removes existing pixels under the stroke.
	DestinationOut
)

func (c Composite) String() string {
	switch c {
	case SourceOver:
		return "source-over"
	case DestinationOut:
		return "destination-out"
	default:
		return "unknown"
	}
}

// Style is the resolved pen applied to a single segment.
type Style struct {
	Color     color.NRGBA
	Width     float32
	Composite Composite
}

// eraseColor is the fully opaque stroke used with DestinationOut.
var eraseColor = color.NRGBA{A: 0xff}
