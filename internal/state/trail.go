package state

// Trail is the pointer trail: whether a stroke is in progress and the last
// sample seen. Only one sample of history is kept.
type Trail struct {
	anchor  Point
	valid   bool
	drawing bool
}

// Down starts a stroke anchored at p without drawing.
func (tr *Trail) Down(p Point) {
	tr.drawing = true
	tr.anchor = p
	tr.valid = true
}

// Move advances the trail to p. It returns the segment to draw and true
// only while a stroke is in progress; otherwise it just re-anchors.
func (tr *Trail) Move(p Point) (Segment, bool) {
	if !tr.drawing || !tr.valid {
		tr.anchor = p
		tr.valid = true
		return Segment{}, false
	}
	seg := Segment{From: tr.anchor, To: p}
	tr.anchor = p
	return seg, true
}

// Up ends the stroke. The anchor is stale until the next Down.
func (tr *Trail) Up() {
	tr.drawing = false
}

func (tr *Trail) Drawing() bool { return tr.drawing }

// Anchor returns the last recorded position and whether one exists.
func (tr *Trail) Anchor() (Point, bool) { return tr.anchor, tr.valid }
