package datatable

// DefaultMargin is subtracted from the remaining
// viewport height below the table anchor.
const DefaultMargin = 20

// Rect is the measured bounding box of an anchor.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Anchor is an opaque handle to the element above which
// the scroll region of the table starts, for example a DOM
// element id or the rendered lines preceding a terminal table.
type Anchor any

// Measurer measures the bounding box of an anchor.
// It returns false if the anchor is not mounted yet.
type Measurer interface {
	Measure(anchor Anchor) (Rect, bool)
}

// MeasurerFunc implements Measurer for a function.
type MeasurerFunc func(anchor Anchor) (Rect, bool)

func (f MeasurerFunc) Measure(anchor Anchor) (Rect, bool) {
	return f(anchor)
}

// ComputeHeight returns the vertical extent available for the
// scroll region: windowHeight minus anchorTop minus margin.
// The result is never negative.
func ComputeHeight(anchorTop, windowHeight, margin int) int {
	h := windowHeight - anchorTop - margin
	if h < 0 {
		return 0
	}
	return h
}

// Sizer keeps the height of a table's scroll region
// in sync with the window height and the anchor position.
//
// Until both the window height and the anchor have been
// measured the height is zero and Height reports false.
// Every later event recomputes the height and replaces
// the previous value, so dropped intermediate resize events
// don't matter as long as the last one is delivered.
//
// A Sizer is owned by a single event loop and is not
// safe for concurrent use.
type Sizer struct {
	// Margin subtracted from the available height.
	Margin int
	// OnChange is called with the new height
	// whenever the settled height changes.
	OnChange func(height int)

	windowHeight int
	windowKnown  bool
	anchor       Rect
	anchorKnown  bool
	height       int
}

// NewSizer returns a Sizer using margin.
func NewSizer(margin int) *Sizer {
	return &Sizer{Margin: margin}
}

// WindowResized records a new window height and returns the recomputed height.
func (s *Sizer) WindowResized(windowHeight int) (height int, ok bool) {
	s.windowHeight = windowHeight
	s.windowKnown = true
	return s.recompute()
}

// AnchorMeasured records the measured anchor box and returns the recomputed height.
func (s *Sizer) AnchorMeasured(rect Rect) (height int, ok bool) {
	s.anchor = rect
	s.anchorKnown = true
	return s.recompute()
}

// Remeasure queries m for the box of anchor.
// If the anchor is not mounted the height falls
// back to zero until a later measurement succeeds.
func (s *Sizer) Remeasure(m Measurer, anchor Anchor) (height int, ok bool) {
	rect, mounted := m.Measure(anchor)
	if !mounted {
		s.anchorKnown = false
		return s.recompute()
	}
	return s.AnchorMeasured(rect)
}

// Height returns the current height and whether
// it is based on a measured window and anchor.
func (s *Sizer) Height() (height int, ok bool) {
	return s.height, s.windowKnown && s.anchorKnown
}

func (s *Sizer) recompute() (int, bool) {
	height := 0
	ok := s.windowKnown && s.anchorKnown
	if ok {
		height = ComputeHeight(s.anchor.Top, s.windowHeight, s.Margin)
	}
	if height != s.height {
		s.height = height
		if s.OnChange != nil {
			s.OnChange(height)
		}
	}
	return height, ok
}
