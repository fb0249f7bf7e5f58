package anim

import (
	"fmt"
	"math"
)

// DefaultSegmentCount is the segment count used by the launcher chrome:
// 8 pieces per side.
const DefaultSegmentCount = 32

// Side identifies one edge of the border, in clockwise perimeter order.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	}
	return "unknown"
}

// Segment is one colored piece of a subdivided border outline. Offset and
// Length are percentages of the side's length, measured from the side's
// start corner following the clockwise winding (top left→right, right
// top→bottom, bottom right→left, left bottom→top). Segments are ephemeral:
// recomputed on every phase update, identified only by index.
type Segment struct {
	Side   Side
	Index  int     // index within the side
	Offset float64 // percent from the side's start corner
	Length float64 // percent of the side's length
	Color  HexColor

	// LeadingCorner marks the first segment of a side, which carries the
	// rounding of the corner it starts from; TrailingCorner marks the last,
	// carrying the corner it runs into. Together they let the renderer close
	// the outline into one continuous rounded loop.
	LeadingCorner  bool
	TrailingCorner bool
}

// BorderSpec is a validated segmentation layout for one border: the segment
// count and the two gradient endpoint colors. Constructing it is the fail
// fast point for bad counts; Segments itself never fails.
type BorderSpec struct {
	count   int
	perSide int
	a, b    HexColor
}

// NewBorderSpec validates the layout. The count must be at least 4 and
// divisible by 4 so the four sides carry equal segment counts.
func NewBorderSpec(count int, a, b HexColor) (*BorderSpec, error) {
	if count < 4 {
		return nil, fmt.Errorf("border: segment count %d below minimum 4", count)
	}
	if count%4 != 0 {
		return nil, fmt.Errorf("border: segment count %d not divisible by 4 sides", count)
	}
	return &BorderSpec{count: count, perSide: count / 4, a: a, b: b}, nil
}

// Count returns the total segment count.
func (bs *BorderSpec) Count() int { return bs.count }

// PerSide returns the segment count per side.
func (bs *BorderSpec) PerSide() int { return bs.perSide }

// Segments maps a phase to the full clockwise segment sequence. Each
// segment i is colored at local phase (phase + i/count) mod 1, so as the
// global phase advances every segment slides toward the color its
// clockwise neighbor had one step earlier, which reads as a gradient band
// rotating around the perimeter.
// The last segment of each side is stretched to close the side at exactly
// 100%, absorbing the rounding remainder at the far corner.
func (bs *BorderSpec) Segments(phase float64) []Segment {
	share := 100.0 / float64(bs.perSide)
	segs := make([]Segment, bs.count)
	for i := 0; i < bs.count; i++ {
		local := math.Mod(phase+float64(i)/float64(bs.count), 1)
		if local < 0 {
			local += 1
		}
		pos := i % bs.perSide
		seg := Segment{
			Side:   Side(i / bs.perSide),
			Index:  pos,
			Offset: float64(pos) * share,
			Length: share,
			Color:  Interpolate(bs.a, bs.b, local),
		}
		if pos == 0 {
			seg.LeadingCorner = true
		}
		if pos == bs.perSide-1 {
			seg.TrailingCorner = true
			seg.Length = 100 - seg.Offset
		}
		segs[i] = seg
	}
	return segs
}
