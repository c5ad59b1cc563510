package core

// Timeline accumulates the segments of one simulation run.
type Timeline struct {
	segments []Segment
}

// Run records that process id held the CPU during [start, end). The span is
// merged into the previous segment when that segment belongs to the same
// process and ends at start.
func (t *Timeline) Run(id string, start, end int) {
	if n := len(t.segments); n > 0 {
		last := &t.segments[n-1]
		if !last.Idle && last.ProcessID == id && last.End == start {
			last.End = end
			return
		}
	}
	t.segments = append(t.segments, Segment{ProcessID: id, Start: start, End: end})
}

// Dispatch records a span as its own segment, even when it directly follows
// a segment of the same process.
func (t *Timeline) Dispatch(id string, start, end int) {
	t.segments = append(t.segments, Segment{ProcessID: id, Start: start, End: end})
}

// Idle records a span with no eligible process. Adjacent idle spans merge.
func (t *Timeline) Idle(start, end int) {
	if end <= start {
		return
	}
	if n := len(t.segments); n > 0 {
		last := &t.segments[n-1]
		if last.Idle && last.End == start {
			last.End = end
			return
		}
	}
	t.segments = append(t.segments, Segment{Start: start, End: end, Idle: true})
}

func (t *Timeline) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}
