package engine2D

// Stats counts the work the renderer submitted since the last ResetStats.
type Stats struct {
	DrawCalls int
	Quads     int
	Flushes   [flushReasonCount]int
}

// FlushesFor returns how many flushes had the given reason.
func (s Stats) FlushesFor(reason FlushReason) int {
	if reason < 0 || reason >= flushReasonCount {
		return 0
	}
	return s.Flushes[reason]
}

func (s *Stats) record(reason FlushReason, quads int) {
	s.DrawCalls++
	s.Quads += quads
	s.Flushes[reason]++
}

func (r *Renderer) Stats() Stats {
	return r.stats
}

func (r *Renderer) ResetStats() {
	r.stats = Stats{}
}
