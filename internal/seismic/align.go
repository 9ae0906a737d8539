package seismic

// Align truncates every trace in every collection to the length of the
// globally shortest trace, so all curves share one time-axis extent. With
// trimToShortest false the samples are left untouched and callers take
// responsibility for traces of differing length. Headers are never
// modified. An empty collection set is a no-op.
func Align(cols []*Collection, trimToShortest bool) {
	if !trimToShortest || len(cols) == 0 {
		return
	}

	shortest := -1
	for _, c := range cols {
		for _, tr := range c.Traces {
			if shortest < 0 || len(tr.Samples) < shortest {
				shortest = len(tr.Samples)
			}
		}
	}
	if shortest < 0 {
		return
	}

	for _, c := range cols {
		for _, tr := range c.Traces {
			tr.Samples = tr.Samples[:shortest]
		}
	}
}
