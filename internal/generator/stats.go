package generator

import "github.com/beadforge/beadvoice/internal/catalog"

// Outcome classifies what happened to one (category, item, language) triple.
type Outcome int

const (
	// OutcomeWritten means a new clip was synthesized and written.
	OutcomeWritten Outcome = iota
	// OutcomeSkippedExists means the target file was already present.
	OutcomeSkippedExists
	// OutcomeSkippedMissing means the translation or voice was absent.
	OutcomeSkippedMissing
	// OutcomeFailed means synthesis or the write failed; the sweep
	// continued without the clip.
	OutcomeFailed
)

// Stats aggregates the outcomes of a sweep.
type Stats struct {
	// Written counts newly written clips per category.
	Written map[catalog.Category]int

	SkippedExists  int
	SkippedMissing int
	Failed         int

	// BytesWritten totals the size of all newly written clips.
	BytesWritten int64
}

// NewStats returns empty stats.
func NewStats() Stats {
	return Stats{Written: make(map[catalog.Category]int)}
}

// Record folds one outcome into the stats.
func (s *Stats) Record(cat catalog.Category, o Outcome, bytes int64) {
	switch o {
	case OutcomeWritten:
		s.Written[cat]++
		s.BytesWritten += bytes
	case OutcomeSkippedExists:
		s.SkippedExists++
	case OutcomeSkippedMissing:
		s.SkippedMissing++
	case OutcomeFailed:
		s.Failed++
	}
}

// TotalWritten sums new clips across categories.
func (s *Stats) TotalWritten() int {
	total := 0
	for _, n := range s.Written {
		total += n
	}
	return total
}
