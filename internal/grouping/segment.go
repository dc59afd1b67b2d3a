package grouping

import "math/rand/v2"

// DefaultGroupSize is how many learners a cohort holds unless configured
// otherwise. The last group absorbs the remainder and may be smaller.
const DefaultGroupSize = 6

// Segmenter partitions a class's learners into fixed-size cohorts after a
// uniform random shuffle.
type Segmenter struct {
	size int
	intn func(int) int
}

// NewSegmenter creates a segmenter with the given group size. A size of
// zero or less falls back to DefaultGroupSize.
func NewSegmenter(size int) *Segmenter {
	if size <= 0 {
		size = DefaultGroupSize
	}
	return &Segmenter{size: size, intn: rand.IntN}
}

// newSegmenterWithIntN is the test constructor with a deterministic
// random source.
func newSegmenterWithIntN(size int, intn func(int) int) *Segmenter {
	s := NewSegmenter(size)
	s.intn = intn
	return s
}

// Segment shuffles the learner IDs and slices them into cohorts. Every
// learner appears in exactly one group; the union of groups equals the
// input; empty input yields an empty list. The input slice is not mutated.
func (s *Segmenter) Segment(learnerIDs []string) [][]string {
	if len(learnerIDs) == 0 {
		return nil
	}

	shuffled := make([]string, len(learnerIDs))
	copy(shuffled, learnerIDs)

	// Fisher–Yates.
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	groups := make([][]string, 0, (len(shuffled)+s.size-1)/s.size)
	for start := 0; start < len(shuffled); start += s.size {
		end := min(start+s.size, len(shuffled))
		groups = append(groups, shuffled[start:end])
	}
	return groups
}
