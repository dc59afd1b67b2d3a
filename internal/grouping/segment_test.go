package grouping

import (
	"fmt"
	"sort"
	"testing"
)

func learnerSet(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("learner-%02d", i)
	}
	return ids
}

func TestSegment_EmptyInput(t *testing.T) {
	s := NewSegmenter(6)
	if groups := s.Segment(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}

func TestSegment_UnionEqualsInputAndDisjoint(t *testing.T) {
	for _, n := range []int{1, 5, 6, 7, 12, 13, 40} {
		for _, size := range []int{1, 3, 6} {
			s := NewSegmenter(size)
			input := learnerSet(n)
			groups := s.Segment(input)

			seen := make(map[string]int)
			for _, g := range groups {
				if len(g) == 0 {
					t.Fatalf("n=%d size=%d: empty group", n, size)
				}
				if len(g) > size {
					t.Fatalf("n=%d size=%d: group of %d exceeds size", n, size, len(g))
				}
				for _, id := range g {
					seen[id]++
				}
			}

			if len(seen) != n {
				t.Fatalf("n=%d size=%d: union has %d members", n, size, len(seen))
			}
			for id, count := range seen {
				if count != 1 {
					t.Fatalf("n=%d size=%d: %s appears %d times", n, size, id, count)
				}
			}
		}
	}
}

func TestSegment_LastGroupMayBeShort(t *testing.T) {
	s := NewSegmenter(6)
	groups := s.Segment(learnerSet(13))

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if len(groups[0]) != 6 || len(groups[1]) != 6 || len(groups[2]) != 1 {
		t.Fatalf("unexpected group sizes: %d, %d, %d", len(groups[0]), len(groups[1]), len(groups[2]))
	}
}

func TestSegment_DoesNotMutateInput(t *testing.T) {
	input := learnerSet(10)
	want := append([]string(nil), input...)

	NewSegmenter(3).Segment(input)

	for i := range input {
		if input[i] != want[i] {
			t.Fatal("input slice was mutated")
		}
	}
}

func TestSegment_DeterministicWithFixedSource(t *testing.T) {
	// intn returning the upper bound minus one keeps every element in
	// place, making the shuffle an identity permutation.
	identity := func(n int) int { return n - 1 }
	s := newSegmenterWithIntN(2, identity)

	groups := s.Segment([]string{"a", "b", "c", "d", "e"})
	want := [][]string{{"a", "b"}, {"c", "d"}, {"e"}}

	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(groups))
	}
	for i := range want {
		if !equalStrings(groups[i], want[i]) {
			t.Fatalf("group %d: expected %v, got %v", i, want[i], groups[i])
		}
	}
}

func TestSegment_ShufflesUniformlyEnough(t *testing.T) {
	// Over many runs with a real source, the first element should not
	// always stay first.
	s := NewSegmenter(6)
	input := learnerSet(12)

	moved := false
	for range 100 {
		groups := s.Segment(input)
		if groups[0][0] != input[0] {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("shuffle never moved the first element in 100 runs")
	}
}

func TestNewSegmenter_DefaultSize(t *testing.T) {
	s := NewSegmenter(0)
	groups := s.Segment(learnerSet(6))
	if len(groups) != 1 {
		t.Fatalf("expected a single group of default size, got %d groups", len(groups))
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
