package match

import "sort"

// block is a matching run: a[I:I+Size] == b[J:J+Size].
type block struct {
	I, J, Size int
}

// SequenceMatcher compares two rune sequences with the Ratcliff/Obershelp
// "gestalt" approach: find the longest common run, then recurse on the
// pieces to its left and right. No junk heuristics are applied.
type SequenceMatcher struct {
	a, b    []rune
	b2j     map[rune][]int
	blocks  []block
	fullBCt map[rune]int
}

// NewSequenceMatcher prepares a matcher for a and b.
func NewSequenceMatcher(a, b string) *SequenceMatcher {
	m := &SequenceMatcher{}
	m.SetSeqs(a, b)
	return m
}

// SetSeqs replaces both sequences.
func (m *SequenceMatcher) SetSeqs(a, b string) {
	m.a = []rune(a)
	m.b = []rune(b)
	m.blocks = nil
	m.fullBCt = nil
	m.b2j = make(map[rune][]int, len(m.b))
	for j, r := range m.b {
		m.b2j[r] = append(m.b2j[r], j)
	}
}

func (m *SequenceMatcher) longestMatch(alo, ahi, blo, bhi int) block {
	best := block{I: alo, J: blo}
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		next := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > best.Size {
				best = block{I: i - k + 1, J: j - k + 1, Size: k}
			}
		}
		j2len = next
	}
	return best
}

func (m *SequenceMatcher) matchingBlocks() []block {
	if m.blocks != nil {
		return m.blocks
	}
	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(m.a), 0, len(m.b)}}
	var found []block
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		x := m.longestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if x.Size == 0 {
			continue
		}
		found = append(found, x)
		if s.alo < x.I && s.blo < x.J {
			queue = append(queue, span{s.alo, x.I, s.blo, x.J})
		}
		if x.I+x.Size < s.ahi && x.J+x.Size < s.bhi {
			queue = append(queue, span{x.I + x.Size, s.ahi, x.J + x.Size, s.bhi})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].I != found[j].I {
			return found[i].I < found[j].I
		}
		return found[i].J < found[j].J
	})

	// collapse adjacent runs
	var collapsed []block
	for _, x := range found {
		if n := len(collapsed); n > 0 {
			last := &collapsed[n-1]
			if last.I+last.Size == x.I && last.J+last.Size == x.J {
				last.Size += x.Size
				continue
			}
		}
		collapsed = append(collapsed, x)
	}
	m.blocks = append(collapsed, block{I: len(m.a), J: len(m.b)})
	return m.blocks
}

func calcRatio(matches, length int) float64 {
	if length == 0 {
		return 1.0
	}
	return 2.0 * float64(matches) / float64(length)
}

// Ratio returns 2*M/T where M is the number of matched runes and T the
// combined length of both sequences.
func (m *SequenceMatcher) Ratio() float64 {
	matches := 0
	for _, x := range m.matchingBlocks() {
		matches += x.Size
	}
	return calcRatio(matches, len(m.a)+len(m.b))
}

// QuickRatio is an upper bound on Ratio based on shared rune counts.
func (m *SequenceMatcher) QuickRatio() float64 {
	if m.fullBCt == nil {
		m.fullBCt = make(map[rune]int, len(m.b))
		for _, r := range m.b {
			m.fullBCt[r]++
		}
	}
	avail := map[rune]int{}
	matches := 0
	for _, r := range m.a {
		n, ok := avail[r]
		if !ok {
			n = m.fullBCt[r]
		}
		avail[r] = n - 1
		if n > 0 {
			matches++
		}
	}
	return calcRatio(matches, len(m.a)+len(m.b))
}

// RealQuickRatio is an upper bound on QuickRatio based on lengths only.
func (m *SequenceMatcher) RealQuickRatio() float64 {
	la, lb := len(m.a), len(m.b)
	return calcRatio(min(la, lb), la+lb)
}
