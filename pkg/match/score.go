package match

import (
	"sort"
	"strings"
)

// Scoring defaults.
const (
	DefaultCutoff    = 0.55
	DefaultSkew      = 0.1
	DefaultLimit     = 5
	DefaultDropoff   = 0.5
	DefaultStartBias = 0.5

	// globMismatch is large enough that no other segment can compensate.
	globMismatch = -1000.0
)

// Candidate is a scored name.
type Candidate struct {
	Name  string
	Score float64
}

// Options tunes CloseMatches. Zero fields take the package defaults.
type Options struct {
	Cutoff  float64
	Skew    float64
	Limit   int
	Dropoff float64
}

func (o Options) withDefaults() Options {
	if o.Cutoff <= 0 {
		o.Cutoff = DefaultCutoff
	}
	if o.Skew <= 0 {
		o.Skew = DefaultSkew
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Dropoff <= 0 {
		o.Dropoff = DefaultDropoff
	}
	return o
}

// Score compares one query segment a with one candidate segment b.
//
//   - a containing wildcards scores 1 when it globs b, else a large negative.
//   - equal segments score 1.
//   - a prefix of b scores 0.5 plus half the length ratio.
//   - otherwise the similarity ratio, when it passes cutoff.
//   - otherwise the containment ratio len(a)/len(b) when a occurs in b.
func Score(a, b string, cutoff float64) float64 {
	if HasWildcard(a) {
		if Glob(b, a) {
			return 1
		}
		return globMismatch
	}
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	if strings.HasPrefix(b, a) {
		return DefaultStartBias + float64(la)/float64(lb)*(1-DefaultStartBias)
	}
	sm := NewSequenceMatcher(a, b)
	if sm.RealQuickRatio() >= cutoff && sm.QuickRatio() >= cutoff {
		if r := sm.Ratio(); r >= cutoff {
			return r
		}
	}
	if strings.Contains(b, a) {
		return float64(la) / float64(lb)
	}
	return 0
}

// Scores rates each candidate against query. Both are split on '/'; every
// query segment takes its best weighted score over the candidate segments,
// where segment i is weighted by 1+i*skew so deeper segments weigh more.
// The candidate's score is the sum over query segments.
func Scores(query string, candidates []string, cutoff, skew float64) []float64 {
	qparts := strings.Split(query, "/")
	out := make([]float64, len(candidates))
	for ci, candidate := range candidates {
		cparts := strings.Split(candidate, "/")
		total := 0.0
		for _, q := range qparts {
			best := 0.0
			for i, c := range cparts {
				s := (1 + float64(i)*skew) * Score(q, c, cutoff)
				if i == 0 || s > best {
					best = s
				}
			}
			total += best
		}
		out[ci] = total
	}
	return out
}

// CloseMatches ranks candidates by similarity to query. It keeps at most
// Limit results, drops anything scoring below Dropoff times the best score
// and never returns zero or negative scores. Ties keep candidate order.
func CloseMatches(query string, candidates []string, opts Options) []Candidate {
	opts = opts.withDefaults()
	scores := Scores(query, candidates, opts.Cutoff, opts.Skew)
	ranked := make([]Candidate, len(candidates))
	for i, name := range candidates {
		ranked[i] = Candidate{Name: name, Score: scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}
	if len(ranked) == 0 {
		return nil
	}
	floor := ranked[0].Score * opts.Dropoff
	var out []Candidate
	for _, c := range ranked {
		if c.Score > 0 && c.Score >= floor {
			out = append(out, c)
		}
	}
	return out
}

// CloseNames is CloseMatches returning only the names.
func CloseNames(query string, candidates []string, opts Options) []string {
	matches := CloseMatches(query, candidates, opts)
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return names
}
