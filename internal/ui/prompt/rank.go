package prompt

import (
	"cmp"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Option is one choice offered by [Select].
type Option struct {
	Label  string // shown in the list
	Detail string // shown dimmed after the label, not matched
	// Filter is matched against the typed filter. Defaults to Label.
	Filter string
}

func (o Option) filterValue() string {
	if o.Filter != "" {
		return o.Filter
	}
	return o.Label
}

// optionSource implements fuzzy.Source for options.
type optionSource []Option

func (s optionSource) String(i int) string { return s[i].filterValue() }
func (s optionSource) Len() int            { return len(s) }

// Match is an option that passed the filter.
type Match struct {
	Index          int   // index into the ranked options
	Score          int   // summed fuzzy score over all filter words
	MatchedIndexes []int // rune positions in the filter value to highlight
}

// Rank filters and orders options by filter.
//
// The filter is split on whitespace and every word has to fuzzy-match an
// option for it to be kept. Scores of the words are summed and the result is
// sorted by descending score, ties keeping their original order. A blank
// filter keeps every option in order.
func Rank(filter string, options []Option) []Match {
	words := strings.Fields(filter)
	if len(words) == 0 {
		all := make([]Match, len(options))
		for i := range options {
			all[i] = Match{Index: i}
		}
		return all
	}

	type acc struct {
		hits    int
		score   int
		matched []int
	}
	scores := make(map[int]*acc)
	for _, word := range words {
		for _, m := range fuzzy.FindFrom(word, optionSource(options)) {
			a, ok := scores[m.Index]
			if !ok {
				a = &acc{}
				scores[m.Index] = a
			}
			a.hits++
			a.score += m.Score
			a.matched = append(a.matched, m.MatchedIndexes...)
		}
	}

	var matches []Match
	for i := range options {
		a, ok := scores[i]
		if !ok || a.hits != len(words) {
			continue
		}
		slices.Sort(a.matched)
		matches = append(matches, Match{
			Index:          i,
			Score:          a.score,
			MatchedIndexes: slices.Compact(a.matched),
		})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return matches
}
