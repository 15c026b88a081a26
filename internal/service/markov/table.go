package markov

import (
	"sort"

	"markov-go/internal/model/chain"
)

// ContinuationTable maps every observed prefix to the words that followed
// it, in corpus order. Duplicates are kept: a word that followed a prefix
// three times appears three times, so uniform sampling over the slice is
// frequency weighted.
type ContinuationTable struct {
	entries map[chain.Prefix]chain.TokenSequence
	total   int
}

func newContinuationTable(capacityHint int) *ContinuationTable {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &ContinuationTable{
		entries: make(map[chain.Prefix]chain.TokenSequence, capacityHint),
	}
}

// add records w as a continuation of p
func (t *ContinuationTable) add(p chain.Prefix, w chain.Token) {
	t.entries[p] = append(t.entries[p], w)
	t.total++
}

// Lookup returns the continuations recorded for p. The returned slice is
// shared with the table and must not be modified.
func (t *ContinuationTable) Lookup(p chain.Prefix) (chain.TokenSequence, bool) {
	suffixes, ok := t.entries[p]
	return suffixes, ok
}

// Len returns the number of distinct prefixes
func (t *ContinuationTable) Len() int {
	return len(t.entries)
}

// Total returns the number of recorded continuations, duplicates included
func (t *ContinuationTable) Total() int {
	return t.total
}

// Prefixes returns all prefixes ordered by A, then B
func (t *ContinuationTable) Prefixes() []chain.Prefix {
	prefixes := make([]chain.Prefix, 0, len(t.entries))
	for p := range t.entries {
		prefixes = append(prefixes, p)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if prefixes[i].A != prefixes[j].A {
			return prefixes[i].A < prefixes[j].A
		}
		return prefixes[i].B < prefixes[j].B
	})
	return prefixes
}
