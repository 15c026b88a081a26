package markov

import "markov-go/internal/model/chain"

// ChainStats contains statistics about a built chain
type ChainStats struct {
	PrefixLength      int    `json:"prefix_length"`
	InitialPrefix     string `json:"initial_prefix"`
	TotalTokens       int    `json:"total_tokens"`
	PrefixCount       int    `json:"prefix_count"`
	ContinuationCount int    `json:"continuation_count"`
	VocabularySize    int    `json:"vocabulary_size"`    // distinct continuation words
	MaxBranching      int    `json:"max_branching"`      // longest continuation list
	SingletonPrefixes int    `json:"singleton_prefixes"` // prefixes with exactly one continuation
}

// Stats returns statistics about the chain
func (c *Chain) Stats() ChainStats {
	vocabulary := make(map[chain.Token]struct{})
	maxBranching := 0
	singletons := 0

	for _, suffixes := range c.Table.entries {
		if len(suffixes) > maxBranching {
			maxBranching = len(suffixes)
		}
		if len(suffixes) == 1 {
			singletons++
		}
		for _, word := range suffixes {
			vocabulary[word] = struct{}{}
		}
	}

	return ChainStats{
		PrefixLength:      chain.PrefixLen,
		InitialPrefix:     c.Initial.String(),
		TotalTokens:       c.tokenCount,
		PrefixCount:       c.Table.Len(),
		ContinuationCount: c.Table.Total(),
		VocabularySize:    len(vocabulary),
		MaxBranching:      maxBranching,
		SingletonPrefixes: singletons,
	}
}
