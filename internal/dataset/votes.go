package dataset

import (
	"github.com/jmvisser/kamerdata/internal/tk"
)

// CleanVotes keeps only Voor/Tegen rows and drops exact duplicates,
// preserving first-seen order. The projection to the four analysis columns
// already happened when the API response was decoded. Cleaning is idempotent
// and never produces more rows than it was given.
func CleanVotes(votes []tk.Vote) []tk.Vote {
	seen := make(map[tk.Vote]struct{}, len(votes))
	cleaned := make([]tk.Vote, 0, len(votes))

	for _, v := range votes {
		if v.Kind != tk.VoteFor && v.Kind != tk.VoteAgainst {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		cleaned = append(cleaned, v)
	}

	return cleaned
}

// UniqueDecisions counts distinct decision identifiers.
func UniqueDecisions(votes []tk.Vote) int {
	seen := make(map[string]struct{}, len(votes))
	for _, v := range votes {
		seen[v.DecisionID] = struct{}{}
	}
	return len(seen)
}

// UniqueParties counts distinct party identifiers.
func UniqueParties(votes []tk.Vote) int {
	seen := make(map[string]struct{}, len(votes))
	for _, v := range votes {
		seen[v.Party] = struct{}{}
	}
	return len(seen)
}
