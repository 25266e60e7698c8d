package dataset

import (
	"context"
	"log/slog"

	"github.com/jmvisser/kamerdata/internal/tk"
)

// CollectWindowVotes runs the vote retrieval for one window: a server-side
// filtered fetch, an unfiltered refetch when that yields nothing, then one
// shared clean + client-side window filter over whichever fetch produced
// data. A fetch error keeps the records accumulated before it.
func CollectWindowVotes(ctx context.Context, client *tk.Client, w Window) []tk.Vote {
	votes, err := client.FetchVotes(ctx, w.VoteFilter())
	if err != nil {
		slog.Warn("Vote fetch aborted early, keeping partial results",
			"window", w.Label,
			"records", len(votes),
			"error", err,
		)
	}

	if len(votes) == 0 {
		slog.Warn("Server-side date filter returned nothing, refetching unfiltered",
			"window", w.Label,
		)
		votes, err = client.FetchVotes(ctx, "")
		if err != nil {
			slog.Warn("Unfiltered vote fetch aborted early, keeping partial results",
				"window", w.Label,
				"records", len(votes),
				"error", err,
			)
		}
	}

	return FilterVotesToWindow(CleanVotes(votes), w)
}
