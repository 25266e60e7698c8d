package dataset

import (
	"fmt"
	"time"

	"github.com/jmvisser/kamerdata/internal/tk"
)

// Window is a closed date range together with the output files its records
// land in.
type Window struct {
	Label       string
	Start       time.Time
	End         time.Time
	VotesFile   string
	MotionsFile string
}

// Windows are the two analysis periods: one year before the November 2023
// election and one year after the July 2024 cabinet formation.
var Windows = []Window{
	{
		Label:       "pre-election",
		Start:       time.Date(2022, time.November, 22, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2023, time.November, 21, 23, 59, 59, 0, time.UTC),
		VotesFile:   "voting_data_2023_preelection.csv",
		MotionsFile: "coauthoring_data_2023_preelection.json",
	},
	{
		Label:       "post-formation",
		Start:       time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2025, time.July, 4, 23, 59, 59, 0, time.UTC),
		VotesFile:   "voting_data_clean.csv",
		MotionsFile: "coauthoring_data_2024_postformation.json",
	},
}

// VoteFilter is the server-side OData filter restricting Stemming records to
// the window by modification timestamp.
func (w Window) VoteFilter() string {
	return fmt.Sprintf("GewijzigdOp ge %s and GewijzigdOp le %s",
		w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}

// DateFrom returns the window start as YYYY-MM-DD.
func (w Window) DateFrom() string {
	return w.Start.Format("2006-01-02")
}

// DateTo returns the window end as YYYY-MM-DD.
func (w Window) DateTo() string {
	return w.End.Format("2006-01-02")
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// FilterVotesToWindow keeps only votes whose modification timestamp parses
// and falls inside the window. Records with unparseable timestamps are
// dropped rather than failing the run.
func FilterVotesToWindow(votes []tk.Vote, w Window) []tk.Vote {
	filtered := make([]tk.Vote, 0, len(votes))
	for _, v := range votes {
		t, err := time.Parse(time.RFC3339, v.ChangedAt)
		if err != nil {
			continue
		}
		if w.Contains(t) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
