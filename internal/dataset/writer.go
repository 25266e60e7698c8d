package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmvisser/kamerdata/internal/tk"
)

// voteHeader matches the column names downstream analysis expects.
var voteHeader = []string{"Besluit_Id", "ActorFractie", "Soort", "GewijzigdOp"}

// WriteVotesCSV writes cleaned votes as a CSV file with a header row.
func WriteVotesCSV(path string, votes []tk.Vote) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.Write(voteHeader)
	for _, v := range votes {
		w.Write([]string{v.DecisionID, v.Party, v.Kind, v.ChangedAt})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// WriteMotionsJSON writes the document list as indented JSON, nested actor
// relations included.
func WriteMotionsJSON(path string, docs []tk.Document) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
