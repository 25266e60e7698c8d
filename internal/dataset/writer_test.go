package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmvisser/kamerdata/internal/tk"
)

func TestWriteVotesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "votes.csv")

	votes := []tk.Vote{
		vote("b1", "Partij-A", tk.VoteFor, "2023-01-01T10:00:00Z"),
		vote("b2", "Partij-B", tk.VoteAgainst, "2023-01-02T10:00:00Z"),
	}

	require.NoError(t, WriteVotesCSV(path, votes))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t,
		"Besluit_Id,ActorFractie,Soort,GewijzigdOp\n"+
			"b1,Partij-A,Voor,2023-01-01T10:00:00Z\n"+
			"b2,Partij-B,Tegen,2023-01-02T10:00:00Z\n",
		string(data))
}

func TestWriteVotesCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "votes.csv")

	require.NoError(t, WriteVotesCSV(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Besluit_Id,ActorFractie,Soort,GewijzigdOp\n", string(data))
}

func TestWriteMotionsJSONPreservesNestedActors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motions.json")

	docs := []tk.Document{
		{
			ID:      "doc-1",
			Date:    "2023-02-07",
			Kind:    "Motie",
			Title:   "Motie van het lid",
			Subject: "Onderwerp 1",
			Actors: []json.RawMessage{
				json.RawMessage(`{"Relatie":"Eerste ondertekenaar","ActorNaam":"A. Jansen","ActorFractie":"Partij-A"}`),
				json.RawMessage(`{"Relatie":"Mede ondertekenaar","ActorNaam":"B. de Vries","ActorFractie":"Partij-B"}`),
			},
		},
	}

	require.NoError(t, WriteMotionsJSON(path, docs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var roundTripped []tk.Document
	require.NoError(t, json.Unmarshal(data, &roundTripped))
	require.Len(t, roundTripped, 1)
	require.Len(t, roundTripped[0].Actors, 2)

	assert.Equal(t, "doc-1", roundTripped[0].ID)
	assert.JSONEq(t,
		`{"Relatie":"Eerste ondertekenaar","ActorNaam":"A. Jansen","ActorFractie":"Partij-A"}`,
		string(roundTripped[0].Actors[0]))
	assert.JSONEq(t,
		`{"Relatie":"Mede ondertekenaar","ActorNaam":"B. de Vries","ActorFractie":"Partij-B"}`,
		string(roundTripped[0].Actors[1]))
}
