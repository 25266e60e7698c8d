package dataset

import (
	"github.com/jmvisser/kamerdata/internal/tk"
)

// UniqueMotions counts distinct document identifiers, ignoring items without
// one.
func UniqueMotions(docs []tk.Document) int {
	seen := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			continue
		}
		seen[d.ID] = struct{}{}
	}
	return len(seen)
}

// TotalActorRelations counts actor-document relations across all documents.
func TotalActorRelations(docs []tk.Document) int {
	total := 0
	for _, d := range docs {
		total += len(d.Actors)
	}
	return total
}
