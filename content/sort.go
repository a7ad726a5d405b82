package content

import (
	"slices"
)

// SortByDate returns docs ordered by publish date, newest first. Documents
// without a date sort as the earliest possible value, and documents with
// equal dates keep their input order. docs is not modified.
func SortByDate(docs []Document) []Document {
	out := slices.Clone(docs)
	if out == nil {
		out = []Document{}
	}
	slices.SortStableFunc(out, func(a, b Document) int {
		return b.Metadata.Date.Compare(a.Metadata.Date)
	})
	return out
}
