package tmdb

import "strings"

// SearchPartition splits search results into case-insensitive exact title
// matches and everything else, preserving result order within each bucket.
type SearchPartition struct {
	Exact     []Show `json:"exact"`
	Broadened []Show `json:"broadened"`
}

func PartitionByTitle(results []Show, query string) SearchPartition {
	p := SearchPartition{
		Exact:     []Show{},
		Broadened: []Show{},
	}
	for _, s := range results {
		if strings.EqualFold(strings.TrimSpace(s.Name), strings.TrimSpace(query)) {
			p.Exact = append(p.Exact, s)
		} else {
			p.Broadened = append(p.Broadened, s)
		}
	}
	return p
}
