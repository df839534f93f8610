package testutil

import (
	"fmt"

	"github.com/gnote-tools/cli/internal/domain"
)

// searchResult builds a result whose notes are titled by titles and get
// GUIDs guid-1, guid-2, ...
func searchResult(request string, titles []string) domain.SearchResult {
	result := domain.SearchResult{Request: request, TotalNotes: len(titles)}
	for i, title := range titles {
		result.Notes = append(result.Notes, domain.Note{
			GUID:    fmt.Sprintf("guid-%d", i+1),
			Title:   title,
			Created: 1700000000000,
			Updated: 1700000000000,
		})
	}
	return result
}
