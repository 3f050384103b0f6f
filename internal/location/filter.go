package location

import (
	"strings"

	"golang.org/x/text/cases"

	"refuge-connect/internal/types"
)

// Filter returns the locations whose Name contains query, compared with
// Unicode case folding. Order is preserved and the input is never modified.
// The returned records are copies.
func Filter(locations []types.Location, query string) []types.Location {
	// a Caser is stateful, so each call gets its own
	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]types.Location, 0, len(locations))
	for _, l := range locations {
		if strings.Contains(fold.String(l.Name), needle) {
			out = append(out, l.Clone())
		}
	}
	return out
}
