package internal

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search returns the lines of content containing query, in source order.
// Returned strings share memory with content.
// With ignoreCase both sides are Unicode case-folded for the comparison only.
func Search(query, content string, ignoreCase bool) []string {
	var (
		results []string
		fold    cases.Caser
	)
	if ignoreCase {
		fold = cases.Fold()
		query = fold.String(query)
	}

	rest := content
	for len(rest) > 0 {
		var line string
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			line, rest = rest, ""
		}
		line = strings.TrimSuffix(line, "\r")

		hay := line
		if ignoreCase {
			hay = fold.String(line)
		}
		if strings.Contains(hay, query) {
			results = append(results, line)
		}
	}
	return results
}
