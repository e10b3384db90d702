package extract

import "strings"

// MergeContinuations collapses wrapped descriptions and packaging sub-rows
// into one logical row per item. A row satisfying the grammar's row-start
// predicate opens a new merged row; any other row is a continuation whose
// non-empty cells fill only still-empty slots of the most recent merged
// row. Rows before the first valid start are discarded. Grammars with
// footer markers stop the scan at the first footer row.
func MergeContinuations(rows [][]string, g *Grammar) [][]string {
	merged := make([][]string, 0)

	for _, row := range rows {
		if g.isFooterRow(row) {
			break
		}

		if g.IsRowStart(row) {
			merged = append(merged, append([]string(nil), row...))
			continue
		}

		if len(merged) == 0 {
			continue
		}

		prev := merged[len(merged)-1]
		// Continuations never touch the identifier columns.
		for i := 2; i < len(row); i++ {
			if row[i] == "" {
				continue
			}
			for len(prev) <= i {
				prev = append(prev, "")
			}
			if prev[i] == "" {
				prev[i] = row[i]
			}
		}
		merged[len(merged)-1] = prev
	}

	return merged
}

func (g *Grammar) isFooterRow(row []string) bool {
	if len(g.FooterMarkers) == 0 {
		return false
	}
	s := strings.ToLower(strings.Join(row, " "))
	for _, marker := range g.FooterMarkers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
