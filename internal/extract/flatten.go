package extract

import (
	"strings"

	"github.com/muniir-gopaul/scan-pdf/internal/tabula"
	"github.com/muniir-gopaul/scan-pdf/internal/util"
)

// Flatten normalizes the extraction tool's page/row/cell structure into a
// uniform list of trimmed-text rows. Cell text is taken verbatim when
// present, else treated as empty; trailing empty cells are popped one at a
// time from the row end. No row is dropped here.
func Flatten(pages []tabula.Page) [][]string {
	flat := make([][]string, 0)
	for _, page := range pages {
		for _, row := range page.Data {
			cells := make([]string, 0, len(row))
			for _, c := range row {
				if c.Text != nil {
					cells = append(cells, util.SanitizeCell(*c.Text))
				} else {
					cells = append(cells, "")
				}
			}
			for len(cells) > 0 && cells[len(cells)-1] == "" {
				cells = cells[:len(cells)-1]
			}
			flat = append(flat, cells)
		}
	}
	return flat
}

// JoinRows renders the flattened grid as one text blob for header scanning.
func JoinRows(rows [][]string) string {
	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		parts = append(parts, strings.Join(row, " "))
	}
	return strings.Join(parts, " ")
}
