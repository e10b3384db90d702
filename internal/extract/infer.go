package extract

import (
	"regexp"
	"strings"

	"github.com/muniir-gopaul/scan-pdf/internal"
	"github.com/muniir-gopaul/scan-pdf/internal/util"
)

var (
	rePrice    = regexp.MustCompile(`^[0-9]+([.,][0-9]+)?$`)
	reBareInt  = regexp.MustCompile(`^[0-9]+$`)
	reQtyToken = regexp.MustCompile(`[0-9]+[A-Za-z]+`)
)

// InferRows maps each merged row to a grammar-native field set. Rows whose
// leading cells fail the identifier check are filtered out, not reported.
func InferRows(merged [][]string, g *Grammar) []internal.RawExtractedRow {
	switch g.TailMode {
	case TailSplitColumn:
		return inferSplitColumn(merged, g)
	default:
		return inferRightToLeft(merged, g)
	}
}

// inferRightToLeft handles layouts that pack a variable numeric tail at the
// row end: ... description, nb colis, pcb, qty, total, vat. The tail is
// consumed right to left; whatever is not claimed by a numeric slot stays
// in the description, in original order.
func inferRightToLeft(merged [][]string, g *Grammar) []internal.RawExtractedRow {
	out := make([]internal.RawExtractedRow, 0, len(merged))

	for _, row := range merged {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			if s := util.SanitizeCell(c); s != "" {
				cells = append(cells, s)
			}
		}
		if len(cells) == 0 || !g.matchItemCell(cells[0]) {
			continue
		}

		joined := strings.Join(cells, " ")
		barcode := g.SecondaryPattern.FindString(joined)
		if barcode == "" {
			continue
		}

		eanIndex := -1
		for i, c := range cells {
			if strings.Contains(c, barcode) {
				eanIndex = i
				break
			}
		}
		tail := cells[eanIndex+1:]

		var descParts []string
		var nbColis, pcb, qty, totalHT string
		skippedVAT := false

		for i := len(tail) - 1; i >= 0; i-- {
			v := tail[i]

			if rePrice.MatchString(v) && !skippedVAT {
				skippedVAT = true
				continue
			}
			if rePrice.MatchString(v) && totalHT == "" {
				totalHT = v
				continue
			}
			if qty == "" && reQtyToken.MatchString(v) {
				qty = util.FirstDigits(v)
				continue
			}
			if pcb == "" && reBareInt.MatchString(v) {
				pcb = v
				continue
			}
			if nbColis == "" && reBareInt.MatchString(v) {
				nbColis = v
				continue
			}
			descParts = append([]string{v}, descParts...)
		}

		out = append(out, internal.RawExtractedRow{
			"Barcode":     barcode,
			"Description": util.SanitizeCell(strings.Join(descParts, " ")),
			"NbColis":     nbColis,
			"PCB":         pcb,
			"Qty":         qty,
			"Total_HT":    totalHT,
		})
	}

	return out
}

// inferSplitColumn handles layouts where barcode and description are fixed
// columns and the remaining numeric fields arrive packed into one cell,
// with the total sometimes spilling into the next cell.
func inferSplitColumn(merged [][]string, g *Grammar) []internal.RawExtractedRow {
	out := make([]internal.RawExtractedRow, 0, len(merged))

	for _, row := range merged {
		if len(row) == 0 || !g.matchItemCell(row[0]) {
			continue
		}

		barcode := row[0]
		description := cellAt(row, 1)
		packed := cellAt(row, 2)
		spill := cellAt(row, 3)

		parts := strings.Fields(packed)

		var tax, qty, price, total string
		switch {
		case len(parts) >= 4:
			tax = parts[0]
			qty = parts[1]
			price = parts[2]
			total = strings.Join(parts[3:], " ")
		case len(parts) == 3 && spill != "":
			tax = parts[0]
			qty = parts[1]
			price = parts[2]
			total = spill
		case len(parts) == 2 && spill != "":
			tax = parts[0]
			qty = parts[1]
			total = spill
		default:
			tax = partAt(parts, 0)
			qty = partAt(parts, 1)
			price = partAt(parts, 2)
			total = partAt(parts, 3)
			if total == "" {
				total = spill
			}
		}

		out = append(out, internal.RawExtractedRow{
			"Barcode":     barcode,
			"Description": description,
			"Tax":         tax,
			"Qty":         qty,
			"PU_HT":       price,
			"Total_HT":    total,
		})
	}

	return out
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func partAt(parts []string, idx int) string {
	if idx < len(parts) {
		return parts[idx]
	}
	return ""
}
