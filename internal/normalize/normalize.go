// Package normalize maps grammar-native rows onto the canonical line-item
// schema through a synonym dictionary.
package normalize

import (
	"strings"

	"github.com/muniir-gopaul/scan-pdf/internal"
	"github.com/muniir-gopaul/scan-pdf/internal/util"
)

// Synonyms maps a canonical field name to the source key names that may
// carry its value, compared case-insensitively. The table is immutable
// configuration; tests substitute their own.
type Synonyms map[string][]string

// DefaultSynonyms covers the key spellings the supported vendor layouts
// produce.
var DefaultSynonyms = Synonyms{
	"Barcode":     {"barcode", "ean", "codebars", "code barre"},
	"ItemCode":    {"itemcode", "item code", "article", "articul", "sku"},
	"Description": {"description", "libelle", "libellé", "designation", "item name"},
	"Qty":         {"qty", "quantity", "quantité", "qte", "qté"},
	"StockQty":    {"stockqty", "stock", "availforsale", "available"},
	"UnitPrice":   {"pu_ht", "unitprice", "unit price", "prix unitaire", "pu"},
	"POPrice":     {"poprice", "total_ht", "total", "montant"},
}

// Row resolves one raw row against the synonym table. For each canonical
// field the first alias present in the raw row supplies the value; missing
// fields default to "" or 0. The provisional NotPostToSAP here is a plain
// stock-versus-quantity check; enrichment recomputes it with master data.
func Row(raw internal.RawExtractedRow, syns Synonyms) internal.CanonicalRow {
	lower := make(map[string]string, len(raw))
	for k, v := range raw {
		lower[strings.ToLower(k)] = v
	}

	find := func(field string) string {
		for _, alias := range syns[field] {
			if v, ok := lower[strings.ToLower(alias)]; ok {
				return v
			}
		}
		return ""
	}

	row := internal.CanonicalRow{
		Barcode:     strings.TrimSpace(find("Barcode")),
		ItemCode:    strings.TrimSpace(find("ItemCode")),
		Description: strings.TrimSpace(find("Description")),
		Qty:         util.ParseNumber(find("Qty")),
		StockQty:    util.ParseNumber(find("StockQty")),
		UnitPrice:   util.ParseNumber(find("UnitPrice")),
		POPrice:     util.ParseNumber(find("POPrice")),
	}
	row.NotPostToSAP = row.StockQty < row.Qty
	return row
}

// Rows normalizes a batch, preserving input order.
func Rows(raw []internal.RawExtractedRow, syns Synonyms) []internal.CanonicalRow {
	out := make([]internal.CanonicalRow, 0, len(raw))
	for _, r := range raw {
		out = append(out, Row(r, syns))
	}
	return out
}
