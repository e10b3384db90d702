// Package enrich merges canonical rows with master-data lookups and
// decides posting eligibility per line.
package enrich

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/muniir-gopaul/scan-pdf/internal"
	"github.com/muniir-gopaul/scan-pdf/internal/util"
)

// ItemLookup resolves a catalog record by barcode. A nil record with a nil
// error is a valid "not found" outcome.
type ItemLookup interface {
	LookupItemByBarcode(ctx context.Context, barcode string) (*internal.CatalogRecord, error)
}

// PriceLookup resolves a price-list entry with a strictly positive price.
type PriceLookup interface {
	LookupPricelistPrice(ctx context.Context, itemCode string, pricelist int) (*internal.PriceRecord, error)
}

type Engine struct {
	items  ItemLookup
	prices PriceLookup
}

func NewEngine(items ItemLookup, prices PriceLookup) *Engine {
	return &Engine{items: items, prices: prices}
}

// ParsePricelist coerces the caller-supplied price-list identifier.
// Integer-valued inputs such as "2" or "2.0" resolve; anything else means
// "no price list supplied".
func ParsePricelist(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f <= 0 {
		return 0, false
	}
	return int(f), true
}

// EnrichRows evaluates the rows strictly in input order and returns one
// EnrichedLine per input row. A lookup fault never aborts the batch: it is
// logged and treated as a miss, leaving the row in its conservative
// cannot-post state.
func (e *Engine) EnrichRows(ctx context.Context, rows []internal.CanonicalRow, rawPricelist string) []internal.EnrichedLine {
	pricelist, hasPricelist := ParsePricelist(rawPricelist)

	out := make([]internal.EnrichedLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, e.enrichRow(ctx, row, pricelist, hasPricelist))
	}
	return out
}

func (e *Engine) enrichRow(ctx context.Context, row internal.CanonicalRow, pricelist int, hasPricelist bool) internal.EnrichedLine {
	barcode := util.CleanBarcode(row.Barcode)

	line := internal.EnrichedLine{
		Barcode:         barcode,
		PDFDescription:  row.Description,
		Qty:             row.Qty,
		UnitPrice:       row.UnitPrice,
		POPrice:         row.POPrice,
		PricelistStatus: internal.PricelistUnknown,
		SAPStatus:       internal.SAPNotFound,
	}

	item, err := e.lookupItem(ctx, barcode)
	if err != nil {
		log.Printf("item lookup failed for barcode %q: %v", barcode, err)
		item = nil
	}

	if item == nil {
		line.SAPStatus = internal.SAPNotFound
		line.PricelistStatus = internal.PricelistItemNotFound
	} else {
		line.ItemCode = item.ItemCode
		line.Description = item.ItemName
		line.DBDescription = item.ItemName
		line.StockQty = item.AvailForSale
		line.SAPBarcode = item.Barcode
		line.DBMatch = true

		if item.Active == "Y" {
			line.SAPActive = util.BoolPtr(true)
			line.SAPStatus = internal.SAPActive
		} else {
			line.SAPActive = util.BoolPtr(false)
			line.SAPStatus = internal.SAPInactive
		}
	}

	if line.ItemCode != "" && hasPricelist {
		price, err := e.prices.LookupPricelistPrice(ctx, line.ItemCode, pricelist)
		if err != nil {
			log.Printf("pricelist lookup failed for item %q list %d: %v", line.ItemCode, pricelist, err)
			price = nil
		}
		if price != nil {
			line.Price = util.FloatPtr(price.Price)
			line.PricelistStatus = internal.PricelistExists
		} else {
			line.PricelistStatus = internal.PricelistMissing
		}
	} else if line.ItemCode != "" {
		line.PricelistStatus = internal.PricelistMissing
	}

	if line.SAPStatus == internal.SAPActive {
		blocked := line.StockQty <= 0 || line.PricelistStatus != internal.PricelistExists
		line.NotPostToSAP = util.BoolPtr(blocked)
	}

	if line.StockQty > 0 {
		line.PostQty = math.Min(line.Qty, line.StockQty)
	}

	line.CanPostToSAP = line.SAPStatus == internal.SAPActive &&
		line.NotPostToSAP != nil && !*line.NotPostToSAP &&
		line.PostQty > 0 &&
		line.PricelistStatus == internal.PricelistExists

	return line
}

func (e *Engine) lookupItem(ctx context.Context, barcode string) (*internal.CatalogRecord, error) {
	if barcode == "" {
		return nil, nil
	}
	return e.items.LookupItemByBarcode(ctx, barcode)
}
