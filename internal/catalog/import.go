// Package catalog loads master data into the local store. Item lists and
// price lists arrive as XLSX workbooks exported from the ERP.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/muniir-gopaul/scan-pdf/internal"
	"github.com/muniir-gopaul/scan-pdf/internal/storage"
	"github.com/muniir-gopaul/scan-pdf/internal/util"
)

type ImportService struct {
	db *storage.DB
}

func NewImportService(db *storage.DB) *ImportService {
	return &ImportService{db: db}
}

// ImportItems reads an item-list workbook (CodeBars, ItemCode, ItemName,
// AvailForSale, Active columns, located by header probing) and upserts the
// records.
func (s *ImportService) ImportItems(path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("open item list %s: %w", path, err)
	}
	defer f.Close()

	records := make([]internal.CatalogRecord, 0)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) < 2 {
			continue
		}

		headers := lowerCells(rows[0])
		barcodeIdx := findHeaderIndex(headers, []string{"codebars", "barcode", "ean"})
		codeIdx := findHeaderIndex(headers, []string{"itemcode", "item code", "code"})
		nameIdx := findHeaderIndex(headers, []string{"itemname", "item name", "description"})
		availIdx := findHeaderIndex(headers, []string{"availforsale", "avail", "stock"})
		activeIdx := findHeaderIndex(headers, []string{"active", "frozen"})
		if barcodeIdx < 0 || codeIdx < 0 {
			continue
		}

		for _, row := range rows[1:] {
			barcode := strings.TrimSpace(pickCell(row, barcodeIdx))
			code := strings.TrimSpace(pickCell(row, codeIdx))
			if barcode == "" || code == "" {
				continue
			}
			records = append(records, internal.CatalogRecord{
				Barcode:      barcode,
				ItemCode:     code,
				ItemName:     strings.TrimSpace(pickCell(row, nameIdx)),
				AvailForSale: util.ParseNumber(pickCell(row, availIdx)),
				Active:       normalizeActive(pickCell(row, activeIdx)),
			})
		}
	}

	if len(records) == 0 {
		return 0, fmt.Errorf("no item records found in %s", path)
	}
	if err := s.db.UpsertItems(records); err != nil {
		return 0, err
	}
	_ = s.db.SetMetadata("catalog.last_item_import", time.Now().UTC().Format(time.RFC3339))
	return len(records), nil
}

// ImportPrices reads a price-list workbook (ItemCode, Price columns) and
// upserts the entries under the given price-list id.
func (s *ImportService) ImportPrices(path string, pricelist int) (int, error) {
	if pricelist <= 0 {
		return 0, fmt.Errorf("pricelist id must be a positive integer, got %d", pricelist)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("open price list %s: %w", path, err)
	}
	defer f.Close()

	records := make([]internal.PriceRecord, 0)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) < 2 {
			continue
		}

		headers := lowerCells(rows[0])
		codeIdx := findHeaderIndex(headers, []string{"itemcode", "item code", "code"})
		priceIdx := findHeaderIndex(headers, []string{"price", "prix", "unitprice"})
		if codeIdx < 0 || priceIdx < 0 {
			continue
		}

		for _, row := range rows[1:] {
			code := strings.TrimSpace(pickCell(row, codeIdx))
			if code == "" {
				continue
			}
			records = append(records, internal.PriceRecord{
				ItemCode: code,
				Price:    util.ParseNumber(pickCell(row, priceIdx)),
			})
		}
	}

	if len(records) == 0 {
		return 0, fmt.Errorf("no price records found in %s", path)
	}
	if err := s.db.UpsertPrices(pricelist, records); err != nil {
		return 0, err
	}
	_ = s.db.SetMetadata(fmt.Sprintf("catalog.last_price_import.%d", pricelist), time.Now().UTC().Format(time.RFC3339))
	return len(records), nil
}

func lowerCells(row []string) []string {
	out := make([]string, 0, len(row))
	for _, c := range row {
		out = append(out, strings.ToLower(strings.TrimSpace(c)))
	}
	return out
}

func findHeaderIndex(headers []string, probes []string) int {
	for i, h := range headers {
		for _, probe := range probes {
			if strings.Contains(h, probe) {
				return i
			}
		}
	}
	return -1
}

func pickCell(row []string, idx int) string {
	if idx >= 0 && idx < len(row) {
		return row[idx]
	}
	return ""
}

func normalizeActive(v string) string {
	if strings.EqualFold(strings.TrimSpace(v), "y") {
		return "Y"
	}
	return "N"
}
