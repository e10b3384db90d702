package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/muniir-gopaul/scan-pdf/internal"
)

// ExportResultToXLSX writes the processed document as a workbook: header
// key/value rows, a blank separator, then one row per enriched line.
func ExportResultToXLSX(result internal.DocumentResult, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headerRows := [][2]string{
		{"CustomerName", result.Header.CustomerName},
		{"CustomerCode", result.Header.CustomerCode},
		{"PONumber", result.Header.PONumber},
		{"OrderDate", result.Header.OrderDate},
		{"DeliveryDate", result.Header.DeliveryDate},
	}
	for i, kv := range headerRows {
		cellA, _ := excelize.CoordinatesToCellName(1, i+1)
		cellB, _ := excelize.CoordinatesToCellName(2, i+1)
		_ = f.SetCellValue(sheet, cellA, kv[0])
		_ = f.SetCellValue(sheet, cellB, kv[1])
	}

	columns := []string{
		"Barcode", "ItemCode", "Description", "PDFDescription",
		"Qty", "StockQty", "PostQty", "UnitPrice", "POPrice", "Price",
		"PricelistStatus", "SAPStatus", "NotPostToSAP", "CanPostToSAP", "DBMatch",
	}
	headerRowNum := len(headerRows) + 2
	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRowNum)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, line := range result.Lines {
		r := headerRowNum + 1 + i
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, line.Barcode)
		set(2, line.ItemCode)
		set(3, line.Description)
		set(4, line.PDFDescription)
		set(5, line.Qty)
		set(6, line.StockQty)
		set(7, line.PostQty)
		set(8, line.UnitPrice)
		set(9, line.POPrice)
		set(10, derefFloat(line.Price))
		set(11, string(line.PricelistStatus))
		set(12, string(line.SAPStatus))
		set(13, derefBool(line.NotPostToSAP))
		set(14, line.CanPostToSAP)
		set(15, line.DBMatch)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func derefBool(v *bool) any {
	if v == nil {
		return ""
	}
	return *v
}
