package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/muniir-gopaul/scan-pdf/internal/storage"
)

func writeWorkbook(t *testing.T, name string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func openTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "scanpdf.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestImportItems(t *testing.T) {
	path := writeWorkbook(t, "items.xlsx", [][]any{
		{"CodeBars", "ItemCode", "ItemName", "AvailForSale", "Active"},
		{"5012345678900", "A0001", "CHOCO BAR 24PK", 30, "Y"},
		{"4000000000001", "A0002", "GIFT SET", "12 units", "n"},
		{"", "A0003", "NO BARCODE", 1, "Y"},
	})

	db := openTestDB(t)
	svc := NewImportService(db)

	n, err := svc.ImportItems(path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("imported %d records, want 2", n)
	}

	ctx := context.Background()
	rec, err := db.LookupItemByBarcode(ctx, "5012345678900")
	if err != nil {
		t.Fatal(err)
	}
	if rec == nil || rec.ItemCode != "A0001" || rec.Active != "Y" || rec.AvailForSale != 30 {
		t.Fatalf("got %+v", rec)
	}

	rec, err = db.LookupItemByBarcode(ctx, "4000000000001")
	if err != nil {
		t.Fatal(err)
	}
	if rec == nil || rec.Active != "N" || rec.AvailForSale != 12 {
		t.Fatalf("got %+v", rec)
	}

	if ts, _ := db.GetMetadata("catalog.last_item_import"); ts == nil {
		t.Fatal("import timestamp not recorded")
	}
}

func TestImportItemsRejectsWorkbookWithoutColumns(t *testing.T) {
	path := writeWorkbook(t, "items.xlsx", [][]any{
		{"Foo", "Bar"},
		{"1", "2"},
	})

	svc := NewImportService(openTestDB(t))
	if _, err := svc.ImportItems(path); err == nil {
		t.Fatal("expected error for workbook without item columns")
	}
}

func TestImportPrices(t *testing.T) {
	path := writeWorkbook(t, "prices.xlsx", [][]any{
		{"ItemCode", "Price"},
		{"A0001", 97.75},
		{"A0002", 0},
	})

	db := openTestDB(t)
	svc := NewImportService(db)

	n, err := svc.ImportPrices(path, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("imported %d records, want 2", n)
	}

	ctx := context.Background()
	rec, err := db.LookupPricelistPrice(ctx, "A0001", 2)
	if err != nil {
		t.Fatal(err)
	}
	if rec == nil || rec.Price != 97.75 {
		t.Fatalf("got %+v", rec)
	}

	// zero-priced entries land in the table but never resolve
	rec, err = db.LookupPricelistPrice(ctx, "A0002", 2)
	if err != nil {
		t.Fatal(err)
	}
	if rec != nil {
		t.Fatalf("got %+v", rec)
	}
}

func TestImportPricesRejectsBadPricelist(t *testing.T) {
	svc := NewImportService(openTestDB(t))
	if _, err := svc.ImportPrices("whatever.xlsx", 0); err == nil {
		t.Fatal("expected error for non-positive pricelist id")
	}
}
