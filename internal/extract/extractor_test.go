package extract

import (
	"context"
	"testing"

	"github.com/muniir-gopaul/scan-pdf/internal"
	"github.com/muniir-gopaul/scan-pdf/internal/tabula"
)

type fakeTables struct {
	pages []tabula.Page
}

func (f *fakeTables) ExtractTables(_ context.Context, _ string) ([]tabula.Page, error) {
	return f.pages, nil
}

func TestExtractDocumentWinners(t *testing.T) {
	tables := &fakeTables{pages: []tabula.Page{
		{Data: [][]tabula.Cell{
			{cell("MAGASIN 12/10/2025"), cell("N° commande : 443355")},
			{cell("1001"), cell("5012345678900"), cell("CHOCO BAR"), cell("4"), cell("6"), cell("24Un"), cell("1173.00"), cell("15.00")},
			{cell(""), cell(""), cell(""), cell(""), cell(""), cell(""), cell(""), cell("")},
			{cell("Nb de lignes"), cell("1")},
		}},
	}}

	svc := NewService(tables, nil)
	doc, err := svc.ExtractDocument(context.Background(), "order.pdf", internal.TemplateWinners)
	if err != nil {
		t.Fatal(err)
	}

	if doc.Header.PONumber != "443355" {
		t.Fatalf("PONumber = %q", doc.Header.PONumber)
	}
	if len(doc.Rows) != 1 {
		t.Fatalf("rows = %d", len(doc.Rows))
	}
	if doc.Rows[0]["Barcode"] != "5012345678900" || doc.Rows[0]["Qty"] != "24" {
		t.Fatalf("unexpected row: %v", doc.Rows[0])
	}
}

func TestExtractDocumentDreampriceReadsHeaderFromText(t *testing.T) {
	tables := &fakeTables{pages: []tabula.Page{
		{Data: [][]tabula.Cell{
			{cell("5012345678900"), cell("CHOCO BAR"), cell("VAT 12 97.75 1,173.00")},
		}},
	}}
	readText := func(string) (string, error) {
		return "PURCHASE ORDER PO88991\nDelivery Date: 20/11/2025\nDate 18/11/2025", nil
	}

	svc := NewService(tables, readText)
	doc, err := svc.ExtractDocument(context.Background(), "order.pdf", internal.TemplateDreamprice)
	if err != nil {
		t.Fatal(err)
	}

	if doc.Header.PONumber != "PO88991" {
		t.Fatalf("PONumber = %q", doc.Header.PONumber)
	}
	if doc.Header.DeliveryDate != "20/11/2025" || doc.Header.OrderDate != "18/11/2025" {
		t.Fatalf("dates = %q / %q", doc.Header.OrderDate, doc.Header.DeliveryDate)
	}
	if len(doc.Rows) != 1 || doc.Rows[0]["PU_HT"] != "97.75" {
		t.Fatalf("unexpected rows: %v", doc.Rows)
	}
}

func TestExtractDocumentUnknownTemplate(t *testing.T) {
	svc := NewService(&fakeTables{}, nil)
	if _, err := svc.ExtractDocument(context.Background(), "order.pdf", internal.Template("mystery")); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
