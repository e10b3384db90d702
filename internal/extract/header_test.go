package extract

import "testing"

const winnersHeaderText = "MAGASIN 12/10/2025 Bon de commande " +
	"N° commande : 443355 " +
	"Date de commande : 12/10/2025 " +
	"Date de livraison impérative : 15/10/2025 " +
	"987 GOODWILL TRADING LTD C1234567 buyer@example.com"

func TestExtractHeaderWinners(t *testing.T) {
	h := ExtractHeader(winnersHeaderText, winnersGrammar)

	if h.Branch != "MAGASIN" {
		t.Fatalf("Branch = %q", h.Branch)
	}
	if h.PONumber != "443355" {
		t.Fatalf("PONumber = %q", h.PONumber)
	}
	if h.OrderDate != "12/10/2025" {
		t.Fatalf("OrderDate = %q", h.OrderDate)
	}
	if h.DeliveryDate != "15/10/2025" {
		t.Fatalf("DeliveryDate = %q", h.DeliveryDate)
	}
	if h.CustomerName != "987 GOODWILL TRADING LTD" {
		t.Fatalf("CustomerName = %q", h.CustomerName)
	}
	if h.CustomerCode != "C1234567" {
		t.Fatalf("CustomerCode = %q", h.CustomerCode)
	}
	if h.CustomerEmail != "buyer@example.com" {
		t.Fatalf("CustomerEmail = %q", h.CustomerEmail)
	}
}

func TestExtractHeaderDreamprice(t *testing.T) {
	text := "PURCHASE ORDER PO88991\n" +
		"CUSTOMER: Seven Seven Co Ltd\n" +
		"Delivery Date: 20/11/2025\n" +
		"Date 18/11/2025\n"

	h := ExtractHeader(text, dreampriceGrammar)

	if h.PONumber != "PO88991" {
		t.Fatalf("PONumber = %q", h.PONumber)
	}
	if h.CustomerName != "Seven Seven Co Ltd" {
		t.Fatalf("CustomerName = %q", h.CustomerName)
	}
	if h.DeliveryDate != "20/11/2025" {
		t.Fatalf("DeliveryDate = %q", h.DeliveryDate)
	}
	if h.OrderDate != "18/11/2025" {
		t.Fatalf("OrderDate = %q", h.OrderDate)
	}
}

func TestExtractHeaderUnmatchedFieldsStayEmpty(t *testing.T) {
	h := ExtractHeader("nothing useful here", winnersGrammar)
	if h.PONumber != "" || h.OrderDate != "" || h.DeliveryDate != "" || h.CustomerCode != "" {
		t.Fatalf("expected empty header, got %+v", h)
	}
}

func TestExtractHeaderIsIdempotent(t *testing.T) {
	first := ExtractHeader(winnersHeaderText, winnersGrammar)
	second := ExtractHeader(winnersHeaderText, winnersGrammar)
	if first != second {
		t.Fatalf("header extraction not idempotent: %+v vs %+v", first, second)
	}
}

func TestExtractHeaderFirstCandidateWins(t *testing.T) {
	// Both PONumber candidates could match; the first one must win.
	text := "N° commande : 111 Bon de commande 22222"
	h := ExtractHeader(text, winnersGrammar)
	if h.PONumber != "111" {
		t.Fatalf("PONumber = %q, want first-candidate match", h.PONumber)
	}
}
