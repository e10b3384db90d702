package internal

// Template identifies the vendor layout a document was produced by.
type Template string

const (
	TemplateWinners    Template = "winners"
	TemplateDreamprice Template = "dreamprice"
)

// Header holds the document-level fields scraped from a purchase order.
// Fields that did not match any pattern stay empty.
type Header struct {
	Branch        string `json:"branch,omitempty"`
	PONumber      string `json:"poNumber"`
	OrderDate     string `json:"orderDate"`
	DeliveryDate  string `json:"deliveryDate"`
	PostingDate   string `json:"postingDate,omitempty"`
	CustomerCode  string `json:"customerCode"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	PostedBy      string `json:"postedBy,omitempty"`
}

// RawExtractedRow is one line item as the grammar saw it, keyed by the
// grammar's native field names. Shape varies between templates.
type RawExtractedRow map[string]string

// CanonicalRow is the fixed schema every grammar normalizes into.
type CanonicalRow struct {
	Barcode     string  `json:"barcode"`
	ItemCode    string  `json:"itemCode"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	StockQty    float64 `json:"stockQty"`
	UnitPrice   float64 `json:"unitPrice"`
	POPrice     float64 `json:"poPrice"`
	// Provisional; the enrichment engine recomputes it with master data.
	NotPostToSAP bool `json:"notPostToSap"`
}

// CatalogRecord is a master-data item as returned by the barcode lookup.
type CatalogRecord struct {
	Barcode      string
	ItemCode     string
	ItemName     string
	AvailForSale float64
	Active       string
}

// PriceRecord is a price-list entry for an item code.
type PriceRecord struct {
	ItemCode string
	Price    float64
}

type SAPStatus string

const (
	SAPNotFound SAPStatus = "NOT_FOUND"
	SAPActive   SAPStatus = "ACTIVE"
	SAPInactive SAPStatus = "INACTIVE"
)

type PricelistStatus string

const (
	PricelistUnknown      PricelistStatus = "UNKNOWN"
	PricelistItemNotFound PricelistStatus = "ITEM_NOT_FOUND"
	PricelistExists       PricelistStatus = "PRICELIST_EXISTS"
	PricelistMissing      PricelistStatus = "NO_PRICELIST"
)

// EnrichedLine is the final, UI-facing shape of one purchase-order line
// after master-data enrichment. NotPostToSAP is tri-state: nil means the
// rule was not evaluated because the item was not found or inactive.
type EnrichedLine struct {
	Barcode        string `json:"barcode"`
	ItemCode       string `json:"itemCode"`
	Description    string `json:"description"`
	DBDescription  string `json:"dbDescription"`
	PDFDescription string `json:"pdfDescription"`

	Qty       float64 `json:"qty"`
	StockQty  float64 `json:"stockQty"`
	PostQty   float64 `json:"postQty"`
	UnitPrice float64 `json:"unitPrice"`
	POPrice   float64 `json:"poPrice"`

	Price           *float64        `json:"price"`
	PricelistStatus PricelistStatus `json:"pricelistStatus"`

	SAPStatus    SAPStatus `json:"sapStatus"`
	SAPActive    *bool     `json:"sapActive"`
	SAPBarcode   string    `json:"sapBarcode"`
	NotPostToSAP *bool     `json:"notPostToSap"`
	CanPostToSAP bool      `json:"canPostToSap"`
	DBMatch      bool      `json:"dbMatch"`
}

// DocumentResult is everything one processed purchase order produces.
type DocumentResult struct {
	Template Template
	Header   Header
	RawRows  []RawExtractedRow
	Lines    []EnrichedLine
}

// SavedDocument reports the outcome of the atomic document save.
type SavedDocument struct {
	DocEntry int
	DocNum   string
	Lines    int
}
