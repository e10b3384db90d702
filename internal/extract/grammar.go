package extract

import (
	"fmt"
	"regexp"

	"github.com/muniir-gopaul/scan-pdf/internal"
)

// HeaderSource says where a grammar finds its document-level fields.
type HeaderSource string

const (
	// HeaderFromGrid scans the joined flattened cell grid.
	HeaderFromGrid HeaderSource = "grid"
	// HeaderFromText scans the whole document's plain text, for layouts
	// that print the header outside the line-item table.
	HeaderFromText HeaderSource = "text"
)

// TailMode selects how the inferencer maps a row's tail cells to fields.
type TailMode string

const (
	// TailRightToLeft consumes numeric tokens from the row end inward.
	TailRightToLeft TailMode = "right_to_left"
	// TailSplitColumn splits a single packed column into positional parts.
	TailSplitColumn TailMode = "split_column"
)

// HeaderRule is one document field with its ordered pattern candidates.
// The first pattern that matches wins; later candidates are not tried.
type HeaderRule struct {
	Field    string
	Patterns []*regexp.Regexp
}

// Grammar is the data-driven heuristic set for one vendor layout: the
// row-start predicate, the footer stop list, the header patterns and the
// tail-slot policy. Grammars are immutable after initialization.
type Grammar struct {
	Template internal.Template

	ItemPattern      *regexp.Regexp
	SecondaryPattern *regexp.Regexp
	// DigitsOnlyItem strips non-digit characters from the first cell
	// before matching ItemPattern.
	DigitsOnlyItem bool

	FooterMarkers []string

	HeaderSource HeaderSource
	HeaderRules  []HeaderRule

	TailMode TailMode
}

// IsRowStart reports whether a flattened row opens a new logical item.
func (g *Grammar) IsRowStart(row []string) bool {
	if len(row) == 0 || !g.matchItemCell(row[0]) {
		return false
	}
	if g.SecondaryPattern == nil {
		return true
	}
	return len(row) > 1 && g.SecondaryPattern.FindString(row[1]) != ""
}

func (g *Grammar) matchItemCell(cell string) bool {
	if g.DigitsOnlyItem {
		cell = stripNonDigits(cell)
	}
	return g.ItemPattern.MatchString(cell)
}

var reNonDigit = regexp.MustCompile(`\D`)

func stripNonDigits(s string) string {
	return reNonDigit.ReplaceAllString(s, "")
}

var winnersGrammar = &Grammar{
	Template: internal.TemplateWinners,

	ItemPattern:      regexp.MustCompile(`^[0-9]{4,7}$`),
	SecondaryPattern: regexp.MustCompile(`\b[0-9]{8,14}\b`),
	DigitsOnlyItem:   true,

	FooterMarkers: []string{"nb de lignes", "nb colis", "montant achat", "poids brut", "volume"},

	HeaderSource: HeaderFromGrid,
	HeaderRules: []HeaderRule{
		{Field: "Branch", Patterns: []*regexp.Regexp{
			regexp.MustCompile(`^([A-ZÉÀÈÙÂÊÎÔÛÄËÏÖÜÇ]{3,})\s+[0-9]{2}/[0-9]{2}/[0-9]{4}`),
		}},
		{Field: "PONumber", Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)N[°º]?\s*commande\s*[:\s]*([0-9]+)`),
			regexp.MustCompile(`(?i)Bon\s+de\s+commande.*?([0-9]{4,})`),
		}},
		{Field: "OrderDate", Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Date\s+de\s+commande\s*[:\s]*([0-9]{2}/[0-9]{2}/[0-9]{4})`),
			regexp.MustCompile(`(?i)Date\s+([0-9]{2}/[0-9]{2}/[0-9]{4})`),
		}},
		{Field: "DeliveryDate", Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Date\s+de\s+livraison(?:\s+impérative)?\s*[:\s]*([0-9]{2}/[0-9]{2}/[0-9]{4})`),
		}},
		{Field: "CustomerName", Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)[0-9]+\s+([A-Za-z0-9 .,'&-]+LTD)`),
			regexp.MustCompile(`(?i)Fournisseur\s+([A-Za-z0-9 .,'&-]+)`),
		}},
		{Field: "CustomerCode", Patterns: []*regexp.Regexp{
			regexp.MustCompile(`C[0-9]{6,}`),
		}},
		{Field: "CustomerEmail", Patterns: []*regexp.Regexp{
			regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
		}},
	},

	TailMode: TailRightToLeft,
}

var dreampriceGrammar = &Grammar{
	Template: internal.TemplateDreamprice,

	ItemPattern: regexp.MustCompile(`^[0-9]{7,14}$`),

	HeaderSource: HeaderFromText,
	HeaderRules: []HeaderRule{
		{Field: "CustomerName", Patterns: []*regexp.Regexp{
			regexp.MustCompile(`Seven Seven Co Ltd`),
			regexp.MustCompile(`(?i)CUSTOMER\s*:?\s*([A-Za-z0-9 .&-]+)`),
		}},
		{Field: "CustomerCode", Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)C0[0-9]{6,}`),
		}},
		{Field: "PONumber", Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)PURCHASE\s+ORDER\s*[:\-]?\s*([0-9A-Za-z]+)`),
		}},
		{Field: "DeliveryDate", Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Delivery\s*Date\s*[:\-]?\s*([0-9]{2}/[0-9]{2}/[0-9]{4})`),
		}},
		{Field: "OrderDate", Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Date\s+([0-9]{2}/[0-9]{2}/[0-9]{4})`),
		}},
	},

	TailMode: TailSplitColumn,
}

// GrammarFor returns the grammar for a template.
func GrammarFor(template internal.Template) (*Grammar, error) {
	switch template {
	case internal.TemplateWinners:
		return winnersGrammar, nil
	case internal.TemplateDreamprice:
		return dreampriceGrammar, nil
	default:
		return nil, fmt.Errorf("unsupported template: %s", template)
	}
}
