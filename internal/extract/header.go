package extract

import (
	"strings"

	"github.com/muniir-gopaul/scan-pdf/internal"
)

// ExtractHeader scans the given text with the grammar's header rules. For
// each field the ordered pattern candidates are tried in sequence and the
// first match wins; unmatched fields stay empty. Fields are resolved
// independently of each other.
func ExtractHeader(text string, g *Grammar) internal.Header {
	var header internal.Header
	for _, rule := range g.HeaderRules {
		setHeaderField(&header, rule.Field, matchFirst(text, rule))
	}
	return header
}

func matchFirst(text string, rule HeaderRule) string {
	for _, re := range rule.Patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value := m[0]
		if len(m) > 1 && m[1] != "" {
			value = m[1]
		}
		return strings.TrimSpace(value)
	}
	return ""
}

func setHeaderField(h *internal.Header, field, value string) {
	switch field {
	case "Branch":
		h.Branch = value
	case "PONumber":
		h.PONumber = value
	case "OrderDate":
		h.OrderDate = value
	case "DeliveryDate":
		h.DeliveryDate = value
	case "CustomerCode":
		h.CustomerCode = value
	case "CustomerName":
		h.CustomerName = value
	case "CustomerEmail":
		h.CustomerEmail = value
	}
}
