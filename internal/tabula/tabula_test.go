package tabula

import (
	"encoding/json"
	"testing"
)

func TestPageDecoding(t *testing.T) {
	// shape of the tool's stream-mode JSON output
	raw := `[
  {"data": [
    [{"text": "1001"}, {"text": "5012345678900"}, {"text": null}],
    [{"text": ""}, {"text": "suite"}]
  ]},
  {"data": []}
]`

	var pages []Page
	if err := json.Unmarshal([]byte(raw), &pages); err != nil {
		t.Fatal(err)
	}

	if len(pages) != 2 {
		t.Fatalf("pages = %d", len(pages))
	}
	row := pages[0].Data[0]
	if row[0].Text == nil || *row[0].Text != "1001" {
		t.Fatalf("cell 0 = %v", row[0].Text)
	}
	if row[2].Text != nil {
		t.Fatalf("null text decoded as %q", *row[2].Text)
	}
}
