package extract

import (
	"reflect"
	"testing"

	"github.com/muniir-gopaul/scan-pdf/internal/tabula"
	"github.com/muniir-gopaul/scan-pdf/internal/util"
)

func cell(text string) tabula.Cell {
	return tabula.Cell{Text: util.StringPtr(text)}
}

func TestFlatten(t *testing.T) {
	pages := []tabula.Page{
		{Data: [][]tabula.Cell{
			{cell("1001"), cell("  5012345678900 "), cell("CHOCO   BAR"), {Text: nil}, cell("")},
			{cell(""), cell(""), cell("24x100g")},
		}},
		{Data: [][]tabula.Cell{
			{cell("1002"), cell("5012345678917"), cell("BISCUIT"), cell("12")},
		}},
	}

	got := Flatten(pages)
	want := [][]string{
		{"1001", "5012345678900", "CHOCO BAR"},
		{"", "", "24x100g"},
		{"1002", "5012345678917", "BISCUIT", "12"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestFlattenKeepsInteriorEmptyCells(t *testing.T) {
	pages := []tabula.Page{
		{Data: [][]tabula.Cell{
			{cell("1001"), {Text: nil}, cell("DESC"), {Text: nil}},
		}},
	}

	got := Flatten(pages)
	want := [][]string{{"1001", "", "DESC"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestJoinRows(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c"}}
	if got := JoinRows(rows); got != "a b c" {
		t.Fatalf("got %q", got)
	}
}
