package extract

import (
	"context"
	"fmt"

	"github.com/muniir-gopaul/scan-pdf/internal"
	"github.com/muniir-gopaul/scan-pdf/internal/tabula"
)

// TextReader returns the plain text of a whole document. Used by grammars
// whose header lives outside the cell grid.
type TextReader func(path string) (string, error)

// Document is the raw extraction output for one purchase order: the
// resolved header plus one grammar-native row per logical item, in source
// order.
type Document struct {
	Template internal.Template
	Header   internal.Header
	Rows     []internal.RawExtractedRow
}

// Service runs the grid pipeline for one document: extract tables, flatten,
// merge continuations, then scan the header and infer row fields.
type Service struct {
	tables   tabula.Extractor
	readText TextReader
}

func NewService(tables tabula.Extractor, readText TextReader) *Service {
	return &Service{tables: tables, readText: readText}
}

func (s *Service) ExtractDocument(ctx context.Context, pdfPath string, template internal.Template) (Document, error) {
	grammar, err := GrammarFor(template)
	if err != nil {
		return Document{}, err
	}

	pages, err := s.tables.ExtractTables(ctx, pdfPath)
	if err != nil {
		return Document{}, fmt.Errorf("table extraction failed for %s: %w", pdfPath, err)
	}

	flat := Flatten(pages)
	merged := MergeContinuations(flat, grammar)
	rows := InferRows(merged, grammar)

	headerText := JoinRows(flat)
	if grammar.HeaderSource == HeaderFromText {
		text, err := s.readText(pdfPath)
		if err != nil {
			return Document{}, fmt.Errorf("reading document text for %s: %w", pdfPath, err)
		}
		headerText = text
	}
	header := ExtractHeader(headerText, grammar)

	return Document{Template: template, Header: header, Rows: rows}, nil
}
