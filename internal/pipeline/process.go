package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/muniir-gopaul/scan-pdf/internal"
	"github.com/muniir-gopaul/scan-pdf/internal/enrich"
	"github.com/muniir-gopaul/scan-pdf/internal/extract"
	"github.com/muniir-gopaul/scan-pdf/internal/normalize"
	"github.com/muniir-gopaul/scan-pdf/internal/storage"
)

// ProcessingService runs the full document pipeline: extraction,
// normalization and enrichment, recording a run row per document.
type ProcessingService struct {
	db        *storage.DB
	extractor *extract.Service
	engine    *enrich.Engine
	synonyms  normalize.Synonyms
}

func NewProcessingService(db *storage.DB, extractor *extract.Service) *ProcessingService {
	return &ProcessingService{
		db:        db,
		extractor: extractor,
		engine:    enrich.NewEngine(db, db),
		synonyms:  normalize.DefaultSynonyms,
	}
}

// ProcessDocument converts one purchase-order PDF into enriched, posting-
// ready lines. Extraction failure aborts the document; row-level anomalies
// surface as conservative cannot-post lines instead.
func (s *ProcessingService) ProcessDocument(ctx context.Context, pdfPath string, template internal.Template, rawPricelist string) (internal.DocumentResult, error) {
	start := time.Now()

	doc, err := s.extractor.ExtractDocument(ctx, pdfPath, template)
	if err != nil {
		return internal.DocumentResult{}, err
	}

	canonical := normalize.Rows(doc.Rows, s.synonyms)
	lines := s.engine.EnrichRows(ctx, canonical, rawPricelist)

	postable, blocked, notFound := 0, 0, 0
	for _, line := range lines {
		switch {
		case line.CanPostToSAP:
			postable++
		case line.SAPStatus == internal.SAPNotFound:
			notFound++
		default:
			blocked++
		}
	}

	err = s.db.InsertRun(uuid.NewString(), pdfPath, template,
		map[string]float64{"totalMs": float64(time.Since(start).Milliseconds())},
		map[string]int{"extracted": len(lines), "postable": postable, "blocked": blocked, "notFound": notFound},
	)
	if err != nil {
		log.Printf("recording run for %s failed: %v", pdfPath, err)
	}

	return internal.DocumentResult{
		Template: template,
		Header:   doc.Header,
		RawRows:  doc.Rows,
		Lines:    lines,
	}, nil
}

// SaveResult persists the document atomically: header plus lines numbered
// in input order, all or nothing.
func (s *ProcessingService) SaveResult(result internal.DocumentResult, postedBy string) (internal.SavedDocument, error) {
	header := result.Header
	header.PostedBy = postedBy
	return s.db.SaveDocument(header, result.Lines)
}
