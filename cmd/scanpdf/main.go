package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/muniir-gopaul/scan-pdf/internal"
	"github.com/muniir-gopaul/scan-pdf/internal/catalog"
	"github.com/muniir-gopaul/scan-pdf/internal/config"
	"github.com/muniir-gopaul/scan-pdf/internal/extract"
	"github.com/muniir-gopaul/scan-pdf/internal/pdftext"
	"github.com/muniir-gopaul/scan-pdf/internal/pipeline"
	"github.com/muniir-gopaul/scan-pdf/internal/storage"
	"github.com/muniir-gopaul/scan-pdf/internal/tabula"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "extract":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		file := fs.String("file", "", "purchase-order pdf path")
		template := fs.String("template", "winners", "winners|dreamprice")
		pricelist := fs.String("pricelist", cfg.DefaultPricelist, "price-list id")
		out := fs.String("out", "", "output xlsx path")
		save := fs.Bool("save", false, "persist header and lines")
		postedBy := fs.String("postedBy", "", "user recorded on the saved document")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*file) == "" {
			must(fmt.Errorf("--file is required"))
		}

		tables, err := tabula.NewJarExtractor(cfg)
		must(err)
		extractor := extract.NewService(tables, pdftext.ReadAll)
		processor := pipeline.NewProcessingService(db, extractor)

		result, err := processor.ProcessDocument(context.Background(), *file, internal.Template(*template), *pricelist)
		must(err)

		postable := 0
		for _, line := range result.Lines {
			if line.CanPostToSAP {
				postable++
			}
		}
		fmt.Printf("extracted po=%s lines=%d postable=%d\n", result.Header.PONumber, len(result.Lines), postable)

		if strings.TrimSpace(*out) != "" {
			must(pipeline.ExportResultToXLSX(result, *out))
			fmt.Printf("exported %d lines to %s\n", len(result.Lines), *out)
		}
		if *save {
			saved, err := processor.SaveResult(result, *postedBy)
			must(err)
			fmt.Printf("saved docEntry=%d docNum=%s lines=%d\n", saved.DocEntry, saved.DocNum, saved.Lines)
		}
	case "catalog:import-items":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		file := fs.String("file", "", "item-list xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*file) == "" {
			must(fmt.Errorf("--file is required"))
		}
		svc := catalog.NewImportService(db)
		count, err := svc.ImportItems(*file)
		must(err)
		fmt.Printf("imported %d items\n", count)
	case "catalog:import-prices":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		file := fs.String("file", "", "price-list xlsx path")
		pricelist := fs.Int("pricelist", 0, "price-list id")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*file) == "" || *pricelist <= 0 {
			must(fmt.Errorf("--file and a positive --pricelist are required"))
		}
		svc := catalog.NewImportService(db)
		count, err := svc.ImportPrices(*file, *pricelist)
		must(err)
		fmt.Printf("imported %d prices into pricelist %d\n", count, *pricelist)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: scanpdf <command>")
	fmt.Println("commands:")
	fmt.Println("  extract --file=order.pdf --template=winners|dreamprice [--pricelist=1] [--out=./out/result.xlsx] [--save] [--postedBy=name]")
	fmt.Println("  catalog:import-items --file=items.xlsx")
	fmt.Println("  catalog:import-prices --file=prices.xlsx --pricelist=1")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
