package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/muniir-gopaul/scan-pdf/internal"
	"github.com/muniir-gopaul/scan-pdf/internal/util"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS items (
  barcode TEXT PRIMARY KEY,
  itemCode TEXT NOT NULL,
  itemName TEXT NOT NULL,
  availForSale REAL NOT NULL DEFAULT 0,
  active TEXT NOT NULL DEFAULT 'N',
  lastSeenAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_items_itemCode ON items(itemCode);

CREATE TABLE IF NOT EXISTS pricelist (
  itemCode TEXT NOT NULL,
  pricelist INTEGER NOT NULL,
  price REAL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (itemCode, pricelist)
);

CREATE TABLE IF NOT EXISTS num_counter (
  tableName TEXT PRIMARY KEY,
  nextNumber INTEGER NOT NULL
);
INSERT OR IGNORE INTO num_counter (tableName, nextNumber) VALUES ('pdf_header', 0);

CREATE TABLE IF NOT EXISTS pdf_header (
  docEntry INTEGER PRIMARY KEY,
  custCode TEXT,
  custName TEXT,
  docNum TEXT,
  orderDate TEXT,
  deliveryDate TEXT,
  postingDate TEXT,
  datePosted TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  postedBy TEXT
);

CREATE TABLE IF NOT EXISTS pdf_lines (
  docEntry INTEGER NOT NULL,
  lineNum INTEGER NOT NULL,
  itemCode TEXT,
  description TEXT,
  barcode TEXT,
  quantity REAL NOT NULL DEFAULT 0,
  unitPrice REAL NOT NULL DEFAULT 0,
  stockQty REAL NOT NULL DEFAULT 0,
  poPrice REAL NOT NULL DEFAULT 0,
  postToSAP INTEGER NOT NULL DEFAULT 1,
  active INTEGER NOT NULL DEFAULT 0,
  pricelist INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (docEntry, lineNum),
  FOREIGN KEY(docEntry) REFERENCES pdf_header(docEntry)
);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  pdfPath TEXT NOT NULL,
  template TEXT NOT NULL,
  timingsJson TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) UpsertItems(records []internal.CatalogRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO items (barcode, itemCode, itemName, availForSale, active, lastSeenAt)
VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(barcode) DO UPDATE SET
  itemCode=excluded.itemCode,
  itemName=excluded.itemName,
  availForSale=excluded.availForSale,
  active=excluded.active,
  lastSeenAt=CURRENT_TIMESTAMP
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(strings.TrimSpace(r.Barcode), r.ItemCode, r.ItemName, r.AvailForSale, r.Active); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *DB) UpsertPrices(pricelist int, records []internal.PriceRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO pricelist (itemCode, pricelist, price, updatedAt)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(itemCode, pricelist) DO UPDATE SET
  price=excluded.price,
  updatedAt=CURRENT_TIMESTAMP
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.ItemCode, pricelist, r.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

var reAllDigits = regexp.MustCompile(`^[0-9]+$`)

// LookupItemByBarcode performs an exact, whitespace-trimmed match. Purely
// numeric barcodes are also compared as integers so that stored values with
// leading zeros still resolve. At most one record comes back; a miss is a
// nil record, not an error.
func (d *DB) LookupItemByBarcode(ctx context.Context, barcode string) (*internal.CatalogRecord, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, nil
	}

	query := `
SELECT barcode, itemCode, itemName, availForSale, active
FROM items WHERE trim(barcode) = ?`
	args := []any{barcode}

	if reAllDigits.MatchString(barcode) {
		if n, err := strconv.ParseInt(barcode, 10, 64); err == nil {
			query += ` OR CAST(trim(barcode) AS INTEGER) = ?`
			args = append(args, n)
		}
	}
	query += ` LIMIT 1`

	var r internal.CatalogRecord
	err := d.conn.QueryRowContext(ctx, query, args...).Scan(&r.Barcode, &r.ItemCode, &r.ItemName, &r.AvailForSale, &r.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// LookupPricelistPrice returns the price-list entry for the item, filtered
// to strictly positive prices. A miss is a nil record.
func (d *DB) LookupPricelistPrice(ctx context.Context, itemCode string, pricelist int) (*internal.PriceRecord, error) {
	var r internal.PriceRecord
	err := d.conn.QueryRowContext(ctx, `
SELECT itemCode, price FROM pricelist
WHERE itemCode = ? AND pricelist = ? AND price IS NOT NULL AND price > 0
LIMIT 1`, itemCode, pricelist).Scan(&r.ItemCode, &r.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SaveDocument writes the header and its lines as a single transaction.
// Line numbers are assigned 1..N in input order; either everything lands or
// nothing does.
func (d *DB) SaveDocument(header internal.Header, lines []internal.EnrichedLine) (internal.SavedDocument, error) {
	tx, err := d.conn.Begin()
	if err != nil {
		return internal.SavedDocument{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE num_counter SET nextNumber = nextNumber + 1 WHERE tableName = 'pdf_header'`); err != nil {
		return internal.SavedDocument{}, err
	}
	var docEntry int
	if err := tx.QueryRow(`SELECT nextNumber FROM num_counter WHERE tableName = 'pdf_header'`).Scan(&docEntry); err != nil {
		return internal.SavedDocument{}, fmt.Errorf("num_counter row for pdf_header not found: %w", err)
	}

	if _, err := tx.Exec(`
INSERT INTO pdf_header (docEntry, custCode, custName, docNum, orderDate, deliveryDate, postingDate, datePosted, postedBy)
VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, ?)`,
		docEntry, header.CustomerCode, header.CustomerName, header.PONumber,
		nullableDate(header.OrderDate), nullableDate(header.DeliveryDate), nullableDate(header.PostingDate),
		header.PostedBy,
	); err != nil {
		return internal.SavedDocument{}, err
	}

	stmt, err := tx.Prepare(`
INSERT INTO pdf_lines (docEntry, lineNum, itemCode, description, barcode, quantity, unitPrice, stockQty, poPrice, postToSAP, active, pricelist)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return internal.SavedDocument{}, err
	}
	defer stmt.Close()

	for i, line := range lines {
		postToSAP := 1
		if line.CanPostToSAP {
			postToSAP = 0
		}
		active := 0
		if line.SAPStatus == internal.SAPActive {
			active = 1
		}
		hasPricelist := 0
		if line.PricelistStatus == internal.PricelistExists {
			hasPricelist = 1
		}

		if _, err := stmt.Exec(
			docEntry, i+1, line.ItemCode, line.Description, line.Barcode,
			line.Qty, line.UnitPrice, line.StockQty, line.POPrice,
			postToSAP, active, hasPricelist,
		); err != nil {
			return internal.SavedDocument{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return internal.SavedDocument{}, err
	}

	return internal.SavedDocument{DocEntry: docEntry, DocNum: header.PONumber, Lines: len(lines)}, nil
}

func nullableDate(v string) any {
	fixed := util.FixDate(v)
	if fixed == "" {
		return nil
	}
	return fixed
}

func (d *DB) InsertRun(traceID, pdfPath string, template internal.Template, timings map[string]float64, counts map[string]int) error {
	timingsJSON, _ := json.Marshal(timings)
	countsJSON, _ := json.Marshal(counts)
	_, err := d.conn.Exec(`INSERT INTO runs (traceId, pdfPath, template, timingsJson, countsJson) VALUES (?, ?, ?, ?, ?)`,
		traceID, pdfPath, string(template), string(timingsJSON), string(countsJSON))
	return err
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// GetDocumentLines reads back a saved document's lines in line order.
func (d *DB) GetDocumentLines(docEntry int) ([]internal.EnrichedLine, error) {
	rows, err := d.conn.Query(`
SELECT lineNum, itemCode, description, barcode, quantity, unitPrice, stockQty, poPrice, postToSAP, active, pricelist
FROM pdf_lines WHERE docEntry = ? ORDER BY lineNum ASC`, docEntry)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.EnrichedLine
	for rows.Next() {
		var line internal.EnrichedLine
		var lineNum, postToSAP, active, hasPricelist int
		if err := rows.Scan(&lineNum, &line.ItemCode, &line.Description, &line.Barcode,
			&line.Qty, &line.UnitPrice, &line.StockQty, &line.POPrice, &postToSAP, &active, &hasPricelist); err != nil {
			return nil, err
		}
		line.CanPostToSAP = postToSAP == 0
		if active == 1 {
			line.SAPStatus = internal.SAPActive
		}
		if hasPricelist == 1 {
			line.PricelistStatus = internal.PricelistExists
		}
		out = append(out, line)
	}
	return out, rows.Err()
}
