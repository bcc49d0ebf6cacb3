// Package export generates the spreadsheet report handed to the couple after
// the ceremony: every guest row plus one synthetic aggregate row. Export is a
// read-only snapshot; a failed export never affects the stored data.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"wedding/internal/core"
)

// GuestSource provides the rows and totals for the report. The record store
// satisfies it; the exporter never writes through it.
type GuestSource interface {
	ListAll(ctx context.Context) ([]core.Guest, error)
	Summary(ctx context.Context) (core.Summary, error)
}

// TotalLabel marks the synthetic aggregate row appended after the guest rows.
const TotalLabel = "សរុប / TOTAL"

// DefaultFilename is the conventional export destination.
const DefaultFilename = "Wedding_List_Export.xlsx"

const sheetName = "Sheet1"

type Exporter struct {
	source GuestSource
}

func NewExporter(source GuestSource) *Exporter {
	return &Exporter{source: source}
}

func (e *Exporter) buildWorkbook(ctx context.Context) (*excelize.File, error) {
	guests, err := e.source.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guests for export: %w", err)
	}
	sum, err := e.source.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize guests for export: %w", err)
	}

	f := excelize.NewFile()

	for i, header := range []string{"id", "name", "khr", "usd", "address"} {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		f.SetCellValue(sheetName, cell, header)
	}

	row := 2
	for _, g := range guests {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(row), g.ID)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(row), g.Name)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(row), g.KHR)
		f.SetCellValue(sheetName, "D"+fmt.Sprint(row), g.USD)
		f.SetCellValue(sheetName, "E"+fmt.Sprint(row), g.Address)
		row++
	}

	// Aggregate row: the marker sits in the name column, the numeric columns
	// carry the sums, id and address stay blank.
	f.SetCellValue(sheetName, "B"+fmt.Sprint(row), TotalLabel)
	f.SetCellValue(sheetName, "C"+fmt.Sprint(row), sum.TotalKHR)
	f.SetCellValue(sheetName, "D"+fmt.Sprint(row), sum.TotalUSD)

	return f, nil
}

// WriteWorkbook streams the report to w, typically an HTTP response.
func (e *Exporter) WriteWorkbook(ctx context.Context, w io.Writer) error {
	f, err := e.buildWorkbook(ctx)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveAs writes the report to a file on disk.
func (e *Exporter) SaveAs(ctx context.Context, path string) error {
	f, err := e.buildWorkbook(ctx)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}

	slog.InfoContext(ctx, "Guest list exported", "file", path)
	return nil
}
