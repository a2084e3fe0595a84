package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/algo-libs/libs/dataset"
)

// SheetName is the worksheet written by [WriteDatasetXLSX].
const SheetName = "dataset"

// record returns the cells of one dataset row in schema column order.
func record(row dataset.Row) []any {
	cells := make([]any, 0, len(row.Intensities)+len(row.Composition.Percentages)+3)
	for _, v := range row.Intensities {
		cells = append(cells, v)
	}
	for _, p := range row.Composition.Percentages {
		cells = append(cells, p)
	}
	return append(cells, row.Name, row.Te, row.Ne)
}

// WriteDatasetCSV writes the header and every row of res.
func WriteDatasetCSV(w io.Writer, res dataset.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(res.Schema.Columns()); err != nil {
		return err
	}

	fields := make([]string, 0, len(res.Schema.Columns()))
	for _, row := range res.Rows {
		fields = fields[:0]
		for _, c := range record(row) {
			switch v := c.(type) {
			case float64:
				fields = append(fields, ftoa(v))
			default:
				fields = append(fields, fmt.Sprint(v))
			}
		}
		if err := cw.Write(fields); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteDatasetXLSX writes res as a single worksheet workbook to w.
func WriteDatasetXLSX(w io.Writer, res dataset.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	cols := res.Schema.Columns()
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}

	for i, row := range res.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := sw.SetRow(cell, record(row)); err != nil {
			return fmt.Errorf("export: row %d: %w", row.Index, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	_, err = f.WriteTo(w)
	return err
}
