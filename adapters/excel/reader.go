// Package excel reads numeric series from spreadsheets and CSV files.
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"econhub/internal"
	"econhub/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is read when no sheet is configured
const DefaultSheet = "Sheet1"

// SeriesReader reads one numeric column of an .xlsx or .csv file. The first
// row holds the column headers.
type SeriesReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	logger   *internal.Logger
}

// NewSeriesReader creates a reader for filePath. sheet is ignored for CSV
// files; empty means DefaultSheet.
func NewSeriesReader(filePath, sheet string, logger *internal.Logger) *SeriesReader {
	fileType := "xlsx"
	if strings.EqualFold(filepath.Ext(filePath), ".csv") {
		fileType = "csv"
	}
	if sheet == "" {
		sheet = DefaultSheet
	}
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &SeriesReader{filePath: filePath, fileType: fileType, sheet: sheet, logger: logger}
}

// ReadSeries implements ports.SeriesReader. Blank cells are skipped; any
// other non-numeric cell is an INVALID_INPUT error naming its row.
func (r *SeriesReader) ReadSeries(ctx context.Context, column string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound(fmt.Sprintf("%s file %s", strings.ToUpper(r.fileType), r.filePath))
	}

	startTime := time.Now()
	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}
	r.logger.Debug("[SeriesReader] %s read in %.2fms (%d rows)",
		r.filePath, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return extractColumn(rows, column)
}

func (r *SeriesReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", r.sheet)
	}
	return rows, nil
}

func (r *SeriesReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV file")
	}
	return rows, nil
}

func extractColumn(rows [][]string, column string) ([]float64, error) {
	if len(rows) < 2 {
		return nil, errors.InvalidInput("file must have a header row and at least one data row")
	}

	col := -1
	for i, header := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(header), strings.TrimSpace(column)) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.InvalidInput(fmt.Sprintf("column %q not found", column))
	}

	values := make([]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if col >= len(row) || strings.TrimSpace(row[col]) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			// +2: one for the header, one for 1-based spreadsheet rows
			return nil, errors.InvalidInput(fmt.Sprintf("row %d of column %q is not a number: %q", i+2, column, row[col]))
		}
		values = append(values, v)
	}
	return values, nil
}
