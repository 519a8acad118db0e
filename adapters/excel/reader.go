package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"esgchat/domain/grid"
)

// DataReader reads Excel and CSV exports into a RawGrid.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for either file type, picked by
// extension.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadGrid reads the file verbatim into a RawGrid: the first row becomes
// the column headers, every following row becomes cells with empty
// strings mapped to null.
func (r *DataReader) ReadGrid() (grid.RawGrid, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return grid.RawGrid{}, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return grid.RawGrid{}, err
	}

	if len(rows) < 2 {
		return grid.RawGrid{}, fmt.Errorf("%s file must have at least a header row and one data row", strings.ToUpper(r.fileType))
	}

	return toGrid(rows), nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Section exports have ragged rows, so don't enforce a fixed width.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	return rows, nil
}

func toGrid(rows [][]string) grid.RawGrid {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	dataRows := make([]grid.Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(grid.Row, len(raw))
		for j, cell := range raw {
			row[j] = grid.CellFromString(cell)
		}
		dataRows = append(dataRows, row)
	}

	return grid.RawGrid{Headers: headers, Rows: dataRows}
}
