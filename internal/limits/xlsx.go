package limits

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ImportIncomeLevelsFile loads a HUD income limits dataset from a CSV or
// XLSX file. HUD distributes the data as MS Excel workbooks; reading them
// directly removes the convert-to-CSV step from the import workflow.
func (s *Store) ImportIncomeLevelsFile(path string, createdAt time.Time) error {
	if isXLSX(path) {
		rows, err := workbookRows(path)
		if err != nil {
			return err
		}
		return s.loadIncomeLevels(rows, createdAt)
	}
	return s.importCSV(path, func(rows [][]string) error {
		return s.loadIncomeLevels(rows, createdAt)
	})
}

// ImportRentLevelsFile loads a HUD MTSP dataset from a CSV or XLSX file.
func (s *Store) ImportRentLevelsFile(path string, createdAt time.Time, computeLimits bool) error {
	if isXLSX(path) {
		rows, err := workbookRows(path)
		if err != nil {
			return err
		}
		return s.loadRentLevels(rows, createdAt, computeLimits)
	}
	return s.importCSV(path, func(rows [][]string) error {
		return s.loadRentLevels(rows, createdAt, computeLimits)
	})
}

func (s *Store) importCSV(path string, load func([][]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return load(rows)
}

func isXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// workbookRows reads the first sheet of a workbook into CSV-shaped rows,
// padded so every row spans the header columns.
func workbookRows(path string) ([][]string, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return rows, nil
	}
	// GetRows drops trailing empty cells; the column indexing expects
	// rectangular data.
	width := len(rows[0])
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows, nil
}
