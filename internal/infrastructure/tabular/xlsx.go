package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"pacp_coder/pkg/lox"
)

// ReadWorkbook parses the first sheet of an xlsx workbook into a Table.
// The first row is the header; an empty sheet yields an empty table.
func ReadWorkbook(r io.Reader) (Table, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("excelize.OpenReader: %w", err)
	}
	defer file.Close() //nolint:errcheck

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return New(nil, nil), nil
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("file.GetRows: %w", err)
	}

	if len(rows) == 0 {
		return New(nil, nil), nil
	}

	return New(rows[0], rows[1:]), nil
}

// WriteWorkbook serializes a Table into a single-sheet xlsx workbook.
func WriteWorkbook(sheetName string, t Table) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close() //nolint:errcheck

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("file.SetSheetName: %w", err)
	}

	if err := writeRow(file, sheetName, 1, t.Columns()); err != nil {
		return nil, err
	}

	for i := 0; i < t.RowCount(); i++ {
		if err := writeRow(file, sheetName, i+2, t.rows[i]); err != nil {
			return nil, err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("file.WriteToBuffer: %w", err)
	}

	return buf.Bytes(), nil
}

func writeRow(file *excelize.File, sheetName string, rowNumber int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return fmt.Errorf("excelize.CoordinatesToCellName: %w", err)
	}

	values := lox.Map(cells, func(c string) any { return c })

	if err := file.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("file.SetSheetRow: %w", err)
	}

	return nil
}
