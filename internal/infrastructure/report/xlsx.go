package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/kurochkinivan/vulnscan/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Services"

func (g *Generator) xlsx(w io.Writer, scan *domain.Scan) (err error) {
	f := excelize.NewFile()
	defer func() { err = errors.Join(err, f.Close()) }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	rows := [][]any{recordHeader}
	for _, r := range records(scan) {
		rows = append(rows, r.values())
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}

		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
