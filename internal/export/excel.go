// Package export writes sampled response series to an Excel workbook,
// one sheet per quantity.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cltlab/goclt/internal/series"
)

// Sheet pairs a sheet name with the series it holds.
type Sheet struct {
	Name string
	Pair series.Pair
}

// WriteWorkbook writes the sheets to an xlsx file at path. Each sheet
// gets position/value columns for the primary span and, when present,
// the secondary span.
func WriteWorkbook(path string, sheets []Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		name := sheet.Name
		if i == 0 {
			// Reuse the default sheet for the first quantity.
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return err
			}
		}

		if err := writeSeries(f, name, "A", sheet.Pair.Primary); err != nil {
			return err
		}
		if len(sheet.Pair.Secondary.Points) > 0 {
			if err := writeSeries(f, name, "D", sheet.Pair.Secondary); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func writeSeries(f *excelize.File, sheet, col string, s series.Series) error {
	next := string(rune(col[0] + 1))

	if err := f.SetCellValue(sheet, col+"1", "x (m)"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, next+"1", s.Label); err != nil {
		return err
	}

	for i, pt := range s.Points {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), pt.X); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", next, row), pt.Y); err != nil {
			return err
		}
	}
	return nil
}
