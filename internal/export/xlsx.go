package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSX renders the table as a single-sheet workbook named "Report", with a
// bold header row and typed cells (numbers stay numbers, money stays decimal).
func XLSX(t Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("export: create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("export: header style: %w", err)
	}

	for col, name := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, name)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for r, row := range t.Rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			switch v.Kind {
			case KindInt:
				f.SetCellValue(sheet, cell, v.Int)
			case KindMoney, KindPercent:
				val, _ := v.Decimal.Float64()
				f.SetCellValue(sheet, cell, val)
			case KindDate:
				f.SetCellValue(sheet, cell, v.Time.Format("2006-01-02"))
			default:
				f.SetCellValue(sheet, cell, v.Text)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
