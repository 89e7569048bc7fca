package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/seojacky/account-teacher/internal/transcoder"
)

const reportSheet = "Досягнення"

// buildReportXLSX renders report rows into a single-sheet workbook.
// Columns follow transcoder.ReportHeader.
func buildReportXLSX(rows []transcoder.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(reportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := transcoder.ReportHeader()

	// column widths: identity columns narrow, slot columns wide
	f.SetColWidth(reportSheet, "A", "A", 14)
	f.SetColWidth(reportSheet, "B", "B", 32)
	f.SetColWidth(reportSheet, "C", "E", 20)
	f.SetColWidth(reportSheet, "F", "F", 20)
	f.SetColWidth(reportSheet, colName(6), colName(len(header)-1), 40)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return nil, err
	}
	f.SetCellStyle(reportSheet, "A1", cell(colName(len(header)-1), 1), headerStyle)
	f.SetPanes(reportSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	for i, row := range rows {
		cells := row.Cells()
		values := make([]interface{}, len(cells))
		for j, c := range cells {
			values[j] = c
		}
		if err := f.SetSheetRow(reportSheet, cell("A", i+2), &values); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
