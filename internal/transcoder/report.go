package transcoder

import (
	"strconv"
	"strings"
	"time"
)

// ReportRow is one user in the flat report.
type ReportRow struct {
	EmployeeID  string
	FullName    string
	Position    string
	Faculty     string
	Department  string
	LastUpdated *time.Time
	Slots       [SlotCount]*string
}

// ReportTimeLayout formats LastUpdated in report cells.
const ReportTimeLayout = "2006-01-02 15:04:05"

// ReportHeader returns the column names of the flat report.
func ReportHeader() []string {
	cols := []string{"EmployeeID", "FullName", "Position", "Faculty", "Department", "LastUpdated"}
	for i := 1; i <= SlotCount; i++ {
		cols = append(cols, "Achievement"+strconv.Itoa(i))
	}
	return cols
}

// Cells returns the row values in header order. Missing values are empty strings.
func (r ReportRow) Cells() []string {
	cells := make([]string, 0, 6+SlotCount)
	updated := ""
	if r.LastUpdated != nil {
		updated = r.LastUpdated.Format(ReportTimeLayout)
	}
	cells = append(cells, r.EmployeeID, r.FullName, r.Position, r.Faculty, r.Department, updated)
	for _, slot := range r.Slots {
		if slot == nil {
			cells = append(cells, "")
			continue
		}
		cells = append(cells, *slot)
	}
	return cells
}

// EncodeReport renders rows as the flat semicolon-separated report.
// The header is bare; every data cell is quoted. An empty rows slice yields the header only.
func EncodeReport(rows []ReportRow, enc Encoding) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(ReportHeader(), ";"))
	b.WriteByte('\n')

	for _, row := range rows {
		for i, cell := range row.Cells() {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(quote(cell))
		}
		b.WriteByte('\n')
	}

	if enc == "" {
		enc = EncodingUTF8
	}
	return enc.apply(b.String())
}

// ReportFilename is the download name of a report generated at t.
func ReportFilename(t time.Time, ext string) string {
	return "report_achievements_" + t.Format("2006-01-02_15-04-05") + "." + ext
}
