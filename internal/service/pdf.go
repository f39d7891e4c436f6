package service

import (
	"fmt"
	"io"

	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/report"

	"github.com/jung-kurt/gofpdf/v2"
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Date", 24},
	{"Employee", 40},
	{"Department", 34},
	{"In", 16},
	{"Out", 16},
	{"Break", 16},
	{"Hours", 16},
	{"Status", 18},
}

// WriteAttendancePDF renders the attendance report table followed by the
// status breakdown of the same records.
func WriteAttendancePDF(w io.Writer, title string, list []entity.Attendance) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(229, 231, 235)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, a := range list {
		cells := []string{
			a.Date.String(),
			a.EmployeeName,
			a.Department,
			a.TimeIn,
			a.TimeOut,
			a.BreakTime,
			fmt.Sprintf("%.1f", report.WorkHours(a.TimeIn, a.TimeOut, a.BreakTime)),
			a.Status,
		}
		for i, col := range pdfColumns {
			pdf.CellFormat(col.width, 6, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total records: %d", len(list)), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, b := range report.StatusDistribution(list) {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %d", b.Name, b.Value), "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
