// Package pdf renders the employee list as a printable roster: a header bar,
// one table row per employee, and a page footer with the record count.
package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/employee-manager/internal/domain"
)

type column struct {
	title string
	width float64 // share of content width
	value func(domain.Employee) string
}

var columns = []column{
	{"NAME", 0.24, func(e domain.Employee) string { return e.Name }},
	{"EMAIL", 0.30, func(e domain.Employee) string { return e.Email }},
	{"POSITION", 0.23, func(e domain.Employee) string { return e.Position }},
	{"DEPARTMENT", 0.23, func(e domain.Employee) string { return e.Department }},
}

const rowH = 6.5

// GenerateRoster writes a landscape roster of employees to w in list order.
// generatedAt is printed in the header.
func GenerateRoster(employees []domain.Employee, generatedAt time.Time, w io.Writer) error {
	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("{nb}")

	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	pdf.SetHeaderFunc(func() {
		drawHeader(pdf, contentW, len(employees), generatedAt)
		drawColumnTitles(pdf, contentW)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(contentW, 5, "Page "+fmt.Sprint(pdf.PageNo())+" of {nb}", "", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	if len(employees) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(contentW, 12, "No employees found", "", 1, "C", false, 0, "")
		return pdf.Output(w)
	}

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 9)
	for i, e := range employees {
		// zebra rows
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		for _, c := range columns {
			pdf.CellFormat(contentW*c.width, rowH, tr(fit(pdf, c.value(e), contentW*c.width-2)), "B", 0, "L", fill, 0, "")
		}
		pdf.Ln(rowH)
	}

	return pdf.Output(w)
}

func drawHeader(pdf *fpdf.Fpdf, contentW float64, count int, generatedAt time.Time) {
	marginL, marginT, _, _ := pdf.GetMargins()

	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW/2, 7, "EMPLOYEE ROSTER", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2-4, 7,
		fmt.Sprintf("%d record(s) - %s", count, generatedAt.Format("2006-01-02 15:04 MST")),
		"", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginL, marginT+13)
}

func drawColumnTitles(pdf *fpdf.Fpdf, contentW float64) {
	pdf.SetFillColor(225, 225, 225)
	pdf.SetFont("Helvetica", "B", 8)
	for _, c := range columns {
		pdf.CellFormat(contentW*c.width, 6, c.title, "TB", 0, "L", true, 0, "")
	}
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
}

// fit truncates s with an ellipsis so it renders within width mm.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
