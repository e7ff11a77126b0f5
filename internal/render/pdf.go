package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"hirequality/internal/domain/charts"
	"hirequality/internal/domain/hirequality"
)

const (
	pdfPanelWidth  = 133.0
	pdfPanelHeight = 87.0
	pdfMargin      = 10.0
)

var pdfImageSize = Size{Width: 798, Height: 522}

// PDF writes a landscape A4 report: both panels on the first page, the
// underlying tables on the second.
func PDF(w io.Writer, d hirequality.Dashboard) error {
	var ratingImg, probationImg bytes.Buffer
	if err := RatingPNG(&ratingImg, d, pdfImageSize); err != nil {
		return err
	}
	if err := ProbationPNG(&probationImg, d, pdfImageSize); err != nil {
		return err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetTitle("Hire Quality Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Hire Quality Report")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, SummaryLine(d))
	pdf.Ln(10)

	top := pdf.GetY()
	pdfPanel(pdf, pdfMargin, top, d.Pie.Title, d.Pie.Subtitle, "ratings", &ratingImg)
	pdfPanel(pdf, pdfMargin+pdfPanelWidth+4, top, d.Bar.Title, d.Bar.Subtitle, "probation", &probationImg)

	pdf.AddPage()
	ratingTable(pdf, d)
	pdf.Ln(8)
	monthlyTable(pdf, d)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func pdfPanel(pdf *gofpdf.Fpdf, x, y float64, title, subtitle, imageName string, img io.Reader) {
	pdf.SetXY(x, y)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(pdfPanelWidth, 7, title, "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(117, 117, 117)
	pdf.CellFormat(pdfPanelWidth, 5, subtitle, "", 2, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(imageName, opts, img)
	pdf.ImageOptions(imageName, x, pdf.GetY()+2, pdfPanelWidth, pdfPanelHeight, false, opts, 0, "")
}

func ratingTable(pdf *gofpdf.Fpdf, d hirequality.Dashboard) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, d.Pie.Title)
	pdf.Ln(9)

	headers := []string{"Rating", "Hires", "Share"}
	widths := []float64{60, 30, 30}
	tableHeader(pdf, headers, widths)

	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range d.Ratings {
		pdf.CellFormat(widths[0], 7, string(entry.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, strconv.Itoa(entry.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, charts.PercentLabel(entry.Count, d.Pie.Total)+"%", "1", 1, "R", false, 0, "")
	}
}

func monthlyTable(pdf *gofpdf.Fpdf, d hirequality.Dashboard) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, d.Bar.Title)
	pdf.Ln(9)

	headers := []string{"Month", "Total", "Passed", "Failed - Company", "Failed - Employee"}
	widths := []float64{40, 25, 25, 40, 40}
	tableHeader(pdf, headers, widths)

	pdf.SetFont("Helvetica", "", 10)
	if len(d.Monthly.Months) == 0 {
		pdf.CellFormat(sum(widths), 7, "No hires in the selected period", "1", 1, "C", false, 0, "")
		return
	}
	for i, month := range d.Monthly.Months {
		b := d.Monthly.Buckets[month]
		pdf.CellFormat(widths[0], 7, d.Bar.Config.Data.Labels[i], "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, strconv.Itoa(b.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, strconv.Itoa(b.Passed), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, strconv.Itoa(b.FailedCompany), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, strconv.Itoa(b.FailedEmployee), "1", 1, "R", false, 0, "")
	}
}

func tableHeader(pdf *gofpdf.Fpdf, headers []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(238, 238, 238)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
