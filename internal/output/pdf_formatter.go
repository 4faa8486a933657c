package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/fincalc/internal/domain"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfPageHeight   = 297.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders one A4 section per report: the result table followed
// by the projection table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

// Binary reports that PDF output must be written to a file.
func (p PDFFormatter) Binary() bool { return true }

func (p PDFFormatter) Format(reports []*domain.Report) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	doc.SetAutoPageBreak(true, pdfMarginBottom)
	doc.SetTitle("Financial Calculator Report", false)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	if len(reports) == 0 {
		doc.AddPage()
		doc.SetFont("Arial", "", 11)
		doc.CellFormat(pdfContentWidth, 8, "No results.", "", 1, "L", false, 0, "")
	}
	for _, r := range reports {
		doc.AddPage()
		pdfTitle(doc, tr(heading(r)))
		pdfFields(doc, tr, r)
		if len(r.Series) > 0 {
			doc.Ln(6)
			pdfSeries(doc, tr, r)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfTitle(doc *fpdf.Fpdf, title string) {
	doc.SetFont("Arial", "B", 18)
	doc.SetTextColor(0, 51, 102)
	doc.CellFormat(pdfContentWidth, 12, title, "", 1, "L", false, 0, "")
	doc.Ln(2)
}

func pdfFields(doc *fpdf.Fpdf, tr func(string) string, r *domain.Report) {
	labelWidth := pdfContentWidth * 0.65
	valueWidth := pdfContentWidth - labelWidth

	doc.SetFillColor(70, 90, 110)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Arial", "B", 10)
	doc.CellFormat(labelWidth, 7, "Result", "1", 0, "L", true, 0, "")
	doc.CellFormat(valueWidth, 7, "Value", "1", 1, "R", true, 0, "")

	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(50, 50, 50)
	for i, f := range r.Fields {
		pdfRowFill(doc, i)
		doc.CellFormat(labelWidth, 6, tr(f.Label), "1", 0, "L", true, 0, "")
		doc.CellFormat(valueWidth, 6, tr(DisplayValue(f)), "1", 1, "R", true, 0, "")
	}

	if len(r.Warnings) > 0 {
		doc.Ln(3)
		doc.SetFont("Arial", "I", 9)
		doc.SetTextColor(160, 60, 0)
		for _, w := range r.Warnings {
			doc.MultiCell(pdfContentWidth, 5, tr("Warning: "+w), "", "L", false)
		}
	}
}

func pdfSeries(doc *fpdf.Fpdf, tr func(string) string, r *domain.Report) {
	headers := seriesHeaders(r)
	width := pdfContentWidth / float64(len(headers))

	header := func() {
		doc.SetFillColor(70, 90, 110)
		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Arial", "B", 7)
		for i, h := range headers {
			align := "R"
			if i == 0 {
				align = "L"
			}
			doc.CellFormat(width, 5, tr(h), "1", 0, align, true, 0, "")
		}
		doc.Ln(-1)
		doc.SetFont("Arial", "", 7)
		doc.SetTextColor(50, 50, 50)
	}

	header()
	for i, p := range r.Series {
		if doc.GetY() > pdfPageHeight-pdfMarginBottom-8 {
			doc.AddPage()
			header()
		}
		pdfRowFill(doc, i)
		for j, cell := range seriesRow(p) {
			align := "R"
			if j == 0 {
				align = "L"
			}
			doc.CellFormat(width, 4, tr(cell), "1", 0, align, true, 0, "")
		}
		doc.Ln(-1)
	}
}

func pdfRowFill(doc *fpdf.Fpdf, i int) {
	if i%2 == 0 {
		doc.SetFillColor(250, 250, 250)
	} else {
		doc.SetFillColor(255, 255, 255)
	}
}
