package rendering

import (
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/job-tailor/internal/types"
)

// PDF layout constants
const (
	pdfNameSize    = 18.0
	pdfHeadingSize = 13.0
	pdfBodySize    = 10.5
	pdfLineHeight  = 5.5
	pdfSectionGap  = 3.0
)

// ExportPDF writes a binary rendering of the tailored resume. It mirrors the
// Markdown layout: identity header, summary, skills, selected bullets grouped
// under experience headers, then education and projects.
func ExportPDF(p *types.Profile, selected []types.SelectedBullet, path string) error {
	data := buildResumeData(p, selected)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(data.Name, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", pdfNameSize)
	pdf.CellFormat(0, 9, data.Name, "", 1, "L", false, 0, "")

	if data.Contact != "" {
		pdf.SetFont("Helvetica", "", pdfBodySize)
		pdf.CellFormat(0, pdfLineHeight, data.Contact, "", 1, "L", false, 0, "")
	}

	if data.Summary != "" {
		writeHeading(pdf, "Summary")
		writeBody(pdf, data.Summary)
	}

	if len(data.Skills) > 0 {
		writeHeading(pdf, "Skills")
		writeBody(pdf, strings.Join(data.Skills, ", "))
	}

	writeHeading(pdf, "Experience")
	for _, section := range data.Sections {
		pdf.SetFont("Helvetica", "B", pdfBodySize)
		header := section.Role + ", " + section.Company + " (" + section.Start + " - " + section.End + ")"
		pdf.MultiCell(0, pdfLineHeight, header, "", "L", false)
		pdf.SetFont("Helvetica", "", pdfBodySize)
		for _, bullet := range section.Bullets {
			pdf.MultiCell(0, pdfLineHeight, "  - "+bullet, "", "L", false)
		}
		pdf.Ln(2)
	}

	if len(data.Education) > 0 {
		writeHeading(pdf, "Education")
		for _, line := range data.Education {
			writeBody(pdf, line)
		}
	}

	if len(data.Projects) > 0 {
		writeHeading(pdf, "Projects")
		for _, line := range data.Projects {
			writeBody(pdf, line)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return &RenderError{Message: "failed to write PDF", Cause: err}
	}

	return nil
}

func writeHeading(pdf *fpdf.Fpdf, text string) {
	pdf.Ln(pdfSectionGap)
	pdf.SetFont("Helvetica", "B", pdfHeadingSize)
	pdf.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
}

func writeBody(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", pdfBodySize)
	pdf.MultiCell(0, pdfLineHeight, text, "", "L", false)
}
