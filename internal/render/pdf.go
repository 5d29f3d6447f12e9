package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
	"github.com/beepdt/Ai-Resume-Builder/internal/view"
)

const (
	pdfMargin    = 15.0
	pdfNameSize  = 18.0
	pdfTitleSize = 11.0
	pdfBodySize  = 9.5
	pdfSmallSize = 8.5
	lineHeight   = 4.6
)

// PDF renders the download target on A4. Dates are reformatted to
// "Jan 2006" where the stored string allows it.
func PDF(r *domain.Resume) ([]byte, error) {
	doc := view.BuildDocument(r, view.DateMonthYear)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	writeHeader(pdf, doc)
	for _, section := range doc.Sections {
		writeSectionTitle(pdf, section.Title)
		switch section.Kind {
		case view.SectionSummary:
			writeSummary(pdf, section.Summary)
		case view.SectionEducation:
			writeEducation(pdf, section.Education)
		case view.SectionSkills:
			writeSkills(pdf, section.SkillColumns)
		case view.SectionProjects:
			writeProjects(pdf, section.Projects)
		case view.SectionExperience:
			writeExperience(pdf, section.Experience)
		case view.SectionCertifications:
			writeCertifications(pdf, section.Certifications)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func contentWidth(pdf *gofpdf.Fpdf) float64 {
	w, _ := pdf.GetPageSize()
	return w - 2*pdfMargin
}

func writeHeader(pdf *gofpdf.Fpdf, doc *view.Document) {
	pdf.SetFont("Helvetica", "B", pdfNameSize)
	pdf.CellFormat(contentWidth(pdf), 8, strings.ToUpper(doc.Name), "", 1, "C", false, 0, "")

	if len(doc.Contacts) > 0 {
		parts := make([]string, 0, len(doc.Contacts))
		for _, c := range doc.Contacts {
			parts = append(parts, c.Value)
		}
		pdf.SetFont("Helvetica", "", pdfBodySize)
		pdf.CellFormat(contentWidth(pdf), lineHeight, strings.Join(parts, "  |  "), "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)
}

func writeSectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.CellFormat(contentWidth(pdf), 6, strings.ToUpper(title), "B", 1, "L", false, 0, "")
	pdf.Ln(1.5)
}

func writeSummary(pdf *gofpdf.Fpdf, summary string) {
	pdf.SetFont("Helvetica", "", pdfBodySize)
	pdf.MultiCell(contentWidth(pdf), lineHeight, summary, "", "L", false)
}

func writeEntryHead(pdf *gofpdf.Fpdf, left, right string) {
	width := contentWidth(pdf)
	pdf.SetFont("Helvetica", "B", pdfBodySize)
	pdf.CellFormat(width*0.7, lineHeight, left, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", pdfSmallSize)
	pdf.CellFormat(width*0.3, lineHeight, right, "", 1, "R", false, 0, "")
}

func writeSubLine(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "I", pdfBodySize)
	pdf.CellFormat(contentWidth(pdf), lineHeight, text, "", 1, "L", false, 0, "")
}

func writeExperience(pdf *gofpdf.Fpdf, items []view.ExperienceItem) {
	for _, item := range items {
		writeEntryHead(pdf, item.Position, item.DateRange)
		sub := item.Company
		if item.Location != "" {
			sub += " | " + item.Location
		}
		writeSubLine(pdf, sub)

		pdf.SetFont("Helvetica", "", pdfBodySize)
		for _, line := range item.Description {
			pdf.SetX(pdfMargin + 3)
			pdf.MultiCell(contentWidth(pdf)-3, lineHeight, "- "+line, "", "L", false)
		}
		pdf.Ln(1.5)
	}
}

func writeEducation(pdf *gofpdf.Fpdf, items []view.EducationItem) {
	for _, item := range items {
		degree := item.Degree
		if item.Field != "" {
			degree += " in " + item.Field
		}
		writeEntryHead(pdf, degree, item.Status)
		sub := item.Institution
		if item.GPA != "" {
			sub += " | GPA: " + item.GPA
		}
		writeSubLine(pdf, sub)
		pdf.Ln(1.5)
	}
}

// writeSkills lays the flattened skill columns side by side, row by row.
func writeSkills(pdf *gofpdf.Fpdf, columns [][]string) {
	if len(columns) == 0 {
		return
	}

	width := contentWidth(pdf)
	columnWidth := width / float64(len(columns))
	rows := 0
	for _, column := range columns {
		if len(column) > rows {
			rows = len(column)
		}
	}

	pdf.SetFont("Helvetica", "", pdfBodySize)
	for row := 0; row < rows; row++ {
		for _, column := range columns {
			cell := ""
			if row < len(column) {
				cell = "- " + column[row]
			}
			pdf.CellFormat(columnWidth, lineHeight, cell, "", 0, "L", false, 0, "")
		}
		pdf.Ln(lineHeight)
	}
	pdf.Ln(1)
}

func writeProjects(pdf *gofpdf.Fpdf, items []view.ProjectItem) {
	for _, item := range items {
		right := item.DateRange
		if item.GithubURL != "" {
			right = strings.TrimPrefix(item.GithubURL, "https://")
			if item.DateRange != "" {
				right += "  " + item.DateRange
			}
		}
		writeEntryHead(pdf, item.Name, right)
		if len(item.Technologies) > 0 {
			pdf.SetFont("Helvetica", "I", pdfSmallSize)
			pdf.CellFormat(contentWidth(pdf), lineHeight, strings.Join(item.Technologies, ", "), "", 1, "L", false, 0, "")
		}
		pdf.SetFont("Helvetica", "", pdfBodySize)
		pdf.MultiCell(contentWidth(pdf), lineHeight, item.Description, "", "L", false)
		pdf.Ln(1.5)
	}
}

func writeCertifications(pdf *gofpdf.Fpdf, items []view.CertificationItem) {
	for _, item := range items {
		right := item.DateObtained
		if item.ExpiryDate != "" {
			right += " | " + item.ExpiryDate
		}
		writeEntryHead(pdf, item.Name, right)
		sub := item.Issuer
		if item.CredentialID != "" {
			sub += " | " + item.CredentialID
		}
		writeSubLine(pdf, sub)
		pdf.Ln(1.5)
	}
}
