// Package export renders patient, record, invoice and summary documents as
// PDF files.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	HospitalName    = "MediCare Hospital Management System"
	HospitalAddress = "123 Healthcare Ave, Medical City, MC 12345"
	HospitalContact = "Phone: (555) 123-4567 | Email: billing@medicare.com"

	notProvided = "Not provided"
	textWidth   = 170.0
	leftMargin  = 20.0
)

// Generator builds documents stamped with the time returned by Now.
type Generator struct {
	Now      func() time.Time
	Compress bool
}

func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{Now: now, Compress: true}
}

type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (g *Generator) newDocument(title string) *document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(g.Compress)
	pdf.SetCreationDate(g.Now())
	pdf.SetTitle(title, true)
	pdf.SetCreator(HospitalName, true)
	pdf.SetMargins(leftMargin, 20, leftMargin)
	pdf.AddPage()

	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(41, 128, 185)
	pdf.CellFormat(0, 12, d.tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(0, 0, 0)
	d.text(HospitalName)
	return d
}

func (g *Generator) generated(d *document) {
	d.text(fmt.Sprintf("Generated: %s", g.Now().Format("1/2/2006, 3:04:05 PM")))
}

func (d *document) section(name string) {
	d.pdf.Ln(6)
	d.pdf.SetFont("Arial", "B", 16)
	d.pdf.SetTextColor(41, 128, 185)
	d.pdf.CellFormat(0, 10, d.tr(name), "", 1, "L", false, 0, "")
	d.pdf.SetFont("Arial", "", 12)
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *document) text(s string) {
	d.pdf.CellFormat(0, 8, d.tr(s), "", 1, "L", false, 0, "")
}

func (d *document) field(label, value string) {
	d.text(label + ": " + value)
}

// paragraph wraps free text to the page width.
func (d *document) paragraph(s string) {
	d.pdf.MultiCell(textWidth, 6, d.tr(s), "", "L", false)
}

func (d *document) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return notProvided
	}
	return s
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
