// Package render produces the portal's printable resume PDF from a
// ResumeData record. The layout is a deterministic single-column flow: the
// same record always yields the same document.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"peso-backend/resume/model"
)

const (
	pageMarginLeft  = 15.0
	pageMarginTop   = 15.0
	pageMarginRight = 15.0
	bottomLimit     = 282.0

	lineHeight    = 5.0
	sectionBandH  = 7.0
	bulletIndent  = 4.0
	durationWidth = 45.0
)

type layout struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	width float64
	now   time.Time
}

// Render lays the record out on A4 pages and returns the PDF bytes.
// Incomplete sub-entries are silently skipped; validation happens upstream.
func Render(data model.ResumeData) ([]byte, error) {
	return renderAt(data, time.Now())
}

// renderAt is the clock-injected implementation backing Render.
func renderAt(data model.ResumeData, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetMargins(pageMarginLeft, pageMarginTop, pageMarginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	l := &layout{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		width: pageW - pageMarginLeft - pageMarginRight,
		now:   now,
	}

	l.header(data.PersonalInfo)
	if strings.TrimSpace(data.Summary) != "" {
		l.section("Summary")
		l.paragraph(data.Summary)
	}
	if entries := RenderableExperience(data.Experience); len(entries) > 0 {
		l.section("Work Experience")
		for _, e := range entries {
			l.experience(e)
		}
	}
	if entries := RenderableEducation(data.Education); len(entries) > 0 {
		l.section("Education")
		for _, e := range entries {
			l.education(e)
		}
	}
	if skills := nonBlank(data.Skills); len(skills) > 0 {
		l.section("Skills")
		l.paragraph(strings.Join(skills, " • "))
	}
	if certs := nonBlank(data.Certifications); len(certs) > 0 {
		l.section("Certifications")
		for _, cert := range certs {
			l.bullet(cert, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultFileName builds "<First>_<Last>_Resume.pdf" with spaces collapsed
// to underscores, falling back to "Resume.pdf" when both names are blank.
func DefaultFileName(data model.ResumeData) string {
	parts := []string{}
	for _, p := range []string{data.PersonalInfo.FirstName, data.PersonalInfo.LastName} {
		p = strings.Join(strings.Fields(p), "_")
		if p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, "Resume.pdf")
	return strings.Join(parts, "_")
}

// RenderableExperience keeps only entries carrying both company and position.
func RenderableExperience(entries []model.ExperienceEntry) []model.ExperienceEntry {
	var out []model.ExperienceEntry
	for _, e := range entries {
		if strings.TrimSpace(e.Company) != "" && strings.TrimSpace(e.Position) != "" {
			out = append(out, e)
		}
	}
	return out
}

// RenderableEducation keeps only entries carrying both institution and degree.
func RenderableEducation(entries []model.EducationEntry) []model.EducationEntry {
	var out []model.EducationEntry
	for _, e := range entries {
		if strings.TrimSpace(e.Institution) != "" && strings.TrimSpace(e.Degree) != "" {
			out = append(out, e)
		}
	}
	return out
}

func (l *layout) header(p model.PersonalInfo) {
	name := strings.ToUpper(strings.TrimSpace(p.FirstName + " " + p.LastName))
	if name != "" {
		l.pdf.SetFont("Helvetica", "B", 18)
		l.pdf.CellFormat(l.width, 8, l.tr(name), "", 1, "C", false, 0, "")
	}

	l.pdf.SetFont("Helvetica", "", 10)
	if addr := addressLine(p); addr != "" {
		l.pdf.CellFormat(l.width, lineHeight, l.tr(addr), "", 1, "C", false, 0, "")
	}
	if contact := joinParts(" • ", p.Email, p.Phone); contact != "" {
		l.pdf.CellFormat(l.width, lineHeight, l.tr(contact), "", 1, "C", false, 0, "")
	}
	if birth := birthLine(p.Birthday, l.now); birth != "" {
		l.pdf.CellFormat(l.width, lineHeight, l.tr(birth), "", 1, "C", false, 0, "")
	}

	y := l.pdf.GetY() + 2
	l.pdf.SetDrawColor(120, 120, 120)
	l.pdf.Line(pageMarginLeft, y, pageMarginLeft+l.width, y)
	l.pdf.SetY(y + 2)
}

// addressLine prefers names resolved at save time; codes are never printed.
func addressLine(p model.PersonalInfo) string {
	return joinParts(", ", p.Street, p.BarangayName, p.CityName, p.ProvinceName, p.RegionName, p.ZipCode)
}

func birthLine(birthday string, now time.Time) string {
	if strings.TrimSpace(birthday) == "" {
		return ""
	}
	line := "Born " + birthday
	if age := model.Age(birthday, now); age >= 0 {
		line += fmt.Sprintf(" (%d years old)", age)
	}
	return line
}

func (l *layout) section(title string) {
	l.ensureSpace(sectionBandH + 2*lineHeight)
	l.pdf.Ln(3)
	l.pdf.SetFillColor(235, 235, 235)
	l.pdf.SetFont("Helvetica", "B", 11)
	l.pdf.CellFormat(l.width, sectionBandH, l.tr(strings.ToUpper(title)), "", 1, "C", true, 0, "")
	l.pdf.Ln(1)
}

func (l *layout) experience(e model.ExperienceEntry) {
	l.ensureSpace(3 * lineHeight)

	title := joinParts(", ", e.Position, e.Company)
	duration := experienceDuration(e)

	l.pdf.SetFont("Helvetica", "B", 10)
	l.pdf.CellFormat(l.width-durationWidth, lineHeight, l.tr("• "+title), "", 0, "L", false, 0, "")
	l.pdf.SetFont("Helvetica", "", 10)
	l.pdf.CellFormat(durationWidth, lineHeight, l.tr(duration), "", 1, "R", false, 0, "")

	if strings.TrimSpace(e.Location) != "" {
		l.pdf.SetFont("Helvetica", "I", 9)
		l.pdf.CellFormat(l.width, lineHeight, l.tr(e.Location), "", 1, "R", false, 0, "")
	}

	l.pdf.SetFont("Helvetica", "", 10)
	for _, sentence := range splitSentences(e.Description) {
		l.bullet(sentence, strings.Repeat(" ", 2))
	}
	l.pdf.Ln(1)
}

func (l *layout) education(e model.EducationEntry) {
	l.ensureSpace(2 * lineHeight)

	l.pdf.SetFont("Helvetica", "B", 10)
	l.pdf.CellFormat(l.width-durationWidth, lineHeight, l.tr(e.Degree), "", 0, "L", false, 0, "")
	l.pdf.SetFont("Helvetica", "", 10)
	l.pdf.CellFormat(durationWidth, lineHeight, l.tr(educationYears(e)), "", 1, "R", false, 0, "")

	l.pdf.CellFormat(l.width-durationWidth, lineHeight, l.tr(e.Institution), "", 0, "L", false, 0, "")
	l.pdf.SetFont("Helvetica", "I", 9)
	l.pdf.CellFormat(durationWidth, lineHeight, l.tr(e.Location), "", 1, "R", false, 0, "")
	l.pdf.Ln(1)
}

func (l *layout) paragraph(text string) {
	l.ensureSpace(lineHeight)
	l.pdf.SetFont("Helvetica", "", 10)
	l.pdf.MultiCell(l.width, lineHeight, l.tr(text), "", "L", false)
}

func (l *layout) bullet(text, indent string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	l.ensureSpace(lineHeight)
	l.pdf.SetFont("Helvetica", "", 10)
	l.pdf.SetX(pageMarginLeft + bulletIndent)
	l.pdf.MultiCell(l.width-bulletIndent, lineHeight, l.tr(indent+"- "+text), "", "L", false)
}

func (l *layout) ensureSpace(h float64) {
	if l.pdf.GetY()+h > bottomLimit {
		l.pdf.AddPage()
		l.pdf.SetY(pageMarginTop)
	}
}

// experienceDuration prefers structured dates and falls back to the free-text
// duration parsed from the source document.
func experienceDuration(e model.ExperienceEntry) string {
	if strings.TrimSpace(e.StartDate) != "" {
		return formatRange(e.StartDate, e.EndDate)
	}
	return strings.TrimSpace(e.Duration)
}

// educationYears renders structured dates at year granularity, falling back
// to the free-text year parsed from the source document.
func educationYears(e model.EducationEntry) string {
	if strings.TrimSpace(e.StartDate) != "" {
		from := formatYear(e.StartDate)
		if strings.TrimSpace(e.EndDate) == "" {
			return from
		}
		return from + " — " + formatYear(e.EndDate)
	}
	return strings.TrimSpace(e.Year)
}

// formatYear renders a YYYY-MM value as its year. The ongoing sentinel
// renders as "Present"; anything unparseable passes through.
func formatYear(value string) string {
	if model.IsPresent(value) {
		return "Present"
	}
	t, err := model.ParseYearMonth(value)
	if err != nil {
		return value
	}
	return strconv.Itoa(t.Year())
}

func formatRange(start, end string) string {
	from := model.FormatMonthYear(start)
	if strings.TrimSpace(end) == "" {
		return from
	}
	return from + " — " + model.FormatMonthYear(end)
}

// splitSentences breaks a description into bullet-sized pieces on newlines
// and sentence-ending punctuation.
func splitSentences(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		rest := strings.TrimSpace(line)
		for rest != "" {
			idx := strings.IndexAny(rest, ".!?")
			if idx < 0 {
				out = append(out, rest)
				break
			}
			if piece := strings.TrimSpace(rest[:idx+1]); piece != "." && piece != "" {
				out = append(out, piece)
			}
			rest = strings.TrimSpace(rest[idx+1:])
		}
	}
	return out
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func joinParts(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, sep)
}
