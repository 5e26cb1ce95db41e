// Package fieldextract derives a structured resume record from raw resume
// text using keyword and pattern heuristics. Every extractor is pure and
// best-effort: "not found" yields the field's designated empty value, never
// an error.
package fieldextract

import "strings"

// Caps on the merged match lists.
const (
	MaxSkills         = 20
	MaxCertifications = 10
)

// ParsedResume is the structured record produced from raw resume text.
// No field is ever nil; absent data is an empty string or empty slice.
type ParsedResume struct {
	PersonalInfo   PersonalInfo      `json:"personalInfo"`
	Summary        string            `json:"summary"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Certifications []string          `json:"certifications"`
}

// PersonalInfo holds contact details found near the top of the document.
type PersonalInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ExperienceEntry is a work-history entry in source-text order.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry is an education entry in source-text order.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

// Parse runs every field extractor over the text and assembles the record.
// The returned record always has the full shape: experience and education
// fall back to a single placeholder entry when nothing was detected.
func Parse(text string) ParsedResume {
	lines := Lines(text)
	return ParsedResume{
		PersonalInfo:   ExtractPersonalInfo(text, lines),
		Summary:        ExtractSummary(text, lines),
		Experience:     ExtractExperience(lines),
		Education:      ExtractEducation(lines),
		Skills:         ExtractSkills(text, lines),
		Certifications: ExtractCertifications(text, lines),
	}
}

// Lines splits text into trimmed, non-blank lines.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsAny(line string, terms []string) bool {
	lower := strings.ToLower(line)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// isHeading reports whether a line reads as a section heading for any of the
// given terms: short and containing a term, rather than flowing prose.
func isHeading(line string, terms []string) bool {
	return len(line) < 50 && containsAny(line, terms)
}
