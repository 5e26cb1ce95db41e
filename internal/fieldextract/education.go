package fieldextract

import (
	"regexp"
	"strings"
)

var (
	educationHeadings    = []string{"education", "academic", "university", "college", "degree"}
	educationTerminators = []string{"experience", "skills"}

	// Short degree abbreviations need word boundaries so "bs" does not fire
	// inside ordinary words.
	degreeAbbrevPattern = regexp.MustCompile(`(?i)\b(bs|ms|ba|ma|phd|mba)\b`)
)

var degreeKeywords = []string{
	"bachelor", "master", "doctor", "associate", "diploma", "certificate",
	"b.s.", "m.s.", "b.a.", "m.a.", "ph.d",
}

var institutionKeywords = []string{"university", "college", "institute"}

func placeholderEducation() []EducationEntry {
	return []EducationEntry{{
		Institution: "Educational Institution",
		Degree:      "Degree or Course",
		Year:        "2020",
	}}
}

// ExtractEducation locates the education section and builds an entry per
// degree-bearing or institution-bearing line. A degree line followed by the
// school on its own line is folded into one entry; unmatched parts default to
// generic labels.
func ExtractEducation(lines []string) []EducationEntry {
	start := -1
	for i, line := range lines {
		if isHeading(line, educationHeadings) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return placeholderEducation()
	}

	var entries []EducationEntry
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if isHeading(line, educationTerminators) {
			break
		}
		isDegree := looksLikeDegree(line)
		isInstitution := containsAny(line, institutionKeywords)
		if !isDegree && !isInstitution {
			continue
		}
		entry := EducationEntry{
			Institution: "Educational Institution",
			Degree:      "Degree or Course",
			Year:        "2020",
		}
		if isDegree {
			entry.Degree = line
		}
		if isInstitution {
			entry.Institution = line
		}
		yearSource := line
		if isDegree && !isInstitution && i+1 < len(lines) {
			next := lines[i+1]
			if len(next) < 100 && !looksLikeDegree(next) && containsAny(next, institutionKeywords) {
				entry.Institution = next
				yearSource = next
				i++
			}
		}
		if year := yearPattern.FindString(yearSource); year != "" {
			entry.Year = year
		} else if i+1 < len(lines) {
			if year := yearPattern.FindString(lines[i+1]); year != "" && len(lines[i+1]) < 60 {
				entry.Year = year
			}
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return placeholderEducation()
	}
	return entries
}

func looksLikeDegree(line string) bool {
	if len(line) < 5 || len(line) > 99 {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range degreeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return degreeAbbrevPattern.MatchString(line)
}
