package fieldextract

import (
	"regexp"
	"strings"
)

var (
	experienceHeadings    = []string{"experience", "employment", "work history", "career"}
	experienceTerminators = []string{"education", "skills"}

	titleCasePattern = regexp.MustCompile(`[A-Z][a-z]`)
	yearPattern      = regexp.MustCompile(`(19|20)\d{2}`)
)

// placeholderExperience keeps downstream consumers from dealing with an
// empty work history.
func placeholderExperience() []ExperienceEntry {
	return []ExperienceEntry{{
		Company:     "Company Name",
		Position:    "Position Title",
		Duration:    "2020 - Present",
		Description: "Add details about your role and achievements.",
	}}
}

// ExtractExperience locates the work-history section and builds one entry
// per company-or-title line found inside it. A duration is picked up from the
// couple of lines right after each entry line when one mentions a year or a
// date range.
func ExtractExperience(lines []string) []ExperienceEntry {
	start := -1
	for i, line := range lines {
		if isHeading(line, experienceHeadings) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return placeholderExperience()
	}

	var entries []ExperienceEntry
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if isHeading(line, experienceTerminators) {
			break
		}
		if !looksLikeEntryLine(line) {
			continue
		}
		entry := ExperienceEntry{Company: line, Position: line}
		for j := i + 1; j <= i+2 && j < len(lines); j++ {
			if looksLikeDuration(lines[j]) {
				entry.Duration = lines[j]
				break
			}
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return placeholderExperience()
	}
	return entries
}

// looksLikeEntryLine accepts mid-length title-cased lines and rejects contact
// lines carrying an email and date-range lines. A trailing year on an entry
// line ("Senior Clerk, City Hall 2019") does not disqualify it.
func looksLikeEntryLine(line string) bool {
	if len(line) < 10 || len(line) > 99 {
		return false
	}
	if !titleCasePattern.MatchString(line) || looksLikeDateRange(line) {
		return false
	}
	for _, r := range line {
		if r == '@' {
			return false
		}
	}
	return true
}

// looksLikeDateRange matches duration-shaped lines: leading year, year
// followed by a dash, or a "present" marker.
func looksLikeDateRange(line string) bool {
	if containsAny(line, []string{"present"}) {
		return true
	}
	loc := yearPattern.FindStringIndex(line)
	if loc == nil {
		return false
	}
	if strings.TrimSpace(line[:loc[0]]) == "" {
		return true
	}
	rest := strings.TrimSpace(line[loc[1]:])
	return strings.HasPrefix(rest, "-") || strings.HasPrefix(rest, "–")
}

func looksLikeDuration(line string) bool {
	if len(line) > 60 {
		return false
	}
	return yearPattern.MatchString(line) || containsAny(line, []string{"-", "present"})
}
