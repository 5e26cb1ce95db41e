package fieldextract

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Philippine mobile/landline shapes: optional +63 country code or 0 trunk
	// digit, then 3/3/4 digit groups with optional separators.
	phonePattern = regexp.MustCompile(`(\+?63|0)?[\s.-]?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)

	namePattern = regexp.MustCompile(`^[A-Za-z .]+$`)
)

// Known Philippine city and region names used to spot an address line.
var addressGazetteer = []string{
	"metro manila", "quezon city", "manila", "makati", "taguig", "pasig",
	"mandaluyong", "caloocan", "paranaque", "las pinas", "muntinlupa",
	"marikina", "valenzuela", "pasay", "cebu", "davao", "baguio", "iloilo",
	"bacolod", "zamboanga", "cagayan de oro", "general santos", "antipolo",
	"laguna", "cavite", "batangas", "rizal", "bulacan", "pampanga",
	"calabarzon", "ncr", "region iv-a", "region vii", "region xi",
}

// ExtractPersonalInfo pulls name, email, phone, and address from the text.
// Unmatched fields come back as empty strings.
func ExtractPersonalInfo(text string, lines []string) PersonalInfo {
	return PersonalInfo{
		Name:    extractName(lines),
		Email:   emailPattern.FindString(text),
		Phone:   strings.TrimSpace(phonePattern.FindString(text)),
		Address: extractAddress(lines),
	}
}

// extractName scans the first 5 non-blank lines for a short line of letters,
// spaces, and periods; first qualifying line wins.
func extractName(lines []string) string {
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if len(line) < 3 || len(line) > 49 {
			continue
		}
		if strings.Contains(line, "@") {
			continue
		}
		if namePattern.MatchString(line) {
			return line
		}
	}
	return ""
}

// extractAddress matches the gazetteer against each line, case-insensitively,
// and captures from the first hit to the end of that line.
func extractAddress(lines []string) string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		best := -1
		for _, place := range addressGazetteer {
			if idx := strings.Index(lower, place); idx >= 0 && (best < 0 || idx < best) {
				best = idx
			}
		}
		if best >= 0 {
			return strings.TrimSpace(line[best:])
		}
	}
	return ""
}
