package fieldextract

import "strings"

var certTriggers = []string{"certification", "certificate", "certified", "license", "credential"}

var certTerminators = []string{"experience", "education", "skills"}

// Well-known certification providers matched against the whole document.
var certProviders = []string{
	"AWS Certified", "PMP", "Cisco Certified", "CompTIA",
	"Microsoft Certified", "Google Cloud Certified", "Scrum Master",
	"Six Sigma", "ITIL",
}

// ExtractCertifications collects certification mentions: prose lines carrying
// a trigger term, list items under a certifications heading, and known
// provider names found anywhere in the document. Deduped and capped.
func ExtractCertifications(text string, lines []string) []string {
	var found []string

	for i, line := range lines {
		if !containsAny(line, certTriggers) {
			continue
		}
		if !isBareCertHeading(line) {
			if len(line) >= 5 && len(line) < 100 {
				found = append(found, line)
			}
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			next := lines[j]
			if isHeading(next, certTerminators) {
				break
			}
			if isBareCertHeading(next) {
				continue
			}
			if len(next) >= 5 && len(next) < 100 {
				found = append(found, next)
			}
		}
	}

	lower := strings.ToLower(text)
	for _, provider := range certProviders {
		if strings.Contains(lower, strings.ToLower(provider)) {
			found = append(found, provider)
		}
	}

	out := dedupeCappedFold(found, MaxCertifications)
	if out == nil {
		out = []string{}
	}
	return out
}

// isBareCertHeading separates section titles like "CERTIFICATIONS" from prose
// mentions like "Certified Public Accountant since 2016".
func isBareCertHeading(line string) bool {
	return len(line) < 30 && len(strings.Fields(line)) <= 2 && containsAny(line, certTriggers)
}
