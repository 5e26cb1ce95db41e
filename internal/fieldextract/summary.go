package fieldextract

import "strings"

var summaryHeadings = []string{"summary", "objective", "profile", "about", "overview"}

const summaryPlaceholder = "Experienced professional seeking new opportunities."

// ExtractSummary finds a summary-like section and joins its first few prose
// lines. Without a heading it falls back to the first long sentence-like
// line, and finally to a generic placeholder.
func ExtractSummary(text string, lines []string) string {
	for i, line := range lines {
		if !isHeading(line, summaryHeadings) {
			continue
		}
		var collected []string
		for _, next := range lines[i+1:] {
			if len(collected) == 4 {
				break
			}
			if len(next) <= 20 || next == strings.ToUpper(next) {
				break
			}
			collected = append(collected, next)
		}
		if len(collected) > 0 {
			return strings.Join(collected, " ")
		}
		break
	}

	for _, line := range lines {
		if len(line) > 50 && strings.Contains(line, " ") {
			return line
		}
	}
	return summaryPlaceholder
}
