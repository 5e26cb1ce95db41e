package fieldextract

import "strings"

var skillsHeadings = []string{"skills", "technologies", "competencies", "technical"}

// referenceSkills is matched against the whole document, case-insensitively.
// Very short names like "R" or "C" are left out: as substrings they match
// almost any text, so only their unambiguous spellings appear here.
var referenceSkills = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Golang", "Ruby", "Rust",
	"Kotlin", "Swift", "Scala", "C++", "C#", "PHP", "Perl", "MATLAB",
	"HTML", "CSS", "Sass", "React", "Angular", "Vue", "Svelte", "Next.js",
	"Node.js", "Express", "Django", "Flask", "Laravel", "Spring",
	"Rails", ".NET", "GraphQL", "REST",
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "SQLite",
	"Elasticsearch", "Cassandra", "DynamoDB",
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform",
	"Ansible", "Jenkins", "GitLab", "GitHub", "Linux", "Nginx", "Apache",
	"Git", "Jira", "Agile", "Scrum", "Kanban", "CI/CD", "DevOps",
	"Machine Learning", "Data Analysis", "Data Science", "TensorFlow",
	"Pandas", "NumPy", "Tableau", "Power BI", "Excel",
	"Project Management", "Leadership", "Communication", "Teamwork",
	"Problem Solving", "Customer Service", "Microsoft Office",
	"Photoshop", "Illustrator", "Figma", "AutoCAD",
	"Accounting", "Bookkeeping", "Payroll", "Sales", "Marketing", "SEO",
}

var skillSeparators = func() *strings.Replacer {
	return strings.NewReplacer("•", ",", "·", ",", "|", ",", "-", ",", ";", ",")
}()

// ExtractSkills merges two passes: reference names found anywhere in the
// document, then tokens listed under a skills-like heading. First occurrence
// wins and the merged list is capped.
func ExtractSkills(text string, lines []string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, skill := range referenceSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	found = append(found, skillsSectionTokens(lines)...)

	out := dedupeCappedFold(found, MaxSkills)
	if out == nil {
		out = []string{}
	}
	return out
}

// skillsSectionTokens splits the lines under a skills heading on common list
// separators and keeps the plausible tokens.
func skillsSectionTokens(lines []string) []string {
	start := -1
	for i, line := range lines {
		if isHeading(line, skillsHeadings) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var tokens []string
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if isHeading(line, experienceHeadings) || isHeading(line, educationHeadings) {
			break
		}
		for _, tok := range strings.Split(skillSeparators.Replace(line), ",") {
			tok = strings.TrimSpace(tok)
			if len(tok) > 1 && len(tok) < 40 {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}

// dedupeCappedFold dedupes case-insensitively, preserving the casing of the
// first occurrence.
func dedupeCappedFold(values []string, limit int) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}
