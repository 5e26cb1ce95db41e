package fieldextract

import (
	"strings"
	"testing"
)

func TestExtractSummaryJoinsSectionLines(t *testing.T) {
	text := "OBJECTIVE\n" +
		"Seasoned accountant with a decade of audit work.\n" +
		"Focused on compliance reporting for mid-size firms.\n" +
		"SHOUTING LINE THAT ENDS THE SECTION EARLY\n" +
		"this line is never reached by the collector at all"
	got := ExtractSummary(text, Lines(text))
	want := "Seasoned accountant with a decade of audit work. Focused on compliance reporting for mid-size firms."
	if got != want {
		t.Errorf("summary = %q", got)
	}
}

func TestExtractSummaryCapsAtFourLines(t *testing.T) {
	lines := []string{"PROFILE"}
	for i := 0; i < 6; i++ {
		lines = append(lines, "a reasonably long prose sentence number whatever")
	}
	got := ExtractSummary(strings.Join(lines, "\n"), lines)
	if n := strings.Count(got, "sentence"); n != 4 {
		t.Errorf("collected %d lines, want 4", n)
	}
}

func TestExtractSummaryFallsBackToLongLine(t *testing.T) {
	text := "short\nA long descriptive opening line about a career in logistics management."
	got := ExtractSummary(text, Lines(text))
	if !strings.HasPrefix(got, "A long descriptive") {
		t.Errorf("summary = %q", got)
	}
}

func TestExtractExperienceMultipleEntries(t *testing.T) {
	text := `WORK HISTORY
Globe Telecom
2018 - 2021
Ayala Land Incorporated
June 2021 to present
EDUCATION
irrelevant`
	entries := ExtractExperience(Lines(text))
	if len(entries) != 2 {
		t.Fatalf("entries = %d: %+v", len(entries), entries)
	}
	if entries[0].Company != "Globe Telecom" || entries[0].Duration != "2018 - 2021" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].Company != "Ayala Land Incorporated" {
		t.Errorf("second entry = %+v", entries[1])
	}
}

func TestExtractExperienceKeepsEntryLineWithTrailingYear(t *testing.T) {
	text := `EXPERIENCE
Senior Clerk, City Hall 2019
EDUCATION`
	entries := ExtractExperience(Lines(text))
	if len(entries) != 1 {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Company != "Senior Clerk, City Hall 2019" {
		t.Errorf("entry = %+v", entries[0])
	}
}

func TestLooksLikeDateRange(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"2018 - 2021", true},
		{"June 2021 to present", true},
		{"Manila Office 2019 - 2022", true},
		{"Senior Clerk, City Hall 2019", false},
		{"Logistics Coordinator", false},
	}
	for _, tt := range tests {
		if got := looksLikeDateRange(tt.line); got != tt.want {
			t.Errorf("looksLikeDateRange(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestExtractExperiencePlaceholderWhenSectionMissing(t *testing.T) {
	entries := ExtractExperience(Lines("just a summary\nnothing else"))
	if len(entries) != 1 || entries[0].Company != "Company Name" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestExtractExperiencePlaceholderWhenSectionEmpty(t *testing.T) {
	entries := ExtractExperience(Lines("EXPERIENCE\nEDUCATION\nsomething"))
	if len(entries) != 1 || entries[0].Position != "Position Title" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestExtractEducationDegreeAndYear(t *testing.T) {
	text := `EDUCATION
Bachelor of Science in Accountancy
Far Eastern University, 2015
SKILLS`
	entries := ExtractEducation(Lines(text))
	if len(entries) != 1 {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Degree != "Bachelor of Science in Accountancy" {
		t.Errorf("degree = %q", entries[0].Degree)
	}
	if entries[0].Year != "2015" {
		t.Errorf("year = %q", entries[0].Year)
	}
}

func TestExtractEducationUniversityLineAsInstitution(t *testing.T) {
	text := "EDUCATION\nUniversity of Santo Tomas BS Nursing 2012"
	entries := ExtractEducation(Lines(text))
	if len(entries) != 1 {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Institution != "University of Santo Tomas BS Nursing 2012" {
		t.Errorf("institution = %q", entries[0].Institution)
	}
	if entries[0].Year != "2012" {
		t.Errorf("year = %q", entries[0].Year)
	}
}

func TestExtractEducationInstitutionOnlyLine(t *testing.T) {
	text := "EDUCATION\nUniversity of Santo Tomas, 2015\nSKILLS"
	entries := ExtractEducation(Lines(text))
	if len(entries) != 1 {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Institution != "University of Santo Tomas, 2015" {
		t.Errorf("institution = %q", entries[0].Institution)
	}
	if entries[0].Degree != "Degree or Course" {
		t.Errorf("degree = %q", entries[0].Degree)
	}
	if entries[0].Year != "2015" {
		t.Errorf("year = %q", entries[0].Year)
	}
}

func TestExtractEducationFoldsInstitutionIntoDegreeEntry(t *testing.T) {
	text := `EDUCATION
Bachelor of Science in Nursing
Cebu Normal University, 2018
Associate in Computer Technology
SKILLS`
	entries := ExtractEducation(Lines(text))
	if len(entries) != 2 {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Degree != "Bachelor of Science in Nursing" || entries[0].Institution != "Cebu Normal University, 2018" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[0].Year != "2018" {
		t.Errorf("year = %q", entries[0].Year)
	}
	if entries[1].Degree != "Associate in Computer Technology" {
		t.Errorf("second entry = %+v", entries[1])
	}
}

func TestExtractEducationAbbrevNeedsWordBoundary(t *testing.T) {
	if looksLikeDegree("Absolutely nothing about school") {
		t.Error("substring abbreviation should not qualify")
	}
	if !looksLikeDegree("MBA, Ateneo Graduate School") {
		t.Error("MBA with boundary should qualify")
	}
}

func TestExtractSkillsMergesReferenceAndSection(t *testing.T) {
	text := `mentions Python in prose
SKILLS
Forklift Operation • Inventory Audit | Welding`
	skills := ExtractSkills(text, Lines(text))
	for _, want := range []string{"Python", "Forklift Operation", "Inventory Audit", "Welding"} {
		if !containsString(skills, want) {
			t.Errorf("missing %q in %v", want, skills)
		}
	}
}

func TestExtractSkillsSplitsOnHyphen(t *testing.T) {
	text := "SKILLS\nCarpentry - Masonry - Plumbing"
	skills := ExtractSkills(text, Lines(text))
	for _, want := range []string{"Carpentry", "Masonry", "Plumbing"} {
		if !containsString(skills, want) {
			t.Errorf("missing %q in %v", want, skills)
		}
	}
}

func TestExtractSkillsDedupesCaseInsensitively(t *testing.T) {
	text := "docker docker\nSKILLS\nDocker, docker"
	skills := ExtractSkills(text, Lines(text))
	count := 0
	for _, s := range skills {
		if strings.EqualFold(s, "docker") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("docker appears %d times in %v", count, skills)
	}
}

func TestExtractSkillsCap(t *testing.T) {
	var parts []string
	for i := 0; i < 30; i++ {
		parts = append(parts, "Skill"+strings.Repeat("x", i+1))
	}
	text := "SKILLS\n" + strings.Join(parts, ", ")
	skills := ExtractSkills(text, Lines(text))
	if len(skills) > MaxSkills {
		t.Errorf("len = %d, cap is %d", len(skills), MaxSkills)
	}
}

func TestExtractCertificationsTriggerLineAndList(t *testing.T) {
	text := `Certified Public Accountant since 2016
CERTIFICATIONS
Board Licensure Examination Passer
SKILLS`
	certs := ExtractCertifications(text, Lines(text))
	if !containsString(certs, "Certified Public Accountant since 2016") {
		t.Errorf("missing trigger line in %v", certs)
	}
	if !containsString(certs, "Board Licensure Examination Passer") {
		t.Errorf("missing list item in %v", certs)
	}
}

func TestExtractCertificationsProviders(t *testing.T) {
	text := "holder of AWS Certified Solutions Architect and six sigma green belt"
	certs := ExtractCertifications(text, Lines(text))
	if !containsString(certs, "Six Sigma") {
		t.Errorf("missing provider in %v", certs)
	}
}

func TestExtractCertificationsCap(t *testing.T) {
	lines := []string{"CERTIFICATIONS"}
	for i := 0; i < 15; i++ {
		lines = append(lines, "Training Certificate Number "+strings.Repeat("I", i+1))
	}
	certs := ExtractCertifications(strings.Join(lines, "\n"), lines)
	if len(certs) > MaxCertifications {
		t.Errorf("len = %d, cap is %d", len(certs), MaxCertifications)
	}
}
