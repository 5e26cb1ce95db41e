package render

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"peso-backend/resume/model"
)

func sampleData() model.ResumeData {
	return model.ResumeData{
		PersonalInfo: model.PersonalInfo{
			FirstName:    "John",
			LastName:     "Dela Cruz",
			Email:        "john@example.com",
			Phone:        "0917-123-4567",
			Street:       "123 Rizal St",
			BarangayName: "Commonwealth",
			CityName:     "Quezon City",
			RegionName:   "National Capital Region (NCR)",
			ZipCode:      "1121",
			Birthday:     "1995-03-20",
		},
		Summary: "Software developer with five years of experience.",
		Experience: []model.ExperienceEntry{
			{Company: "Acme Corporation", Position: "Developer", StartDate: "2019-01", EndDate: "present",
				Description: "Built internal tools. Led a small team."},
		},
		Education: []model.EducationEntry{
			{Institution: "University of the Philippines", Degree: "BS Computer Science", StartDate: "2013-06", EndDate: "2017-04"},
		},
		Skills:         []string{"JavaScript", "Python", "Docker"},
		Certifications: []string{"AWS Certified"},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	payload, err := Render(sampleData())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(payload, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF: %q", payload[:8])
	}
	if len(payload) < 1000 {
		t.Fatalf("suspiciously small document: %d bytes", len(payload))
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	a, err := renderAt(sampleData(), now)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := renderAt(sampleData(), now)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same record rendered to different bytes")
	}
}

func TestRenderSkipsIncompleteEntries(t *testing.T) {
	data := sampleData()
	data.Experience = append(data.Experience, model.ExperienceEntry{Company: "No Position Inc"})

	kept := RenderableExperience(data.Experience)
	if len(kept) != 1 || kept[0].Company != "Acme Corporation" {
		t.Errorf("renderable = %+v", kept)
	}

	if _, err := Render(data); err != nil {
		t.Fatalf("incomplete entry must not fail the render: %v", err)
	}
}

func TestRenderableEducation(t *testing.T) {
	entries := []model.EducationEntry{
		{Institution: "UP", Degree: "BS CS"},
		{Institution: "no degree"},
		{Degree: "no school"},
	}
	kept := RenderableEducation(entries)
	if len(kept) != 1 || kept[0].Institution != "UP" {
		t.Errorf("renderable = %+v", kept)
	}
}

func TestDefaultFileName(t *testing.T) {
	tests := []struct {
		first, last string
		want        string
	}{
		{"John", "Dela Cruz", "John_Dela_Cruz_Resume.pdf"},
		{"Maria", "", "Maria_Resume.pdf"},
		{"", "", "Resume.pdf"},
	}
	for _, tt := range tests {
		data := model.ResumeData{PersonalInfo: model.PersonalInfo{FirstName: tt.first, LastName: tt.last}}
		if got := DefaultFileName(data); got != tt.want {
			t.Errorf("DefaultFileName(%q,%q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestRenderToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := RenderToFile(sampleData(), dir)
	if err != nil {
		t.Fatalf("RenderToFile: %v", err)
	}
	if filepath.Base(path) != "John_Dela_Cruz_Resume.pdf" {
		t.Errorf("path = %q", path)
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.HasPrefix(payload, []byte("%PDF")) {
		t.Error("written file is not a PDF")
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("Built tools. Led a team!\nShipped weekly")
	want := []string{"Built tools.", "Led a team!", "Shipped weekly"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitSentences = %v, want %v", got, want)
	}
}

func TestEducationYearsUsesYearGranularity(t *testing.T) {
	e := model.EducationEntry{StartDate: "2015-06", EndDate: "2019-04"}
	if got := educationYears(e); got != "2015 — 2019" {
		t.Errorf("years = %q, want year-only range", got)
	}
	e = model.EducationEntry{StartDate: "2022-08", EndDate: "present"}
	if got := educationYears(e); got != "2022 — Present" {
		t.Errorf("years = %q", got)
	}
	e = model.EducationEntry{StartDate: "2020-01"}
	if got := educationYears(e); got != "2020" {
		t.Errorf("years = %q", got)
	}
	e = model.EducationEntry{Year: "2017"}
	if got := educationYears(e); got != "2017" {
		t.Errorf("years = %q", got)
	}
}

func TestExperienceDurationFallsBackToFreeText(t *testing.T) {
	e := model.ExperienceEntry{Duration: "2019 - Present"}
	if got := experienceDuration(e); got != "2019 - Present" {
		t.Errorf("duration = %q", got)
	}
	e = model.ExperienceEntry{StartDate: "2019-01", EndDate: "2021-06", Duration: "ignored"}
	if got := experienceDuration(e); got != "Jan 2019 — Jun 2021" {
		t.Errorf("duration = %q", got)
	}
}
