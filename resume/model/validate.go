package model

import (
	"fmt"
	"strings"
	"time"
)

// Span limits for a single entry's date range.
const (
	maxWorkSpanYears      = 50
	maxEducationSpanYears = 15
)

// FieldError ties a validation message to the form field it concerns.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the record for completeness and date sanity. An empty
// result means the record may be saved and rendered.
func (d ResumeData) Validate(now time.Time) []FieldError {
	var errs []FieldError
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	p := d.PersonalInfo
	required := []struct{ field, value, label string }{
		{"personalInfo.firstName", p.FirstName, "first name"},
		{"personalInfo.lastName", p.LastName, "last name"},
		{"personalInfo.email", p.Email, "email"},
		{"personalInfo.phone", p.Phone, "phone"},
		{"personalInfo.street", p.Street, "street address"},
		{"personalInfo.regionCode", p.RegionCode, "region"},
		{"personalInfo.provinceCode", p.ProvinceCode, "province"},
		{"personalInfo.cityCode", p.CityCode, "city"},
		{"personalInfo.barangayCode", p.BarangayCode, "barangay"},
		{"personalInfo.birthday", p.Birthday, "birthday"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			add(r.field, r.label+" is required")
		}
	}
	if strings.TrimSpace(p.Birthday) != "" {
		if _, err := time.Parse("2006-01-02", p.Birthday); err != nil {
			add("personalInfo.birthday", "birthday must be YYYY-MM-DD")
		}
	}

	if !hasCompleteExperience(d.Experience) {
		add("experience", "at least one entry with company and position is required")
	}
	if !hasCompleteEducation(d.Education) {
		add("education", "at least one entry with school and degree is required")
	}
	if !hasNonBlank(d.Skills) {
		add("skills", "at least one skill is required")
	}

	for i, exp := range d.Experience {
		prefix := fmt.Sprintf("experience[%d]", i)
		errs = append(errs, validateRange(prefix, exp.StartDate, exp.EndDate, maxWorkSpanYears, now)...)
	}
	for i, edu := range d.Education {
		prefix := fmt.Sprintf("education[%d]", i)
		errs = append(errs, validateRange(prefix, edu.StartDate, edu.EndDate, maxEducationSpanYears, now)...)
	}

	return errs
}

// validateRange checks one entry's YYYY-MM pair. Empty fields are allowed;
// the sentinel is allowed as an end date and resolves to now for span checks.
func validateRange(prefix, start, end string, maxSpanYears int, now time.Time) []FieldError {
	var errs []FieldError

	var startAt, endAt time.Time
	haveStart, haveEnd := false, false

	if strings.TrimSpace(start) != "" {
		t, err := ParseYearMonth(start)
		if err != nil {
			errs = append(errs, FieldError{prefix + ".startDate", "start date must be YYYY-MM"})
		} else {
			startAt, haveStart = t, true
		}
	}
	switch {
	case strings.TrimSpace(end) == "":
	case IsPresent(end):
		endAt, haveEnd = now, true
	default:
		t, err := ParseYearMonth(end)
		if err != nil {
			errs = append(errs, FieldError{prefix + ".endDate", "end date must be YYYY-MM or present"})
		} else {
			endAt, haveEnd = t, true
		}
	}

	if haveStart && startAt.After(now) {
		errs = append(errs, FieldError{prefix + ".startDate", "start date cannot be in the future"})
	}
	if haveStart && haveEnd {
		if endAt.Before(startAt) {
			errs = append(errs, FieldError{prefix + ".endDate", "end date must not be before start date"})
		} else if endAt.After(startAt.AddDate(maxSpanYears, 0, 0)) {
			errs = append(errs, FieldError{prefix + ".endDate",
				fmt.Sprintf("date range exceeds %d years", maxSpanYears)})
		}
	}
	return errs
}

func hasCompleteExperience(entries []ExperienceEntry) bool {
	for _, e := range entries {
		if strings.TrimSpace(e.Company) != "" && strings.TrimSpace(e.Position) != "" {
			return true
		}
	}
	return false
}

func hasCompleteEducation(entries []EducationEntry) bool {
	for _, e := range entries {
		if strings.TrimSpace(e.Institution) != "" && strings.TrimSpace(e.Degree) != "" {
			return true
		}
	}
	return false
}

func hasNonBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
