// Package model defines the canonical resume record shared by the parsing,
// editing, rendering, and persistence layers.
package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// PresentSentinel marks an ongoing entry in an end-date field.
const PresentSentinel = "present"

var yearMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ResumeData is the canonical resume payload.
type ResumeData struct {
	PersonalInfo   PersonalInfo      `json:"personalInfo"`
	Summary        string            `json:"summary"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Certifications []string          `json:"certifications"`
}

// PersonalInfo captures identity, contact, and address details. Location
// fields carry both the selected code and its resolved display name so a
// saved record renders without a reference lookup.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Street       string `json:"street"`
	RegionCode   string `json:"regionCode"`
	RegionName   string `json:"regionName"`
	ProvinceCode string `json:"provinceCode"`
	ProvinceName string `json:"provinceName"`
	CityCode     string `json:"cityCode"`
	CityName     string `json:"cityName"`
	BarangayCode string `json:"barangayCode"`
	BarangayName string `json:"barangayName"`
	ZipCode      string `json:"zipCode"`

	Birthday string `json:"birthday"`
	Photo    string `json:"photo,omitempty"`
}

// ExperienceEntry is a work-history entry. StartDate and EndDate use YYYY-MM;
// EndDate may be the present sentinel. Duration keeps free text captured by
// parsing for entries the user has not dated yet.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description"`
}

// EducationEntry is an education entry; same date conventions as experience.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Year        string `json:"year,omitempty"`
}

// ParseYearMonth parses a YYYY-MM date field.
func ParseYearMonth(value string) (time.Time, error) {
	if !yearMonthPattern.MatchString(value) {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM date", value)
	}
	return time.Parse("2006-01", value)
}

// IsPresent reports whether an end-date field holds the ongoing sentinel.
func IsPresent(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), PresentSentinel)
}

// FormatMonthYear renders a YYYY-MM value as "Jan 2006" for display.
// The sentinel renders as "Present"; anything unparseable passes through.
func FormatMonthYear(value string) string {
	if IsPresent(value) {
		return "Present"
	}
	t, err := ParseYearMonth(value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2006")
}

// Age computes completed years from a YYYY-MM-DD birthday; -1 when the
// birthday is absent or malformed.
func Age(birthday string, now time.Time) int {
	born, err := time.Parse("2006-01-02", birthday)
	if err != nil {
		return -1
	}
	years := now.Year() - born.Year()
	if now.YearDay() < born.YearDay() {
		years--
	}
	if years < 0 {
		return -1
	}
	return years
}
