package model

import (
	"strings"

	"peso-backend/internal/fieldextract"
)

// FromParsed lifts a heuristic parse into the canonical record so the form
// can prefill. Names are split on the last space; parsed durations stay as
// free text until the user supplies real dates.
func FromParsed(p fieldextract.ParsedResume) ResumeData {
	first, last := splitName(p.PersonalInfo.Name)

	data := ResumeData{
		PersonalInfo: PersonalInfo{
			FirstName: first,
			LastName:  last,
			Email:     p.PersonalInfo.Email,
			Phone:     p.PersonalInfo.Phone,
			Street:    p.PersonalInfo.Address,
		},
		Summary:        p.Summary,
		Skills:         append([]string{}, p.Skills...),
		Certifications: append([]string{}, p.Certifications...),
	}

	for _, exp := range p.Experience {
		data.Experience = append(data.Experience, ExperienceEntry{
			Company:     exp.Company,
			Position:    exp.Position,
			Duration:    exp.Duration,
			Description: exp.Description,
		})
	}
	for _, edu := range p.Education {
		data.Education = append(data.Education, EducationEntry{
			Institution: edu.Institution,
			Degree:      edu.Degree,
			Year:        edu.Year,
		})
	}
	return data
}

func splitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	idx := strings.LastIndex(full, " ")
	if idx < 0 {
		return full, ""
	}
	return strings.TrimSpace(full[:idx]), strings.TrimSpace(full[idx+1:])
}
