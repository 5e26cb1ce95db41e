package main

// Renders a sample resume PDF for manual layout inspection:
//   go run ./cmd/renderdemo [output-dir]

import (
	"log"
	"os"

	"peso-backend/resume/model"
	"peso-backend/resume/render"
)

func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	data := model.ResumeData{
		PersonalInfo: model.PersonalInfo{
			FirstName:    "Maria",
			LastName:     "Santos",
			Email:        "maria.santos@example.com",
			Phone:        "0917-123-4567",
			Street:       "123 Mabini Street",
			RegionName:   "NCR",
			ProvinceName: "Metro Manila",
			CityName:     "Quezon City",
			BarangayName: "Commonwealth",
			ZipCode:      "1121",
			Birthday:     "1995-03-21",
		},
		Summary: "Registered nurse with six years of experience in emergency and outpatient care. Focused on patient education and triage process improvement.",
		Experience: []model.ExperienceEntry{
			{
				Company:     "City General Hospital",
				Position:    "Staff Nurse",
				Location:    "Quezon City",
				StartDate:   "2020-02",
				EndDate:     "present",
				Description: "Handled triage for a 40-bed emergency ward. Trained twelve junior nurses on charting standards.",
			},
			{
				Company:     "St. Martin Clinic",
				Position:    "Clinic Nurse",
				Location:    "Makati",
				StartDate:   "2018-06",
				EndDate:     "2020-01",
				Description: "Managed outpatient scheduling and immunization drives.",
			},
		},
		Education: []model.EducationEntry{
			{
				Institution: "University of Santo Tomas",
				Degree:      "BS Nursing",
				Location:    "Manila",
				StartDate:   "2012-06",
				EndDate:     "2016-04",
				Year:        "2016",
			},
		},
		Skills:         []string{"Patient Care", "Triage", "IV Therapy", "Medical Charting", "First Aid"},
		Certifications: []string{"Philippine Nurse Licensure", "Basic Life Support Certification"},
	}

	path, err := render.RenderToFile(data, dir)
	if err != nil {
		log.Fatalf("render error: %v", err)
	}
	log.Printf("wrote %s", path)
}
