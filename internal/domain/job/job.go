package job

import (
	"time"

	"euroasia/internal/common"
)

type Type string

const (
	TypeFullTime Type = "Full-time"
	TypePartTime Type = "Part-time"
	TypeContract Type = "Contract"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderAny    Gender = "Any"
)

// Job is a single recruitment posting. ID is assigned by the store on
// creation and never changes; CreatedAt is set once.
type Job struct {
	ID              common.UUID `json:"id"`
	Title           string      `json:"title"`
	Location        string      `json:"location"`
	Type            Type        `json:"type"`
	Salary          string      `json:"salary"`
	Category        string      `json:"category"`
	Requirements    []string    `json:"requirements"`
	Deadline        time.Time   `json:"deadline"`
	Vacancy         int         `json:"vacancy"`
	PreferredGender Gender      `json:"preferredGender"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func ValidType(t Type) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract:
		return true
	}
	return false
}

func ValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderAny:
		return true
	}
	return false
}
