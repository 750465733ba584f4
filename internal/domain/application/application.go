package application

// Application is a candidate's submission for a named posting. It is
// forwarded to the agency inbox and never persisted.
type Application struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	Qualifications string `json:"qualifications"`
	JobTitle       string `json:"jobTitle"`
}
