package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"euroasia/internal/app"
	"euroasia/internal/common"
	"euroasia/internal/domain/job"
	"euroasia/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// requirementList accepts either a JSON array of lines or one
// newline-delimited string, as the admin form submits both shapes.
type requirementList []string

func (l *requirementList) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		*l = lines
		return nil
	}
	var blob string
	if err := json.Unmarshal(data, &blob); err != nil {
		return err
	}
	*l = nil
	for _, line := range strings.Split(blob, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			*l = append(*l, trimmed)
		}
	}
	return nil
}

type jobRequest struct {
	Title           string          `json:"title"`
	Location        string          `json:"location"`
	Type            string          `json:"type"`
	Salary          string          `json:"salary"`
	Category        string          `json:"category"`
	Requirements    requirementList `json:"requirements"`
	Deadline        string          `json:"deadline"`
	Vacancy         json.Number     `json:"vacancy"`
	PreferredGender string          `json:"preferredGender"`
}

func (req jobRequest) toPosting() (job.Job, error) {
	posting := job.Job{
		Title:           req.Title,
		Location:        req.Location,
		Type:            job.Type(req.Type),
		Salary:          req.Salary,
		Category:        req.Category,
		Requirements:    req.Requirements,
		PreferredGender: job.Gender(req.PreferredGender),
	}
	if req.Deadline != "" {
		deadline, err := parseDeadline(req.Deadline)
		if err != nil {
			return job.Job{}, common.NewValidationError("invalid request", map[string]string{"deadline": "deadline must be a YYYY-MM-DD date"})
		}
		posting.Deadline = deadline
	}
	if req.Vacancy != "" {
		vacancy, err := req.Vacancy.Int64()
		if err != nil {
			return job.Job{}, common.NewValidationError("invalid request", map[string]string{"vacancy": "vacancy must be a number"})
		}
		posting.Vacancy = int(vacancy)
	}
	return posting, nil
}

func parseDeadline(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []job.Job{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	found, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, found)
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	posting, err := req.toPosting()
	if err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), posting)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	posting, err := req.toPosting()
	if err != nil {
		response.Error(w, err)
		return
	}
	posting.ID = jobID
	updated, err := h.jobs.Update(r.Context(), posting)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "job deleted successfully"})
}
