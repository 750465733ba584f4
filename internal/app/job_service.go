package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"euroasia/internal/common"
	"euroasia/internal/domain/analytics"
	"euroasia/internal/domain/job"
)

type JobService struct {
	repo      job.Repository
	analytics analytics.Repository
}

func NewJobService(repo job.Repository, analyticsRepo analytics.Repository) *JobService {
	return &JobService{repo: repo, analytics: analyticsRepo}
}

func (s *JobService) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	normalized, err := normalizePosting(posting)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, normalized)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "job.created", Payload: analyticsPayload(ctx, map[string]string{"job_id": created.ID.String()})})
	return created, nil
}

// Update is a full-record replace: every field is resupplied and the same
// defaulting as create applies. Last write wins; there is no concurrency
// check.
func (s *JobService) Update(ctx context.Context, posting job.Job) (*job.Job, error) {
	if posting.ID == "" {
		return nil, common.NewValidationError("invalid request", map[string]string{"id": "id is required"})
	}
	normalized, err := normalizePosting(posting)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, normalized)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "job.updated", Payload: analyticsPayload(ctx, map[string]string{"job_id": updated.ID.String()})})
	return updated, nil
}

// Delete removes a posting irreversibly. Deleting an id that no longer
// exists still reports success.
func (s *JobService) Delete(ctx context.Context, id common.UUID) error {
	if id == "" {
		return common.NewValidationError("invalid request", map[string]string{"id": "id is required"})
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "job.deleted", Payload: analyticsPayload(ctx, map[string]string{"job_id": id.String()})})
	return nil
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	if id == "" {
		return nil, common.NewValidationError("invalid request", map[string]string{"id": "id is required"})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *JobService) List(ctx context.Context) ([]job.Job, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "job.listed", Payload: analyticsPayload(ctx, map[string]string{"count": fmt.Sprintf("%d", len(items))})})
	return items, nil
}

func normalizePosting(posting job.Job) (job.Job, error) {
	fields := map[string]string{}
	if posting.Title == "" {
		fields["title"] = "title is required"
	}
	if posting.Location == "" {
		fields["location"] = "location is required"
	}
	if posting.Type == "" {
		fields["type"] = "type is required"
	} else if !job.ValidType(posting.Type) {
		fields["type"] = "type must be Full-time, Part-time, or Contract"
	}
	if posting.Salary == "" {
		fields["salary"] = "salary is required"
	}
	if posting.Category == "" {
		fields["category"] = "category is required"
	}
	requirements := make([]string, 0, len(posting.Requirements))
	for _, line := range posting.Requirements {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			requirements = append(requirements, trimmed)
		}
	}
	posting.Requirements = requirements
	if len(posting.Requirements) == 0 {
		fields["requirements"] = "at least one requirement is required"
	}
	if posting.Vacancy == 0 {
		posting.Vacancy = 1
	}
	if posting.Vacancy < 1 {
		fields["vacancy"] = "vacancy must be at least 1"
	}
	if posting.PreferredGender == "" {
		posting.PreferredGender = job.GenderAny
	}
	if !job.ValidGender(posting.PreferredGender) {
		fields["preferredGender"] = "preferredGender must be Male, Female, or Any"
	}
	if posting.Deadline.IsZero() {
		posting.Deadline = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if len(fields) > 0 {
		return job.Job{}, common.NewValidationError("invalid job posting", fields)
	}
	return posting, nil
}
