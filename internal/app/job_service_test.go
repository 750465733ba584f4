package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"euroasia/internal/common"
	"euroasia/internal/domain/job"
)

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[common.UUID]job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[common.UUID]job.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posting.ID = common.NewUUID()
	now := time.Now().UTC()
	posting.CreatedAt = now
	posting.UpdatedAt = now
	r.jobs[posting.ID] = posting
	copy := posting
	return &copy, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, posting job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.jobs[posting.ID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	posting.CreatedAt = existing.CreatedAt
	posting.UpdatedAt = time.Now().UTC()
	r.jobs[posting.ID] = posting
	copy := posting
	return &copy, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posting, ok := r.jobs[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	copy := posting
	return &copy, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) List(ctx context.Context) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]job.Job, 0, len(r.jobs))
	for _, posting := range r.jobs {
		items = append(items, posting)
	}
	return items, nil
}

func validPosting() job.Job {
	return job.Job{
		Title:        "Senior Nurse",
		Location:     "Berlin",
		Type:         job.TypeFullTime,
		Salary:       "€2500",
		Category:     "Healthcare",
		Requirements: []string{"Nursing degree", "B2 German"},
	}
}

func TestJobServiceCreate_AppliesDefaults(t *testing.T) {
	repo := newFakeJobRepo()
	service := NewJobService(repo, noopAnalyticsRepo{})

	created, err := service.Create(context.Background(), validPosting())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected id to be assigned")
	}
	if created.Vacancy != 1 {
		t.Fatalf("expected vacancy default 1, got %d", created.Vacancy)
	}
	if created.PreferredGender != job.GenderAny {
		t.Fatalf("expected preferred gender default Any, got %s", created.PreferredGender)
	}
	if created.Deadline.IsZero() {
		t.Fatal("expected deadline to default to today")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestJobServiceCreate_RejectsMissingFields(t *testing.T) {
	service := NewJobService(newFakeJobRepo(), noopAnalyticsRepo{})

	cases := map[string]func(*job.Job){
		"title":        func(p *job.Job) { p.Title = "" },
		"location":     func(p *job.Job) { p.Location = "" },
		"type":         func(p *job.Job) { p.Type = "" },
		"salary":       func(p *job.Job) { p.Salary = "" },
		"category":     func(p *job.Job) { p.Category = "" },
		"requirements": func(p *job.Job) { p.Requirements = nil },
	}
	for field, clear := range cases {
		posting := validPosting()
		clear(&posting)
		_, err := service.Create(context.Background(), posting)
		if !common.Is(err, common.CodeValidation) {
			t.Fatalf("expected validation error for missing %s, got %v", field, err)
		}
	}
}

func TestJobServiceCreate_RejectsBadEnums(t *testing.T) {
	service := NewJobService(newFakeJobRepo(), noopAnalyticsRepo{})

	posting := validPosting()
	posting.Type = "Freelance"
	if _, err := service.Create(context.Background(), posting); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for bad type, got %v", err)
	}

	posting = validPosting()
	posting.PreferredGender = "Other"
	if _, err := service.Create(context.Background(), posting); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for bad gender, got %v", err)
	}

	posting = validPosting()
	posting.Vacancy = -2
	if _, err := service.Create(context.Background(), posting); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for negative vacancy, got %v", err)
	}
}

func TestJobServiceCreate_FiltersEmptyRequirements(t *testing.T) {
	service := NewJobService(newFakeJobRepo(), noopAnalyticsRepo{})

	posting := validPosting()
	posting.Requirements = []string{"Nursing degree", "", "  ", "B2 German"}
	created, err := service.Create(context.Background(), posting)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(created.Requirements) != 2 {
		t.Fatalf("expected empty lines filtered, got %v", created.Requirements)
	}

	posting = validPosting()
	posting.Requirements = []string{"", "  "}
	if _, err := service.Create(context.Background(), posting); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for all-empty requirements, got %v", err)
	}
}

func TestJobServiceUpdate_FullReplace(t *testing.T) {
	repo := newFakeJobRepo()
	service := NewJobService(repo, noopAnalyticsRepo{})

	created, err := service.Create(context.Background(), validPosting())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	replacement := validPosting()
	replacement.ID = created.ID
	replacement.Title = "Head Nurse"
	replacement.Vacancy = 3
	updated, err := service.Update(context.Background(), replacement)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Title != "Head Nurse" || updated.Vacancy != 3 {
		t.Fatalf("expected replaced fields, got %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("expected created_at to be immutable")
	}
}

func TestJobServiceUpdate_UnknownID(t *testing.T) {
	service := NewJobService(newFakeJobRepo(), noopAnalyticsRepo{})

	posting := validPosting()
	posting.ID = common.NewUUID()
	if _, err := service.Update(context.Background(), posting); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	posting.ID = ""
	if _, err := service.Update(context.Background(), posting); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for missing id, got %v", err)
	}
}

func TestJobServiceGet(t *testing.T) {
	repo := newFakeJobRepo()
	service := NewJobService(repo, noopAnalyticsRepo{})

	created, err := service.Create(context.Background(), validPosting())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	found, err := service.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if found.Title != created.Title {
		t.Fatalf("expected %q, got %q", created.Title, found.Title)
	}
	if _, err := service.Get(context.Background(), common.NewUUID()); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := service.Get(context.Background(), ""); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for empty id, got %v", err)
	}
}

func TestJobServiceDelete(t *testing.T) {
	repo := newFakeJobRepo()
	service := NewJobService(repo, noopAnalyticsRepo{})

	created, err := service.Create(context.Background(), validPosting())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := service.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), created.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatal("expected job to be gone")
	}
	if err := service.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("expected delete of unknown id to succeed, got %v", err)
	}
	if err := service.Delete(context.Background(), ""); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for empty id, got %v", err)
	}
}
