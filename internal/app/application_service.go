package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"euroasia/internal/common"
	"euroasia/internal/domain/analytics"
	"euroasia/internal/domain/application"
	"euroasia/internal/integration/resend"
)

// ApplicationService forwards candidate submissions to the agency inbox.
// Nothing is persisted or retried; a failed delivery is lost and the
// candidate resubmits.
type ApplicationService struct {
	mailer    resend.Client
	analytics analytics.Repository
	logger    Logger
	from      string
	inbox     string
}

func NewApplicationService(mailer resend.Client, analyticsRepo analytics.Repository, logger Logger, from, inbox string) *ApplicationService {
	return &ApplicationService{
		mailer:    mailer,
		analytics: analyticsRepo,
		logger:    logger,
		from:      from,
		inbox:     inbox,
	}
}

func (s *ApplicationService) Submit(ctx context.Context, app application.Application) error {
	fields := map[string]string{}
	if strings.TrimSpace(app.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(app.Email) == "" {
		fields["email"] = "email is required"
	}
	if strings.TrimSpace(app.Mobile) == "" {
		fields["mobile"] = "mobile is required"
	}
	if strings.TrimSpace(app.Qualifications) == "" {
		fields["qualifications"] = "qualifications is required"
	}
	if strings.TrimSpace(app.JobTitle) == "" {
		fields["jobTitle"] = "jobTitle is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("all fields are required", fields)
	}
	msg := resend.Message{
		From:    s.from,
		To:      []string{s.inbox},
		Subject: "New Job Application: " + app.JobTitle,
		HTML:    applicationHTML(app),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return s.handleMailError(err, app.JobTitle)
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "application.submitted", Payload: analyticsPayload(ctx, map[string]string{"job_title": app.JobTitle})})
	return nil
}

func applicationHTML(app application.Application) string {
	qualifications := strings.ReplaceAll(app.Qualifications, "\n", "<br>")
	return fmt.Sprintf(`<h2>New Job Application</h2>
<p><strong>Position:</strong> %s</p>
<p><strong>Applicant Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Mobile:</strong> %s</p>
<h3>Qualifications:</h3>
<p>%s</p>`, app.JobTitle, app.Name, app.Email, app.Mobile, qualifications)
}

func (s *ApplicationService) handleMailError(err error, jobTitle string) error {
	switch {
	case errors.Is(err, resend.ErrUnauthorized):
		s.logError("mail provider unauthorized job_title=" + jobTitle)
		return common.NewError(common.CodeInternal, "mail provider unauthorized", err)
	case errors.Is(err, resend.ErrBadRequest):
		s.logError("mail provider rejected request job_title=" + jobTitle)
		return common.NewError(common.CodeInternal, "mail provider rejected request", err)
	default:
		s.logError("application delivery failed job_title=" + jobTitle)
		return common.NewError(common.CodeDeliveryFailed, "failed to submit application", err)
	}
}

func (s *ApplicationService) logError(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Error(msg)
}
