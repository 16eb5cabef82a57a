package services

import (
	"context"
	"fmt"
	"log/slog"

	"openlaunch/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendNewCommentNotification sends the "new_comment" template to the project owner.
func (s *emailService) SendNewCommentNotification(ctx context.Context, data *domain.NewCommentEmailData) error {
	if data == nil {
		return fmt.Errorf("new comment email data is nil")
	}
	if data.Email == "" {
		return fmt.Errorf("new comment email recipient is empty")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("new_comment", data)
	if err != nil {
		return fmt.Errorf("failed to render new_comment template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send new comment email: %w", err)
	}
	s.logger.InfoContext(ctx, "new comment notification sent", "project", data.ProjectName)
	return nil
}
