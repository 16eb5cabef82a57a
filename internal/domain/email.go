package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// NewCommentEmailData holds data for the "someone commented on your project" email.
type NewCommentEmailData struct {
	Email          string
	OwnerName      string
	CommenterName  string
	ProjectName    string
	ProjectURL     string
	CommentExcerpt string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendNewCommentNotification(ctx context.Context, data *NewCommentEmailData) error
}
