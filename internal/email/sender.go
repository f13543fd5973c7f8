package email

import (
	"context"
	"fmt"
)

// Sender renders account emails and hands them to a provider.
type Sender interface {
	SendVerificationEmail(ctx context.Context, to, name, token string) error
	SendPasswordResetEmail(ctx context.Context, to, name, token string) error
}

type TemplateSender struct {
	provider  Provider
	templates *TemplateManager
	clientURL string
}

func NewTemplateSender(provider Provider, templates *TemplateManager, clientURL string) *TemplateSender {
	return &TemplateSender{
		provider:  provider,
		templates: templates,
		clientURL: clientURL,
	}
}

func (s *TemplateSender) SendVerificationEmail(ctx context.Context, to, name, token string) error {
	body, err := s.templates.Render(TemplateVerification, TemplateData{
		Name:      name,
		ActionURL: fmt.Sprintf("%s/verify-email/%s", s.clientURL, token),
	})
	if err != nil {
		return err
	}
	return s.provider.Send(ctx, &Message{
		To:       []string{to},
		Subject:  "Verify your TalentHive email",
		HTMLBody: body,
	})
}

func (s *TemplateSender) SendPasswordResetEmail(ctx context.Context, to, name, token string) error {
	body, err := s.templates.Render(TemplatePasswordReset, TemplateData{
		Name:      name,
		ActionURL: fmt.Sprintf("%s/reset-password/%s", s.clientURL, token),
	})
	if err != nil {
		return err
	}
	return s.provider.Send(ctx, &Message{
		To:       []string{to},
		Subject:  "Reset your TalentHive password",
		HTMLBody: body,
	})
}
