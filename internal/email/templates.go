package email

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"
)

const verificationTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Welcome to TalentHive, {{.Name}}!</h2>
  <p>Thanks for signing up. Please verify your email address to activate your account.</p>
  <p style="margin: 24px 0;">
    <a href="{{.ActionURL}}" style="background-color: #4f46e5; color: #fff; padding: 12px 24px; text-decoration: none; border-radius: 6px;">Verify Email</a>
  </p>
  <p style="color: #666; font-size: 13px;">If the button does not work, copy this link into your browser:<br>{{.ActionURL}}</p>
  <p style="color: #999; font-size: 12px;">If you did not create an account, you can ignore this email.</p>
</div>`

const passwordResetTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Password Reset Request</h2>
  <p>Hi {{.Name}},</p>
  <p>We received a request to reset your TalentHive password. The link below is valid for one hour.</p>
  <p style="margin: 24px 0;">
    <a href="{{.ActionURL}}" style="background-color: #4f46e5; color: #fff; padding: 12px 24px; text-decoration: none; border-radius: 6px;">Reset Password</a>
  </p>
  <p style="color: #666; font-size: 13px;">If the button does not work, copy this link into your browser:<br>{{.ActionURL}}</p>
  <p style="color: #999; font-size: 12px;">If you did not request a reset, your password is unchanged and no action is needed.</p>
</div>`

// TemplateManager parses the built-in templates once and renders them on
// demand.
type TemplateManager struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
}

const (
	TemplateVerification  = "verification"
	TemplatePasswordReset = "password_reset"
)

func NewTemplateManager() (*TemplateManager, error) {
	m := &TemplateManager{templates: make(map[string]*template.Template)}

	sources := map[string]string{
		TemplateVerification:  verificationTemplate,
		TemplatePasswordReset: passwordResetTemplate,
	}
	for name, src := range sources {
		tmpl, err := template.New(name).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		m.templates[name] = tmpl
	}
	return m, nil
}

func (m *TemplateManager) Render(name string, data TemplateData) (string, error) {
	m.mu.RLock()
	tmpl, ok := m.templates[name]
	m.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("unknown email template %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}
