package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"go-prodigy-backend/internal/domain"
)

// contactEmailTemplate is the branded HTML body for contact notifications.
// Rendered with html/template so every submitted field is escaped before
// interpolation; the submission is attacker-controlled.
const contactEmailTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>New Contact Form Submission - Prodigy Labs</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'DM Sans', -apple-system, 'Segoe UI', sans-serif; line-height: 1.6; color: #FAFAFA; background: #1A1A1A; }
        .container { max-width: 600px; margin: 0 auto; background: #1A1A1A; border: 1px solid #4D4D4D; border-radius: 12px; overflow: hidden; }
        .header { background: linear-gradient(135deg, #8B5CF6 0%, #7C3AED 100%); padding: 32px 24px; text-align: center; }
        .logo { font-family: 'Space Grotesk', sans-serif; font-size: 28px; font-weight: 700; color: #FAFAFA; margin-bottom: 8px; letter-spacing: -0.5px; }
        .tagline { font-size: 16px; color: rgba(250, 250, 250, 0.8); font-weight: 500; }
        .content { padding: 32px 24px; background: #262626; }
        .title { font-size: 24px; font-weight: 600; color: #FAFAFA; margin-bottom: 24px; text-align: center; }
        .form-section { background: #1A1A1A; border: 1px solid #4D4D4D; border-radius: 8px; padding: 24px; margin-bottom: 24px; }
        .field { margin-bottom: 20px; }
        .field:last-child { margin-bottom: 0; }
        .field-label { font-weight: 600; color: #8B5CF6; font-size: 14px; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 8px; display: block; }
        .field-value { color: #FAFAFA; font-size: 16px; background: #333333; padding: 12px 16px; border-radius: 6px; border: 1px solid #4D4D4D; word-wrap: break-word; }
        .message-field .field-value { white-space: pre-wrap; min-height: 80px; }
        .footer { background: #1A1A1A; padding: 24px; text-align: center; border-top: 1px solid #4D4D4D; }
        .footer-text { color: #B3B3B3; font-size: 14px; margin-bottom: 16px; }
        .cta-button { display: inline-block; background: linear-gradient(135deg, #8B5CF6 0%, #7C3AED 100%); color: #FAFAFA; text-decoration: none; padding: 12px 24px; border-radius: 6px; font-weight: 600; font-size: 14px; text-transform: uppercase; }
        .timestamp { color: #B3B3B3; font-size: 12px; margin-top: 16px; }
        .accent-line { height: 3px; background: linear-gradient(90deg, #8B5CF6, #EC4899, #14B8A6); margin: 24px 0; border-radius: 2px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">PRODIGY LABS</div>
            <div class="tagline">Premium Digital Solutions</div>
        </div>
        <div class="content">
            <h1 class="title">New Contact Form Submission</h1>
            <div class="form-section">
                <div class="field">
                    <span class="field-label">Contact Name</span>
                    <div class="field-value">{{.Name}}</div>
                </div>
                <div class="field">
                    <span class="field-label">Email Address</span>
                    <div class="field-value">{{.Email}}</div>
                </div>
                <div class="field">
                    <span class="field-label">Project Type</span>
                    <div class="field-value">{{.ProjectType}}</div>
                </div>
                <div class="field message-field">
                    <span class="field-label">Message</span>
                    <div class="field-value">{{.Message}}</div>
                </div>
            </div>
            <div class="accent-line"></div>
        </div>
        <div class="footer">
            <p class="footer-text">Respond to this inquiry promptly to maintain our premium service standards.</p>
            <a href="mailto:{{.Email}}" class="cta-button">Reply to Contact</a>
            <div class="timestamp">Received: {{.Timestamp}} UTC</div>
        </div>
    </div>
</body>
</html>`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

type templateData struct {
	Name        string
	Email       string
	ProjectType string
	Message     string
	Timestamp   string
}

// Render builds the notification message for a validated submission. Pure
// apart from the caller-supplied timestamp: same submission and instant,
// same message.
func Render(sub domain.ContactSubmission, now time.Time) (domain.EmailMessage, error) {
	ts := now.UTC()

	var body bytes.Buffer
	err := contactTmpl.Execute(&body, templateData{
		Name:        sub.Name,
		Email:       sub.Email,
		ProjectType: sub.ProjectType,
		Message:     sub.Message,
		Timestamp:   ts.Format("Monday, January 2, 2006 3:04:05 PM"),
	})
	if err != nil {
		return domain.EmailMessage{}, fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("New Contact Form Submission - %s from %s", sub.ProjectType, sub.Name)

	text := fmt.Sprintf(`New Contact Form Submission - Prodigy Labs

Name: %s
Email: %s
Project Type: %s

Message:
%s

Received: %s`,
		sub.Name, sub.Email, sub.ProjectType, sub.Message, ts.Format(time.RFC3339))

	return domain.EmailMessage{
		Subject: subject,
		HTML:    body.String(),
		Text:    text,
	}, nil
}
