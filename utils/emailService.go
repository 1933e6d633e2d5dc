package utils

import (
	"codenexus/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a single HTML email through SendGrid. A missing API key
// disables outbound email without failing the caller's flow.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("Email to %s skipped: SendGrid disabled", toEmail)
		return nil
	}

	from := mail.NewEmail("CodeNexus", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email: %d %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendWelcomeEmail greets a freshly registered student
func SendWelcomeEmail(toEmail, toName string) error {
	body := getEmailTemplate("Welcome to CodeNexus", fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your account is ready. Pick a track, keep your streak alive and climb the ranking.</p>
		<p>Solving the full daily challenge earns a bonus every day, so don't break the chain.</p>`, toName))
	return SendEmail(toEmail, toName, "Welcome to CodeNexus", body)
}

// getEmailTemplate wraps body content in the shared HTML shell
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #18181B; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #18181B; line-height: 1.6; }
			.footer { padding: 20px; text-align: center; color: #A1A1AA; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">CodeNexus &middot; keep the streak alive</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}
