package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// HTML is optional; Text is the fallback body.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject,omitempty"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// WelcomeEmail builds the signup welcome job for a new account.
func WelcomeEmail(to string) EmailJob {
	return EmailJob{
		To:      to,
		Subject: "Welcome to your learning journal",
		Text: "Your account is ready. Record one learning a day and look back " +
			"on what you picked up, one page at a time.",
	}
}
