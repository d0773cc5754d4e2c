package mailer

// EmailJob is the queue payload for one outbound message. The only
// producer today is registration, so bodies are plain text.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}
