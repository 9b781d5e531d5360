package core

// EmailRequest is the payload accepted by the reply endpoint
type EmailRequest struct {
	EmailContent string `json:"emailContent"`
	Tone         string `json:"tone"`
}
