package core

import "strings"

const (
	replyInstruction = "Generate me only one professional email reply best suited for the following email content, please don't include the subject line. "
	originalMarker   = "\nOriginal Email:\n"
)

// BuildPrompt assembles the provider prompt for a reply request.
// The tone clause is only present when a tone was given and the
// email content is always appended unmodified after the marker line.
func BuildPrompt(req *EmailRequest) string {
	var prompt strings.Builder
	prompt.WriteString(replyInstruction)
	if req.Tone != "" {
		prompt.WriteString("Use a ")
		prompt.WriteString(req.Tone)
		prompt.WriteString(" tone. ")
	}
	prompt.WriteString(originalMarker)
	prompt.WriteString(req.EmailContent)
	return prompt.String()
}
