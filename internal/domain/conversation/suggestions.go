package conversation

import "strings"

// Suggestion is a preset question carried by a quick-reply control.
type Suggestion struct {
	Label    string `json:"label"`
	Question string `json:"question"`
}

var suggestions = []Suggestion{
	{Label: "Experience", Question: "What's her experience?"},
	{Label: "Skills", Question: "What's her tech stack?"},
	{Label: "Education", Question: "What's her education background?"},
	{Label: "Contact", Question: "How can I contact her?"},
}

func Suggestions() []Suggestion {
	return append([]Suggestion(nil), suggestions...)
}

// NormalizeInput trims the raw field value. ok is false when nothing is
// left to send.
func NormalizeInput(raw string) (text string, ok bool) {
	text = strings.TrimSpace(raw)
	return text, text != ""
}
