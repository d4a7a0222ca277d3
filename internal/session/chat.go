package session

import "strings"

const (
	// WelcomeMessage opens an empty conversation.
	WelcomeMessage = "Hello! I'm your learning assistant. How can I help you with your learning path today?"

	// ApologyMessage replaces a reply that could not be fetched.
	ApologyMessage = "Sorry, I encountered an error processing your request. Please try again."
)

// Chat separates the conversation sent back to the server (History) from what
// is on screen (Transcript). A failed exchange shows an apology in the
// transcript but leaves History untouched.
type Chat struct {
	History    []ChatMessage
	Transcript []ChatMessage

	// Typing is set while a reply is pending.
	Typing bool

	pending string
}

// Enter rebuilds the transcript when the chat panel is shown. An empty
// history is seeded with the welcome message.
func (c *Chat) Enter() {
	if len(c.History) == 0 {
		c.History = append(c.History, ChatMessage{Role: RoleAssistant, Content: WelcomeMessage})
	}
	c.Transcript = append([]ChatMessage(nil), c.History...)
	if c.Typing && c.pending != "" {
		c.Transcript = append(c.Transcript, ChatMessage{Role: RoleUser, Content: c.pending})
	}
}

// Begin starts an exchange. The trimmed text is appended to the transcript and
// the typing indicator turned on. It returns false for empty input or while a
// reply is still pending.
func (c *Chat) Begin(text string) (string, bool) {
	msg := strings.TrimSpace(text)
	if msg == "" || c.Typing {
		return "", false
	}
	c.Transcript = append(c.Transcript, ChatMessage{Role: RoleUser, Content: msg})
	c.pending = msg
	c.Typing = true
	return msg, true
}

// Complete records a successful reply.
func (c *Chat) Complete(reply string) {
	c.Typing = false
	c.Transcript = append(c.Transcript, ChatMessage{Role: RoleAssistant, Content: reply})
	c.History = append(c.History,
		ChatMessage{Role: RoleUser, Content: c.pending},
		ChatMessage{Role: RoleAssistant, Content: reply},
	)
	c.pending = ""
}

// Fail records a failed exchange. Only the transcript sees the apology.
func (c *Chat) Fail() {
	c.Typing = false
	c.Transcript = append(c.Transcript, ChatMessage{Role: RoleAssistant, Content: ApologyMessage})
	c.pending = ""
}
