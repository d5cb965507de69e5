package conversation

import (
	"html/template"
	"sync"
	"time"
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

type Entry struct {
	Role Role
	Text string
	At   time.Time
}

// HTML renders the entry for a page. User text is untrusted and always
// escaped; bot text is the responder's own markup and is trusted.
func (e Entry) HTML() template.HTML {
	if e.Role == RoleBot {
		return template.HTML(e.Text)
	}
	return template.HTML(template.HTMLEscapeString(e.Text))
}

// Transcript is an append-only log of the exchange.
type Transcript struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

func NewTranscript() *Transcript {
	return &Transcript{now: time.Now}
}

func (t *Transcript) AppendUser(text string) Entry {
	return t.append(RoleUser, text)
}

func (t *Transcript) AppendBot(markup string) Entry {
	return t.append(RoleBot, markup)
}

func (t *Transcript) append(role Role, text string) Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := Entry{Role: role, Text: text, At: t.now()}
	t.entries = append(t.entries, e)
	return e
}

// Entries returns a copy, oldest first.
func (t *Transcript) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Entry(nil), t.entries...)
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Last returns the newest entry, the one the view scrolls to.
func (t *Transcript) Last() (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.entries) == 0 {
		return Entry{}, false
	}
	return t.entries[len(t.entries)-1], true
}
