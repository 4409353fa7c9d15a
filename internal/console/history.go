package console

import "strings"

// History keeps the most recent input lines and a browsing cursor.
type History struct {
	size    int
	entries []string
	cursor  int // len(entries) means "not browsing"
}

// NewHistory returns a history holding at most size lines. A size of zero
// disables history.
func NewHistory(size int) *History {
	return &History{size: size}
}

// Add appends line unless it is blank or repeats the latest entry, and
// resets the browsing cursor.
func (h *History) Add(line string) {
	defer h.Reset()

	if h.size <= 0 || strings.TrimSpace(line) == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}

	h.entries = append(h.entries, line)
	if over := len(h.entries) - h.size; over > 0 {
		h.entries = h.entries[over:]
	}
}

// Prev moves one entry back and returns it. ok is false at the oldest entry
// or when history is empty.
func (h *History) Prev() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves one entry forward. Stepping past the newest entry returns ""
// with ok true so the caller can clear its input.
func (h *History) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return "", true
	}
	return h.entries[h.cursor], true
}

// Reset stops browsing.
func (h *History) Reset() {
	h.cursor = len(h.entries)
}

// Entries returns the stored lines, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}
