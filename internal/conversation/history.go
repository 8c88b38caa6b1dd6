package conversation

import (
	"fmt"
	"sync"
	"time"
)

// Role is the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single utterance in a conversation.
type Turn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// History is an append-only, bounded log of conversation turns.
// When the window is full the oldest turn is discarded first, keeping
// the context passed to the LLM bounded. Safe for concurrent use.
type History struct {
	mu    sync.Mutex
	turns []Turn
	max   int
}

// NewHistory creates a history retaining at most maxTurns turns.
// maxTurns <= 0 falls back to DefaultMaxTurns.
func NewHistory(maxTurns int) *History {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &History{max: maxTurns}
}

// Append adds a turn, evicting the oldest one when the window is full.
func (h *History) Append(turn Turn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now()
	}

	h.turns = append(h.turns, turn)
	if len(h.turns) > h.max {
		h.turns = h.turns[len(h.turns)-h.max:]
	}
}

// Recent returns the last n turns in chronological order. The returned
// slice is a copy; callers may not mutate stored state through it.
func (h *History) Recent(n int) []Turn {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n <= 0 || len(h.turns) == 0 {
		return nil
	}
	if n > len(h.turns) {
		n = len(h.turns)
	}

	out := make([]Turn, n)
	copy(out, h.turns[len(h.turns)-n:])
	return out
}

// Len returns the number of retained turns.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.turns)
}

// Clear discards all turns.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = nil
}

// RenderLines formats the last n turns as "User: ..."/"Assistant: ..."
// lines for inclusion in LLM prompts.
func (h *History) RenderLines(n int) []string {
	turns := h.Recent(n)
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		label := "User"
		if t.Role == RoleAssistant {
			label = "Assistant"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, t.Text))
	}
	return lines
}
