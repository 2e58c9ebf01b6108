// Package history models the bounded conversation memory kept per chat
// session. The engine reads and appends turns; it never persists them beyond
// the session boundary.
package history

import (
	"context"
	"sync"
)

// MaxTurns bounds how many conversation turns a session retains. Older turns
// are evicted first.
const MaxTurns = 5

// Turn is a single user message and the reply it received.
type Turn struct {
	UserMessage string `json:"user_message"`
	BotReply    string `json:"bot_reply"`
}

// Turns is an ordered, bounded FIFO of recent conversation turns, oldest
// first. It is a value type: Append returns the updated sequence instead of
// mutating shared state, which keeps the eviction invariant testable.
type Turns []Turn

// Append adds the turn and evicts the oldest entries so that len stays
// within MaxTurns.
func (t Turns) Append(turn Turn) Turns {
	t = append(t, turn)
	if len(t) > MaxTurns {
		t = t[len(t)-MaxTurns:]
	}
	return t
}

// Last returns up to n most recent turns, oldest first.
func (t Turns) Last(n int) Turns {
	if n <= 0 || len(t) == 0 {
		return nil
	}
	if n >= len(t) {
		return t
	}
	return t[len(t)-n:]
}

// Store keeps per-session conversation history with append-with-eviction
// semantics. Implementations must be safe for concurrent sessions.
type Store interface {
	Load(ctx context.Context, sessionID string) (Turns, error)
	Save(ctx context.Context, sessionID string, turns Turns) error
}

// MemoryStore is the in-process Store used by the CLI and in tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Turns
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Turns)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (Turns, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := s.sessions[sessionID]
	out := make(Turns, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, turns Turns) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(Turns, len(turns))
	copy(stored, turns)
	s.sessions[sessionID] = stored
	return nil
}
