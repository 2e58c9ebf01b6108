package history

import (
	"context"
	"fmt"
	"testing"
)

func TestAppendEvictsOldest(t *testing.T) {
	var turns Turns
	for i := 1; i <= 7; i++ {
		turns = turns.Append(Turn{UserMessage: fmt.Sprintf("q%d", i), BotReply: fmt.Sprintf("a%d", i)})
	}

	if len(turns) != MaxTurns {
		t.Fatalf("expected %d turns after eviction, got %d", MaxTurns, len(turns))
	}
	if turns[0].UserMessage != "q3" {
		t.Fatalf("expected oldest surviving turn q3, got %q", turns[0].UserMessage)
	}
	if turns[MaxTurns-1].UserMessage != "q7" {
		t.Fatalf("expected newest turn q7, got %q", turns[MaxTurns-1].UserMessage)
	}
}

func TestLast(t *testing.T) {
	var turns Turns
	for i := 1; i <= 4; i++ {
		turns = turns.Append(Turn{UserMessage: fmt.Sprintf("q%d", i)})
	}

	last := turns.Last(2)
	if len(last) != 2 || last[0].UserMessage != "q3" || last[1].UserMessage != "q4" {
		t.Fatalf("unexpected last turns: %+v", last)
	}

	if got := turns.Last(10); len(got) != 4 {
		t.Fatalf("expected all turns when n exceeds length, got %d", len(got))
	}
	if got := turns.Last(0); got != nil {
		t.Fatalf("expected nil for n=0, got %+v", got)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	turns := Turns{{UserMessage: "hello", BotReply: "hi"}}
	if err := store.Save(ctx, "session-1", turns); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx, "session-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].UserMessage != "hello" {
		t.Fatalf("unexpected loaded turns: %+v", loaded)
	}

	// Sessions are isolated.
	other, err := store.Load(ctx, "session-2")
	if err != nil {
		t.Fatalf("load empty session: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty history for unknown session, got %+v", other)
	}
}

func TestMemoryStoreCopiesOnLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Save(ctx, "s", Turns{{UserMessage: "original"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, _ := store.Load(ctx, "s")
	loaded[0].UserMessage = "mutated"

	again, _ := store.Load(ctx, "s")
	if again[0].UserMessage != "original" {
		t.Fatalf("load leaked shared state: %q", again[0].UserMessage)
	}
}
