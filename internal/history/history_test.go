package history

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"codeberg.org/techworld/server/internal/llm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStoreWithClient(client)
}

func TestAppendAndMessages(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, "s1", llm.Message{Role: "user", Content: "iPhone còn hàng không?"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := store.Append(ctx, "s1", llm.Message{Role: "assistant", Content: "Dạ còn ạ."}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	messages, err := store.Messages(ctx, "s1")
	if err != nil {
		t.Fatalf("Messages failed: %v", err)
	}

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}

	if messages[0].Role != "user" || messages[1].Role != "assistant" {
		t.Errorf("Wrong order: %v", messages)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, "s1", llm.Message{Role: "user", Content: "a"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	messages, err := store.Messages(ctx, "s2")
	if err != nil {
		t.Fatalf("Messages failed: %v", err)
	}

	if len(messages) != 0 {
		t.Errorf("Expected empty history for new session, got %d messages", len(messages))
	}
}

func TestHistoryTrimsToMaxTurns(t *testing.T) {
	store := newTestStore(t)
	store.maxTurns = 4
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}

		if err := store.Append(ctx, "s1", llm.Message{Role: role, Content: string(rune('a' + i))}); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	messages, err := store.Messages(ctx, "s1")
	if err != nil {
		t.Fatalf("Messages failed: %v", err)
	}

	if len(messages) != 4 {
		t.Fatalf("Expected history trimmed to 4, got %d", len(messages))
	}

	// the oldest messages are the ones dropped
	if messages[0].Content != "g" {
		t.Errorf("Expected oldest kept message %q, got %q", "g", messages[0].Content)
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, "s1", llm.Message{Role: "user", Content: "a"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	messages, err := store.Messages(ctx, "s1")
	if err != nil {
		t.Fatalf("Messages failed: %v", err)
	}

	if len(messages) != 0 {
		t.Errorf("Expected empty history after clear, got %d messages", len(messages))
	}
}
