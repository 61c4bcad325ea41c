package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"codeberg.org/techworld/server/internal/llm"
)

const (
	keyPrefix = "chat:history:"

	// defaultMaxTurns bounds how many messages a session keeps
	defaultMaxTurns = 20

	// sessions expire after a day of inactivity
	defaultTTL = 24 * time.Hour
)

// Store keeps per-session conversation history in Redis lists.
type Store struct {
	client   *redis.Client
	maxTurns int
	ttl      time.Duration
}

func NewStore(redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	return NewStoreWithClient(redis.NewClient(opts)), nil
}

func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{
		client:   client,
		maxTurns: defaultMaxTurns,
		ttl:      defaultTTL,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func sessionKey(sessionID string) string {
	return keyPrefix + sessionID
}

// Append adds a message to the session and trims it to the turn cap.
func (s *Store) Append(ctx context.Context, sessionID string, msg llm.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	key := sessionKey(sessionID)

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, int64(-s.maxTurns), -1)
	pipe.Expire(ctx, key, s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	return nil
}

// Messages returns the session history, oldest first.
func (s *Store) Messages(ctx context.Context, sessionID string) ([]llm.Message, error) {
	raw, err := s.client.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	messages := make([]llm.Message, 0, len(raw))

	for _, item := range raw {
		var msg llm.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// Clear removes the session history.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
