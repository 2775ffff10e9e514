package bot

import (
	"context"
	"sync"
	"time"
)

// Step is where a guest currently is in the booking dialogue.
type Step string

const (
	StepIdle      Step = ""
	StepDate      Step = "date"
	StepPartySize Step = "party_size"
	StepTime      Step = "time"
	StepName      Step = "name"
	StepPhone     Step = "phone"
)

// Conversation is the pending booking of one chat. Nothing here is a
// reservation yet; it only becomes one on Confirm.
type Conversation struct {
	Step      Step      `json:"step"`
	Date      string    `json:"date,omitempty"`
	PartySize int       `json:"party_size,omitempty"`
	TableRef  string    `json:"table_ref,omitempty"`
	StartAt   time.Time `json:"start_at,omitempty"`
	GuestName string    `json:"guest_name,omitempty"`
}

func (c *Conversation) reset() {
	*c = Conversation{}
}

type ConversationStore interface {
	Get(ctx context.Context, chatID int64) (Conversation, error)
	Put(ctx context.Context, chatID int64, c Conversation) error
	Delete(ctx context.Context, chatID int64) error
}

type MemoryConversations struct {
	mu    sync.Mutex
	items map[int64]Conversation
}

func NewMemoryConversations() *MemoryConversations {
	return &MemoryConversations{items: make(map[int64]Conversation)}
}

func (m *MemoryConversations) Get(_ context.Context, chatID int64) (Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[chatID], nil
}

func (m *MemoryConversations) Put(_ context.Context, chatID int64, c Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[chatID] = c
	return nil
}

func (m *MemoryConversations) Delete(_ context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, chatID)
	return nil
}

type stateCache interface {
	LoadState(ctx context.Context, chatID int64, dst any) (bool, error)
	SaveState(ctx context.Context, chatID int64, v any) error
	DeleteState(ctx context.Context, chatID int64) error
}

// RedisConversations keeps dialogue state in Redis so a restart does not
// drop half-finished bookings.
type RedisConversations struct {
	cache stateCache
}

func NewRedisConversations(cache stateCache) *RedisConversations {
	return &RedisConversations{cache: cache}
}

func (r *RedisConversations) Get(ctx context.Context, chatID int64) (Conversation, error) {
	var c Conversation
	if _, err := r.cache.LoadState(ctx, chatID, &c); err != nil {
		return Conversation{}, err
	}
	return c, nil
}

func (r *RedisConversations) Put(ctx context.Context, chatID int64, c Conversation) error {
	return r.cache.SaveState(ctx, chatID, c)
}

func (r *RedisConversations) Delete(ctx context.Context, chatID int64) error {
	return r.cache.DeleteState(ctx, chatID)
}
