package cache

import (
	"time"

	"github.com/patrickmn/go-cache"

	"nexusbot/internal/model"
)

const cleanupInterval = 10 * time.Minute

// Conversations keeps per-session chat history in memory. Idle sessions
// expire after the configured TTL; every Set refreshes the clock.
type Conversations struct {
	client *cache.Cache
	ttl    time.Duration
}

func NewConversations(ttl time.Duration) *Conversations {
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}
	return &Conversations{
		client: cache.New(ttl, cleanupInterval),
		ttl:    ttl,
	}
}

// History returns a copy of the stored history for the session, or nil when
// none exists.
func (c *Conversations) History(sessionID string) []model.Message {
	raw, ok := c.client.Get(sessionID)
	if !ok {
		return nil
	}
	stored, ok := raw.([]model.Message)
	if !ok {
		return nil
	}
	out := make([]model.Message, len(stored))
	copy(out, stored)
	return out
}

// Set stores a copy of the history so later appends on the caller's slice
// cannot alter the cached entry.
func (c *Conversations) Set(sessionID string, messages []model.Message) {
	stored := make([]model.Message, len(messages))
	copy(stored, messages)
	c.client.Set(sessionID, stored, c.ttl)
}

// Clear drops the history for a single session.
func (c *Conversations) Clear(sessionID string) {
	c.client.Delete(sessionID)
}

// Flush drops every session history.
func (c *Conversations) Flush() {
	c.client.Flush()
}
