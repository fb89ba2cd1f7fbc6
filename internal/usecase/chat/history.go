package chat

import (
	"time"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/patrickmn/go-cache"
)

// HistoryStore keeps conversation transcripts in memory with a TTL. Each
// append refreshes the TTL, so a conversation expires only after going idle.
type HistoryStore struct {
	cache       *cache.Cache
	maxMessages int
}

func NewHistoryStore(ttl time.Duration, maxMessages int) *HistoryStore {
	return &HistoryStore{
		cache:       cache.New(ttl, ttl/2),
		maxMessages: maxMessages,
	}
}

// Append adds a message to a conversation, trimming the transcript to the
// configured maximum.
func (s *HistoryStore) Append(conversationID string, msg entity.ChatMessage) {
	history := s.Get(conversationID)
	history = append(history, msg)
	if len(history) > s.maxMessages {
		history = history[len(history)-s.maxMessages:]
	}
	s.cache.SetDefault(conversationID, history)
}

// Get returns the transcript of a conversation, oldest first. Unknown or
// expired conversations yield an empty transcript.
func (s *HistoryStore) Get(conversationID string) []entity.ChatMessage {
	v, ok := s.cache.Get(conversationID)
	if !ok {
		return nil
	}
	history := v.([]entity.ChatMessage)

	out := make([]entity.ChatMessage, len(history))
	copy(out, history)
	return out
}

// Exists reports whether a conversation is currently live.
func (s *HistoryStore) Exists(conversationID string) bool {
	_, ok := s.cache.Get(conversationID)
	return ok
}
