// Package cache holds the durable key/value store used to keep remote
// indicator payloads between fetches.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Entry wraps a cached payload with the time it was written. Freshness is
// judged by the reader with the ttl it cares about.
type Entry struct {
	Payload  json.RawMessage `json:"payload"`
	CachedAt time.Time       `json:"cachedAt"`
}

// Fresh reports whether the entry is younger than ttl at now.
func (e Entry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.CachedAt) < ttl
}

// Store is a get/set key/value cache. Entries live until overwritten.
// Get returns ok=false on a miss.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
}

func encodeEntry(entry Entry) ([]byte, error) {
	return json.Marshal(entry)
}

func decodeEntry(raw []byte) (Entry, error) {
	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}
