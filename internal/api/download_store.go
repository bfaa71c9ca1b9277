package api

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

type downloadItem struct {
	name        string
	contentType string
	data        []byte
	expiresAt   time.Time
}

// downloadStore holds exported artifacts in memory for a short TTL so the
// export call and the actual download can be two separate requests.
type downloadStore struct {
	mu    sync.Mutex
	items map[string]downloadItem
}

func newDownloadStore() *downloadStore {
	return &downloadStore{items: make(map[string]downloadItem)}
}

func (s *downloadStore) put(name, contentType string, data []byte, ttl time.Duration) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token = newRandomToken(24)
	s.items[token] = downloadItem{
		name:        name,
		contentType: contentType,
		data:        data,
		expiresAt:   time.Now().Add(ttl),
	}
	return token
}

func (s *downloadStore) get(token string) (downloadItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return downloadItem{}, false
	}
	if time.Now().After(v.expiresAt) {
		delete(s.items, token)
		return downloadItem{}, false
	}
	return v, true
}

func (s *downloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}

func newRandomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
