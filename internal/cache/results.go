package cache

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pkaminsky/claimtriage/internal/model"
)

// ResultStore holds recently processed claim results for retrieval by ID.
// This lives strictly behind the HTTP layer; the processing core itself
// caches nothing between claims.
type ResultStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewResultStore creates a store whose entries expire after ttl.
func NewResultStore(ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &ResultStore{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Put stores a result and returns its retrieval ID.
func (s *ResultStore) Put(result *model.ProcessResult) string {
	id := NewID()
	s.cache.Set(id, result, s.ttl)
	return id
}

// Get retrieves a result by ID.
func (s *ResultStore) Get(id string) (*model.ProcessResult, bool) {
	if val, found := s.cache.Get(id); found {
		return val.(*model.ProcessResult), true
	}
	return nil, false
}

// NewID returns a random 128-bit hex identifier.
func NewID() string {
	var buf [16]byte
	_, _ = rand.Read(buf[:])
	return hex.EncodeToString(buf[:])
}
