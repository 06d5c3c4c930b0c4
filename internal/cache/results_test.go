package cache

import (
	"testing"
	"time"

	"github.com/pkaminsky/claimtriage/internal/model"
)

func TestResultStore_PutGet(t *testing.T) {
	store := NewResultStore(time.Minute)
	result := &model.ProcessResult{RecommendedRoute: model.RouteFastTrack}

	id := store.Put(result)
	if len(id) != 32 {
		t.Errorf("Put() id = %q, want 32 hex chars", id)
	}

	got, found := store.Get(id)
	if !found {
		t.Fatal("Get() found = false, want true")
	}
	if got.RecommendedRoute != model.RouteFastTrack {
		t.Errorf("Get() route = %q, want Fast-track", got.RecommendedRoute)
	}
}

func TestResultStore_Miss(t *testing.T) {
	store := NewResultStore(time.Minute)
	if _, found := store.Get("does-not-exist"); found {
		t.Error("Get() found = true for unknown ID, want false")
	}
}

func TestResultStore_Expiry(t *testing.T) {
	store := NewResultStore(10 * time.Millisecond)
	id := store.Put(&model.ProcessResult{RecommendedRoute: model.RouteManualReview})

	time.Sleep(30 * time.Millisecond)
	if _, found := store.Get(id); found {
		t.Error("Get() found = true after TTL, want expiry")
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("NewID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}
