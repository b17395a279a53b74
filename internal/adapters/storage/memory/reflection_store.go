package memory

import (
	"context"
	"sync"
	"time"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

// ReflectionStore is a simple in-memory implementation of
// domain.ReflectionStore. It is NOT persistent and is only suitable for
// development / local mode and tests.
type ReflectionStore struct {
	mu       sync.RWMutex
	bySender map[string][]domain.ReflectionRecord
}

// NewReflectionStore creates a new in-memory ReflectionStore.
func NewReflectionStore() *ReflectionStore {
	return &ReflectionStore{
		bySender: make(map[string][]domain.ReflectionRecord),
	}
}

// QueryToday implements domain.ReflectionStore. Records accumulate in
// append order, which is creation order for this store.
func (s *ReflectionStore) QueryToday(ctx context.Context, sender string, day domain.Timestamp) (domain.MemorySnapshot, error) {
	year, month, dom := day.Date()
	dayStart := time.Date(year, month, dom, 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out domain.MemorySnapshot
	for _, rec := range s.bySender[sender] {
		if rec.CreatedAt.Before(dayStart) || !rec.CreatedAt.Before(dayEnd) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// AppendReflection implements domain.ReflectionStore.
func (s *ReflectionStore) AppendReflection(ctx context.Context, rec *domain.ReflectionRecord) error {
	if rec == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.bySender[rec.SenderAddress] = append(s.bySender[rec.SenderAddress], *rec)
	return nil
}
