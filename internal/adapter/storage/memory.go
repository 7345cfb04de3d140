package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/internal/core/port"
)

var (
	_ port.CartStorage        = (*MemoryCarts)(nil)
	_ port.SubmissionsStorage = (*MemorySubmissions)(nil)
)

// MemoryCarts keeps serialized carts in process memory.
type MemoryCarts struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryCarts() *MemoryCarts {
	return &MemoryCarts{data: make(map[string][]byte)}
}

func (m *MemoryCarts) LoadCart(ctx context.Context, visitorID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.data[cartKey(visitorID)]), nil
}

func (m *MemoryCarts) SaveCart(ctx context.Context, visitorID string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[cartKey(visitorID)] = slices.Clone(data)
	return nil
}

func (m *MemoryCarts) DeleteCart(ctx context.Context, visitorID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, cartKey(visitorID))
	return nil
}

// MemorySubmissions keeps submissions in process memory.
type MemorySubmissions struct {
	mu   sync.Mutex
	subs []domain.Submission
}

func NewMemorySubmissions() *MemorySubmissions {
	return &MemorySubmissions{}
}

func (m *MemorySubmissions) StoreSubmission(ctx context.Context, s domain.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, s)
	return nil
}

func (m *MemorySubmissions) Submissions() []domain.Submission {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.subs)
}

func cartKey(visitorID string) string {
	return domain.CartStorageKey + ":" + visitorID
}
