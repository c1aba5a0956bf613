package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
)

// mockCache 模拟缓存
type mockCache struct {
	mu     sync.Mutex
	items  map[string]any
	purged bool
}

func newMockCache() *mockCache {
	return &mockCache{items: map[string]any{}}
}

func (m *mockCache) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok
}

func (m *mockCache) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

func (m *mockCache) DeleteSymbol(symbol string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k := range m.items {
		if parts := strings.Split(k, ":"); len(parts) > 1 && parts[1] == symbol {
			delete(m.items, k)
			n++
		}
	}
	return n
}

func (m *mockCache) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = map[string]any{}
	m.purged = true
}

// mockSettingsRepo 模拟设置仓库
type mockSettingsRepo struct {
	s     domain.Settings
	err   error
	saved *domain.Settings
}

func (m *mockSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.s
	return &s, nil
}

func (m *mockSettingsRepo) Save(ctx context.Context, s *domain.Settings) error {
	if m.err != nil {
		return m.err
	}
	cp := *s
	m.saved = &cp
	m.s = cp
	return nil
}

// mockLLM 记录收到的消息
type mockLLM struct {
	msgs   []domain.Message
	reply  string
	chunks []string
	err    error
}

func (m *mockLLM) Generate(ctx context.Context, s *domain.Settings, msgs []domain.Message) (string, error) {
	m.msgs = msgs
	return m.reply, m.err
}

func (m *mockLLM) Stream(ctx context.Context, s *domain.Settings, msgs []domain.Message, onDelta func(string) error) error {
	m.msgs = msgs
	if m.err != nil {
		return m.err
	}
	for _, c := range m.chunks {
		if err := onDelta(c); err != nil {
			return err
		}
	}
	return nil
}
