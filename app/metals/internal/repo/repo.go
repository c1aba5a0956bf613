package repo

import (
	"context"

	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
)

// PriceSource 单个价格数据源
type PriceSource interface {
	// Name 数据源名称，例如 yahoo_finance
	Name() string
	// Quote 获取报价，失败原因会原样出现在汇总消息中
	Quote(ctx context.Context, symbol string) (*domain.Quote, error)
}

// NewsRepo 资讯搜索
type NewsRepo interface {
	Search(ctx context.Context, query string, maxResults int) ([]domain.Article, error)
}

// SettingsRepo LLM 设置持久化
type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s *domain.Settings) error
}

// CacheRepo 带过期时间的键值缓存
type CacheRepo interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	// DeleteSymbol 删除第二段等于 symbol 的所有键
	DeleteSymbol(symbol string) int
	Purge()
}

// LLMRepo 大模型调用
type LLMRepo interface {
	Generate(ctx context.Context, s *domain.Settings, msgs []domain.Message) (string, error)
	// Stream 每收到一段增量调用一次 onDelta
	Stream(ctx context.Context, s *domain.Settings, msgs []domain.Message, onDelta func(string) error) error
}
