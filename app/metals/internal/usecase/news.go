package usecase

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/metal_radar/app/metals/internal/conf"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
	"github.com/iWorld-y/metal_radar/app/metals/internal/repo"
)

const defaultNewsResults = 12

// NewsUseCase 按类别搜索资讯
type NewsUseCase struct {
	repo       repo.NewsRepo
	cache      repo.CacheRepo
	maxResults int
	log        *log.Helper
}

// NewNewsUseCase 未配置 max_results 时每次最多 12 条
func NewNewsUseCase(r repo.NewsRepo, cache repo.CacheRepo, c *conf.News, logger log.Logger) *NewsUseCase {
	maxResults := defaultNewsResults
	if c != nil && c.MaxResults > 0 {
		maxResults = int(c.MaxResults)
	}
	return &NewsUseCase{repo: r, cache: cache, maxResults: maxResults, log: log.NewHelper(logger)}
}

// Search 搜索失败时返回空列表；空结果同样缓存
func (uc *NewsUseCase) Search(ctx context.Context, q domain.NewsQuery) []domain.Article {
	q = q.Normalize()
	key := q.CacheKey()
	if v, ok := uc.cache.Get(key); ok {
		if articles, ok := v.([]domain.Article); ok {
			return articles
		}
	}

	text := q.SearchText()
	articles, err := uc.repo.Search(ctx, text, uc.maxResults)
	if err != nil {
		uc.log.Errorf("news search failed for %s (%q): %v", q.Symbol, text, err)
		articles = nil
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	uc.cache.Set(key, articles)
	return articles
}
