package usecase

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
	"github.com/iWorld-y/metal_radar/app/metals/internal/repo"
)

// PriceUseCase 多数据源价格查询
type PriceUseCase struct {
	sources []repo.PriceSource
	cache   repo.CacheRepo
	log     *log.Helper
}

// NewPriceUseCase sources 按优先级排列
func NewPriceUseCase(sources []repo.PriceSource, cache repo.CacheRepo, logger log.Logger) *PriceUseCase {
	return &PriceUseCase{sources: sources, cache: cache, log: log.NewHelper(logger)}
}

// Get 依次尝试各数据源，返回第一个成功的报价；只缓存成功结果
func (uc *PriceUseCase) Get(ctx context.Context, symbol string) *domain.PriceResult {
	symbol = strings.TrimSpace(symbol)
	key := domain.PriceCacheKey(symbol)
	if v, ok := uc.cache.Get(key); ok {
		if r, ok := v.(*domain.PriceResult); ok && r.Available() {
			return r
		}
	}

	var errs []domain.SourceError
	for _, src := range uc.sources {
		if ctx.Err() != nil {
			errs = append(errs, domain.SourceError{Source: src.Name(), Message: ctx.Err().Error()})
			continue
		}
		q, err := src.Quote(ctx, symbol)
		if err != nil {
			uc.log.Warnf("Source %s failed for %s: %v", src.Name(), symbol, err)
			errs = append(errs, domain.SourceError{Source: src.Name(), Message: err.Error()})
			continue
		}
		r := &domain.PriceResult{Symbol: symbol, Source: src.Name(), Quote: q}
		uc.cache.Set(key, r)
		uc.log.Infof("Successfully fetched price for %s from %s source: $%.2f", symbol, src.Name(), q.Price)
		return r
	}

	r := domain.AllSourcesFailed(symbol, errs)
	uc.log.Warnf("Failed to fetch price for %s: %s", symbol, r.Message)
	return r
}
