package usecase

import (
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/metal_radar/app/metals/internal/repo"
)

// CacheUseCase 缓存清理
type CacheUseCase struct {
	cache repo.CacheRepo
	log   *log.Helper
}

func NewCacheUseCase(cache repo.CacheRepo, logger log.Logger) *CacheUseCase {
	return &CacheUseCase{cache: cache, log: log.NewHelper(logger)}
}

// Clear symbol 为空时清空全部缓存
func (uc *CacheUseCase) Clear(symbol string) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		uc.cache.Purge()
		uc.log.Info("cache cleared")
		return
	}
	n := uc.cache.DeleteSymbol(symbol)
	uc.log.Infof("cache cleared for %s (%d entries)", symbol, n)
}
