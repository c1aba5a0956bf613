package data

import (
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/iWorld-y/metal_radar/app/metals/internal/conf"
	"github.com/iWorld-y/metal_radar/app/metals/internal/repo"
)

const (
	defaultCacheSize = 512
	defaultCacheTTL  = 5 * time.Minute
)

type cacheRepo struct {
	lru *expirable.LRU[string, any]
	log *log.Helper
}

// NewCacheRepo 进程内 TTL 缓存，默认 512 条、5 分钟
func NewCacheRepo(c *conf.Data, logger log.Logger) repo.CacheRepo {
	size := defaultCacheSize
	ttl := defaultCacheTTL
	if c != nil && c.Cache != nil {
		if c.Cache.Size > 0 {
			size = int(c.Cache.Size)
		}
		if d, err := time.ParseDuration(c.Cache.Ttl); err == nil && d > 0 {
			ttl = d
		}
	}
	return newCacheRepo(size, ttl, logger)
}

func newCacheRepo(size int, ttl time.Duration, logger log.Logger) *cacheRepo {
	return &cacheRepo{
		lru: expirable.NewLRU[string, any](size, nil, ttl),
		log: log.NewHelper(logger),
	}
}

func (r *cacheRepo) Get(key string) (any, bool) {
	return r.lru.Get(key)
}

func (r *cacheRepo) Set(key string, value any) {
	r.lru.Add(key, value)
}

func (r *cacheRepo) DeleteSymbol(symbol string) int {
	n := 0
	for _, key := range r.lru.Keys() {
		parts := strings.Split(key, ":")
		if len(parts) > 1 && parts[1] == symbol {
			r.lru.Remove(key)
			n++
		}
	}
	r.log.Debugf("cache: removed %d entries for %s", n, symbol)
	return n
}

func (r *cacheRepo) Purge() {
	r.lru.Purge()
}
