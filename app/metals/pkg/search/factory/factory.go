package factory

import (
	"fmt"

	"github.com/iWorld-y/metal_radar/app/metals/internal/conf"
	"github.com/iWorld-y/metal_radar/app/metals/pkg/duckduckgo"
	"github.com/iWorld-y/metal_radar/app/metals/pkg/search"
	"github.com/iWorld-y/metal_radar/app/metals/pkg/searxng"
	"github.com/iWorld-y/metal_radar/app/metals/pkg/tavily"
)

// NewSearcher 根据配置创建搜索器，默认 duckduckgo
func NewSearcher(c *conf.News) (search.Searcher, error) {
	provider := ""
	if c != nil {
		provider = c.Provider
	}
	switch provider {
	case "", "duckduckgo":
		if c != nil && c.Duckduckgo != nil {
			return duckduckgo.NewClient(c.Duckduckgo.BaseUrl, int(c.Duckduckgo.Timeout)), nil
		}
		return duckduckgo.NewClient("", 0), nil
	case "tavily":
		if c.Tavily == nil || c.Tavily.ApiKey == "" {
			return nil, fmt.Errorf("tavily api key is required")
		}
		return tavily.NewClient(c.Tavily.ApiKey), nil
	case "searxng":
		if c.Searxng == nil || c.Searxng.BaseUrl == "" {
			return nil, fmt.Errorf("searxng base_url is required")
		}
		return searxng.NewClient(c.Searxng.BaseUrl, int(c.Searxng.Timeout)), nil
	default:
		return nil, fmt.Errorf("unknown search provider: %s", provider)
	}
}
