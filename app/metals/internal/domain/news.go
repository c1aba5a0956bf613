package domain

import "strings"

// Article 资讯条目
type Article struct {
	Title  string
	URL    string
	Body   string
	Date   string
	Source string
	Image  string
}

// NewsQuery 资讯查询参数
type NewsQuery struct {
	Symbol   string
	Category string
	Lang     string
	Name     string
}

var newsTemplates = map[string]string{
	"news":     "{metal} metal market news today",
	"mining":   "{metal} mining production output supply",
	"policy":   "{metal} trade policy tariff regulation export ban",
	"price":    "{metal} price forecast market analysis",
	"industry": "{metal} demand industry application downstream",
	"supply":   "{metal} supply chain smelting refinery inventory",
}

// Normalize 填充默认值：category=news，lang=en，name=symbol
func (q NewsQuery) Normalize() NewsQuery {
	if q.Category == "" {
		q.Category = "news"
	}
	if q.Lang == "" {
		q.Lang = "en"
	}
	if q.Name == "" {
		q.Name = q.Symbol
	}
	return q
}

// SearchText 按类别模板生成搜索词，未知类别按 news 处理，zh 追加 " 中文"
func (q NewsQuery) SearchText() string {
	cat := q.Category
	if cat == "supply_chain" {
		cat = "supply"
	}
	tpl, ok := newsTemplates[cat]
	if !ok {
		tpl = newsTemplates["news"]
	}
	text := strings.ReplaceAll(tpl, "{metal}", q.Name)
	if q.Lang == "zh" {
		text += " 中文"
	}
	return text
}

// CacheKey news:{symbol}:{category}:{lang}
func (q NewsQuery) CacheKey() string {
	return "news:" + q.Symbol + ":" + q.Category + ":" + q.Lang
}

// PriceCacheKey price:{symbol}
func PriceCacheKey(symbol string) string {
	return "price:" + symbol
}
