package data

import (
	"context"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-shiori/go-readability"

	"github.com/iWorld-y/metal_radar/app/metals/internal/conf"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
	"github.com/iWorld-y/metal_radar/app/metals/internal/repo"
	"github.com/iWorld-y/metal_radar/app/metals/pkg/search"
	"github.com/iWorld-y/metal_radar/app/metals/pkg/search/factory"
)

const maxBodyRunes = 400

// articleFetcher 抓取正文，测试中替换
type articleFetcher func(url string) (string, error)

type newsRepo struct {
	searcher search.Searcher
	enrich   bool
	fetch    articleFetcher
	log      *log.Helper
}

// NewNewsRepo 按配置选择搜索服务；enrich 打开时为空摘要补抓正文
func NewNewsRepo(c *conf.News, logger log.Logger) (repo.NewsRepo, error) {
	s, err := factory.NewSearcher(c)
	if err != nil {
		return nil, err
	}
	return &newsRepo{
		searcher: s,
		enrich:   c != nil && c.Enrich,
		fetch:    fetchAndCleanContent,
		log:      log.NewHelper(logger),
	}, nil
}

func fetchAndCleanContent(url string) (string, error) {
	article, err := readability.FromURL(url, 30*time.Second)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}

// Search 先按新闻主题搜索，失败后退回普通搜索
func (r *newsRepo) Search(ctx context.Context, query string, maxResults int) ([]domain.Article, error) {
	lang := "en"
	if strings.HasSuffix(query, " 中文") {
		lang = "zh"
	}
	req := &search.Request{Query: query, Topic: "news", MaxResults: maxResults, Lang: lang}
	resp, err := r.searcher.Search(ctx, req)
	if err != nil {
		r.log.Warnf("news search failed for %q: %v, falling back to text search", query, err)
		req.Topic = "general"
		resp, err = r.searcher.Search(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	articles := make([]domain.Article, 0, len(resp.Results))
	for _, res := range resp.Results {
		if maxResults > 0 && len(articles) >= maxResults {
			break
		}
		a := domain.Article{
			Title:  res.Title,
			URL:    res.URL,
			Body:   res.Content,
			Date:   res.PublishedDate,
			Source: res.Source,
			Image:  res.Image,
		}
		if a.Body == "" && r.enrich && a.URL != "" {
			if text, err := r.fetch(a.URL); err != nil {
				r.log.Debugf("fetch content failed for %s: %v", a.URL, err)
			} else {
				a.Body = truncateRunes(strings.Join(strings.Fields(text), " "), maxBodyRunes)
			}
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func truncateRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n]) + "..."
}
