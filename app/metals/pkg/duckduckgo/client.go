package duckduckgo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/iWorld-y/metal_radar/app/metals/pkg/search"
)

const defaultBaseURL = "https://html.duckduckgo.com/html/"

// Client DuckDuckGo HTML 版搜索，无需 API Key
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient baseURL 为空时使用 html.duckduckgo.com，timeout 单位为秒
func NewClient(baseURL string, timeout int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 20 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: t},
	}
}

var _ search.Searcher = (*Client)(nil)

// Search 抓取结果页；news 主题只取最近一周
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", req.Query)
	if req.Topic == "news" {
		q.Set("df", "w")
	}
	if req.Lang == "zh" {
		q.Set("kl", "cn-zh")
	} else {
		q.Set("kl", "us-en")
	}
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo error (status %d)", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html failed: %w", err)
	}

	var results []search.Result
	doc.Find(".result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if req.MaxResults > 0 && len(results) >= req.MaxResults {
			return false
		}
		if s.HasClass("result--ad") {
			return true
		}
		a := s.Find(".result__a").First()
		href, _ := a.Attr("href")
		link := resolveLink(href)
		title := strings.TrimSpace(a.Text())
		if title == "" || link == "" {
			return true
		}
		results = append(results, search.Result{
			Title:   title,
			URL:     link,
			Content: strings.TrimSpace(s.Find(".result__snippet").Text()),
			Source:  strings.TrimSpace(s.Find(".result__url").Text()),
		})
		return true
	})
	return &search.Response{Results: results}, nil
}

// resolveLink 解开 //duckduckgo.com/l/?uddg= 跳转链接
func resolveLink(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return href
}
