// Package client 是 metals HTTP 接口的客户端，面板与命令行工具都只通过它访问后端。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/sse"
)

// StatusError 非 2xx 响应
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, strings.TrimSpace(strings.TrimPrefix(e.Status, fmt.Sprint(e.Code))))
}

// Client metals 接口客户端
type Client struct {
	baseURL string
	hc      *http.Client
	log     *log.Helper
}

// Option 客户端选项
type Option func(*Client)

// WithHTTPClient 替换底层 http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLogger 设置日志
func WithLogger(logger log.Logger) Option {
	return func(c *Client) { c.log = log.NewHelper(logger) }
}

// New 创建客户端，baseURL 形如 http://127.0.0.1:8000
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      http.DefaultClient,
		log:     log.NewHelper(log.DefaultLogger),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Price 获取价格；available=false 属于正常结果
func (c *Client) Price(ctx context.Context, symbol string) (*v1.PriceReply, error) {
	var out v1.PriceReply
	if err := c.getJSON(ctx, "/api/price/"+url.PathEscape(symbol), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportURL 价格历史 xlsx 下载地址
func (c *Client) ExportURL(symbol string) string {
	return c.baseURL + "/api/price/" + url.PathEscape(symbol) + "/export"
}

// NewsQuery 资讯查询参数
type NewsQuery struct {
	Category string
	Lang     string
	Name     string
}

// News 获取资讯列表
func (c *Client) News(ctx context.Context, symbol string, q NewsQuery) ([]v1.Article, error) {
	params := url.Values{}
	params.Set("category", q.Category)
	params.Set("lang", q.Lang)
	params.Set("name", q.Name)

	var out v1.NewsReply
	if err := c.getJSON(ctx, "/api/news/"+url.PathEscape(symbol), params, &out); err != nil {
		return nil, err
	}
	return out.Articles, nil
}

// Summarize 批量摘要；服务端返回的 error 字段即使在 4xx/5xx 下也会被解析出来
func (c *Client) Summarize(ctx context.Context, req *v1.SummarizeRequest) (*v1.SummarizeReply, error) {
	resp, err := c.postJSON(ctx, "/api/ai/summarize", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out v1.SummarizeReply
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if !ok(resp) {
			return nil, statusError(resp)
		}
		return nil, fmt.Errorf("decode summarize response: %w", err)
	}
	if !ok(resp) && out.Error == "" {
		return nil, statusError(resp)
	}
	return &out, nil
}

// Analyze 流式分析
func (c *Client) Analyze(ctx context.Context, req *v1.AnalyzeRequest, h sse.Handler) error {
	return c.stream(ctx, "/api/ai/analyze", req, h)
}

// Chat 流式对话
func (c *Client) Chat(ctx context.Context, req *v1.ChatRequest, h sse.Handler) error {
	return c.stream(ctx, "/api/ai/chat", req, h)
}

// Settings 读取 LLM 设置
func (c *Client) Settings(ctx context.Context) (*v1.SettingsReply, error) {
	var out v1.SettingsReply
	if err := c.getJSON(ctx, "/api/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveSettings 保存 LLM 设置
func (c *Client) SaveSettings(ctx context.Context, req *v1.SettingsRequest) error {
	return c.postNoContent(ctx, "/api/settings", req)
}

// ClearCache 清理缓存，symbol 为空时清理全部
func (c *Client) ClearCache(ctx context.Context, symbol string) error {
	return c.postNoContent(ctx, "/api/cache/clear", &v1.CacheClearRequest{Symbol: symbol})
}

// stream 发起流式请求；服务端以 JSON {error} 拒绝时转成一个 Error 事件
func (c *Client) stream(ctx context.Context, path string, body any, h sse.Handler) error {
	resp, err := c.postJSON(ctx, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if isJSON(resp) {
		var e v1.ErrorReply
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			h(sse.Event{Kind: sse.Error, Data: e.Error})
			return nil
		}
		if !ok(resp) {
			return statusError(resp)
		}
		return nil
	}
	if !ok(resp) {
		return statusError(resp)
	}
	return sse.Consume(ctx, resp.Body, h)
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debugf("GET %s", u)
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response failed: %w", err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request failed: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debugf("POST %s", path)
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) postNoContent(ctx context.Context, path string, body any) error {
	resp, err := c.postJSON(ctx, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if !ok(resp) {
		return statusError(resp)
	}
	return nil
}

func ok(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func statusError(resp *http.Response) error {
	return &StatusError{Code: resp.StatusCode, Status: resp.Status}
}

func isJSON(resp *http.Response) bool {
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}
