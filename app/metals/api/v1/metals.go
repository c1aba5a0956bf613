// Package v1 定义 metals 服务 HTTP 接口的请求与响应结构，服务端与客户端共用。
package v1

// MaskedAPIKey 已配置 API Key 时返回的占位符
const MaskedAPIKey = "***"

// HistoryPoint 日线数据点
type HistoryPoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open,omitempty"`
	High   float64 `json:"high,omitempty"`
	Low    float64 `json:"low,omitempty"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume,omitempty"`
}

// PriceReply GET /api/price/{symbol}
type PriceReply struct {
	Symbol    string         `json:"symbol,omitempty"`
	Ticker    string         `json:"ticker,omitempty"`
	Available bool           `json:"available"`
	Source    string         `json:"source,omitempty"`
	Message   string         `json:"message,omitempty"`
	Price     float64        `json:"price"`
	Change    float64        `json:"change"`
	ChangePct float64        `json:"change_pct"`
	Currency  string         `json:"currency,omitempty"`
	Open      float64        `json:"open"`
	High      float64        `json:"high"`
	Low       float64        `json:"low"`
	Volume    int64          `json:"volume,omitempty"`
	Date      string         `json:"date,omitempty"`
	History   []HistoryPoint `json:"history"`
}

// Article 资讯条目
type Article struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Body   string `json:"body"`
	Source string `json:"source,omitempty"`
	Date   string `json:"date,omitempty"`
	Image  string `json:"image,omitempty"`
}

// NewsReply GET /api/news/{symbol}
type NewsReply struct {
	Symbol   string    `json:"symbol,omitempty"`
	Category string    `json:"category,omitempty"`
	Articles []Article `json:"articles"`
}

// SummarizeRequest POST /api/ai/summarize
type SummarizeRequest struct {
	Articles []Article `json:"articles"`
	Metal    string    `json:"metal"`
	Lang     string    `json:"lang"`
}

// SummarizeReply 成功时只有 summary，失败时只有 error
type SummarizeReply struct {
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AnalyzeRequest POST /api/ai/analyze
type AnalyzeRequest struct {
	Metal        string `json:"metal"`
	MetalZH      string `json:"metal_zh"`
	PriceInfo    string `json:"price_info"`
	NewsSnippets string `json:"news_snippets"`
	Lang         string `json:"lang"`
}

// ChatMessage 对话轮次，role 为 user 或 assistant
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest POST /api/ai/chat
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Metal    string        `json:"metal"`
	MetalZH  string        `json:"metal_zh"`
	Context  string        `json:"context"`
	Lang     string        `json:"lang"`
}

// SettingsReply GET /api/settings，api_key 只会是 "***" 或空
type SettingsReply struct {
	APIKey      string  `json:"api_key"`
	BaseURL     string  `json:"base_url"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
}

// SettingsRequest POST /api/settings，未修改的 api_key 不发送
type SettingsRequest struct {
	APIKey      *string  `json:"api_key,omitempty"`
	BaseURL     string   `json:"base_url"`
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// CacheClearRequest POST /api/cache/clear
type CacheClearRequest struct {
	Symbol string `json:"symbol,omitempty"`
}

// StatusReply 通用成功响应
type StatusReply struct {
	Status string `json:"status"`
}

// ErrorReply 通用错误响应
type ErrorReply struct {
	Error string `json:"error"`
}
