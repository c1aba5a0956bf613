package conf

type Bootstrap struct {
	Server    *Server
	Data      *Data
	Llm       *LLM
	Price     *Price
	News      *News
	Dashboard *Dashboard
	Log       *Log
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

type Data struct {
	Database *Database
	Cache    *Cache
}

type Database struct {
	Driver string
	Source string
}

type Cache struct {
	Size int32  `json:"size"`
	Ttl  string `json:"ttl"`
}

// LLM 默认 LLM 设置，settings 表为空时写入
type LLM struct {
	BaseUrl     string  `json:"base_url"`
	ApiKey      string  `json:"api_key"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Qps         int32   `json:"qps"`
	Rpm         int32   `json:"rpm"`
}

type Price struct {
	AlphaVantageKey string `json:"alpha_vantage_key"`
	YahooBaseUrl    string `json:"yahoo_base_url"`
	AlphaBaseUrl    string `json:"alpha_base_url"`
	Timeout         string `json:"timeout"`
	Retries         int32  `json:"retries"`
	Qps             int32  `json:"qps"`
	Rpm             int32  `json:"rpm"`
}

type News struct {
	Provider   string      `json:"provider"`
	MaxResults int32       `json:"max_results"`
	Enrich     bool        `json:"enrich"`
	Tavily     *Tavily     `json:"tavily"`
	Searxng    *SearXNG    `json:"searxng"`
	Duckduckgo *DuckDuckGo `json:"duckduckgo"`
}

type Tavily struct {
	ApiKey string `json:"api_key"`
}

type SearXNG struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type DuckDuckGo struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

// Dashboard 页面服务通过 ApiBase 访问本服务的 /api 接口
type Dashboard struct {
	ApiBase    string `json:"api_base"`
	Sessions   int32  `json:"sessions"`
	SessionTtl string `json:"session_ttl"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}
