package domain

// 对话角色
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message 一条对话消息
type Message struct {
	Role    string
	Content string
}

// Settings LLM 连接设置
type Settings struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// Configured 是否已设置 API Key
func (s *Settings) Configured() bool {
	return s != nil && s.APIKey != ""
}

// SettingsPatch 部分更新，nil 字段保持不变
type SettingsPatch struct {
	APIKey      *string
	BaseURL     *string
	Model       *string
	Temperature *float64
}

// SummarizeInput 摘要请求
type SummarizeInput struct {
	Articles []Article
	Metal    string
	Lang     string
}

// AnalyzeInput 分析请求
type AnalyzeInput struct {
	Metal        string
	MetalZH      string
	PriceInfo    string
	NewsSnippets string
	Lang         string
}

// ChatInput 对话请求
type ChatInput struct {
	Messages []Message
	Metal    string
	MetalZH  string
	Context  string
	Lang     string
}
