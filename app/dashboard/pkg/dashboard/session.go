package dashboard

import (
	"html/template"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/element"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/i18n"
)

// Tab 结果页签
type Tab string

const (
	TabOverview Tab = "overview"
	TabNews     Tab = "news"
	TabAnalysis Tab = "analysis"
	TabChat     Tab = "chat"
)

// Tabs 页签顺序
var Tabs = []Tab{TabOverview, TabNews, TabAnalysis, TabChat}

func (t Tab) valid() bool {
	for _, v := range Tabs {
		if v == t {
			return true
		}
	}
	return false
}

func (t Tab) labelKey() string {
	return "tab_" + string(t)
}

// NewsCategory 资讯类别
type NewsCategory string

const (
	CategoryNews        NewsCategory = "news"
	CategoryMining      NewsCategory = "mining"
	CategoryPolicy      NewsCategory = "policy"
	CategoryPrice       NewsCategory = "price"
	CategoryIndustry    NewsCategory = "industry"
	CategorySupplyChain NewsCategory = "supply_chain"
)

// Categories 资讯类别顺序
var Categories = []NewsCategory{
	CategoryNews, CategoryMining, CategoryPolicy, CategoryPrice, CategoryIndustry, CategorySupplyChain,
}

var categoryKeys = map[NewsCategory]string{
	CategoryNews:        "cat_all",
	CategoryMining:      "cat_mining",
	CategoryPolicy:      "cat_policy",
	CategoryPrice:       "cat_price",
	CategoryIndustry:    "cat_industry",
	CategorySupplyChain: "cat_supply",
}

func (c NewsCategory) valid() bool {
	_, ok := categoryKeys[c]
	return ok
}

// State 面板加载状态
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateEmpty
	StateFailed
)

// PricePanel 价格面板
type PricePanel struct {
	State State
	Data  *v1.PriceReply
	Err   string
}

// NewsPanel 资讯面板，Articles 同时是摘要、分析和对话使用的资讯缓存
type NewsPanel struct {
	State    State
	Articles []v1.Article
	Err      string
}

// AIPanel 摘要或分析输出
type AIPanel struct {
	State  State
	Busy   bool
	Text   string
	HTML   template.HTML
	Notice []string
	Err    string
}

// ChatEntry 对话区域中显示的一条消息
type ChatEntry struct {
	Role    string
	Content string
	HTML    template.HTML
	Typing  bool
	Notice  []string
	Err     string
}

// ChatPanel 对话状态；History 是发给后端的完整对话，Log 是页面上显示的内容
type ChatPanel struct {
	History []v1.ChatMessage
	Log     []ChatEntry
	Sending bool
}

// SettingsForm 设置表单
type SettingsForm struct {
	Open        bool
	BaseURL     string
	Model       string
	Temperature float64
	KeySet      bool
	Online      bool
}

// Session 页面会话状态，只由 Controller 修改
type Session struct {
	ID       string
	Lang     i18n.Lang
	Selected *element.Element
	Tab      Tab
	Category NewsCategory
	Price    PricePanel
	News     NewsPanel
	Summary  AIPanel
	Analysis AIPanel
	Chat     ChatPanel
	Settings SettingsForm

	chartVersion int
}

func newSession(id string) *Session {
	return &Session{
		ID:       id,
		Lang:     i18n.EN,
		Tab:      TabOverview,
		Category: CategoryNews,
		Settings: SettingsForm{Model: defaultModel, Temperature: defaultTemperature},
	}
}

// resetElement 清空与所选元素相关的全部状态
func (s *Session) resetElement() {
	s.Tab = TabOverview
	s.Category = CategoryNews
	s.Price = PricePanel{}
	s.News = NewsPanel{}
	s.Summary = AIPanel{}
	s.Analysis = AIPanel{}
	s.Chat = ChatPanel{}
}

// clone 深拷贝，供渲染使用
func (s *Session) clone() Session {
	out := *s
	if s.Selected != nil {
		e := *s.Selected
		out.Selected = &e
	}
	out.News.Articles = append([]v1.Article(nil), s.News.Articles...)
	out.Summary.Notice = append([]string(nil), s.Summary.Notice...)
	out.Analysis.Notice = append([]string(nil), s.Analysis.Notice...)
	out.Chat.History = append([]v1.ChatMessage(nil), s.Chat.History...)
	out.Chat.Log = make([]ChatEntry, len(s.Chat.Log))
	for i, e := range s.Chat.Log {
		e.Notice = append([]string(nil), e.Notice...)
		out.Chat.Log[i] = e
	}
	return out
}
