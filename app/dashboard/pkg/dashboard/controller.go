// Package dashboard 持有单个页面会话的状态，负责选中元素、切换页签、加载面板数据以及 AI 交互。
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-kratos/kratos/v2/log"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/chart"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/client"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/element"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/i18n"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/sse"
)

var (
	ErrNotSelectable = errors.New("element is not tradeable")
	ErrNoSelection   = errors.New("no element selected")
	ErrInvalidTab    = errors.New("invalid tab")
	ErrInvalidCat    = errors.New("invalid news category")
	ErrNoArticles    = errors.New("no articles to summarize")
	ErrEmptyMessage  = errors.New("empty chat message")
	ErrBusy          = errors.New("request already in progress")
)

// API 面板依赖的后端接口，由 client.Client 实现
type API interface {
	Price(ctx context.Context, symbol string) (*v1.PriceReply, error)
	News(ctx context.Context, symbol string, q client.NewsQuery) ([]v1.Article, error)
	Summarize(ctx context.Context, req *v1.SummarizeRequest) (*v1.SummarizeReply, error)
	Analyze(ctx context.Context, req *v1.AnalyzeRequest, h sse.Handler) error
	Chat(ctx context.Context, req *v1.ChatRequest, h sse.Handler) error
	Settings(ctx context.Context) (*v1.SettingsReply, error)
	SaveSettings(ctx context.Context, req *v1.SettingsRequest) error
	ClearCache(ctx context.Context, symbol string) error
}

var _ API = (*client.Client)(nil)

// Pending 一组并发加载
type Pending struct {
	wg sync.WaitGroup
}

// Wait 等待全部加载结束或 ctx 取消
func (p *Pending) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Controller 单个会话的控制器
type Controller struct {
	api   API
	log   *log.Helper
	chart *chart.PriceChart

	mu sync.Mutex
	s  *Session

	// 进行中或最近一次的 AI 流；重新选中或关闭时置空
	analyzeFeed *feed
	chatFeed    *feed
}

// NewController 创建控制器及其会话
func NewController(id string, api API, logger log.Logger) *Controller {
	return &Controller{
		api:   api,
		log:   log.NewHelper(logger),
		chart: chart.NewPriceChart(),
		s:     newSession(id),
	}
}

// Snapshot 返回会话状态副本
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s.clone()
}

// Chart 当前价格图
func (c *Controller) Chart() *chart.PriceChart {
	return c.chart
}

// SelectElement 选中元素并并发加载价格与资讯；价格与资讯互不等待，任一失败不影响另一个
func (c *Controller) SelectElement(ctx context.Context, symbol string) (*Pending, error) {
	el, ok := element.BySymbol(symbol)
	if !ok || !el.Interactive() {
		return nil, fmt.Errorf("%w: %q", ErrNotSelectable, symbol)
	}

	c.mu.Lock()
	c.s.Selected = &el
	c.s.resetElement()
	c.s.Price.State = StateLoading
	c.s.News.State = StateLoading
	category := c.s.Category
	lang := c.s.Lang
	c.analyzeFeed = nil
	c.chatFeed = nil
	c.mu.Unlock()

	c.log.Infof("select element %s", el.Symbol)
	return c.startLoads(ctx, el, category, lang, true), nil
}

// SwitchTab 只切换页签，不重新拉取数据
func (c *Controller) SwitchTab(name string) error {
	tab := Tab(name)
	if !tab.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTab, name)
	}
	c.mu.Lock()
	c.s.Tab = tab
	c.mu.Unlock()
	return nil
}

// CloseDashboard 取消选中并丢弃该元素的全部数据
func (c *Controller) CloseDashboard() {
	c.mu.Lock()
	c.s.Selected = nil
	c.s.resetElement()
	c.analyzeFeed = nil
	c.chatFeed = nil
	c.mu.Unlock()
	c.chart.Clear()
}

// SetLanguage 切换语言；网格、标题、属性与应用面板在下次渲染时按新语言输出
func (c *Controller) SetLanguage(lang i18n.Lang) {
	c.mu.Lock()
	c.s.Lang = lang
	c.mu.Unlock()
}

// ToggleLanguage 在中英文之间切换
func (c *Controller) ToggleLanguage() i18n.Lang {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.Lang = c.s.Lang.Toggle()
	return c.s.Lang
}

// LoadNews 切换资讯类别并重新拉取，结果整体替换旧列表
func (c *Controller) LoadNews(ctx context.Context, category string) (*Pending, error) {
	cat := NewsCategory(category)
	if !cat.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCat, category)
	}

	c.mu.Lock()
	if c.s.Selected == nil {
		c.mu.Unlock()
		return nil, ErrNoSelection
	}
	el := *c.s.Selected
	c.s.Category = cat
	c.s.News = NewsPanel{State: StateLoading}
	c.s.Summary = AIPanel{}
	lang := c.s.Lang
	c.mu.Unlock()

	return c.startLoads(ctx, el, cat, lang, false), nil
}

// Refresh 清理该元素的服务端缓存后重新加载价格与当前类别的资讯
func (c *Controller) Refresh(ctx context.Context) (*Pending, error) {
	c.mu.Lock()
	if c.s.Selected == nil {
		c.mu.Unlock()
		return nil, ErrNoSelection
	}
	el := *c.s.Selected
	cat := c.s.Category
	lang := c.s.Lang
	c.mu.Unlock()

	if err := c.api.ClearCache(ctx, el.Symbol); err != nil {
		c.log.Debugf("clear cache for %s: %v", el.Symbol, err)
	}

	c.mu.Lock()
	c.s.Price = PricePanel{State: StateLoading}
	c.s.News = NewsPanel{State: StateLoading}
	c.s.Summary = AIPanel{}
	c.mu.Unlock()

	return c.startLoads(ctx, el, cat, lang, true), nil
}

// startLoads 各加载独立运行，不随发起请求的 ctx 取消
func (c *Controller) startLoads(ctx context.Context, el element.Element, cat NewsCategory, lang i18n.Lang, withPrice bool) *Pending {
	bg := context.WithoutCancel(ctx)
	p := &Pending{}
	if withPrice {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			c.loadPrice(bg, el)
		}()
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		c.loadNews(bg, el, cat, lang)
	}()
	return p
}

// loadPrice 响应到达时直接写入面板，不校验是否仍是当前选中元素
func (c *Controller) loadPrice(ctx context.Context, el element.Element) {
	data, err := c.api.Price(ctx, el.Symbol)

	var history []chart.Point
	if err == nil && data.Available {
		history = make([]chart.Point, 0, len(data.History))
		for _, h := range data.History {
			history = append(history, chart.Point{Date: h.Date, Close: h.Close})
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case err != nil:
		c.log.Warnf("load price %s: %v", el.Symbol, err)
		c.s.Price = PricePanel{State: StateFailed, Err: err.Error()}
		c.chart.Clear()
	case !data.Available:
		c.s.Price = PricePanel{State: StateEmpty, Data: data}
		c.chart.Clear()
	default:
		c.s.Price = PricePanel{State: StateReady, Data: data}
		if err := c.chart.Render(history); err != nil {
			c.log.Warnf("render chart %s: %v", el.Symbol, err)
		}
		c.s.chartVersion++
	}
}

func (c *Controller) loadNews(ctx context.Context, el element.Element, cat NewsCategory, lang i18n.Lang) {
	articles, err := c.api.News(ctx, el.Symbol, client.NewsQuery{
		Category: string(cat),
		Lang:     lang.String(),
		Name:     el.NameEN,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case err != nil:
		c.log.Warnf("load news %s/%s: %v", el.Symbol, cat, err)
		c.s.News = NewsPanel{State: StateFailed, Err: err.Error()}
	case len(articles) == 0:
		c.s.News = NewsPanel{State: StateEmpty}
	default:
		c.s.News = NewsPanel{State: StateReady, Articles: articles}
	}
}
