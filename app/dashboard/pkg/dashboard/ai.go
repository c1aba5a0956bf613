package dashboard

import (
	"context"
	"html/template"
	"strings"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/markdown"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/sse"
)

const (
	maxSummaryArticles = 10
	maxAnalyzeHeadline = 5
	maxChatHeadline    = 3
)

// UpdateFunc 流式输出每次增量后的回调，参数为重新渲染后的片段
type UpdateFunc func(html template.HTML)

// Summarize 对当前缓存的资讯做摘要；没有选中元素或没有资讯时不发请求
func (c *Controller) Summarize(ctx context.Context) error {
	c.mu.Lock()
	if c.s.Selected == nil {
		c.mu.Unlock()
		return ErrNoSelection
	}
	if len(c.s.News.Articles) == 0 {
		c.mu.Unlock()
		return ErrNoArticles
	}
	if c.s.Summary.Busy {
		c.mu.Unlock()
		return ErrBusy
	}
	articles := c.s.News.Articles
	if len(articles) > maxSummaryArticles {
		articles = articles[:maxSummaryArticles]
	}
	req := &v1.SummarizeRequest{
		Articles: append([]v1.Article(nil), articles...),
		Metal:    c.s.Selected.NameEN,
		Lang:     c.s.Lang.String(),
	}
	c.s.Summary = AIPanel{State: StateLoading, Busy: true}
	c.mu.Unlock()

	resp, err := c.api.Summarize(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case err != nil:
		c.log.Warnf("summarize %s: %v", req.Metal, err)
		c.s.Summary = AIPanel{State: StateFailed, Err: err.Error()}
	case resp.Error != "":
		c.s.Summary = AIPanel{State: StateFailed, Err: resp.Error}
	default:
		c.s.Summary = AIPanel{State: StateReady, Text: resp.Summary, HTML: markdown.ToHTML(resp.Summary)}
	}
	return nil
}

// prepareAnalyze 进入加载状态并为本次请求建立新的 feed
func (c *Controller) prepareAnalyze() (*v1.AnalyzeRequest, *feed, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.s.Selected == nil {
		return nil, nil, ErrNoSelection
	}
	if c.s.Analysis.Busy {
		return nil, nil, ErrBusy
	}

	priceInfo := PriceText(c.s.Price, c.s.Lang)
	if priceInfo == "" {
		priceInfo = "N/A"
	}
	req := &v1.AnalyzeRequest{
		Metal:        c.s.Selected.NameEN,
		MetalZH:      c.s.Selected.NameZH,
		PriceInfo:    priceInfo,
		NewsSnippets: headlines(c.s.News.Articles, maxAnalyzeHeadline),
		Lang:         c.s.Lang.String(),
	}
	c.s.Analysis = AIPanel{State: StateLoading, Busy: true}
	c.analyzeFeed = newFeed()
	return req, c.analyzeFeed, nil
}

// BeginAnalyze 在后台发起流式分析后立即返回；请求不随 ctx 取消，进度通过 StreamAnalyze 订阅
func (c *Controller) BeginAnalyze(ctx context.Context) error {
	req, f, err := c.prepareAnalyze()
	if err != nil {
		return err
	}
	go c.runAnalyze(context.WithoutCancel(ctx), req, f, nil)
	return nil
}

// StreamAnalyze 跟随当前分析直到结束；ctx 取消只停止推送，分析照常完成
func (c *Controller) StreamAnalyze(ctx context.Context, onUpdate UpdateFunc) error {
	c.mu.Lock()
	f := c.analyzeFeed
	c.mu.Unlock()
	return c.follow(ctx, f, "analysis-body", onUpdate)
}

// Analyze 同步执行一次流式分析
func (c *Controller) Analyze(ctx context.Context, onUpdate UpdateFunc) error {
	req, f, err := c.prepareAnalyze()
	if err != nil {
		return err
	}
	c.runAnalyze(context.WithoutCancel(ctx), req, f, onUpdate)
	return nil
}

// runAnalyze 重新选中或关闭后 f 不再是当前 feed，其后的输出被丢弃
func (c *Controller) runAnalyze(ctx context.Context, req *v1.AnalyzeRequest, f *feed, onUpdate UpdateFunc) {
	defer f.finish()

	var text strings.Builder
	err := c.api.Analyze(ctx, req, func(ev sse.Event) {
		c.mu.Lock()
		current := c.analyzeFeed == f
		if current {
			switch ev.Kind {
			case sse.Content:
				text.WriteString(ev.Data)
				c.s.Analysis.State = StateReady
				c.s.Analysis.Text = text.String()
				c.s.Analysis.HTML = markdown.ToHTML(c.s.Analysis.Text)
			case sse.Error:
				c.s.Analysis.Notice = append(c.s.Analysis.Notice, ev.Data)
			}
		}
		c.mu.Unlock()
		if current {
			f.signal()
			c.notify(onUpdate, "analysis-body")
		}
	})
	if err != nil {
		c.log.Warnf("analyze %s: %v", req.Metal, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.analyzeFeed != f {
		return
	}
	if err != nil {
		c.s.Analysis.State = StateFailed
		c.s.Analysis.Err = err.Error()
	} else if c.s.Analysis.State == StateLoading {
		c.s.Analysis.State = StateEmpty
	}
	c.s.Analysis.Busy = false
}

// prepareChat 乐观地追加用户消息和一个待回复占位
func (c *Controller) prepareChat(msg string) (*v1.ChatRequest, *feed, int, error) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return nil, nil, 0, ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.s.Selected == nil {
		return nil, nil, 0, ErrNoSelection
	}
	if c.s.Chat.Sending {
		return nil, nil, 0, ErrBusy
	}

	c.s.Chat.Log = append(c.s.Chat.Log,
		ChatEntry{Role: "user", Content: msg},
		ChatEntry{Role: "assistant", Typing: true},
	)
	c.s.Chat.History = append(c.s.Chat.History, v1.ChatMessage{Role: "user", Content: msg})
	c.s.Chat.Sending = true

	req := &v1.ChatRequest{
		Messages: append([]v1.ChatMessage(nil), c.s.Chat.History...),
		Metal:    c.s.Selected.NameEN,
		MetalZH:  c.s.Selected.NameZH,
		Context:  "Price: " + PriceText(c.s.Price, c.s.Lang) + "\nRecent news:\n" + headlines(c.s.News.Articles, maxChatHeadline),
		Lang:     c.s.Lang.String(),
	}
	c.chatFeed = newFeed()
	return req, c.chatFeed, len(c.s.Chat.Log) - 1, nil
}

// BeginChat 在后台发出一轮对话后立即返回，进度通过 StreamChat 订阅
func (c *Controller) BeginChat(ctx context.Context, msg string) error {
	req, f, idx, err := c.prepareChat(msg)
	if err != nil {
		return err
	}
	go c.runChat(context.WithoutCancel(ctx), req, f, idx, nil)
	return nil
}

// StreamChat 跟随当前对话直到回复结束
func (c *Controller) StreamChat(ctx context.Context, onUpdate UpdateFunc) error {
	c.mu.Lock()
	f := c.chatFeed
	c.mu.Unlock()
	return c.follow(ctx, f, "chat-log", onUpdate)
}

// SendChat 同步执行一轮对话
func (c *Controller) SendChat(ctx context.Context, msg string, onUpdate UpdateFunc) error {
	req, f, idx, err := c.prepareChat(msg)
	if err != nil {
		return err
	}
	c.runChat(context.WithoutCancel(ctx), req, f, idx, onUpdate)
	return nil
}

// runChat 完成后把完整回复追加为新的一轮对话
func (c *Controller) runChat(ctx context.Context, req *v1.ChatRequest, f *feed, idx int, onUpdate UpdateFunc) {
	defer f.finish()

	// 流式过程中可能发生 CloseDashboard 或重新选中，写回前确认占位仍在
	entry := func() *ChatEntry {
		if c.chatFeed != f || idx >= len(c.s.Chat.Log) || !c.s.Chat.Log[idx].Typing {
			return nil
		}
		return &c.s.Chat.Log[idx]
	}

	var text strings.Builder
	err := c.api.Chat(ctx, req, func(ev sse.Event) {
		c.mu.Lock()
		e := entry()
		if e != nil {
			switch ev.Kind {
			case sse.Content:
				text.WriteString(ev.Data)
				e.Content = text.String()
				e.HTML = markdown.ToHTML(e.Content)
			case sse.Error:
				e.Notice = append(e.Notice, ev.Data)
			}
		}
		c.mu.Unlock()
		if e != nil {
			f.signal()
			c.notify(onUpdate, "chat-log")
		}
	})
	if err != nil {
		c.log.Warnf("chat %s: %v", req.Metal, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e := entry(); e != nil {
		e.Typing = false
		if err != nil {
			e.Err = err.Error()
		} else {
			c.s.Chat.History = append(c.s.Chat.History, v1.ChatMessage{Role: "assistant", Content: text.String()})
		}
	}
	if c.chatFeed == f {
		c.s.Chat.Sending = false
	}
}

func (c *Controller) notify(onUpdate UpdateFunc, fragment string) {
	if onUpdate == nil {
		return
	}
	html, err := RenderFragment(fragment, c.Page())
	if err != nil {
		c.log.Errorf("render %s: %v", fragment, err)
		return
	}
	onUpdate(html)
}
