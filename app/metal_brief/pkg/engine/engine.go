package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/client"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/element"
	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/metals/pkg/logger"

	"github.com/iWorld-y/metal_radar/app/metal_brief/pkg/config"
	"github.com/iWorld-y/metal_radar/app/metal_brief/pkg/model"
)

// API 日报用到的 metals 接口
type API interface {
	Price(ctx context.Context, symbol string) (*v1.PriceReply, error)
	News(ctx context.Context, symbol string, q client.NewsQuery) ([]v1.Article, error)
	Summarize(ctx context.Context, req *v1.SummarizeRequest) (*v1.SummarizeReply, error)
}

// Store 日报落库，可为空
type Store interface {
	CreateRun(ctx context.Context) (int64, error)
	SaveMetalBrief(ctx context.Context, runID int64, b *model.MetalBrief) error
}

// Engine 核心处理引擎
type Engine struct {
	cfg     *config.Config
	api     API
	store   Store
	limiter *rate.Limiter
	now     func() time.Time
}

// NewEngine 创建引擎实例
func NewEngine(cfg *config.Config, api API, store Store) *Engine {
	// Limit 设置为 RPM/60，Burst 设置为 QPS
	limit := rate.Limit(float64(cfg.Concurrency.RPM) / 60.0)
	limiter := rate.NewLimiter(limit, cfg.Concurrency.QPS)
	logger.Log.Debugf("限流器已配置: Limit=%.2f req/s, Burst=%d", limit, cfg.Concurrency.QPS)

	return &Engine{
		cfg:     cfg,
		api:     api,
		store:   store,
		limiter: limiter,
		now:     time.Now,
	}
}

// RunOptions 运行选项
type RunOptions struct {
	Symbols          []string // 为空时使用配置中的品种
	ProgressCallback func(status string, progress int)
}

// Run 执行一次日报生成任务，单个金属失败只记录在条目里
func (e *Engine) Run(ctx context.Context, opts RunOptions) (*model.Brief, error) {
	symbols := opts.Symbols
	if len(symbols) == 0 {
		symbols = e.cfg.Symbols
	}

	var metals []element.Element
	for _, sym := range symbols {
		el, ok := element.BySymbol(strings.TrimSpace(sym))
		if !ok || !el.Interactive() {
			logger.Log.Warnf("跳过不支持的金属品种: %q", sym)
			continue
		}
		metals = append(metals, el)
	}
	if len(metals) == 0 {
		return nil, fmt.Errorf("no tradeable symbols provided")
	}

	logger.Log.Infof("开始生成日报，包含 %d 个金属品种", len(metals))
	progress(opts, "starting", 0)

	var runID int64
	if e.store != nil {
		rid, err := e.store.CreateRun(ctx)
		if err != nil {
			logger.Log.Errorf("无法创建运行记录: %v", err)
		} else {
			runID = rid
		}
	}

	results := make([]model.MetalBrief, len(metals))
	sem := make(chan struct{}, e.cfg.Concurrency.Workers)
	var mu sync.Mutex
	var wg sync.WaitGroup
	completed := 0

	for i, el := range metals {
		wg.Add(1)
		go func(i int, el element.Element) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			b := e.collect(ctx, el)
			results[i] = *b

			if e.store != nil && runID != 0 {
				if err := e.store.SaveMetalBrief(ctx, runID, b); err != nil {
					logger.Log.Errorf("保存日报条目失败 [%s]: %v", el.Symbol, err)
				}
			}

			mu.Lock()
			completed++
			pct := completed * 100 / len(metals)
			mu.Unlock()
			progress(opts, "processed "+el.Symbol, pct)
			logger.Log.Infof("金属 [%s] 处理完成 (%d 篇资讯, %d 个错误)", el.Symbol, len(b.Articles), len(b.Errors))
		}(i, el)
	}
	wg.Wait()

	brief := &model.Brief{
		RunID:  runID,
		Date:   e.now().Format(time.DateOnly),
		Lang:   e.cfg.Lang,
		Metals: results,
	}
	for _, m := range results {
		brief.Articles += len(m.Articles)
	}
	progress(opts, "completed", 100)
	return brief, nil
}

func (e *Engine) collect(ctx context.Context, el element.Element) *model.MetalBrief {
	b := &model.MetalBrief{
		Symbol:   el.Symbol,
		Name:     el.NameEN,
		NameZH:   el.NameZH,
		Category: element.CategoryName(el.Tradeable, e.cfg.Lang),
	}

	if err := e.limiter.Wait(ctx); err != nil {
		b.Errors = append(b.Errors, err.Error())
		return b
	}
	price, err := e.api.Price(ctx, el.Symbol)
	if err != nil {
		logger.Log.Errorf("获取价格失败 [%s]: %v", el.Symbol, err)
		b.Errors = append(b.Errors, fmt.Sprintf("price: %v", err))
	} else {
		b.Price = price
	}

	if err := e.limiter.Wait(ctx); err != nil {
		b.Errors = append(b.Errors, err.Error())
		return b
	}
	articles, err := e.api.News(ctx, el.Symbol, client.NewsQuery{
		Category: e.cfg.Category,
		Lang:     e.cfg.Lang,
		Name:     el.NameEN,
	})
	if err != nil {
		logger.Log.Errorf("获取资讯失败 [%s]: %v", el.Symbol, err)
		b.Errors = append(b.Errors, fmt.Sprintf("news: %v", err))
	}
	if len(articles) > e.cfg.MaxArticles {
		articles = articles[:e.cfg.MaxArticles]
	}
	b.Articles = articles

	if !e.cfg.Summarize || len(articles) == 0 {
		return b
	}
	if err := e.limiter.Wait(ctx); err != nil {
		b.Errors = append(b.Errors, err.Error())
		return b
	}
	reply, err := e.api.Summarize(ctx, &v1.SummarizeRequest{
		Articles: articles,
		Metal:    el.NameEN,
		Lang:     e.cfg.Lang,
	})
	switch {
	case err != nil:
		logger.Log.Errorf("生成摘要失败 [%s]: %v", el.Symbol, err)
		b.Errors = append(b.Errors, fmt.Sprintf("summary: %v", err))
	case reply.Error != "":
		b.Errors = append(b.Errors, "summary: "+reply.Error)
	default:
		b.Summary = reply.Summary
	}
	return b
}

func progress(opts RunOptions, status string, pct int) {
	if opts.ProgressCallback != nil {
		opts.ProgressCallback(status, pct)
	}
}
