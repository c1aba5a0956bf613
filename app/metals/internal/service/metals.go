// Package service 暴露 metals 服务的 JSON 接口、流式 AI 接口、页面与 MCP 工具。
package service

import (
	"fmt"
	nethttp "net/http"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
	"github.com/iWorld-y/metal_radar/app/metals/internal/usecase"
)

// MetalsService /api 下的 JSON 接口
type MetalsService struct {
	price    *usecase.PriceUseCase
	news     *usecase.NewsUseCase
	ai       *usecase.AIUseCase
	settings *usecase.SettingsUseCase
	cache    *usecase.CacheUseCase
	log      *log.Helper
}

func NewMetalsService(
	price *usecase.PriceUseCase,
	news *usecase.NewsUseCase,
	ai *usecase.AIUseCase,
	settings *usecase.SettingsUseCase,
	cache *usecase.CacheUseCase,
	logger log.Logger,
) *MetalsService {
	return &MetalsService{
		price:    price,
		news:     news,
		ai:       ai,
		settings: settings,
		cache:    cache,
		log:      log.NewHelper(logger),
	}
}

// Register 注册 JSON 路由与流式路由
func (s *MetalsService) Register(srv *http.Server) {
	r := srv.Route("/api")
	r.GET("/price/{symbol}", s.GetPrice)
	r.GET("/price/{symbol}/export", s.ExportPrice)
	r.GET("/news/{symbol}", s.GetNews)
	r.POST("/ai/summarize", s.Summarize)
	r.GET("/settings", s.GetSettings)
	r.POST("/settings", s.UpdateSettings)
	r.POST("/cache/clear", s.ClearCache)

	srv.HandleFunc("/api/ai/analyze", s.Analyze)
	srv.HandleFunc("/api/ai/chat", s.Chat)
}

// writeError 以 {"error": ...} 返回，kratos 错误使用其状态码与消息
func writeError(ctx http.Context, err error) error {
	if e := new(kerrors.Error); kerrors.As(err, &e) {
		return ctx.JSON(int(e.Code), v1.ErrorReply{Error: e.Message})
	}
	return ctx.JSON(nethttp.StatusInternalServerError, v1.ErrorReply{Error: err.Error()})
}

func (s *MetalsService) GetPrice(ctx http.Context) error {
	r := s.price.Get(ctx, ctx.Vars().Get("symbol"))
	return ctx.JSON(nethttp.StatusOK, toPriceReply(r))
}

func (s *MetalsService) GetNews(ctx http.Context) error {
	q := ctx.Query()
	query := domain.NewsQuery{
		Symbol:   ctx.Vars().Get("symbol"),
		Category: q.Get("category"),
		Lang:     q.Get("lang"),
		Name:     q.Get("name"),
	}.Normalize()
	articles := s.news.Search(ctx, query)
	return ctx.JSON(nethttp.StatusOK, v1.NewsReply{
		Symbol:   query.Symbol,
		Category: query.Category,
		Articles: toArticles(articles),
	})
}

func (s *MetalsService) Summarize(ctx http.Context) error {
	var req v1.SummarizeRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(nethttp.StatusBadRequest, v1.ErrorReply{Error: fmt.Sprintf("invalid request: %v", err)})
	}
	summary, err := s.ai.Summarize(ctx, domain.SummarizeInput{
		Articles: fromArticles(req.Articles),
		Metal:    req.Metal,
		Lang:     req.Lang,
	})
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(nethttp.StatusOK, v1.SummarizeReply{Summary: summary})
}

func (s *MetalsService) GetSettings(ctx http.Context) error {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(nethttp.StatusOK, v1.SettingsReply{
		APIKey:      st.APIKey,
		BaseURL:     st.BaseURL,
		Model:       st.Model,
		Temperature: st.Temperature,
	})
}

func (s *MetalsService) UpdateSettings(ctx http.Context) error {
	var req v1.SettingsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(nethttp.StatusBadRequest, v1.ErrorReply{Error: fmt.Sprintf("invalid request: %v", err)})
	}
	patch := &domain.SettingsPatch{
		APIKey:      req.APIKey,
		BaseURL:     &req.BaseURL,
		Model:       &req.Model,
		Temperature: req.Temperature,
	}
	if err := s.settings.Update(ctx, patch); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(nethttp.StatusOK, v1.StatusReply{Status: "ok"})
}

func (s *MetalsService) ClearCache(ctx http.Context) error {
	var req v1.CacheClearRequest
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&req); err != nil {
			return ctx.JSON(nethttp.StatusBadRequest, v1.ErrorReply{Error: fmt.Sprintf("invalid request: %v", err)})
		}
	}
	s.cache.Clear(req.Symbol)
	return ctx.JSON(nethttp.StatusOK, v1.StatusReply{Status: "ok"})
}
