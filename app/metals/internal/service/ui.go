package service

import (
	"context"
	"errors"
	"html/template"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/client"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/dashboard"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/i18n"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/sse"
	"github.com/iWorld-y/metal_radar/app/metals/internal/conf"
)

const (
	sessionCookie       = "metals_session"
	defaultAPIBase      = "http://127.0.0.1:8000"
	defaultSessions     = 256
	defaultSessionTTL   = 12 * time.Hour
	syncLoadTimeout     = 15 * time.Second
	settingsLoadTimeout = 3 * time.Second
)

// UIService 服务端渲染的元素周期表面板，每个浏览器会话一个 Controller
type UIService struct {
	api      dashboard.API
	sessions *expirable.LRU[string, *dashboard.Controller]
	ttl      time.Duration
	logger   log.Logger
	log      *log.Helper
}

// NewUIService 面板通过 api_base 访问本服务的 /api 接口
func NewUIService(c *conf.Dashboard, logger log.Logger) *UIService {
	base := defaultAPIBase
	size := defaultSessions
	ttl := defaultSessionTTL
	if c != nil {
		if c.ApiBase != "" {
			base = c.ApiBase
		}
		if c.Sessions > 0 {
			size = int(c.Sessions)
		}
		if d, err := time.ParseDuration(c.SessionTtl); err == nil && d > 0 {
			ttl = d
		}
	}
	return newUIService(client.New(base, client.WithLogger(logger)), size, ttl, logger)
}

func newUIService(api dashboard.API, size int, ttl time.Duration, logger log.Logger) *UIService {
	return &UIService{
		api:      api,
		sessions: expirable.NewLRU[string, *dashboard.Controller](size, nil, ttl),
		ttl:      ttl,
		logger:   logger,
		log:      log.NewHelper(logger),
	}
}

// Register 注册页面路由；流式路由直接挂在底层 mux 上
func (s *UIService) Register(srv *http.Server) {
	srv.HandleFunc("/", s.Index)
	srv.HandleFunc("/ui/analyze/stream", s.AnalyzeStream)
	srv.HandleFunc("/ui/chat/stream", s.ChatStream)

	r := srv.Route("/ui")
	r.GET("/panel/price", s.fragment("price-panel"))
	r.GET("/panel/news", s.fragment("news-panel"))
	r.GET("/chart.svg", s.ChartSVG)
	r.POST("/select/{symbol}", s.Select)
	r.POST("/close", s.Close)
	r.POST("/tab/{name}", s.Tab)
	r.POST("/lang", s.Lang)
	r.POST("/news/{category}", s.News)
	r.POST("/refresh", s.Refresh)
	r.POST("/summarize", s.Summarize)
	r.POST("/analyze", s.Analyze)
	r.POST("/chat", s.Chat)
	r.GET("/settings", s.OpenSettings)
	r.POST("/settings", s.SaveSettings)
	r.POST("/settings/close", s.CloseSettings)
}

// controller 按 cookie 取会话，没有或已过期时新建
func (s *UIService) controller(w nethttp.ResponseWriter, r *nethttp.Request) *dashboard.Controller {
	if ck, err := r.Cookie(sessionCookie); err == nil {
		if c, ok := s.sessions.Get(ck.Value); ok {
			return c
		}
	}

	id := uuid.NewString()
	c := dashboard.NewController(id, s.api, s.logger)
	if ck, err := r.Cookie("lang"); err == nil {
		c.SetLanguage(i18n.Parse(ck.Value))
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), settingsLoadTimeout)
	c.LoadSettings(ctx)
	cancel()

	s.sessions.Add(id, c)
	nethttp.SetCookie(w, &nethttp.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: nethttp.SameSiteLaxMode,
	})
	s.log.Debugf("new dashboard session %s", id)
	return c
}

// partial htmx 发起且非 hx-boost 的请求只需要片段
func partial(r *nethttp.Request) bool {
	return r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Boosted") != "true"
}

func htmx(r *nethttp.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func back(ctx http.Context) error {
	nethttp.Redirect(ctx.Response(), ctx.Request(), "/", nethttp.StatusSeeOther)
	return nil
}

func writeHTML(w nethttp.ResponseWriter, html template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write([]byte(html))
}

// wait 没有脚本的浏览器在跳转前等待加载完成，htmx 由面板轮询补齐
func (s *UIService) wait(r *nethttp.Request, p *dashboard.Pending) {
	if p == nil || htmx(r) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), syncLoadTimeout)
	defer cancel()
	if err := p.Wait(ctx); err != nil {
		s.log.Debugf("panel load still running: %v", err)
	}
}

// Index 完整页面
func (s *UIService) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		nethttp.NotFound(w, r)
		return
	}
	c := s.controller(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboard.RenderPage(w, c.Page()); err != nil {
		s.log.Errorf("render page: %v", err)
	}
}

func (s *UIService) fragment(name string) http.HandlerFunc {
	return func(ctx http.Context) error {
		c := s.controller(ctx.Response(), ctx.Request())
		html, err := dashboard.RenderFragment(name, c.Page())
		if err != nil {
			return err
		}
		writeHTML(ctx.Response(), html)
		return nil
	}
}

// ChartSVG 当前价格走势图
func (s *UIService) ChartSVG(ctx http.Context) error {
	c := s.controller(ctx.Response(), ctx.Request())
	svg, _, ok := c.Chart().SVG()
	if !ok {
		nethttp.NotFound(ctx.Response(), ctx.Request())
		return nil
	}
	w := ctx.Response()
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(nethttp.StatusOK)
	_, err := w.Write(svg)
	return err
}

func (s *UIService) Select(ctx http.Context) error {
	c := s.controller(ctx.Response(), ctx.Request())
	p, err := c.SelectElement(ctx, ctx.Vars().Get("symbol"))
	if err != nil {
		s.log.Debugf("select: %v", err)
	}
	s.wait(ctx.Request(), p)
	return back(ctx)
}

func (s *UIService) Close(ctx http.Context) error {
	s.controller(ctx.Response(), ctx.Request()).CloseDashboard()
	return back(ctx)
}

func (s *UIService) Tab(ctx http.Context) error {
	if err := s.controller(ctx.Response(), ctx.Request()).SwitchTab(ctx.Vars().Get("name")); err != nil {
		s.log.Debugf("switch tab: %v", err)
	}
	return back(ctx)
}

func (s *UIService) Lang(ctx http.Context) error {
	lang := s.controller(ctx.Response(), ctx.Request()).ToggleLanguage()
	nethttp.SetCookie(ctx.Response(), &nethttp.Cookie{
		Name:     "lang",
		Value:    lang.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: nethttp.SameSiteLaxMode,
	})
	return back(ctx)
}

func (s *UIService) News(ctx http.Context) error {
	p, err := s.controller(ctx.Response(), ctx.Request()).LoadNews(ctx, ctx.Vars().Get("category"))
	if err != nil {
		s.log.Debugf("load news: %v", err)
	}
	s.wait(ctx.Request(), p)
	return back(ctx)
}

func (s *UIService) Refresh(ctx http.Context) error {
	p, err := s.controller(ctx.Response(), ctx.Request()).Refresh(ctx)
	if err != nil {
		s.log.Debugf("refresh: %v", err)
	}
	s.wait(ctx.Request(), p)
	return back(ctx)
}

func (s *UIService) Summarize(ctx http.Context) error {
	if err := s.controller(ctx.Response(), ctx.Request()).Summarize(ctx); err != nil {
		s.log.Debugf("summarize: %v", err)
	}
	return back(ctx)
}

// Analyze htmx 请求返回带 SSE 连接的分析区，否则同步执行后跳回
func (s *UIService) Analyze(ctx http.Context) error {
	c := s.controller(ctx.Response(), ctx.Request())
	if partial(ctx.Request()) {
		if err := c.BeginAnalyze(ctx); err != nil {
			s.log.Debugf("begin analyze: %v", err)
		}
		return s.writeFragment(ctx, c, "analysis-pane")
	}
	if err := c.Analyze(ctx, nil); err != nil {
		s.log.Debugf("analyze: %v", err)
	}
	return back(ctx)
}

// Chat 与 Analyze 相同，消息取自表单 message 字段
func (s *UIService) Chat(ctx http.Context) error {
	c := s.controller(ctx.Response(), ctx.Request())
	msg := ctx.Request().FormValue("message")
	if partial(ctx.Request()) {
		if err := c.BeginChat(ctx, msg); err != nil {
			s.log.Debugf("begin chat: %v", err)
		}
		return s.writeFragment(ctx, c, "chat-pane")
	}
	if err := c.SendChat(ctx, msg, nil); err != nil {
		s.log.Debugf("chat: %v", err)
	}
	return back(ctx)
}

func (s *UIService) writeFragment(ctx http.Context, c *dashboard.Controller, name string) error {
	html, err := dashboard.RenderFragment(name, c.Page())
	if err != nil {
		return err
	}
	writeHTML(ctx.Response(), html)
	return nil
}

// AnalyzeStream 订阅后台进行中的分析并推送 update 事件，结束时以 done 事件替换整个分析区；
// 连接断开不影响分析本身
func (s *UIService) AnalyzeStream(w nethttp.ResponseWriter, r *nethttp.Request) {
	c := s.controller(w, r)
	s.stream(w, r, c, "analysis-pane", c.StreamAnalyze)
}

// ChatStream 与 AnalyzeStream 相同，作用于对话区
func (s *UIService) ChatStream(w nethttp.ResponseWriter, r *nethttp.Request) {
	c := s.controller(w, r)
	s.stream(w, r, c, "chat-pane", c.StreamChat)
}

func (s *UIService) stream(w nethttp.ResponseWriter, r *nethttp.Request, c *dashboard.Controller, pane string,
	run func(context.Context, dashboard.UpdateFunc) error) {
	if r.Method != nethttp.MethodGet {
		nethttp.Error(w, "method not allowed", nethttp.StatusMethodNotAllowed)
		return
	}
	sw := sse.NewWriter(w)
	var werr error
	onUpdate := func(html template.HTML) {
		if werr != nil {
			return
		}
		werr = sw.WriteEvent("update", string(html))
	}
	if err := run(r.Context(), onUpdate); err != nil {
		s.log.Debugf("stream %s: %v", pane, err)
		return
	}
	if werr != nil && !errors.Is(werr, context.Canceled) {
		s.log.Debugf("stream %s write: %v", pane, werr)
	}
	html, err := dashboard.RenderFragment(pane, c.Page())
	if err != nil {
		s.log.Errorf("render %s: %v", pane, err)
		return
	}
	if err := sw.WriteEvent("done", string(html)); err != nil {
		s.log.Debugf("stream %s done: %v", pane, err)
	}
}

// OpenSettings 打开设置面板
func (s *UIService) OpenSettings(ctx http.Context) error {
	s.controller(ctx.Response(), ctx.Request()).OpenSettings(ctx)
	return back(ctx)
}

// SaveSettings 表单中的 API Key 留空或为 *** 时不修改
func (s *UIService) SaveSettings(ctx http.Context) error {
	c := s.controller(ctx.Response(), ctx.Request())
	req := ctx.Request()
	temp, err := strconv.ParseFloat(req.FormValue("temperature"), 64)
	if err != nil {
		temp = c.Snapshot().Settings.Temperature
	}
	c.SaveSettings(ctx, dashboard.SettingsInput{
		APIKey:      req.FormValue("api_key"),
		BaseURL:     req.FormValue("base_url"),
		Model:       req.FormValue("model"),
		Temperature: temp,
	})
	return back(ctx)
}

func (s *UIService) CloseSettings(ctx http.Context) error {
	s.controller(ctx.Response(), ctx.Request()).CloseSettings()
	return back(ctx)
}
