package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/client"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/i18n"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/sse"
)

// mockAPI 按需覆盖的后端桩
type mockAPI struct {
	mu sync.Mutex

	price     func(symbol string) (*v1.PriceReply, error)
	news      func(symbol string, q client.NewsQuery) ([]v1.Article, error)
	summarize func(req *v1.SummarizeRequest) (*v1.SummarizeReply, error)
	analyze   func(req *v1.AnalyzeRequest, h sse.Handler) error
	chat      func(req *v1.ChatRequest, h sse.Handler) error
	settings  func() (*v1.SettingsReply, error)
	save      func(req *v1.SettingsRequest) error

	summarizeCalls int
	newsQueries    []client.NewsQuery
	cleared        []string
	chatRequests   []*v1.ChatRequest
}

func (m *mockAPI) Price(_ context.Context, symbol string) (*v1.PriceReply, error) {
	if m.price == nil {
		return &v1.PriceReply{Symbol: symbol, Available: false, Message: "no data"}, nil
	}
	return m.price(symbol)
}

func (m *mockAPI) News(_ context.Context, symbol string, q client.NewsQuery) ([]v1.Article, error) {
	m.mu.Lock()
	m.newsQueries = append(m.newsQueries, q)
	m.mu.Unlock()
	if m.news == nil {
		return nil, nil
	}
	return m.news(symbol, q)
}

func (m *mockAPI) Summarize(_ context.Context, req *v1.SummarizeRequest) (*v1.SummarizeReply, error) {
	m.mu.Lock()
	m.summarizeCalls++
	m.mu.Unlock()
	if m.summarize == nil {
		return &v1.SummarizeReply{Summary: "ok"}, nil
	}
	return m.summarize(req)
}

// Analyze 与真实客户端一样，ctx 被取消时以 ctx.Err() 结束
func (m *mockAPI) Analyze(ctx context.Context, req *v1.AnalyzeRequest, h sse.Handler) error {
	if m.analyze != nil {
		if err := m.analyze(req, h); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (m *mockAPI) Chat(ctx context.Context, req *v1.ChatRequest, h sse.Handler) error {
	m.mu.Lock()
	m.chatRequests = append(m.chatRequests, req)
	m.mu.Unlock()
	if m.chat != nil {
		if err := m.chat(req, h); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (m *mockAPI) Settings(context.Context) (*v1.SettingsReply, error) {
	if m.settings == nil {
		return &v1.SettingsReply{}, nil
	}
	return m.settings()
}

func (m *mockAPI) SaveSettings(_ context.Context, req *v1.SettingsRequest) error {
	if m.save == nil {
		return nil
	}
	return m.save(req)
}

func (m *mockAPI) ClearCache(_ context.Context, symbol string) error {
	m.mu.Lock()
	m.cleared = append(m.cleared, symbol)
	m.mu.Unlock()
	return nil
}

func copperPrice(symbol string) (*v1.PriceReply, error) {
	return &v1.PriceReply{
		Symbol: symbol, Ticker: "HG=F", Available: true, Source: "yahoo_finance",
		Price: 4.52, Change: 0.05, ChangePct: 1.12, Open: 4.47, High: 4.55, Low: 4.45, Date: "2025-01-03",
		History: []v1.HistoryPoint{{Date: "2025-01-02", Close: 4.47}, {Date: "2025-01-03", Close: 4.52}},
	}, nil
}

func someArticles(n int) []v1.Article {
	out := make([]v1.Article, n)
	for i := range out {
		out[i] = v1.Article{Title: "headline " + string(rune('A'+i)), URL: "https://example.com/" + string(rune('a'+i)), Body: "body"}
	}
	return out
}

func newTestController(api API) *Controller {
	return NewController("test", api, log.DefaultLogger)
}

func selectAndWait(t *testing.T, c *Controller, symbol string) {
	t.Helper()
	p, err := c.SelectElement(context.Background(), symbol)
	if err != nil {
		t.Fatalf("SelectElement(%s) error = %v", symbol, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
}

func TestSelectElement_RejectsNonTradeable(t *testing.T) {
	c := newTestController(&mockAPI{})
	for _, sym := range []string{"H", "He", "Xx"} {
		if _, err := c.SelectElement(context.Background(), sym); !errors.Is(err, ErrNotSelectable) {
			t.Errorf("SelectElement(%s) error = %v, want ErrNotSelectable", sym, err)
		}
	}
	if c.Snapshot().Selected != nil {
		t.Error("rejected selection must not change state")
	}
}

func TestSelectElement_LoadsPriceAndNews(t *testing.T) {
	api := &mockAPI{
		price: copperPrice,
		news: func(string, client.NewsQuery) ([]v1.Article, error) {
			return someArticles(2), nil
		},
	}
	c := newTestController(api)
	selectAndWait(t, c, "Cu")

	s := c.Snapshot()
	if s.Selected == nil || s.Selected.Symbol != "Cu" {
		t.Fatalf("Selected = %+v", s.Selected)
	}
	if s.Tab != TabOverview {
		t.Errorf("Tab = %s, want overview", s.Tab)
	}
	if s.Price.State != StateReady || s.Price.Data.Price != 4.52 {
		t.Errorf("Price = %+v", s.Price)
	}
	if s.News.State != StateReady || len(s.News.Articles) != 2 {
		t.Errorf("News = %+v", s.News)
	}
	if len(api.newsQueries) != 1 || api.newsQueries[0] != (client.NewsQuery{Category: "news", Lang: "en", Name: "Copper"}) {
		t.Errorf("news queries = %+v", api.newsQueries)
	}
	if _, up, ok := c.Chart().SVG(); !ok || !up {
		t.Errorf("chart ok=%v up=%v, want rendered uptrend", ok, up)
	}
}

func TestSelectElement_PriceFailureDoesNotBlockNews(t *testing.T) {
	api := &mockAPI{
		price: func(string) (*v1.PriceReply, error) {
			return nil, &client.StatusError{Code: 500, Status: "Internal Server Error"}
		},
		news: func(string, client.NewsQuery) ([]v1.Article, error) {
			return someArticles(3), nil
		},
	}
	c := newTestController(api)
	selectAndWait(t, c, "Au")

	s := c.Snapshot()
	if s.Price.State != StateFailed || !strings.Contains(s.Price.Err, "HTTP 500") {
		t.Errorf("Price = %+v, want failed with HTTP 500", s.Price)
	}
	if s.News.State != StateReady || len(s.News.Articles) != 3 {
		t.Errorf("News = %+v", s.News)
	}
	if _, _, ok := c.Chart().SVG(); ok {
		t.Error("chart should be cleared after a failed price load")
	}
}

func TestSelectElement_NewsFailureDoesNotBlockPrice(t *testing.T) {
	api := &mockAPI{
		price: copperPrice,
		news: func(string, client.NewsQuery) ([]v1.Article, error) {
			return nil, errors.New("connection refused")
		},
	}
	c := newTestController(api)
	selectAndWait(t, c, "Cu")

	s := c.Snapshot()
	if s.Price.State != StateReady {
		t.Errorf("Price state = %v, want ready", s.Price.State)
	}
	if s.News.State != StateFailed || s.News.Err != "connection refused" {
		t.Errorf("News = %+v", s.News)
	}
}

func TestSelectElement_UnavailablePrice(t *testing.T) {
	c := newTestController(&mockAPI{})
	selectAndWait(t, c, "W")

	s := c.Snapshot()
	if s.Price.State != StateEmpty || s.Price.Data == nil || s.Price.Data.Message != "no data" {
		t.Errorf("Price = %+v", s.Price)
	}
	if s.News.State != StateEmpty {
		t.Errorf("News state = %v, want empty", s.News.State)
	}
}

func TestSelectElement_ResetsElementState(t *testing.T) {
	api := &mockAPI{
		news: func(string, client.NewsQuery) ([]v1.Article, error) {
			return someArticles(1), nil
		},
		chat: func(_ *v1.ChatRequest, h sse.Handler) error {
			h(sse.Event{Kind: sse.Content, Data: "hi"})
			return nil
		},
	}
	c := newTestController(api)
	selectAndWait(t, c, "Cu")
	if err := c.SwitchTab("chat"); err != nil {
		t.Fatal(err)
	}
	if err := c.SendChat(context.Background(), "hello", nil); err != nil {
		t.Fatal(err)
	}
	if len(c.Snapshot().Chat.History) != 2 {
		t.Fatalf("history = %+v", c.Snapshot().Chat.History)
	}

	selectAndWait(t, c, "Ag")
	s := c.Snapshot()
	if s.Tab != TabOverview {
		t.Errorf("Tab = %s, want overview", s.Tab)
	}
	if len(s.Chat.History) != 0 || len(s.Chat.Log) != 0 {
		t.Errorf("chat not reset: %+v", s.Chat)
	}
	if s.Selected.Symbol != "Ag" {
		t.Errorf("Selected = %s", s.Selected.Symbol)
	}
}

func TestSwitchTab(t *testing.T) {
	c := newTestController(&mockAPI{})
	for _, name := range []string{"overview", "news", "analysis", "chat"} {
		if err := c.SwitchTab(name); err != nil {
			t.Errorf("SwitchTab(%s) error = %v", name, err)
		}
		if got := c.Snapshot().Tab; string(got) != name {
			t.Errorf("Tab = %s, want %s", got, name)
		}
	}
	if err := c.SwitchTab("prices"); !errors.Is(err, ErrInvalidTab) {
		t.Errorf("SwitchTab(prices) error = %v", err)
	}
	if got := c.Snapshot().Tab; got != TabChat {
		t.Errorf("invalid tab changed state to %s", got)
	}
}

func TestCloseDashboard(t *testing.T) {
	api := &mockAPI{
		price: copperPrice,
		news: func(string, client.NewsQuery) ([]v1.Article, error) {
			return someArticles(2), nil
		},
	}
	c := newTestController(api)
	selectAndWait(t, c, "Cu")
	c.CloseDashboard()

	s := c.Snapshot()
	if s.Selected != nil || len(s.News.Articles) != 0 || s.Price.State != StateIdle {
		t.Errorf("state after close = %+v", s)
	}
	if _, _, ok := c.Chart().SVG(); ok {
		t.Error("chart should be destroyed on close")
	}
	if _, err := c.Refresh(context.Background()); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Refresh() after close error = %v", err)
	}
}

func TestLoadNews(t *testing.T) {
	api := &mockAPI{
		news: func(_ string, q client.NewsQuery) ([]v1.Article, error) {
			if q.Category == "policy" {
				return someArticles(4), nil
			}
			return someArticles(1), nil
		},
	}
	c := newTestController(api)

	if _, err := c.LoadNews(context.Background(), "policy"); !errors.Is(err, ErrNoSelection) {
		t.Errorf("LoadNews() without selection error = %v", err)
	}

	selectAndWait(t, c, "Cu")
	if _, err := c.LoadNews(context.Background(), "gossip"); !errors.Is(err, ErrInvalidCat) {
		t.Errorf("LoadNews(gossip) error = %v", err)
	}

	c.SetLanguage(i18n.ZH)
	p, err := c.LoadNews(context.Background(), "policy")
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	s := c.Snapshot()
	if s.Category != CategoryPolicy || len(s.News.Articles) != 4 {
		t.Errorf("Category = %s, articles = %d", s.Category, len(s.News.Articles))
	}
	last := api.newsQueries[len(api.newsQueries)-1]
	if last.Lang != "zh" || last.Category != "policy" {
		t.Errorf("last query = %+v", last)
	}
}

func TestRefresh_ClearsCache(t *testing.T) {
	api := &mockAPI{price: copperPrice}
	c := newTestController(api)
	selectAndWait(t, c, "Cu")

	p, err := c.Refresh(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(api.cleared) != 1 || api.cleared[0] != "Cu" {
		t.Errorf("cleared = %v", api.cleared)
	}
	if got := c.Snapshot().Price.State; got != StateReady {
		t.Errorf("Price state = %v", got)
	}
}

func TestToggleLanguage(t *testing.T) {
	c := newTestController(&mockAPI{})
	if got := c.ToggleLanguage(); got != i18n.ZH {
		t.Errorf("ToggleLanguage() = %s, want zh", got)
	}
	if got := c.ToggleLanguage(); got != i18n.EN {
		t.Errorf("ToggleLanguage() = %s, want en", got)
	}
}

func TestPendingWait_ContextCanceled(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	api := &mockAPI{
		news: func(string, client.NewsQuery) ([]v1.Article, error) {
			<-block
			return nil, nil
		},
	}
	c := newTestController(api)
	p, err := c.SelectElement(context.Background(), "Cu")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := p.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() error = %v, want deadline exceeded", err)
	}
	if got := c.Snapshot().News.State; got != StateLoading {
		t.Errorf("News state = %v, want loading", got)
	}
}
