package engine

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/client"
	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"

	"github.com/iWorld-y/metal_radar/app/metal_brief/pkg/config"
	"github.com/iWorld-y/metal_radar/app/metal_brief/pkg/model"
)

type fakeAPI struct {
	mu         sync.Mutex
	newsQuery  map[string]client.NewsQuery
	summarized map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		newsQuery:  make(map[string]client.NewsQuery),
		summarized: make(map[string]int),
	}
}

func (f *fakeAPI) Price(_ context.Context, symbol string) (*v1.PriceReply, error) {
	if symbol == "Au" {
		return nil, errors.New("connection refused")
	}
	return &v1.PriceReply{Symbol: symbol, Available: true, Source: "yahoo_finance", Price: 4.2, Change: -0.1}, nil
}

func (f *fakeAPI) News(_ context.Context, symbol string, q client.NewsQuery) ([]v1.Article, error) {
	f.mu.Lock()
	f.newsQuery[symbol] = q
	f.mu.Unlock()
	return []v1.Article{
		{Title: symbol + " one", URL: "https://a.example/1"},
		{Title: symbol + " two", URL: "https://a.example/2"},
		{Title: symbol + " three", URL: "https://a.example/3"},
	}, nil
}

func (f *fakeAPI) Summarize(_ context.Context, req *v1.SummarizeRequest) (*v1.SummarizeReply, error) {
	f.mu.Lock()
	f.summarized[req.Metal] = len(req.Articles)
	f.mu.Unlock()
	if req.Metal == "Gold" {
		return &v1.SummarizeReply{Error: "LLM API not configured."}, nil
	}
	return &v1.SummarizeReply{Summary: "**" + req.Metal + "** steady"}, nil
}

type fakeStore struct {
	mu    sync.Mutex
	saved map[string]int64
}

func (s *fakeStore) CreateRun(context.Context) (int64, error) { return 7, nil }

func (s *fakeStore) SaveMetalBrief(_ context.Context, runID int64, b *model.MetalBrief) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[b.Symbol] = runID
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Symbols:     []string{"Cu", "Xx", "O", "Au"},
		Lang:        "zh",
		Category:    "mining",
		MaxArticles: 2,
		Summarize:   true,
		Concurrency: config.ConcurrencyConfig{Workers: 2, QPS: 100, RPM: 60000},
	}
}

func TestRun(t *testing.T) {
	api := newFakeAPI()
	store := &fakeStore{saved: make(map[string]int64)}
	e := NewEngine(testConfig(), api, store)
	e.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }

	var statuses []string
	var mu sync.Mutex
	brief, err := e.Run(context.Background(), RunOptions{
		ProgressCallback: func(status string, _ int) {
			mu.Lock()
			statuses = append(statuses, status)
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if brief.RunID != 7 || brief.Date != "2024-03-01" || brief.Lang != "zh" {
		t.Errorf("unexpected brief header: %+v", brief)
	}
	if len(brief.Metals) != 2 || brief.Metals[0].Symbol != "Cu" || brief.Metals[1].Symbol != "Au" {
		t.Fatalf("metals = %+v, want Cu then Au", brief.Metals)
	}
	if brief.Articles != 4 {
		t.Errorf("Articles = %d, want 4", brief.Articles)
	}

	cu := brief.Metals[0]
	if !cu.HasPrice() || cu.Up() {
		t.Errorf("Cu price state wrong: %+v", cu.Price)
	}
	if cu.Summary != "**Copper** steady" || len(cu.Errors) != 0 {
		t.Errorf("Cu summary/errors = %q / %v", cu.Summary, cu.Errors)
	}
	if cu.NameZH != "铜" || cu.Category != "基本有色金属" {
		t.Errorf("Cu names = %q / %q", cu.NameZH, cu.Category)
	}

	au := brief.Metals[1]
	if au.HasPrice() || au.Summary != "" {
		t.Errorf("Au should have no price and no summary: %+v", au)
	}
	if len(au.Errors) != 2 || !strings.HasPrefix(au.Errors[0], "price:") || !strings.Contains(au.Errors[1], "LLM API not configured") {
		t.Errorf("Au errors = %v", au.Errors)
	}

	if q := api.newsQuery["Cu"]; q.Category != "mining" || q.Lang != "zh" || q.Name != "Copper" {
		t.Errorf("news query = %+v", q)
	}
	if api.summarized["Copper"] != 2 {
		t.Errorf("summarize got %d articles, want 2", api.summarized["Copper"])
	}
	if store.saved["Cu"] != 7 || store.saved["Au"] != 7 {
		t.Errorf("saved = %v", store.saved)
	}
	if len(statuses) != 4 || statuses[0] != "starting" || statuses[3] != "completed" {
		t.Errorf("statuses = %v", statuses)
	}
}

func TestRunWithoutSummaryOrStore(t *testing.T) {
	cfg := testConfig()
	cfg.Summarize = false
	api := newFakeAPI()
	brief, err := NewEngine(cfg, api, nil).Run(context.Background(), RunOptions{Symbols: []string{"Ag"}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(brief.Metals) != 1 || brief.Metals[0].Symbol != "Ag" || brief.RunID != 0 {
		t.Errorf("unexpected brief: %+v", brief)
	}
	if len(api.summarized) != 0 {
		t.Errorf("summarize should not be called: %v", api.summarized)
	}
}

func TestRunNoTradeableSymbols(t *testing.T) {
	_, err := NewEngine(testConfig(), newFakeAPI(), nil).Run(context.Background(), RunOptions{Symbols: []string{"O", "He"}})
	if err == nil {
		t.Fatal("expected error for non-tradeable symbols")
	}
}
