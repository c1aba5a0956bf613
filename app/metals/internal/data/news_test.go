package data

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/metal_radar/app/metals/pkg/search"
)

type fakeSearcher struct {
	topics []string
	langs  []string
	fail   map[string]bool
	resp   *search.Response
}

func (f *fakeSearcher) Search(_ context.Context, req *search.Request) (*search.Response, error) {
	f.topics = append(f.topics, req.Topic)
	f.langs = append(f.langs, req.Lang)
	if f.fail[req.Topic] {
		return nil, errors.New("ratelimited")
	}
	return f.resp, nil
}

func newTestNewsRepo(s search.Searcher, enrich bool, fetch articleFetcher) *newsRepo {
	return &newsRepo{searcher: s, enrich: enrich, fetch: fetch, log: log.NewHelper(log.DefaultLogger)}
}

func TestNewsRepoSearch(t *testing.T) {
	s := &fakeSearcher{resp: &search.Response{Results: []search.Result{
		{Title: "a", URL: "https://a", Content: "body a", Source: "Reuters", PublishedDate: "2024-01-05"},
		{Title: "b", URL: "https://b", Content: "body b"},
		{Title: "c", URL: "https://c", Content: "body c"},
	}}}
	r := newTestNewsRepo(s, false, nil)

	got, err := r.Search(context.Background(), "Copper metal market news today 中文", 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(got))
	}
	if got[0].Body != "body a" || got[0].Source != "Reuters" || got[0].Date != "2024-01-05" {
		t.Errorf("unexpected article %+v", got[0])
	}
	if s.topics[0] != "news" || s.langs[0] != "zh" {
		t.Errorf("unexpected request topic=%v lang=%v", s.topics, s.langs)
	}
}

func TestNewsRepoFallsBackToText(t *testing.T) {
	s := &fakeSearcher{fail: map[string]bool{"news": true}, resp: &search.Response{Results: []search.Result{{Title: "x", URL: "https://x"}}}}
	got, err := newTestNewsRepo(s, false, nil).Search(context.Background(), "gold", 12)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 || strings.Join(s.topics, ",") != "news,general" {
		t.Errorf("expected fallback to general, topics=%v got=%v", s.topics, got)
	}
}

func TestNewsRepoBothFail(t *testing.T) {
	s := &fakeSearcher{fail: map[string]bool{"news": true, "general": true}}
	if _, err := newTestNewsRepo(s, false, nil).Search(context.Background(), "gold", 12); err == nil {
		t.Error("expected error when both searches fail")
	}
}

func TestNewsRepoEnrich(t *testing.T) {
	s := &fakeSearcher{resp: &search.Response{Results: []search.Result{
		{Title: "empty", URL: "https://empty"},
		{Title: "broken", URL: "https://broken"},
		{Title: "full", URL: "https://full", Content: "kept"},
	}}}
	var fetched []string
	fetch := func(url string) (string, error) {
		fetched = append(fetched, url)
		if url == "https://broken" {
			return "", errors.New("timeout")
		}
		return "  Copper   smelter\n output " + strings.Repeat("x", 500), nil
	}
	got, err := newTestNewsRepo(s, true, fetch).Search(context.Background(), "copper", 12)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(fetched) != 2 {
		t.Errorf("expected 2 fetches, got %v", fetched)
	}
	if !strings.HasPrefix(got[0].Body, "Copper smelter output x") || !strings.HasSuffix(got[0].Body, "...") {
		t.Errorf("unexpected enriched body %q", got[0].Body)
	}
	if len([]rune(got[0].Body)) != maxBodyRunes+3 {
		t.Errorf("body should be truncated, got %d runes", len([]rune(got[0].Body)))
	}
	if got[1].Body != "" || got[2].Body != "kept" {
		t.Errorf("unexpected bodies %q %q", got[1].Body, got[2].Body)
	}
}
