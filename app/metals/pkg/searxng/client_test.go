package searxng

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iWorld-y/metal_radar/app/metals/pkg/search"
)

func TestSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/search" || q.Get("format") != "json" || q.Get("categories") != "news" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		if q.Get("language") != "zh-CN" {
			t.Errorf("expected zh-CN language, got %q", q.Get("language"))
		}
		_ = json.NewEncoder(w).Encode(SearchResponse{Results: []SearchResult{
			{Title: "a", URL: "https://a", Engines: []string{"bing news"}, ImgSrc: "https://img/a"},
			{Title: "b", URL: "https://b"},
			{Title: "c", URL: "https://c"},
		}})
	}))
	defer ts.Close()

	resp, err := NewClient(ts.URL, 5).Search(context.Background(), &search.Request{Query: "铜", Topic: "news", MaxResults: 2, Lang: "zh"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].Source != "bing news" || resp.Results[0].Image != "https://img/a" {
		t.Errorf("unexpected first result %+v", resp.Results[0])
	}
}

func TestSearchGeneralCategory(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("categories"); got != "general" {
			t.Errorf("expected general, got %q", got)
		}
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer ts.Close()

	resp, err := NewClient(ts.URL, 5).Search(context.Background(), &search.Request{Query: "x"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("expected no results")
	}
}
