package dashboard

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"regexp"
	"strings"
	"testing"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/client"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/i18n"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/sse"
)

func renderPage(t *testing.T, c *Controller) string {
	t.Helper()
	var buf bytes.Buffer
	if err := RenderPage(&buf, c.Page()); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	return buf.String()
}

func TestRenderPage_Empty(t *testing.T) {
	c := newTestController(&mockAPI{})
	out := renderPage(t, c)

	if strings.Contains(out, `id="element-dashboard"`) {
		t.Error("dashboard rendered without a selection")
	}
	if got := strings.Count(out, `formaction="/ui/select/`); got != len(tradeableSymbols(t)) {
		t.Errorf("clickable cells = %d, want %d", got, len(tradeableSymbols(t)))
	}
	for _, want := range []string{"57-71", "89-103", "Ln ▸", "Base Metal", "LLM Offline"} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func tradeableSymbols(t *testing.T) []string {
	t.Helper()
	c := newTestController(&mockAPI{})
	var out []string
	for _, cell := range c.Page().Grid.Cells() {
		if cell.Clickable {
			out = append(out, cell.Element.Symbol)
		}
	}
	return out
}

func TestRenderPage_Overview(t *testing.T) {
	api := &mockAPI{price: copperPrice}
	c := newTestController(api)
	selectAndWait(t, c, "Cu")
	out := renderPage(t, c)

	for _, want := range []string{
		`id="element-dashboard"`,
		"Copper (铜)",
		"$4.52",
		"▲ +0.05 (+1.12%)",
		"Yahoo Finance (HG=F)",
		`src="/ui/chart.svg?v=1"`,
		"Electrical wiring",
		"element-cell cat-base nf-metal selected",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderPage_LoadingPanelsPoll(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	api := &mockAPI{
		price: func(string) (*v1.PriceReply, error) {
			<-block
			return nil, context.Canceled
		},
		news: func(string, client.NewsQuery) ([]v1.Article, error) {
			<-block
			return nil, nil
		},
	}
	c := newTestController(api)
	if _, err := c.SelectElement(context.Background(), "Cu"); err != nil {
		t.Fatal(err)
	}
	out := renderPage(t, c)
	if !strings.Contains(out, `hx-get="/ui/panel/price"`) {
		t.Error("loading price panel does not poll")
	}

	if err := c.SwitchTab("news"); err != nil {
		t.Fatal(err)
	}
	html, err := RenderFragment("news-panel", c.Page())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), `hx-get="/ui/panel/news"`) {
		t.Errorf("news fragment = %s", html)
	}
}

func TestRenderPage_EscapesArticleContent(t *testing.T) {
	api := &mockAPI{
		news: func(string, client.NewsQuery) ([]v1.Article, error) {
			return []v1.Article{{Title: "<script>alert(1)</script>", URL: "javascript:alert(1)", Body: "<b>bold</b>"}}, nil
		},
	}
	c := newTestController(api)
	selectAndWait(t, c, "Cu")
	if err := c.SwitchTab("news"); err != nil {
		t.Fatal(err)
	}
	out := renderPage(t, c)

	if strings.Contains(out, "<script>alert(1)</script>") || strings.Contains(out, "<b>bold</b>") {
		t.Error("article content rendered unescaped")
	}
	if !strings.Contains(out, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Error("escaped title missing")
	}
	if strings.Contains(out, `href="javascript:`) {
		t.Error("javascript: URL not neutralised")
	}
}

func TestRenderPage_ChineseLabels(t *testing.T) {
	c := newTestController(&mockAPI{price: copperPrice})
	selectAndWait(t, c, "Cu")
	c.SetLanguage(i18n.ZH)
	out := renderPage(t, c)

	for _, want := range []string{"铜 (Copper)", i18n.T(i18n.ZH, "tab_overview"), "电线电缆"} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderPage_StreamingPanes(t *testing.T) {
	release := make(chan struct{})
	api := &mockAPI{
		analyze: func(*v1.AnalyzeRequest, sse.Handler) error {
			<-release
			return nil
		},
		chat: func(_ *v1.ChatRequest, h sse.Handler) error {
			h(sse.Event{Kind: sse.Content, Data: "**bold** answer"})
			return nil
		},
	}
	c := newTestController(api)
	selectAndWait(t, c, "Cu")

	if err := c.SwitchTab("analysis"); err != nil {
		t.Fatal(err)
	}
	if err := c.BeginAnalyze(context.Background()); err != nil {
		t.Fatal(err)
	}
	html, err := RenderFragment("analysis-pane", c.Page())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), `sse-connect="/ui/analyze/stream"`) {
		t.Errorf("busy analysis pane = %s", html)
	}
	close(release)
	if err := c.StreamAnalyze(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	if err := c.SendChat(context.Background(), "<i>q</i>", nil); err != nil {
		t.Fatal(err)
	}
	html, err = RenderFragment("chat-log", c.Page())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "<strong>bold</strong>") || !strings.Contains(string(html), "&lt;i&gt;q&lt;/i&gt;") {
		t.Errorf("chat log = %s", html)
	}
}

func TestRenderFragment_EscapesStreamErrors(t *testing.T) {
	const payload = "<script>alert(1)</script>"
	api := &mockAPI{
		analyze: func(_ *v1.AnalyzeRequest, h sse.Handler) error {
			h(sse.Event{Kind: sse.Error, Data: payload})
			return errors.New("upstream said " + payload)
		},
		chat: func(_ *v1.ChatRequest, h sse.Handler) error {
			h(sse.Event{Kind: sse.Error, Data: payload})
			return errors.New("upstream said " + payload)
		},
	}
	c := newTestController(api)
	selectAndWait(t, c, "Cu")

	var updates []string
	collect := func(html template.HTML) { updates = append(updates, string(html)) }
	if err := c.SwitchTab("analysis"); err != nil {
		t.Fatal(err)
	}
	if err := c.Analyze(context.Background(), collect); err != nil {
		t.Fatal(err)
	}
	if err := c.SwitchTab("chat"); err != nil {
		t.Fatal(err)
	}
	if err := c.SendChat(context.Background(), "hi", collect); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"analysis-body", "chat-log"} {
		html, err := RenderFragment(name, c.Page())
		if err != nil {
			t.Fatal(err)
		}
		updates = append(updates, string(html))
	}
	if len(updates) != 4 {
		t.Fatalf("got %d fragments, want 4", len(updates))
	}
	for i, out := range updates {
		if strings.Contains(out, "<script>") {
			t.Errorf("fragment %d renders raw script: %s", i, out)
		}
		if !strings.Contains(out, "&lt;script&gt;alert(1)&lt;/script&gt;") {
			t.Errorf("fragment %d missing escaped payload: %s", i, out)
		}
	}
	final := updates[2] + updates[3]
	if strings.Count(final, "upstream said &lt;script&gt;") != 2 {
		t.Errorf("transport errors not rendered escaped: %s", final)
	}
}

func TestRenderPage_SettingsModal(t *testing.T) {
	api := &mockAPI{
		settings: func() (*v1.SettingsReply, error) {
			return &v1.SettingsReply{APIKey: "***", BaseURL: "https://api.openai.com/v1", Model: "gpt-4o", Temperature: 0.7}, nil
		},
	}
	c := newTestController(api)
	c.OpenSettings(context.Background())
	out := renderPage(t, c)

	for _, want := range []string{`id="settings-modal"`, `value="gpt-4o"`, "LLM Online", `placeholder="***"`} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(out, `name="api_key" value=`) {
		t.Error("api key field must never be prefilled")
	}
}

var tKeyPattern = regexp.MustCompile(`\{\{t [.$]\w*\.?Lang "([a-z_]+)"\}\}`)

func TestTemplateKeysExist(t *testing.T) {
	raw, err := templatesFS.ReadFile("templates/page.html")
	if err != nil {
		t.Fatal(err)
	}
	known := make(map[string]bool)
	for _, k := range i18n.Keys(i18n.EN) {
		known[k] = true
	}
	matches := tKeyPattern.FindAllSubmatch(raw, -1)
	if len(matches) == 0 {
		t.Fatal("no translation keys found in template")
	}
	for _, m := range matches {
		if key := string(m[1]); !known[key] {
			t.Errorf("template uses unknown key %q", key)
		}
	}
}
