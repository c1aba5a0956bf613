package dashboard

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/element"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/i18n"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/layout"
)

//go:embed templates/*.html
var templatesFS embed.FS

var tmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"t": i18n.T,
}).ParseFS(templatesFS, "templates/*.html"))

// Loading 加载中
func (s State) Loading() bool { return s == StateLoading }

// Ready 有内容
func (s State) Ready() bool { return s == StateReady }

// Empty 请求成功但没有内容
func (s State) Empty() bool { return s == StateEmpty }

// Failed 请求失败
func (s State) Failed() bool { return s == StateFailed }

// Header 面板标题
type Header struct {
	Number   int
	Symbol   string
	Name     string
	Category string
}

// Option 页签或资讯类别按钮
type Option struct {
	Value  string
	Label  string
	Active bool
}

// Page 一次渲染所需的全部数据
type Page struct {
	Session

	Grid       layout.Grid
	Header     *Header
	Tabs       []Option
	Categories []Option
	PriceView  *PriceView
	Properties []PropRow
	Apps       []string
	HasApps    bool
	HasChart   bool
	ChartUp    bool
	ChartURL   string
	ExportURL  string

	CanSummarize bool
}

type exporter interface {
	ExportURL(symbol string) string
}

// Page 由当前状态计算页面数据，网格每次整体重建
func (c *Controller) Page() *Page {
	s := c.Snapshot()
	p := &Page{
		Session: s,
		Grid:    layout.Build(element.All(), selectedSymbol(s.Selected), s.Lang),
	}

	for _, t := range Tabs {
		p.Tabs = append(p.Tabs, Option{Value: string(t), Label: i18n.T(s.Lang, t.labelKey()), Active: t == s.Tab})
	}
	for _, cat := range Categories {
		p.Categories = append(p.Categories, Option{Value: string(cat), Label: i18n.T(s.Lang, categoryKeys[cat]), Active: cat == s.Category})
	}

	if s.Selected == nil {
		return p
	}
	el := *s.Selected
	p.Header = &Header{
		Number:   el.Number,
		Symbol:   el.Symbol,
		Name:     el.DisplayName(s.Lang.String()),
		Category: element.CategoryName(el.Tradeable, s.Lang.String()),
	}
	if s.Price.State == StateReady && s.Price.Data != nil {
		v := NewPriceView(s.Price.Data)
		p.PriceView = &v
	}
	p.Properties = Properties(el, s.Lang)
	p.Apps, p.HasApps = Applications(el, s.Lang)
	if _, up, ok := c.chart.SVG(); ok {
		p.HasChart = true
		p.ChartUp = up
		p.ChartURL = fmt.Sprintf("/ui/chart.svg?v=%d", s.chartVersion)
	}
	if e, ok := c.api.(exporter); ok {
		p.ExportURL = e.ExportURL(el.Symbol)
	}
	p.CanSummarize = len(s.News.Articles) > 0 && !s.Summary.Busy
	return p
}

func selectedSymbol(e *element.Element) string {
	if e == nil {
		return ""
	}
	return e.Symbol
}

// RenderPage 输出完整页面
func RenderPage(w io.Writer, p *Page) error {
	return tmpl.ExecuteTemplate(w, "page", p)
}

// RenderFragment 输出页面中的一个命名片段
func RenderFragment(name string, p *Page) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, p); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
