package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/element"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/i18n"
)

var sourceNames = map[string]string{
	"yahoo_finance": "Yahoo Finance",
	"alpha_vantage": "Alpha Vantage",
	"metal_etf":     "Metal ETF",
	"mining_stock":  "Mining Stock",
}

// PriceView 价格面板的展示数据
type PriceView struct {
	Class  string
	Arrow  string
	Price  string
	Change string
	Open   string
	High   string
	Low    string
	Date   string
	Source string
}

// NewPriceView 由 available=true 的价格响应生成展示数据
func NewPriceView(p *v1.PriceReply) PriceView {
	v := PriceView{
		Class:  "down",
		Arrow:  "▼",
		Price:  money(p.Price),
		Open:   money(p.Open),
		High:   money(p.High),
		Low:    money(p.Low),
		Date:   p.Date,
		Source: SourceLabel(p),
	}
	if p.Change >= 0 {
		v.Class = "up"
		v.Arrow = "▲"
	}
	v.Change = fmt.Sprintf("%s %s%.2f (%s%.2f%%)", v.Arrow, sign(p.Change), p.Change, sign(p.ChangePct), p.ChangePct)
	return v
}

// SourceLabel 数据来源名称，带上代码
func SourceLabel(p *v1.PriceReply) string {
	if p.Source == "" {
		if p.Ticker != "" {
			return p.Ticker
		}
		return "Unknown"
	}
	label, ok := sourceNames[p.Source]
	if !ok {
		label = p.Source
	}
	if p.Ticker != "" {
		label += " (" + p.Ticker + ")"
	}
	return label
}

func sign(v float64) string {
	if v >= 0 {
		return "+"
	}
	return ""
}

// money 千分位，最多保留三位小数
func money(v float64) string {
	return "$" + humanize.Commaf(math.Round(v*1000)/1000)
}

// PropRow 属性面板一行
type PropRow struct {
	Label string
	Value string
}

// Properties 原子质量总是显示，其余属性有数据才显示
func Properties(el element.Element, lang i18n.Lang) []PropRow {
	rows := []PropRow{{Label: i18n.T(lang, "atomic_mass"), Value: num(el.Mass)}}
	if p, ok := element.PropertiesOf(el.Symbol); ok {
		if p.Density != 0 {
			rows = append(rows, PropRow{Label: i18n.T(lang, "density"), Value: num(p.Density) + " g/cm³"})
		}
		rows = append(rows,
			PropRow{Label: i18n.T(lang, "melting_pt"), Value: num(p.Melting) + " °C"},
			PropRow{Label: i18n.T(lang, "boiling_pt"), Value: num(p.Boiling) + " °C"},
		)
	}
	if name := element.CategoryName(el.Tradeable, lang.String()); name != "" {
		rows = append(rows, PropRow{Label: i18n.T(lang, "category_label"), Value: name})
	}
	return rows
}

// Applications 返回应用标签；没有属性记录时 ok 为 false
func Applications(el element.Element, lang i18n.Lang) (apps []string, ok bool) {
	p, ok := element.PropertiesOf(el.Symbol)
	if !ok {
		return nil, false
	}
	return p.Apps(lang.String()), true
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PriceText 价格面板的纯文本快照，作为分析与对话的上下文
func PriceText(p PricePanel, lang i18n.Lang) string {
	switch p.State {
	case StateReady:
		v := NewPriceView(p.Data)
		lines := []string{
			v.Price,
			v.Change,
			i18n.T(lang, "open") + " " + v.Open,
			i18n.T(lang, "high") + " " + v.High,
			i18n.T(lang, "low") + " " + v.Low,
			i18n.T(lang, "date") + " " + v.Date,
		}
		return strings.Join(lines, "\n")
	case StateEmpty:
		text := i18n.T(lang, "no_price")
		if p.Data != nil && p.Data.Message != "" {
			text += "\n" + i18n.T(lang, "price_details") + ": " + p.Data.Message
		}
		return text
	case StateFailed:
		return i18n.T(lang, "network_error") + ": " + p.Err + "\n" + i18n.T(lang, "network_hint")
	}
	return ""
}

// headlines 前 n 条标题，每行 "- 标题"
func headlines(articles []v1.Article, n int) string {
	if len(articles) > n {
		articles = articles[:n]
	}
	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		lines = append(lines, "- "+a.Title)
	}
	return strings.Join(lines, "\n")
}
