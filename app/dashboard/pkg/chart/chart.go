// Package chart 把价格历史渲染成 SVG 折线图。
package chart

import (
	"bytes"
	"fmt"
	"sync"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	colorUp   = "22c55e"
	colorDown = "ef4444"
	maxTicks  = 8
)

// Point 一个收盘价数据点
type Point struct {
	Date  string
	Close float64
}

// PriceChart 持有当前唯一的图表实例，重新渲染前销毁旧实例
type PriceChart struct {
	mu        sync.Mutex
	svg       []byte
	up        bool
	destroyed int
	Width     int
	Height    int
}

// NewPriceChart 创建图表
func NewPriceChart() *PriceChart {
	return &PriceChart{Width: 640, Height: 220}
}

// Render 销毁已有图表后按 history 重建；history 为空时只清空
func (c *PriceChart) Render(history []Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.destroyLocked()
	if len(history) == 0 {
		return nil
	}

	up := IsUp(history)
	svg, err := render(history, up, c.Width, c.Height)
	if err != nil {
		return fmt.Errorf("render price chart: %w", err)
	}
	c.svg = svg
	c.up = up
	return nil
}

// Clear 销毁图表并置空
func (c *PriceChart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroyLocked()
}

// SVG 返回当前图表，没有图表时 ok 为 false
func (c *PriceChart) SVG() (svg []byte, up bool, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.svg == nil {
		return nil, false, false
	}
	return c.svg, c.up, true
}

// Destroyed 返回被销毁过的图表数量
func (c *PriceChart) Destroyed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}

func (c *PriceChart) destroyLocked() {
	if c.svg != nil {
		c.svg = nil
		c.destroyed++
	}
}

// Labels 把日期截成 MM-DD
func Labels(history []Point) []string {
	out := make([]string, len(history))
	for i, p := range history {
		if len(p.Date) > 5 {
			out[i] = p.Date[5:]
		} else {
			out[i] = p.Date
		}
	}
	return out
}

// IsUp 末值不低于首值即为上涨，少于两个点视为下跌
func IsUp(history []Point) bool {
	return len(history) >= 2 && history[len(history)-1].Close >= history[0].Close
}

func render(history []Point, up bool, width, height int) ([]byte, error) {
	labels := Labels(history)
	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	for i, p := range history {
		xs[i] = float64(i)
		ys[i] = p.Close
	}
	// 单点无法确定 X 轴范围
	if len(xs) == 1 {
		xs = append(xs, 1)
		ys = append(ys, ys[0])
		labels = append(labels, labels[0])
	}

	step := 1
	if len(labels) > maxTicks {
		step = (len(labels) + maxTicks - 1) / maxTicks
	}
	var ticks []gochart.Tick
	for i := 0; i < len(labels); i += step {
		ticks = append(ticks, gochart.Tick{Value: xs[i], Label: labels[i]})
	}

	yAxis := gochart.YAxis{
		ValueFormatter: func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("$%.2f", f)
			}
			return ""
		},
	}
	// 所有值相同时 Y 轴跨度为零，go-chart 会拒绝渲染
	if lo, hi := bounds(ys); lo == hi {
		pad := lo * 0.01
		if pad == 0 {
			pad = 1
		}
		yAxis.Range = &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
	}

	hex := colorDown
	if up {
		hex = colorUp
	}
	stroke := drawing.ColorFromHex(hex)

	graph := gochart.Chart{
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 14, Left: 16, Right: 12, Bottom: 10}},
		XAxis:      gochart.XAxis{Ticks: ticks},
		YAxis:      yAxis,
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: stroke,
					FillColor:   stroke.WithAlpha(0x15),
					StrokeWidth: 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func bounds(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
