package model

import v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"

// MetalBrief 单个金属的日报条目
type MetalBrief struct {
	Symbol   string
	Name     string
	NameZH   string
	Category string
	Price    *v1.PriceReply
	Articles []v1.Article
	Summary  string   // Markdown
	Errors   []string // 单项失败不影响其他数据
}

// HasPrice 是否拿到了报价
func (m MetalBrief) HasPrice() bool {
	return m.Price != nil && m.Price.Available
}

// Up 涨跌方向，与看板一致：change >= 0 视为上涨
func (m MetalBrief) Up() bool {
	return m.HasPrice() && m.Price.Change >= 0
}

// Brief 一次运行的完整日报
type Brief struct {
	RunID    int64
	Date     string
	Lang     string
	Metals   []MetalBrief
	Articles int // 总资讯数
}
