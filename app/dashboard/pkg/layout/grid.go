// Package layout 把元素表排成周期表网格：主表 7 行 × 18 列，一行间隔，镧系与锕系各一行。
package layout

import (
	"strings"

	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/element"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/i18n"
)

const (
	mainRows  = 7
	columns   = 18
	lnRow     = 9
	acRow     = 10
	blockFrom = 3
	blockTo   = 17
)

// Kind 单元格类型
type Kind int

const (
	KindElement Kind = iota
	KindEmpty
	KindIndicator
	KindSpacer
	KindGap
	KindTrailing
)

// Cell 网格中的一个单元格
type Cell struct {
	Kind      Kind
	Row       int
	Col       int
	Element   element.Element
	Label     string
	Clickable bool
	Selected  bool
	CSSClass  string
}

// Grid 一次完整绘制的结果
type Grid struct {
	Rows   [][]Cell
	Legend []LegendItem
}

// Cells 按绘制顺序展开所有单元格
func (g Grid) Cells() []Cell {
	var out []Cell
	for _, row := range g.Rows {
		out = append(out, row...)
	}
	return out
}

// Find 返回指定元素所在的单元格
func (g Grid) Find(symbol string) (Cell, bool) {
	for _, row := range g.Rows {
		for _, c := range row {
			if c.Kind == KindElement && c.Element.Symbol == symbol {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// Build 由元素表、选中符号和语言计算整张网格，每次调用都是全量重绘
func Build(catalog []element.Element, selected string, lang i18n.Lang) Grid {
	positions := make(map[[2]int]element.Element, len(catalog))
	for _, e := range catalog {
		positions[[2]int{e.Row, e.Col}] = e
	}

	cellAt := func(row, col int) Cell {
		e, ok := positions[[2]int{row, col}]
		if !ok {
			return Cell{Kind: KindEmpty, Row: row, Col: col}
		}
		return elementCell(e, selected, lang)
	}

	rows := make([][]Cell, 0, mainRows+3)
	for row := 1; row <= mainRows; row++ {
		cells := make([]Cell, 0, columns)
		for col := 1; col <= columns; col++ {
			if ind, ok := indicator(row, col); ok {
				cells = append(cells, ind)
				continue
			}
			cells = append(cells, cellAt(row, col))
		}
		rows = append(rows, cells)
	}

	rows = append(rows, []Cell{{Kind: KindGap, Row: mainRows + 1, CSSClass: "pt-gap"}})

	for _, r := range []struct {
		row int
		key string
	}{{lnRow, "lanthanides"}, {acRow, "actinides"}} {
		cells := make([]Cell, 0, blockTo-blockFrom+3)
		cells = append(cells, Cell{Kind: KindSpacer, Row: r.row, Col: 1, Label: i18n.T(lang, r.key), CSSClass: "pt-spacer"})
		for col := blockFrom; col <= blockTo; col++ {
			cells = append(cells, cellAt(r.row, col))
		}
		cells = append(cells, Cell{Kind: KindTrailing, Row: r.row, Col: columns})
		rows = append(rows, cells)
	}

	return Grid{Rows: rows, Legend: Legend(lang)}
}

// indicator (6,3) 与 (7,3) 固定为镧系、锕系范围提示
func indicator(row, col int) (Cell, bool) {
	if col != 3 {
		return Cell{}, false
	}
	switch row {
	case 6:
		return Cell{Kind: KindIndicator, Row: row, Col: col, Label: "57-71", CSSClass: "element-cell non-interactive indicator-ln"}, true
	case 7:
		return Cell{Kind: KindIndicator, Row: row, Col: col, Label: "89-103", CSSClass: "element-cell non-interactive indicator-ac"}, true
	}
	return Cell{}, false
}

func elementCell(e element.Element, selected string, lang i18n.Lang) Cell {
	c := Cell{
		Kind:      KindElement,
		Row:       e.Row,
		Col:       e.Col,
		Element:   e,
		Label:     e.Name(lang.String()),
		Clickable: e.Interactive(),
		Selected:  selected != "" && e.Symbol == selected,
	}

	classes := []string{"element-cell", CategoryClass(e.Category)}
	if c.Clickable {
		classes = append(classes, "nf-metal")
	} else {
		classes = append(classes, "non-interactive")
	}
	if c.Selected {
		classes = append(classes, "selected")
	}
	c.CSSClass = strings.Join(classes, " ")
	return c
}

// CategoryClass 类别对应的 CSS 类名，例如 rare_earth -> cat-rare-earth
func CategoryClass(c element.Category) string {
	return "cat-" + strings.ReplaceAll(string(c), "_", "-")
}
