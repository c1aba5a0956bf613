// Package element 提供元素周期表的静态数据：元素身份、物理属性与有色金属分类。
package element

import "fmt"

// Category 元素的化学展示类别，同时用作有色金属可交易类别
type Category string

const (
	None      Category = ""
	Base      Category = "base"
	Precious  Category = "precious"
	Light     Category = "light"
	Rare      Category = "rare"
	RareEarth Category = "rare_earth"
	Scattered Category = "scattered"
	Ferrous   Category = "ferrous"
	Nonmetal  Category = "nonmetal"
	NobleGas  Category = "noble_gas"
	Metalloid Category = "metalloid"
	Halogen   Category = "halogen"
	Actinide  Category = "actinide"
	Unknown   Category = "unknown"
)

// Element 元素身份记录，启动后不可变
type Element struct {
	Number    int
	Symbol    string
	NameEN    string
	NameZH    string
	Mass      float64
	Row       int
	Col       int
	Category  Category
	Tradeable Category
}

// Properties 元素物理属性，密度 g/cm³，熔点与沸点 °C
type Properties struct {
	Density float64
	Melting float64
	Boiling float64
	AppsEN  []string
	AppsZH  []string
}

// Interactive 仅可交易类别非空的元素可被选中（黑色金属也算）
func (e Element) Interactive() bool {
	return e.Tradeable != None
}

// Name 返回指定语言的名称，非 zh 一律返回英文
func (e Element) Name(lang string) string {
	if lang == "zh" {
		return e.NameZH
	}
	return e.NameEN
}

// DisplayName 返回双语名称，当前语言在前
func (e Element) DisplayName(lang string) string {
	if lang == "zh" {
		return fmt.Sprintf("%s (%s)", e.NameZH, e.NameEN)
	}
	return fmt.Sprintf("%s (%s)", e.NameEN, e.NameZH)
}

// Apps 返回指定语言的应用领域标签
func (p Properties) Apps(lang string) []string {
	if lang == "zh" {
		return p.AppsZH
	}
	return p.AppsEN
}

var (
	bySymbol   = make(map[string]int, len(catalog))
	byPosition = make(map[[2]int]int, len(catalog))
)

func init() {
	for i, e := range catalog {
		bySymbol[e.Symbol] = i
		byPosition[[2]int{e.Row, e.Col}] = i
	}
}

// All 返回按原子序数排列的元素副本
func All() []Element {
	out := make([]Element, len(catalog))
	copy(out, catalog)
	return out
}

// BySymbol 按元素符号查找
func BySymbol(symbol string) (Element, bool) {
	i, ok := bySymbol[symbol]
	if !ok {
		return Element{}, false
	}
	return catalog[i], true
}

// At 按周期表网格坐标查找
func At(row, col int) (Element, bool) {
	i, ok := byPosition[[2]int{row, col}]
	if !ok {
		return Element{}, false
	}
	return catalog[i], true
}

// Tradeable 返回所有可交易元素
func Tradeable() []Element {
	var out []Element
	for _, e := range catalog {
		if e.Interactive() {
			out = append(out, e)
		}
	}
	return out
}

// PropertiesOf 按符号查找物理属性，缺失是正常情况
func PropertiesOf(symbol string) (Properties, bool) {
	p, ok := properties[symbol]
	return p, ok
}

var categoryNames = map[Category][2]string{
	Base:      {"Base Metal", "基本有色金属"},
	Precious:  {"Precious Metal", "贵金属"},
	Light:     {"Light Metal", "轻金属"},
	Rare:      {"Rare Metal", "稀有金属"},
	RareEarth: {"Rare Earth", "稀土金属"},
	Scattered: {"Scattered Metal", "稀散金属"},
	Ferrous:   {"Ferrous Metal", "黑色金属"},
	Actinide:  {"Actinide", "锕系元素"},
}

// CategoryName 返回可交易类别的本地化名称，非可交易类别返回空串
func CategoryName(c Category, lang string) string {
	names, ok := categoryNames[c]
	if !ok {
		return ""
	}
	if lang == "zh" {
		return names[1]
	}
	return names[0]
}
