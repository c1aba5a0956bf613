package layout

import (
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/element"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/i18n"
)

// LegendItem 图例项
type LegendItem struct {
	Category element.Category
	Label    string
	Color    string
}

var legendOrder = []element.Category{
	element.Base,
	element.Precious,
	element.Light,
	element.Rare,
	element.RareEarth,
	element.Scattered,
	element.Ferrous,
	element.Nonmetal,
}

// Legend 固定顺序的图例，与网格中实际出现的元素无关
func Legend(lang i18n.Lang) []LegendItem {
	items := make([]LegendItem, 0, len(legendOrder))
	for _, c := range legendOrder {
		items = append(items, LegendItem{
			Category: c,
			Label:    i18n.T(lang, "legend_"+string(c)),
			Color:    CategoryClass(c),
		})
	}
	return items
}
