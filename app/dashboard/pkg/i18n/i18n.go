// Package i18n 双语文案表，zh 缺失的键回退到 en，en 也缺失时返回键本身。
package i18n

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

// Lang 界面语言
type Lang string

const (
	EN Lang = "en"
	ZH Lang = "zh"
)

// Langs 支持的语言
var Langs = []Lang{EN, ZH}

var tables = mustLoad()

func mustLoad() map[Lang]map[string]string {
	out := make(map[Lang]map[string]string, len(Langs))
	for _, lang := range Langs {
		table, err := load(lang)
		if err != nil {
			panic(err)
		}
		out[lang] = table
	}
	return out
}

func load(lang Lang) (map[string]string, error) {
	data, err := locales.ReadFile(fmt.Sprintf("locales/%s.yaml", lang))
	if err != nil {
		return nil, fmt.Errorf("read locale %s: %w", lang, err)
	}
	table := make(map[string]string)
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse locale %s: %w", lang, err)
	}
	return table, nil
}

// T 查找文案
func T(lang Lang, key string) string {
	if s, ok := tables[lang][key]; ok && s != "" {
		return s
	}
	if s, ok := tables[EN][key]; ok && s != "" {
		return s
	}
	return key
}

// Parse 解析语言代码，未知代码按 en 处理
func Parse(code string) Lang {
	if Lang(code) == ZH {
		return ZH
	}
	return EN
}

// Toggle 在 en 和 zh 之间切换
func (l Lang) Toggle() Lang {
	if l == ZH {
		return EN
	}
	return ZH
}

// String 实现 fmt.Stringer
func (l Lang) String() string {
	return string(l)
}

// Keys 返回某语言表中定义的全部键，按字典序
func Keys(lang Lang) []string {
	keys := make([]string, 0, len(tables[lang]))
	for k := range tables[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
