// Package markdown 把模型输出的 Markdown 转成可直接插入页面的 HTML。
package markdown

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// 未启用 html.WithUnsafe，原始 HTML 会被省略
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// ToHTML 转换失败时退回转义后的原文
func ToHTML(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(src) + "</pre>")
	}
	return template.HTML(buf.String())
}

// Escape 转义外部文本
func Escape(s string) string {
	return template.HTMLEscapeString(s)
}
