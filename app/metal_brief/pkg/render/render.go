// Package render 把日报渲染成单文件 HTML。
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/i18n"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/markdown"

	"github.com/iWorld-y/metal_radar/app/metal_brief/pkg/model"
)

//go:embed templates/brief.html
var templates embed.FS

var tpl = template.Must(template.New("brief.html").Funcs(template.FuncMap{
	"t":        func(lang, key string) string { return i18n.T(i18n.Parse(lang), key) },
	"markdown": markdown.ToHTML,
	"money":    humanize.Commaf,
	"signed":   signed,
}).ParseFS(templates, "templates/brief.html"))

// signed 非负数带 "+" 前缀，保留两位小数
func signed(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// Write 渲染到任意 writer
func Write(w io.Writer, b *model.Brief) error {
	return tpl.Execute(w, b)
}

// WriteFile 渲染到文件，必要时创建目录
func WriteFile(path string, b *model.Brief) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
