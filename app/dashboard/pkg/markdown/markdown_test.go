package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	got := string(ToHTML("## Outlook\n\n- **bullish** copper\n"))
	for _, want := range []string{"<h2>Outlook</h2>", "<strong>bullish</strong>", "<li>"} {
		if !strings.Contains(got, want) {
			t.Errorf("ToHTML() = %q, missing %q", got, want)
		}
	}
}

func TestToHTMLDropsRawHTML(t *testing.T) {
	got := string(ToHTML("hello <script>alert(1)</script>\n\n<script>alert(2)</script>"))
	if strings.Contains(got, "<script>") {
		t.Errorf("raw script survived: %q", got)
	}
}

func TestEscape(t *testing.T) {
	if got := Escape(`<a href="x">&</a>`); strings.ContainsAny(got, "<>\"") {
		t.Errorf("Escape() = %q", got)
	}
}
