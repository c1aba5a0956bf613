package dashboard

import (
	"strings"
	"testing"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/element"
	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/i18n"
)

func TestNewPriceView(t *testing.T) {
	tests := []struct {
		name       string
		reply      v1.PriceReply
		wantClass  string
		wantChange string
		wantPrice  string
	}{
		{
			name:       "up",
			reply:      v1.PriceReply{Price: 2650.4, Change: 12.3, ChangePct: 0.47},
			wantClass:  "up",
			wantChange: "▲ +12.30 (+0.47%)",
			wantPrice:  "$2,650.4",
		},
		{
			name:       "down",
			reply:      v1.PriceReply{Price: 4.523, Change: -0.05, ChangePct: -1.1},
			wantClass:  "down",
			wantChange: "▼ -0.05 (-1.10%)",
			wantPrice:  "$4.523",
		},
		{
			name:       "flat counts as up",
			reply:      v1.PriceReply{Price: 10},
			wantClass:  "up",
			wantChange: "▲ +0.00 (+0.00%)",
			wantPrice:  "$10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewPriceView(&tt.reply)
			if v.Class != tt.wantClass {
				t.Errorf("Class = %s, want %s", v.Class, tt.wantClass)
			}
			if v.Change != tt.wantChange {
				t.Errorf("Change = %q, want %q", v.Change, tt.wantChange)
			}
			if v.Price != tt.wantPrice {
				t.Errorf("Price = %q, want %q", v.Price, tt.wantPrice)
			}
		})
	}
}

func TestSourceLabel(t *testing.T) {
	tests := []struct {
		reply v1.PriceReply
		want  string
	}{
		{v1.PriceReply{Source: "yahoo_finance", Ticker: "GC=F"}, "Yahoo Finance (GC=F)"},
		{v1.PriceReply{Source: "metal_etf"}, "Metal ETF"},
		{v1.PriceReply{Source: "custom_feed", Ticker: "X"}, "custom_feed (X)"},
		{v1.PriceReply{Ticker: "HG=F"}, "HG=F"},
		{v1.PriceReply{}, "Unknown"},
	}
	for _, tt := range tests {
		if got := SourceLabel(&tt.reply); got != tt.want {
			t.Errorf("SourceLabel(%+v) = %q, want %q", tt.reply, got, tt.want)
		}
	}
}

func TestProperties(t *testing.T) {
	cu, _ := element.BySymbol("Cu")
	rows := Properties(cu, i18n.EN)
	labels := make([]string, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Label)
	}
	want := "Atomic Mass,Density,Melting Pt.,Boiling Pt.,Category"
	if got := strings.Join(labels, ","); got != want {
		t.Errorf("labels = %s, want %s", got, want)
	}
	if rows[0].Value != "63.55" {
		t.Errorf("atomic mass = %s", rows[0].Value)
	}
	if !strings.HasSuffix(rows[1].Value, " g/cm³") || !strings.HasSuffix(rows[2].Value, " °C") {
		t.Errorf("units missing: %+v", rows)
	}

	fe, _ := element.BySymbol("Fe")
	rows = Properties(fe, i18n.ZH)
	if len(rows) != 2 {
		t.Fatalf("Fe rows = %+v, want mass and category only", rows)
	}
	if rows[0].Label != i18n.T(i18n.ZH, "atomic_mass") {
		t.Errorf("zh label = %s", rows[0].Label)
	}
}

func TestApplications(t *testing.T) {
	cu, _ := element.BySymbol("Cu")
	en, ok := Applications(cu, i18n.EN)
	if !ok || len(en) == 0 {
		t.Fatalf("Cu apps = %v, %v", en, ok)
	}
	zh, _ := Applications(cu, i18n.ZH)
	if len(zh) == 0 || zh[0] == en[0] {
		t.Errorf("zh apps = %v, en apps = %v", zh, en)
	}

	fe, _ := element.BySymbol("Fe")
	if apps, ok := Applications(fe, i18n.EN); ok || apps != nil {
		t.Errorf("Fe apps = %v, %v, want none", apps, ok)
	}
}

func TestPriceText(t *testing.T) {
	ready := PricePanel{State: StateReady, Data: &v1.PriceReply{Price: 4.5, Change: 0.1, ChangePct: 2.27, Open: 4.4, High: 4.6, Low: 4.3, Date: "2025-01-03"}}
	text := PriceText(ready, i18n.EN)
	for _, want := range []string{"$4.5", "▲ +0.10 (+2.27%)", "Open $4.4", "High $4.6", "Low $4.3", "Date 2025-01-03"} {
		if !strings.Contains(text, want) {
			t.Errorf("PriceText() = %q, missing %q", text, want)
		}
	}

	empty := PricePanel{State: StateEmpty, Data: &v1.PriceReply{Message: "All data sources failed"}}
	if got := PriceText(empty, i18n.EN); !strings.Contains(got, "No live price data") || !strings.Contains(got, "Details: All data sources failed") {
		t.Errorf("empty PriceText() = %q", got)
	}

	failed := PricePanel{State: StateFailed, Err: "HTTP 502: Bad Gateway"}
	if got := PriceText(failed, i18n.EN); !strings.HasPrefix(got, "Network error: HTTP 502") {
		t.Errorf("failed PriceText() = %q", got)
	}

	if got := PriceText(PricePanel{State: StateLoading}, i18n.EN); got != "" {
		t.Errorf("loading PriceText() = %q, want empty", got)
	}
}

func TestHeadlines(t *testing.T) {
	got := headlines(someArticles(6), 3)
	want := "- headline A\n- headline B\n- headline C"
	if got != want {
		t.Errorf("headlines() = %q, want %q", got, want)
	}
	if got := headlines(nil, 3); got != "" {
		t.Errorf("headlines(nil) = %q", got)
	}
}
