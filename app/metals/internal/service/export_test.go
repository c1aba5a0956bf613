package service

import (
	"bytes"
	nethttp "net/http"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportPrice(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, "/api/price/Cu/export")
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, `filename="Cu_`) {
		t.Errorf("unexpected content disposition %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(exportSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d: %v", len(rows), rows)
	}
	if rows[0][1] != "Cu" || rows[4][0] != "Date" || rows[6][0] != "2024-01-09" || rows[6][4] != "4.2" {
		t.Errorf("unexpected rows %v", rows)
	}

	resp, _ = env.get(t, "/api/price/W/export")
	if resp.StatusCode != nethttp.StatusNotFound {
		t.Errorf("unavailable price should 404, got %d", resp.StatusCode)
	}
}
