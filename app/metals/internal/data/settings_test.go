package data

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/metal_radar/app/metals/internal/conf"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
)

func newTestData(t *testing.T) *Data {
	t.Helper()
	d, cleanup, err := NewData(&conf.Data{Database: &conf.Database{
		Driver: "sqlite",
		Source: filepath.Join(t.TempDir(), "db", "metals.db"),
	}}, log.DefaultLogger)
	if err != nil {
		t.Fatalf("NewData failed: %v", err)
	}
	t.Cleanup(cleanup)
	return d
}

func TestSettingsRepoDefaults(t *testing.T) {
	r := NewSettingsRepo(newTestData(t), &conf.LLM{Model: "deepseek-chat"}, log.DefaultLogger)
	s, err := r.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s.APIKey != "" || s.BaseURL != "https://api.openai.com/v1" || s.Model != "deepseek-chat" || s.Temperature != 0.7 {
		t.Errorf("unexpected defaults %+v", s)
	}
}

func TestSettingsRepoSave(t *testing.T) {
	d := newTestData(t)
	r := NewSettingsRepo(d, nil, log.DefaultLogger)
	ctx := context.Background()

	in := &domain.Settings{APIKey: "sk-1", BaseURL: "http://llm.local/v1", Model: "qwen", Temperature: 0.3}
	if err := r.Save(ctx, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	in.Model = "qwen-max"
	if err := r.Save(ctx, in); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := NewSettingsRepo(d, nil, log.DefaultLogger).Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if *got != *in {
		t.Errorf("expected %+v, got %+v", in, got)
	}
}

func TestOpenDataUnsupportedDriver(t *testing.T) {
	if _, err := openData("mysql", "x"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestRebind(t *testing.T) {
	d := &Data{driver: driverSQLite}
	if got := d.rebind("SELECT $1, $2"); got != "SELECT ?, ?" {
		t.Errorf("unexpected sqlite query %q", got)
	}
	d.driver = driverPostgres
	if got := d.rebind("SELECT $1"); got != "SELECT $1" {
		t.Errorf("postgres query should be unchanged, got %q", got)
	}
}
