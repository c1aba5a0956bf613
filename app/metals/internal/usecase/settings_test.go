package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kratos/kratos/v2/log"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
)

func strPtr(s string) *string { return &s }

// 页面把读到的占位符原样提交回来时不得覆盖真实 Key
func TestSettingsUseCase_MaskRoundTrip(t *testing.T) {
	r := &mockSettingsRepo{s: domain.Settings{APIKey: "sk-secret", BaseURL: "u", Model: "m"}}
	uc := NewSettingsUseCase(r, log.DefaultLogger)

	s, err := uc.Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if s.APIKey != v1.MaskedAPIKey {
		t.Fatalf("Get().APIKey = %q, want %q", s.APIKey, v1.MaskedAPIKey)
	}
	if err := uc.Update(context.Background(), &domain.SettingsPatch{APIKey: &s.APIKey}); err != nil {
		t.Fatal(err)
	}
	if r.s.APIKey != "sk-secret" {
		t.Errorf("stored key = %q", r.s.APIKey)
	}
}

func TestSettingsUseCase_GetMasksKey(t *testing.T) {
	r := &mockSettingsRepo{s: domain.Settings{APIKey: "sk-secret", BaseURL: "u", Model: "m", Temperature: 0.5}}
	uc := NewSettingsUseCase(r, log.DefaultLogger)

	s, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if s.APIKey != "***" || s.Model != "m" {
		t.Errorf("Get() = %+v", s)
	}

	r.s.APIKey = ""
	s, _ = uc.Get(context.Background())
	if s.APIKey != "" {
		t.Errorf("empty key should stay empty, got %q", s.APIKey)
	}
}

func TestSettingsUseCase_Update(t *testing.T) {
	temp := 0.0
	cases := []struct {
		name  string
		patch domain.SettingsPatch
		want  domain.Settings
	}{
		{"new key", domain.SettingsPatch{APIKey: strPtr("sk-new")}, domain.Settings{APIKey: "sk-new", BaseURL: "u", Model: "m", Temperature: 0.7}},
		{"masked key kept", domain.SettingsPatch{APIKey: strPtr("***")}, domain.Settings{APIKey: "sk-old", BaseURL: "u", Model: "m", Temperature: 0.7}},
		{"empty values kept", domain.SettingsPatch{APIKey: strPtr(""), BaseURL: strPtr(""), Model: strPtr("")}, domain.Settings{APIKey: "sk-old", BaseURL: "u", Model: "m", Temperature: 0.7}},
		{"zero temperature applied", domain.SettingsPatch{Temperature: &temp, Model: strPtr("gpt-4o-mini")}, domain.Settings{APIKey: "sk-old", BaseURL: "u", Model: "gpt-4o-mini", Temperature: 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := &mockSettingsRepo{s: domain.Settings{APIKey: "sk-old", BaseURL: "u", Model: "m", Temperature: 0.7}}
			uc := NewSettingsUseCase(r, log.DefaultLogger)
			if err := uc.Update(context.Background(), &c.patch); err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if *r.saved != c.want {
				t.Errorf("saved %+v, want %+v", *r.saved, c.want)
			}
		})
	}
}

func TestSettingsUseCase_RepoError(t *testing.T) {
	uc := NewSettingsUseCase(&mockSettingsRepo{err: errors.New("db locked")}, log.DefaultLogger)
	if _, err := uc.Get(context.Background()); err == nil {
		t.Error("expected Get error")
	}
	if err := uc.Update(context.Background(), &domain.SettingsPatch{}); err == nil {
		t.Error("expected Update error")
	}
}

func TestCacheUseCase_Clear(t *testing.T) {
	cache := newMockCache()
	cache.Set("price:Cu", 1)
	cache.Set("news:Cu:news:en", 2)
	cache.Set("price:Au", 3)
	uc := NewCacheUseCase(cache, log.DefaultLogger)

	uc.Clear("Cu")
	if _, ok := cache.Get("price:Cu"); ok {
		t.Error("Cu entries should be removed")
	}
	if _, ok := cache.Get("price:Au"); !ok || cache.purged {
		t.Error("Au entry should remain")
	}

	uc.Clear("")
	if !cache.purged {
		t.Error("empty symbol should purge")
	}
}
