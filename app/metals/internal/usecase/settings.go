package usecase

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
	"github.com/iWorld-y/metal_radar/app/metals/internal/repo"
)

// SettingsUseCase LLM 设置读写
type SettingsUseCase struct {
	repo repo.SettingsRepo
	log  *log.Helper
}

func NewSettingsUseCase(r repo.SettingsRepo, logger log.Logger) *SettingsUseCase {
	return &SettingsUseCase{repo: r, log: log.NewHelper(logger)}
}

// Get 返回脱敏后的设置
func (uc *SettingsUseCase) Get(ctx context.Context) (*domain.Settings, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	masked := *s
	if masked.APIKey != "" {
		masked.APIKey = v1.MaskedAPIKey
	}
	return &masked, nil
}

// Update 空值与 *** 不覆盖已有 Key，空的 base_url/model 保持不变
func (uc *SettingsUseCase) Update(ctx context.Context, p *domain.SettingsPatch) error {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return err
	}
	if p.APIKey != nil && *p.APIKey != "" && *p.APIKey != v1.MaskedAPIKey {
		s.APIKey = *p.APIKey
	}
	if p.BaseURL != nil && *p.BaseURL != "" {
		s.BaseURL = *p.BaseURL
	}
	if p.Model != nil && *p.Model != "" {
		s.Model = *p.Model
	}
	if p.Temperature != nil {
		s.Temperature = *p.Temperature
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return err
	}
	uc.log.Infof("settings updated: base_url=%s model=%s temperature=%.2f", s.BaseURL, s.Model, s.Temperature)
	return nil
}
