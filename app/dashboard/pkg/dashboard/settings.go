package dashboard

import (
	"context"
	"strings"

	v1 "github.com/iWorld-y/metal_radar/app/metals/api/v1"
)

const (
	defaultModel       = "gpt-4o"
	defaultTemperature = 0.7
)

// SettingsInput 用户提交的设置表单
type SettingsInput struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// OpenSettings 打开设置面板并重新加载
func (c *Controller) OpenSettings(ctx context.Context) {
	c.mu.Lock()
	c.s.Settings.Open = true
	c.mu.Unlock()
	c.LoadSettings(ctx)
}

// CloseSettings 关闭设置面板
func (c *Controller) CloseSettings() {
	c.mu.Lock()
	c.s.Settings.Open = false
	c.mu.Unlock()
}

// LoadSettings 读取设置填入表单，失败时保持原样
func (c *Controller) LoadSettings(ctx context.Context) {
	data, err := c.api.Settings(ctx)
	if err != nil {
		c.log.Debugf("load settings: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	f := &c.s.Settings
	f.BaseURL = data.BaseURL
	f.Model = data.Model
	if f.Model == "" {
		f.Model = defaultModel
	}
	f.Temperature = data.Temperature
	if f.Temperature == 0 {
		f.Temperature = defaultTemperature
	}
	f.KeySet = data.APIKey != ""
	f.Online = f.KeySet
}

// BuildSettingsRequest 只有新输入的非占位 API Key 才会发送
func BuildSettingsRequest(in SettingsInput) *v1.SettingsRequest {
	temp := in.Temperature
	req := &v1.SettingsRequest{
		BaseURL:     strings.TrimSpace(in.BaseURL),
		Model:       strings.TrimSpace(in.Model),
		Temperature: &temp,
	}
	if key := strings.TrimSpace(in.APIKey); key != "" && key != v1.MaskedAPIKey {
		req.APIKey = &key
	}
	return req
}

// SaveSettings 保存设置；成功后乐观地标记 LLM 在线，失败静默忽略
func (c *Controller) SaveSettings(ctx context.Context, in SettingsInput) {
	req := BuildSettingsRequest(in)
	err := c.api.SaveSettings(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Debugf("save settings: %v", err)
	} else {
		c.s.Settings.Online = true
		if req.APIKey != nil {
			c.s.Settings.KeySet = true
		}
	}
	c.s.Settings.Open = false
}
