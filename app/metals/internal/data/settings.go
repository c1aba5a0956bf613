package data

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/metal_radar/app/metals/internal/conf"
	"github.com/iWorld-y/metal_radar/app/metals/internal/domain"
	"github.com/iWorld-y/metal_radar/app/metals/internal/repo"
)

const (
	keyAPIKey      = "api_key"
	keyBaseURL     = "base_url"
	keyModel       = "model"
	keyTemperature = "temperature"

	defaultBaseURL     = "https://api.openai.com/v1"
	defaultModel       = "gpt-4o"
	defaultTemperature = 0.7
)

type settingsRepo struct {
	data     *Data
	defaults domain.Settings
	log      *log.Helper
}

// NewSettingsRepo settings 表中没有的字段取配置文件中的默认值
func NewSettingsRepo(data *Data, c *conf.LLM, logger log.Logger) repo.SettingsRepo {
	defaults := domain.Settings{
		BaseURL:     defaultBaseURL,
		Model:       defaultModel,
		Temperature: defaultTemperature,
	}
	if c != nil {
		defaults.APIKey = c.ApiKey
		if c.BaseUrl != "" {
			defaults.BaseURL = c.BaseUrl
		}
		if c.Model != "" {
			defaults.Model = c.Model
		}
		if c.Temperature != 0 {
			defaults.Temperature = c.Temperature
		}
	}
	return &settingsRepo{
		data:     data,
		defaults: defaults,
		log:      log.NewHelper(logger),
	}
}

func (r *settingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	rows, err := r.data.db.QueryContext(ctx, `SELECT name, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	s := r.defaults
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scan settings: %w", err)
		}
		switch name {
		case keyAPIKey:
			s.APIKey = value
		case keyBaseURL:
			s.BaseURL = value
		case keyModel:
			s.Model = value
		case keyTemperature:
			t, err := strconv.ParseFloat(value, 64)
			if err != nil {
				r.log.Warnf("invalid stored temperature %q: %v", value, err)
				continue
			}
			s.Temperature = t
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Save(ctx context.Context, s *domain.Settings) error {
	tx, err := r.data.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := r.data.rebind(`
		INSERT INTO settings (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value
	`)
	values := [][2]string{
		{keyAPIKey, s.APIKey},
		{keyBaseURL, s.BaseURL},
		{keyModel, s.Model},
		{keyTemperature, strconv.FormatFloat(s.Temperature, 'f', -1, 64)},
	}
	for _, kv := range values {
		if _, err := tx.ExecContext(ctx, query, kv[0], kv[1]); err != nil {
			return fmt.Errorf("save setting %s: %w", kv[0], err)
		}
	}
	return tx.Commit()
}
