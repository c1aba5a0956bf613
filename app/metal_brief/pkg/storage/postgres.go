package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "github.com/lib/pq"

	"github.com/iWorld-y/metal_radar/app/metal_brief/pkg/config"
	"github.com/iWorld-y/metal_radar/app/metal_brief/pkg/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS brief_runs (
	id BIGSERIAL PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS metal_briefs (
	id BIGSERIAL PRIMARY KEY,
	run_id BIGINT NOT NULL REFERENCES brief_runs(id),
	symbol TEXT NOT NULL,
	price DOUBLE PRECISION,
	change_pct DOUBLE PRECISION,
	source TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS brief_articles (
	id BIGSERIAL PRIMARY KEY,
	metal_brief_id BIGINT NOT NULL REFERENCES metal_briefs(id),
	title TEXT NOT NULL,
	url TEXT NOT NULL,
	source TEXT NOT NULL DEFAULT '',
	pub_date TEXT NOT NULL DEFAULT '',
	body TEXT NOT NULL DEFAULT ''
);`

type Storage struct {
	db *sql.DB
}

func NewStorage(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) CreateRun(ctx context.Context) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `INSERT INTO brief_runs DEFAULT VALUES RETURNING id`).Scan(&id)
	return id, err
}

func (s *Storage) SaveMetalBrief(ctx context.Context, runID int64, b *model.MetalBrief) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				err = fmt.Errorf("%w: %v", err, rerr)
			}
		}
	}()

	var price, changePct sql.NullFloat64
	var source string
	if b.HasPrice() {
		price = sql.NullFloat64{Float64: b.Price.Price, Valid: true}
		changePct = sql.NullFloat64{Float64: b.Price.ChangePct, Valid: true}
		source = b.Price.Source
	}

	var id int64
	if err = tx.QueryRowContext(ctx, `
		INSERT INTO metal_briefs (run_id, symbol, price, change_pct, source, summary)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		runID, b.Symbol, price, changePct, source, sanitize(b.Summary),
	).Scan(&id); err != nil {
		return err
	}

	for _, a := range b.Articles {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO brief_articles (metal_brief_id, title, url, source, pub_date, body)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, sanitize(a.Title), a.URL, a.Source, a.Date, sanitize(a.Body),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// sanitize 去掉无效 UTF-8 和 NULL 字节，PostgreSQL 文本字段不接受
func sanitize(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	return strings.ReplaceAll(s, "\x00", "")
}
