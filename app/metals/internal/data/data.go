package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-kratos/kratos/v2/log"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/iWorld-y/metal_radar/app/metals/internal/conf"
)

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"
)

var placeholder = regexp.MustCompile(`\$\d+`)

type Data struct {
	db     *sql.DB
	driver string
}

func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	driver := driverSQLite
	source := "data/metals.db"
	if c != nil && c.Database != nil {
		if c.Database.Driver != "" {
			driver = c.Database.Driver
		}
		if c.Database.Source != "" {
			source = c.Database.Source
		}
	}

	d, err := openData(driver, source)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
		d.db.Close()
	}
	return d, cleanup, nil
}

func openData(driver, source string) (*Data, error) {
	switch driver {
	case driverSQLite:
		if source != ":memory:" {
			if dir := filepath.Dir(source); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, fmt.Errorf("failed to create database directory: %w", err)
				}
			}
		}
	case driverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == driverSQLite {
		// sqlite 单写者
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init settings table: %w", err)
	}
	return &Data{db: db, driver: driver}, nil
}

// rebind 把 $N 占位符换成当前驱动的写法
func (d *Data) rebind(query string) string {
	if d.driver == driverPostgres {
		return query
	}
	return placeholder.ReplaceAllString(query, "?")
}
