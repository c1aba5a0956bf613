package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 日报配置结构体
type Config struct {
	APIBase     string            `yaml:"api_base"`
	Symbols     []string          `yaml:"symbols"`
	Lang        string            `yaml:"lang"`
	Category    string            `yaml:"category"`
	MaxArticles int               `yaml:"max_articles"`
	Summarize   bool              `yaml:"summarize"`
	Output      string            `yaml:"output"`
	Timeout     string            `yaml:"timeout"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	DB          DBConfig          `yaml:"db"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 并发控制配置
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
	QPS     int `yaml:"qps"`
	RPM     int `yaml:"rpm"`
}

// DBConfig 数据库相关配置，Host 为空时不落库
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// DSN postgres 连接串
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// LoadConfig 从指定路径加载配置并补齐默认值
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.APIBase == "" {
		c.APIBase = "http://127.0.0.1:8000"
	}
	if c.Lang != "zh" {
		c.Lang = "en"
	}
	if c.Category == "" {
		c.Category = "news"
	}
	if c.MaxArticles <= 0 {
		c.MaxArticles = 6
	}
	if c.Output == "" {
		c.Output = "output/metal_brief.html"
	}
	if c.Timeout == "" {
		c.Timeout = "2m"
	}
	if c.Concurrency.Workers <= 0 {
		c.Concurrency.Workers = 3
	}
	if c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = 2
	}
	if c.Concurrency.RPM <= 0 {
		c.Concurrency.RPM = 60
	}
	if c.DB.Host != "" && c.DB.Port == 0 {
		c.DB.Port = 5432
	}
}

// Validate 检查必填项
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("配置错误: 未设置金属品种 (symbols)")
	}
	return nil
}
